package entity

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

type FieldType int

const (
	String FieldType = iota
	Float
	Bool
	StringList
	// Date accepts YYYY-MM-DD (or RFC3339) and is stored normalized to
	// YYYY-MM-DD.
	Date
	// DateTime accepts and stores an RFC3339 timestamp.
	DateTime
)

// Field declares one attribute of an entity schema.
type Field struct {
	Name     string
	Type     FieldType
	Required bool
	// Enum restricts a String field to a closed, case-sensitive value set.
	Enum []string
	// Min and Max are inclusive bounds for Float fields.
	Min *float64
	Max *float64
	// Email enables a lightweight address-shape check on a String field.
	Email bool
	// Default is applied when the field is absent from the payload.
	// StringList fields with a Default get a fresh empty list per document.
	Default any
}

// Schema validates untyped payloads for a single entity kind.
type Schema struct {
	Kind   Kind
	Fields []Field
}

// Collection is the store collection backing this schema, by convention the
// kind name itself.
func (s Schema) Collection() string {
	return string(s.Kind)
}

// Validate checks payload against the schema and returns a document ready
// for persistence: required fields present and well typed, bounds and enums
// honored, defaults applied, unknown payload keys dropped.
func (s Schema) Validate(payload map[string]any) (map[string]any, error) {
	doc := make(map[string]any, len(s.Fields))
	var issues []Issue

	for _, field := range s.Fields {
		raw, present := payload[field.Name]
		if !present || raw == nil {
			if field.Required {
				issues = append(issues, Issue{Field: field.Name, Reason: "is required"})
				continue
			}
			if value := field.defaultValue(); value != nil {
				doc[field.Name] = value
			}
			continue
		}

		value, reason := field.coerce(raw)
		if reason != "" {
			issues = append(issues, Issue{Field: field.Name, Reason: reason})
			continue
		}
		doc[field.Name] = value
	}

	if len(issues) > 0 {
		sort.Slice(issues, func(i, j int) bool {
			if issues[i].Field == issues[j].Field {
				return issues[i].Reason < issues[j].Reason
			}
			return issues[i].Field < issues[j].Field
		})
		return nil, &ValidationError{Kind: s.Kind, Issues: issues}
	}
	return doc, nil
}

func (f Field) defaultValue() any {
	if f.Type == StringList && f.Default != nil {
		return []string{}
	}
	return f.Default
}

func (f Field) coerce(raw any) (any, string) {
	switch f.Type {
	case String:
		value, ok := raw.(string)
		if !ok {
			return nil, "must be a string"
		}
		if f.Email && !looksLikeEmail(value) {
			return nil, "must be a valid email address"
		}
		if len(f.Enum) > 0 && !contains(f.Enum, value) {
			return nil, "must be one of: " + strings.Join(f.Enum, ", ")
		}
		return value, ""
	case Float:
		value, ok := toFloat(raw)
		if !ok {
			return nil, "must be a number"
		}
		if f.Min != nil && value < *f.Min {
			return nil, fmt.Sprintf("must be at least %g", *f.Min)
		}
		if f.Max != nil && value > *f.Max {
			return nil, fmt.Sprintf("must be at most %g", *f.Max)
		}
		return value, ""
	case Bool:
		value, ok := raw.(bool)
		if !ok {
			return nil, "must be a boolean"
		}
		return value, ""
	case StringList:
		value, ok := toStringList(raw)
		if !ok {
			return nil, "must be a list of strings"
		}
		return value, ""
	case Date:
		value, ok := raw.(string)
		if !ok {
			return nil, "must be a date in YYYY-MM-DD format"
		}
		parsed, err := parseDate(value)
		if err != nil {
			return nil, "must be a date in YYYY-MM-DD format"
		}
		return parsed.Format("2006-01-02"), ""
	case DateTime:
		value, ok := raw.(string)
		if !ok {
			return nil, "must be an RFC3339 timestamp"
		}
		parsed, err := time.Parse(time.RFC3339, value)
		if err != nil {
			return nil, "must be an RFC3339 timestamp"
		}
		return parsed.Format(time.RFC3339), ""
	}
	return nil, "unsupported field type"
}

// parseDate accepts RFC3339 or YYYY-MM-DD.
func parseDate(value string) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	return time.Parse("2006-01-02", value)
}

func looksLikeEmail(value string) bool {
	at := strings.Index(value, "@")
	if at <= 0 || at == len(value)-1 {
		return false
	}
	return strings.Contains(value[at+1:], ".")
}

func contains(values []string, candidate string) bool {
	for _, value := range values {
		if value == candidate {
			return true
		}
	}
	return false
}

func toFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case int32:
		return float64(v), true
	default:
		return 0, false
	}
}

func toStringList(raw any) ([]string, bool) {
	switch v := raw.(type) {
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out, true
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}
