package entity

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownEntity is returned when a request names an entity kind outside
// the closed set of registered kinds.
var ErrUnknownEntity = errors.New("unknown entity")

// ErrStoreUnavailable is returned when the document store was never
// configured or could not be reached at startup.
var ErrStoreUnavailable = errors.New("document store unavailable")

// Issue describes a single field-level validation failure.
type Issue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError carries all field issues found while validating a payload
// against an entity schema. Issues are sorted by field, then reason.
type ValidationError struct {
	Kind   Kind
	Issues []Issue
}

func (e *ValidationError) Error() string {
	reasons := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		reasons = append(reasons, issue.Field+" "+issue.Reason)
	}
	return fmt.Sprintf("invalid %s payload: %s", e.Kind, strings.Join(reasons, "; "))
}
