// Package ats holds the demo resume-text parser: a fixed line/keyword
// heuristic with no accuracy guarantee and no configuration surface.
package ats

import (
	"sort"
	"strconv"
	"strings"
)

// skillKeywords is the closed vocabulary matched case-insensitively as
// substrings anywhere in the text.
var skillKeywords = []string{
	"python", "javascript", "react", "node", "aws", "docker", "kubernetes", "sql",
	"fastapi", "django", "java", "c++", "ml", "nlp", "git", "linux",
}

// ParseResult is the parser output. Name, Email and YearsExperience are nil
// when the heuristic found nothing.
type ParseResult struct {
	Name            *string  `json:"name"`
	Email           *string  `json:"email"`
	Skills          []string `json:"skills"`
	YearsExperience *float64 `json:"years_experience"`
	RawSummary      []string `json:"raw_summary"`
}

// Parse applies the heuristic: name is the first non-empty line, email the
// first line containing both "@" and ".", skills the sorted set of known
// keywords present in the text, years the first numeric token on the first
// line mentioning "years", and the summary the first ten non-empty lines.
func Parse(text string) ParseResult {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}

	result := ParseResult{
		Skills:     extractSkills(text),
		RawSummary: summary(lines),
	}
	if len(lines) > 0 {
		result.Name = &lines[0]
	}
	for i, line := range lines {
		if strings.Contains(line, "@") && strings.Contains(line, ".") {
			result.Email = &lines[i]
			break
		}
	}
	result.YearsExperience = extractYears(lines)
	return result
}

func extractSkills(text string) []string {
	lowered := strings.ToLower(text)
	seen := make(map[string]bool, len(skillKeywords))
	skills := make([]string, 0, len(skillKeywords))
	for _, keyword := range skillKeywords {
		if strings.Contains(lowered, keyword) && !seen[keyword] {
			seen[keyword] = true
			skills = append(skills, keyword)
		}
	}
	sort.Strings(skills)
	return skills
}

// extractYears only inspects the first line containing "years"; if no token
// on that line qualifies, the value is absent.
func extractYears(lines []string) *float64 {
	for _, line := range lines {
		if !strings.Contains(strings.ToLower(line), "years") {
			continue
		}
		for _, token := range strings.Fields(line) {
			if !digitsOnly(strings.ReplaceAll(strings.ReplaceAll(token, "+", ""), ".", "")) {
				continue
			}
			value, err := strconv.ParseFloat(strings.ReplaceAll(token, "+", ""), 64)
			if err != nil {
				continue
			}
			return &value
		}
		return nil
	}
	return nil
}

func digitsOnly(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func summary(lines []string) []string {
	if len(lines) > 10 {
		lines = lines[:10]
	}
	out := make([]string, len(lines))
	copy(out, lines)
	return out
}
