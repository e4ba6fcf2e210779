package shared

import (
	"net/http"
	"strconv"
)

// ParseLimit reads the limit query parameter, falling back to defaultLimit
// when absent or not a positive integer.
func ParseLimit(r *http.Request, defaultLimit int64) int64 {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return defaultLimit
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value <= 0 {
		return defaultLimit
	}
	return value
}
