package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// Error is the body of every failed response. Success responses write their
// payload directly so the public shapes stay exactly {"id"}, {"items"}, etc.
type Error struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

type errorEnvelope struct {
	Error     *Error `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Warn().Err(err).Msg("write json failed")
	}
}

func Fail(w http.ResponseWriter, status int, code, message, requestID string) {
	JSON(w, status, errorEnvelope{Error: &Error{Code: code, Message: message}, RequestID: requestID})
}

func FailWithDetails(w http.ResponseWriter, status int, code, message string, details map[string]any, requestID string) {
	JSON(w, status, errorEnvelope{Error: &Error{Code: code, Message: message, Details: details}, RequestID: requestID})
}
