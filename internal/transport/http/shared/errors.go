package shared

import (
	"errors"
	"net/http"

	"talentops/internal/domain/entity"
	"talentops/internal/transport/http/api"
)

// FailDomainError maps the dispatcher error taxonomy onto HTTP responses:
// unknown kind is a 404, validation failures a 422 with field detail, a
// missing store a 500. Anything else falls back to the supplied code.
func FailDomainError(w http.ResponseWriter, err error, fallbackCode, fallbackMessage, requestID string) {
	var validationErr *entity.ValidationError
	switch {
	case errors.Is(err, entity.ErrUnknownEntity):
		api.Fail(w, http.StatusNotFound, "unknown_entity", "unknown entity", requestID)
	case errors.As(err, &validationErr):
		api.FailWithDetails(
			w,
			http.StatusUnprocessableEntity,
			"validation_error",
			"payload validation failed",
			map[string]any{"fields": validationErr.Issues},
			requestID,
		)
	case errors.Is(err, entity.ErrStoreUnavailable):
		api.Fail(w, http.StatusInternalServerError, "store_unavailable", "database not available; set DATABASE_URL and DATABASE_NAME", requestID)
	default:
		api.Fail(w, http.StatusInternalServerError, fallbackCode, fallbackMessage, requestID)
	}
}
