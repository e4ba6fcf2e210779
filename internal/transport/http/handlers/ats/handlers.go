package atshandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"talentops/internal/domain/ats"
	"talentops/internal/domain/entity"
	"talentops/internal/transport/http/api"
	"talentops/internal/transport/http/middleware"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/ats/parse-text", h.handleParseText)
}

type parseTextRequest struct {
	Text *string `json:"text"`
}

func (h *Handler) handleParseText(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload parseTextRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	if payload.Text == nil {
		api.FailWithDetails(
			w,
			http.StatusUnprocessableEntity,
			"validation_error",
			"payload validation failed",
			map[string]any{"fields": []entity.Issue{{Field: "text", Reason: "is required"}}},
			reqID,
		)
		return
	}

	api.JSON(w, http.StatusOK, ats.Parse(*payload.Text))
}
