package insightshandler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"talentops/internal/domain/entity"
	"talentops/internal/domain/insights"
	"talentops/internal/transport/http/api"
	"talentops/internal/transport/http/middleware"
	"talentops/internal/transport/http/shared"
)

type Handler struct {
	Service *insights.Service
}

func NewHandler(service *insights.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/analytics/insights", h.handleInsights)
}

type insightsRequest struct {
	HorizonDays *int `json:"horizon_days"`
}

type insightsResponse struct {
	Summary   insights.Summary `json:"summary"`
	Narrative string           `json:"narrative"`
}

func (h *Handler) handleInsights(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload insightsRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	horizonDays := insights.DefaultHorizonDays
	if payload.HorizonDays != nil {
		horizonDays = *payload.HorizonDays
	}
	if horizonDays < insights.MinHorizonDays || horizonDays > insights.MaxHorizonDays {
		api.FailWithDetails(
			w,
			http.StatusUnprocessableEntity,
			"validation_error",
			"payload validation failed",
			map[string]any{"fields": []entity.Issue{{
				Field:  "horizon_days",
				Reason: fmt.Sprintf("must be between %d and %d", insights.MinHorizonDays, insights.MaxHorizonDays),
			}}},
			reqID,
		)
		return
	}

	summary, narrative, err := h.Service.Compute(r.Context(), horizonDays)
	if err != nil {
		shared.FailDomainError(w, err, "insights_failed", "failed to compute insights", reqID)
		return
	}
	api.JSON(w, http.StatusOK, insightsResponse{Summary: summary, Narrative: narrative})
}
