package seedhandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"talentops/internal/domain/seed"
	"talentops/internal/transport/http/api"
	"talentops/internal/transport/http/middleware"
)

type Handler struct {
	Service *seed.Service
}

func NewHandler(service *seed.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/seed/demo", h.handleSeedDemo)
}

type seedResponse struct {
	Status  string      `json:"status"`
	Created seed.Result `json:"created"`
}

func (h *Handler) handleSeedDemo(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	if !h.Service.Available() {
		api.Fail(w, http.StatusInternalServerError, "store_unavailable", "database not available; set DATABASE_URL and DATABASE_NAME", reqID)
		return
	}

	result, err := h.Service.SeedDemo(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "seed_failed", "failed to seed demo data", reqID)
		return
	}
	api.JSON(w, http.StatusOK, seedResponse{Status: "ok", Created: result})
}
