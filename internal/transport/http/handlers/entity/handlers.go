package entityhandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"talentops/internal/domain/entity"
	"talentops/internal/transport/http/api"
	"talentops/internal/transport/http/middleware"
	"talentops/internal/transport/http/shared"
)

const defaultListLimit = 50

type Handler struct {
	Service *entity.Service
}

func NewHandler(service *entity.Service) *Handler {
	return &Handler{Service: service}
}

// RegisterRoutes mounts the generic create/list wildcards. These must be
// registered after every static /api route so that the derived endpoints
// win the match.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/{entity}", h.handleCreate)
	r.Get("/{entity}", h.handleList)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	h.Create(chi.URLParam(r, "entity"), w, r)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	h.List(chi.URLParam(r, "entity"), w, r)
}

// Create runs the generic create flow for a fixed kind. Exported so static
// routes shadowed by the wildcard (e.g. POST /api/attendance) can delegate.
func (h *Handler) Create(kind string, w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	id, err := h.Service.Create(r.Context(), kind, payload)
	if err != nil {
		shared.FailDomainError(w, err, "create_failed", "failed to create "+kind, reqID)
		return
	}
	api.JSON(w, http.StatusOK, map[string]string{"id": id})
}

// List runs the generic list flow for a fixed kind.
func (h *Handler) List(kind string, w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	items, err := h.Service.List(r.Context(), kind, shared.ParseLimit(r, defaultListLimit))
	if err != nil {
		shared.FailDomainError(w, err, "list_failed", "failed to list "+kind, reqID)
		return
	}
	api.JSON(w, http.StatusOK, map[string]any{"items": items})
}
