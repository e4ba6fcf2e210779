package attendancehandler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"talentops/internal/domain/attendance"
	"talentops/internal/domain/entity"
	"talentops/internal/transport/http/api"
	entityhandler "talentops/internal/transport/http/handlers/entity"
	"talentops/internal/transport/http/middleware"
	"talentops/internal/transport/http/shared"
)

type Handler struct {
	Service  *attendance.Service
	Entities *entityhandler.Handler
}

func NewHandler(service *attendance.Service, entities *entityhandler.Handler) *Handler {
	return &Handler{Service: service, Entities: entities}
}

// RegisterRoutes claims the /attendance subtree. The subtree shadows the
// generic /{entity} wildcard, so plain create/list for the attendance kind
// are re-exposed here too.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/attendance", func(r chi.Router) {
		r.Post("/check-in", h.handleCheckIn)
		r.Post("/check-out", h.handleCheckOut)
		r.Post("/", func(w http.ResponseWriter, r *http.Request) {
			h.Entities.Create(string(entity.KindAttendance), w, r)
		})
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			h.Entities.List(string(entity.KindAttendance), w, r)
		})
	})
}

func (h *Handler) handleCheckIn(w http.ResponseWriter, r *http.Request) {
	h.handleCheck(w, r, h.Service.CheckIn, "Checked in")
}

func (h *Handler) handleCheckOut(w http.ResponseWriter, r *http.Request) {
	h.handleCheck(w, r, h.Service.CheckOut, "Checked out")
}

type checkRequest struct {
	UserID string `json:"user_id"`
	Time   string `json:"time"`
}

func (h *Handler) handleCheck(
	w http.ResponseWriter,
	r *http.Request,
	record func(ctx context.Context, userID, clock string) (string, error),
	message string,
) {
	reqID := middleware.GetRequestID(r.Context())

	userID, clock := checkParams(r)
	if userID == "" {
		api.FailWithDetails(
			w,
			http.StatusUnprocessableEntity,
			"validation_error",
			"payload validation failed",
			map[string]any{"fields": []entity.Issue{{Field: "user_id", Reason: "is required"}}},
			reqID,
		)
		return
	}

	id, err := record(r.Context(), userID, clock)
	if err != nil {
		shared.FailDomainError(w, err, "attendance_failed", "failed to record attendance", reqID)
		return
	}
	api.JSON(w, http.StatusOK, map[string]string{"id": id, "message": message})
}

// checkParams accepts user_id and time as query parameters, with a JSON body
// fallback.
func checkParams(r *http.Request) (string, string) {
	userID := r.URL.Query().Get("user_id")
	clock := r.URL.Query().Get("time")
	if userID != "" {
		return userID, clock
	}

	var body checkRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return userID, clock
	}
	if body.UserID != "" {
		userID = body.UserID
	}
	if clock == "" {
		clock = body.Time
	}
	return userID, clock
}
