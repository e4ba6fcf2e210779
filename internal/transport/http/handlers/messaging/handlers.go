// Package messaginghandler exposes the announcement and ticket quick-create
// shortcuts. Both are equivalent to the generic dispatcher for their kinds;
// the static /ticket route also re-exposes the generic list, which its
// presence would otherwise shadow.
package messaginghandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"talentops/internal/domain/entity"
	entityhandler "talentops/internal/transport/http/handlers/entity"
)

type Handler struct {
	Entities *entityhandler.Handler
}

func NewHandler(entities *entityhandler.Handler) *Handler {
	return &Handler{Entities: entities}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/announce", func(w http.ResponseWriter, r *http.Request) {
		h.Entities.Create(string(entity.KindAnnouncement), w, r)
	})
	r.Post("/ticket", func(w http.ResponseWriter, r *http.Request) {
		h.Entities.Create(string(entity.KindTicket), w, r)
	})
	r.Get("/ticket", func(w http.ResponseWriter, r *http.Request) {
		h.Entities.List(string(entity.KindTicket), w, r)
	})
}
