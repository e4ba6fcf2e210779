package systemhandler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"talentops/internal/platform/config"
	"talentops/internal/platform/metrics"
	"talentops/internal/platform/store"
	"talentops/internal/transport/http/api"
)

// Handler serves liveness, the store connectivity diagnostic and the
// metrics snapshot. Store is nil when the database was never configured.
type Handler struct {
	Config  config.Config
	Store   *store.Store
	Metrics *metrics.Collector
}

func NewHandler(cfg config.Config, st *store.Store, collector *metrics.Collector) *Handler {
	return &Handler{Config: cfg, Store: st, Metrics: collector}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.handleRoot)
	r.Get("/test", h.handleTest)
	if h.Metrics != nil {
		r.Get("/metricsz", h.handleMetrics)
	}
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	api.JSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": h.Config.ServiceName,
	})
}

type testResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURLSet   bool     `json:"database_url_set"`
	DatabaseNameSet  bool     `json:"database_name_set"`
	DatabaseName     string   `json:"database_name,omitempty"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// handleTest reports store connectivity without ever failing the request:
// missing configuration or an unreachable database only degrade the payload.
func (h *Handler) handleTest(w http.ResponseWriter, r *http.Request) {
	resp := testResponse{
		Backend:          "running",
		Database:         "not_configured",
		DatabaseURLSet:   h.Config.DatabaseURL != "",
		DatabaseNameSet:  h.Config.DatabaseName != "",
		ConnectionStatus: "not_connected",
		Collections:      []string{},
	}

	if h.Store != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := h.Store.Ping(ctx); err != nil {
			resp.Database = "error: " + truncate(err.Error(), 80)
		} else {
			resp.Database = "connected"
			resp.ConnectionStatus = "connected"
			resp.DatabaseName = h.Store.DatabaseName()
			if names, err := h.Store.CollectionNames(ctx); err == nil {
				resp.Collections = names
			}
		}
	}

	api.JSON(w, http.StatusOK, resp)
}

func (h *Handler) handleMetrics(w http.ResponseWriter, r *http.Request) {
	api.JSON(w, http.StatusOK, h.Metrics.Snapshot())
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
