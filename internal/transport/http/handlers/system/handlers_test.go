package systemhandler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentops/internal/platform/config"
	"talentops/internal/platform/metrics"
	systemhandler "talentops/internal/transport/http/handlers/system"
)

func newRouter(cfg config.Config, collector *metrics.Collector) http.Handler {
	r := chi.NewRouter()
	systemhandler.NewHandler(cfg, nil, collector).RegisterRoutes(r)
	return r
}

func get(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestRootReportsService(t *testing.T) {
	router := newRouter(config.Config{ServiceName: "talent-ops-api"}, nil)

	rec := get(t, router, "/")

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "talent-ops-api", body["service"])
}

func TestTestEndpointDegradesWithoutStore(t *testing.T) {
	cfg := config.Config{DatabaseURL: "mongodb://localhost:27017"}
	router := newRouter(cfg, nil)

	rec := get(t, router, "/test")

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Backend          string   `json:"backend"`
		Database         string   `json:"database"`
		DatabaseURLSet   bool     `json:"database_url_set"`
		DatabaseNameSet  bool     `json:"database_name_set"`
		ConnectionStatus string   `json:"connection_status"`
		Collections      []string `json:"collections"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "running", body.Backend)
	assert.Equal(t, "not_configured", body.Database)
	assert.True(t, body.DatabaseURLSet)
	assert.False(t, body.DatabaseNameSet)
	assert.Equal(t, "not_connected", body.ConnectionStatus)
	assert.NotNil(t, body.Collections)
	assert.Empty(t, body.Collections)
}

func TestMetricsEndpoint(t *testing.T) {
	collector := metrics.New()
	collector.Record(http.StatusOK, 12*time.Millisecond)
	collector.Record(http.StatusInternalServerError, 3*time.Millisecond)
	router := newRouter(config.Config{}, collector)

	rec := get(t, router, "/metricsz")

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(2), body["requestsTotal"])
	assert.Equal(t, float64(1), body["errorsTotal"])
}

func TestMetricsEndpointAbsentWhenDisabled(t *testing.T) {
	router := newRouter(config.Config{}, nil)

	rec := get(t, router, "/metricsz")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
