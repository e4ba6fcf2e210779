package insightshandler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentops/internal/domain/insights"
	"talentops/internal/platform/store/storetest"
	insightshandler "talentops/internal/transport/http/handlers/insights"
	"talentops/internal/transport/http/middleware"
)

func newRouter(fake *storetest.Fake) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Route("/api", func(r chi.Router) {
		insightshandler.NewHandler(insights.NewService(fake)).RegisterRoutes(r)
	})
	return r
}

func post(t *testing.T, router http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/analytics/insights", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestInsightsEndpoint(t *testing.T) {
	fake := storetest.NewFake()
	ctx := context.Background()
	_, err := fake.Insert(ctx, "employee", map[string]any{"user_id": "u1"})
	require.NoError(t, err)
	_, err = fake.Insert(ctx, "task", map[string]any{"status": "done"})
	require.NoError(t, err)
	_, err = fake.Insert(ctx, "task", map[string]any{"status": "todo"})
	require.NoError(t, err)

	rec := post(t, newRouter(fake), `{"horizon_days":30}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Summary   insights.Summary `json:"summary"`
		Narrative string           `json:"narrative"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Summary.WorkforceSize)
	assert.Equal(t, 50.0, body.Summary.TaskCompletionRate)
	assert.Equal(t, 30, body.Summary.TimeHorizonDays)
	assert.Contains(t, body.Narrative, "Team size is 1.")
}

func TestInsightsDefaultHorizon(t *testing.T) {
	rec := post(t, newRouter(storetest.NewFake()), `{}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Summary insights.Summary `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, insights.DefaultHorizonDays, body.Summary.TimeHorizonDays)
}

func TestInsightsHorizonOutOfRangeIs422(t *testing.T) {
	router := newRouter(storetest.NewFake())

	for _, body := range []string{`{"horizon_days":0}`, `{"horizon_days":366}`} {
		rec := post(t, router, body)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, "body %s", body)
	}
}
