package atshandler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	atshandler "talentops/internal/transport/http/handlers/ats"
	"talentops/internal/transport/http/middleware"
)

func newRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Route("/api", func(r chi.Router) {
		atshandler.NewHandler().RegisterRoutes(r)
	})
	return r
}

func post(t *testing.T, router http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/ats/parse-text", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestParseTextEndpoint(t *testing.T) {
	router := newRouter()

	rec := post(t, router, `{"text":"Jane Doe\njane@x.com\n5 years experience in python and docker"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Name            *string  `json:"name"`
		Email           *string  `json:"email"`
		Skills          []string `json:"skills"`
		YearsExperience *float64 `json:"years_experience"`
		RawSummary      []string `json:"raw_summary"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	require.NotNil(t, body.Name)
	assert.Equal(t, "Jane Doe", *body.Name)
	require.NotNil(t, body.Email)
	assert.Equal(t, "jane@x.com", *body.Email)
	assert.Equal(t, []string{"docker", "python"}, body.Skills)
	require.NotNil(t, body.YearsExperience)
	assert.Equal(t, 5.0, *body.YearsExperience)
	assert.Len(t, body.RawSummary, 3)
}

func TestParseTextMissingTextIs422(t *testing.T) {
	router := newRouter()

	rec := post(t, router, `{}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestParseTextMalformedBodyIs400(t *testing.T) {
	router := newRouter()

	rec := post(t, router, `nope`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestParseTextEmptyStringIsAccepted(t *testing.T) {
	router := newRouter()

	rec := post(t, router, `{"text":""}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Nil(t, body["name"])
	assert.Nil(t, body["email"])
}
