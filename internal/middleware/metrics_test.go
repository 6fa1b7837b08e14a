package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SergeyBogomolovv/postomat-service/internal/entities"
	"github.com/SergeyBogomolovv/postomat-service/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T) string {
	t.Helper()
	rr := httptest.NewRecorder()
	promhttp.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	return string(body)
}

func TestMetrics_LabelsByRoleAndRejectReason(t *testing.T) {
	r := chi.NewRouter()
	r.Use(middleware.Metrics)
	r.With(middleware.Identity, middleware.RequireRole(entities.RoleCourier)).
		Post("/test-metrics/{id}", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})

	send := func(userID, role string) int {
		req := httptest.NewRequest(http.MethodPost, "/test-metrics/1", nil)
		req.Header.Set(middleware.HeaderUserID, userID)
		req.Header.Set(middleware.HeaderUserRole, role)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		return rr.Code
	}

	require.Equal(t, http.StatusNoContent, send("7", "courier"))
	require.Equal(t, http.StatusForbidden, send("7", "client"))
	require.Equal(t, http.StatusUnauthorized, send("7", "admin"))
	require.Equal(t, http.StatusUnauthorized, send("", "courier"))

	body := scrape(t)
	assert.Contains(t, body, `postomat_service_http_requests_total{method="POST",role="courier",route="/test-metrics/{id}",status="204"}`)
	assert.Contains(t, body, `postomat_service_http_requests_total{method="POST",role="client",route="/test-metrics/{id}",status="403"}`)
	// Неизвестная роль из заголовка не попадает в метки
	assert.Contains(t, body, `postomat_service_http_requests_total{method="POST",role="anonymous",route="/test-metrics/{id}",status="401"}`)
	assert.NotContains(t, body, `role="admin"`)

	assert.Contains(t, body, `postomat_service_http_rejected_callers_total{reason="role_mismatch"}`)
	assert.Contains(t, body, `postomat_service_http_rejected_callers_total{reason="bad_role"}`)
	assert.Contains(t, body, `postomat_service_http_rejected_callers_total{reason="bad_user_id"}`)
}

func TestMetrics_UnmatchedRoute(t *testing.T) {
	r := chi.NewRouter()
	r.Use(middleware.Metrics)
	r.Get("/known", func(w http.ResponseWriter, r *http.Request) {})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/test-metrics-missing", nil))
	require.Equal(t, http.StatusNotFound, rr.Code)

	assert.Contains(t, scrape(t), `postomat_service_http_requests_total{method="GET",role="anonymous",route="unmatched",status="404"}`)
}
