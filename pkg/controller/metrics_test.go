package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"smartdomain/pkg/controller"
	"smartdomain/pkg/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestWithMetrics_LabelsByRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	hist, err := metrics.NewHTTPDuration(reg)
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(controller.WithMetrics(hist))
	r.Get("/api/v1/favorites/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/favorites/123", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)

	require.Equal(t, 1, testutil.CollectAndCount(hist))
	count, err := testutil.GatherAndCount(reg, "http_request_duration_seconds")
	require.NoError(t, err)
	require.Equal(t, 1, count)
}
