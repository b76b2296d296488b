package controller_test

import (
	"flooow/pkg/controller"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestWithMetrics_ObservesStatus(t *testing.T) {
	reg := prometheus.NewRegistry()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	h, err := controller.WithMetrics(reg, next)
	require.NoError(t, err)

	for range 3 {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/v1/simulations", nil))
	}

	count, err := testutil.GatherAndCount(reg, "flooow_http_request_duration_seconds")
	require.NoError(t, err)
	require.Equal(t, 1, count, "one series for POST/201")
}

func TestWithMetrics_DoubleRegistrationFails(t *testing.T) {
	reg := prometheus.NewRegistry()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	_, err := controller.WithMetrics(reg, next)
	require.NoError(t, err)
	_, err = controller.WithMetrics(reg, next)
	require.Error(t, err)
}
