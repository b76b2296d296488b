package controller_test

import (
	"flooow/pkg/controller"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const timeoutBody = `{"code":"TIMEOUT","message":"request timed out"}`

func TestWithTimeout_Expired(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/stats/brackets", nil)
	rec := httptest.NewRecorder()

	controller.WithTimeout(10*time.Millisecond, timeoutBody, next).ServeHTTP(rec, req)

	res := rec.Result()
	require.Equal(t, http.StatusServiceUnavailable, res.StatusCode)
	require.Equal(t, "application/json", res.Header.Get("Content-Type"))
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	require.JSONEq(t, timeoutBody, string(body))
}

func TestWithTimeout_PassesThrough(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("draining"))
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	controller.WithTimeout(time.Second, timeoutBody, next).ServeHTTP(rec, req)

	res := rec.Result()
	require.Equal(t, http.StatusServiceUnavailable, res.StatusCode)
	require.Equal(t, "text/plain; charset=utf-8", res.Header.Get("Content-Type"))
	require.Equal(t, "draining", rec.Body.String())
}
