package controller_test

import (
	"flooow/pkg/controller"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithCORS_Preflight(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodOptions, "/v1/simulations", nil)
	rec := httptest.NewRecorder()

	controller.WithCORS([]string{"*"}, next).ServeHTTP(rec, req)

	require.False(t, called, "next handler should not be called for OPTIONS preflight")
	res := rec.Result()
	require.Equal(t, http.StatusNoContent, res.StatusCode)
	require.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))
	require.Contains(t, res.Header.Get("Access-Control-Allow-Methods"), "DELETE")
	require.Contains(t, res.Header.Get("Access-Control-Allow-Headers"), "Authorization")
}

func TestWithCORS_AllowedOrigin(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/brackets", nil)
	req.Header.Set("Origin", "https://app.flooow.fr")
	rec := httptest.NewRecorder()

	controller.WithCORS([]string{"https://app.flooow.fr"}, next).ServeHTTP(rec, req)

	require.True(t, called)
	res := rec.Result()
	require.Equal(t, http.StatusTeapot, res.StatusCode)
	require.Equal(t, "https://app.flooow.fr", res.Header.Get("Access-Control-Allow-Origin"))
	require.Equal(t, "true", res.Header.Get("Access-Control-Allow-Credentials"))
	require.Equal(t, "Origin", res.Header.Get("Vary"))
}

func TestWithCORS_UnknownOrigin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/v1/brackets", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec := httptest.NewRecorder()

	controller.WithCORS([]string{"https://app.flooow.fr"}, next).ServeHTTP(rec, req)

	require.Empty(t, rec.Result().Header.Get("Access-Control-Allow-Origin"))
}
