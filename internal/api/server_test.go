package api_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"flooow/internal/api"
	"flooow/internal/api/handler/v1handler"
	mocksimulator "flooow/internal/simulator/mock"
	"flooow/pkg/metrics"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func publicKeyPEM(t *testing.T) string {
	t.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)

	return string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))
}

func testOptions(t *testing.T) api.Options {
	t.Helper()

	return api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{PublicKey: publicKeyPEM(t)},
		Addr:              ":0",
		MetricsPath:       "/metrics",
		AllowedOrigins:    []string{"https://app.flooow.fr"},
	}
}

func newHandler(t *testing.T, deps api.Deps, opts api.Options) http.Handler {
	t.Helper()
	if deps.Simulator == nil {
		deps.Simulator = mocksimulator.NewMockSimulator(gomock.NewController(t))
	}
	srv, err := api.NewServer(deps, opts)
	require.NoError(t, err)
	require.Equal(t, opts.Addr, srv.Addr)

	return srv.Handler
}

func serve(h http.Handler, method, target string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func TestNewServer_InvalidKey(t *testing.T) {
	opts := testOptions(t)
	opts.SecHandlerOptions = &v1handler.SecHandlerOptions{PublicKey: "garbage"}

	_, err := api.NewServer(api.Deps{}, opts)
	require.Error(t, err)
}

func TestServer_Specs(t *testing.T) {
	h := newHandler(t, api.Deps{}, testOptions(t))

	rec := serve(h, http.MethodGet, "/specs/v1.yaml", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Body.String(), "openapi: 3.0.3")

	rec = serve(h, http.MethodGet, "/v1/docs/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_PublicRoutesAndMetrics(t *testing.T) {
	reg := api.NewRegistry()
	h := newHandler(t, api.Deps{Registry: reg}, testOptions(t))

	rec := serve(h, http.MethodGet, "/v1/brackets/map?qf=450", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	rec = serve(h, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "flooow_http_request_duration_seconds")
	require.Contains(t, string(body), "go_goroutines")
}

func TestServer_OtelMetricsExported(t *testing.T) {
	reg := api.NewRegistry()
	mp, err := api.NewMeterProvider(reg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	sims, err := metrics.NewSimulations(mp.Meter("flooow"))
	require.NoError(t, err)
	sims.Record(context.Background(), "451-700", 520)

	h := newHandler(t, api.Deps{Registry: reg}, testOptions(t))
	rec := serve(h, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "flooow_simulations")
}

func TestServer_CORS(t *testing.T) {
	h := newHandler(t, api.Deps{}, testOptions(t))

	rec := serve(h, http.MethodOptions, "/v1/simulations", http.Header{
		"Origin":                        {"https://app.flooow.fr"},
		"Access-Control-Request-Method": {"POST"},
	})
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "https://app.flooow.fr", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestServer_Pprof(t *testing.T) {
	opts := testOptions(t)

	h := newHandler(t, api.Deps{}, opts)
	rec := serve(h, http.MethodGet, "/debug/pprof/", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	opts.Pprof = true
	h = newHandler(t, api.Deps{}, opts)
	rec = serve(h, http.MethodGet, "/debug/pprof/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_ProtectedRouteNeedsToken(t *testing.T) {
	h := newHandler(t, api.Deps{}, testOptions(t))

	rec := serve(h, http.MethodGet, "/v1/stats/brackets", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"code":"UNAUTHORIZED","message":"missing bearer token"}`, rec.Body.String())
}
