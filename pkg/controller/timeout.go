package controller

import (
	"net/http"
	"time"
)

// jsonTimeoutWriter labels the 503 that http.TimeoutHandler writes on expiry
// as JSON. Responses from the wrapped handler carry their own Content-Type.
type jsonTimeoutWriter struct {
	http.ResponseWriter
}

func (w jsonTimeoutWriter) WriteHeader(code int) {
	if code == http.StatusServiceUnavailable && w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "application/json")
	}
	w.ResponseWriter.WriteHeader(code)
}

// WithTimeout bounds next by timeout. When it expires the client gets a 503
// with body, served as application/json.
func WithTimeout(timeout time.Duration, body string, next http.Handler) http.Handler {
	h := http.TimeoutHandler(next, timeout, body)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.ServeHTTP(jsonTimeoutWriter{ResponseWriter: w}, r)
	})
}
