package controller

import (
	"flooow/pkg/metrics"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// WithMetrics returns a middleware that observes request latency in a
// histogram labelled by method and status code, registered on reg.
func WithMetrics(reg prometheus.Registerer, next http.Handler) (http.Handler, error) {
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "flooow",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by method and status code.",
		Buckets:   metrics.DefaultBuckets,
	}, []string{"method", "code"})
	if err := reg.Register(latency); err != nil {
		return nil, err //nolint: wrapcheck
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		latency.WithLabelValues(r.Method, strconv.Itoa(rec.status)).Observe(time.Since(start).Seconds())
	}), nil
}
