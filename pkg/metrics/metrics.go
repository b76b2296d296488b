// Package metrics holds instruments shared across packages.
package metrics

import (
	"context"
	"flooow/pkg/qf"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// BracketKey is the attribute carrying a bracket ID.
const BracketKey = attribute.Key("bracket")

// Simulations records QF simulations.
type Simulations struct {
	count metric.Int64Counter
	qf    metric.Float64Histogram
}

// NewSimulations creates the simulation instruments on meter. The QF
// histogram's buckets are the bracket bounds so each bucket is one bracket.
func NewSimulations(meter metric.Meter) (*Simulations, error) {
	count, err := meter.Int64Counter("flooow.simulations",
		metric.WithDescription("Number of QF simulations by bracket"),
		metric.WithUnit("{simulation}"))
	if err != nil {
		return nil, fmt.Errorf("could not create simulations counter: %w", err)
	}

	hist, err := meter.Float64Histogram("flooow.simulation.qf",
		metric.WithDescription("Quotient familial entered in simulations"),
		metric.WithUnit("EUR"),
		metric.WithExplicitBucketBoundaries(qf.Bounds()...))
	if err != nil {
		return nil, fmt.Errorf("could not create qf histogram: %w", err)
	}

	return &Simulations{count: count, qf: hist}, nil
}

// Record adds one simulation that mapped value to bracketID.
func (s *Simulations) Record(ctx context.Context, bracketID string, value float64) {
	if s == nil {
		return
	}

	attrs := metric.WithAttributes(BracketKey.String(bracketID))
	s.count.Add(ctx, 1, attrs)
	s.qf.Record(ctx, value, attrs)
}
