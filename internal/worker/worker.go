// Package worker runs the River background jobs of the service.
package worker

import (
	"context"
	"flooow/internal/config"
	"flooow/internal/simulator"
	"flooow/pkg/logger"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// Options configure the River client.
type Options struct {
	// MaxWorkers is the concurrency of the default queue.
	MaxWorkers int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{MaxWorkers: cfg.Worker.MaxWorkers}
}

// Workers registers every job worker of the service.
func Workers(sim simulator.Simulator) *river.Workers {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewDistributionWorker(sim))

	return workers
}

// Start creates and starts a River client processing the default queue.
// Callers stop it with Stop on shutdown.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	sim simulator.Simulator,
	opts Options) (*river.Client[pgx.Tx], error) {
	maxWorkers := opts.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = 1
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers: Workers(sim),
		Logger:  slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
