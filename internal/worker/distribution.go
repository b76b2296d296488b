package worker

import (
	"context"
	"errors"
	"flooow/internal/simulator"
	"flooow/pkg/logger"
	"flooow/pkg/serrors"
	"fmt"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// DistributionWorker recomputes the bracket distribution KPI.
type DistributionWorker struct {
	river.WorkerDefaults[simulator.RefreshDistributionJobArgs]

	simulator simulator.Simulator
}

// NewDistributionWorker creates a DistributionWorker.
func NewDistributionWorker(sim simulator.Simulator) *DistributionWorker {
	return &DistributionWorker{simulator: sim}
}

// Work refreshes the distribution. A conflict cancels the job; other errors
// are returned so River retries with backoff.
func (w *DistributionWorker) Work(ctx context.Context, job *river.Job[simulator.RefreshDistributionJobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("scope", job.Args.Scope))

	d, err := w.simulator.RefreshDistribution(ctx)
	if err != nil {
		if errors.Is(err, serrors.ErrConflict) {
			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "could not refresh distribution",
			zap.Error(err),
			zap.Int("attempt", job.Attempt))

		return fmt.Errorf("could not refresh distribution: %w", err)
	}

	logger.Debug(ctx, "distribution job done", zap.Int64("total", d.Total))

	return nil
}
