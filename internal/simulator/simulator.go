// Package simulator is the aid simulator behind the parent-facing simulator
// screen: it maps a quotient familial to its aid bracket, keeps the history of
// simulations and maintains the bracket distribution KPI.
package simulator

import (
	"context"
	"flooow/internal/config"
	"flooow/pkg/domain"
	"flooow/pkg/logger"
	"flooow/pkg/metrics"
	"flooow/pkg/qf"
	"flooow/pkg/serrors"
	"flooow/pkg/storage"
	"fmt"
	"math"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var tracer trace.Tracer = otel.Tracer("flooow/internal/simulator") //nolint: gochecknoglobals

// Options configure validation, pagination and distribution refresh jobs.
type Options struct {
	// MaxAttempts is how many times River retries a distribution refresh job.
	MaxAttempts int
	// RefreshPeriod is the window during which duplicate refresh jobs are skipped.
	RefreshPeriod time.Duration
	// RejectNegativeQF makes Simulate reject negative QF values instead of
	// mapping them to the lowest bracket.
	RejectNegativeQF bool
	// DefaultLimit is the page size used when the caller passes zero.
	DefaultLimit uint
	// MaxLimit caps the page size.
	MaxLimit uint
	// Now returns the current time; defaults to time.Now.
	Now func() time.Time
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxAttempts:      cfg.Simulator.MaxAttempts,
		RefreshPeriod:    cfg.Simulator.RefreshPeriod,
		RejectNegativeQF: cfg.Simulator.RejectNegativeQF,
		DefaultLimit:     cfg.Simulator.DefaultLimit,
		MaxLimit:         cfg.Simulator.MaxLimit,
	}
}

// Deps are the collaborators of the simulator.
type Deps struct {
	Storage storage.Storage
	Cache   DistributionCache
	// Metrics is optional.
	Metrics *metrics.Simulations
}

type simulator struct {
	options Options
	deps    Deps
}

// New creates a Simulator.
func New(deps Deps, options Options) Simulator {
	if options.Now == nil {
		options.Now = time.Now
	}
	if options.DefaultLimit == 0 {
		options.DefaultLimit = 20
	}
	if options.MaxLimit == 0 {
		options.MaxLimit = 100
	}

	return &simulator{
		options: options,
		deps:    deps,
	}
}

func (s *simulator) refreshJob() RefreshDistributionJobArgs {
	return NewRefreshDistributionJobArgs(s.options.MaxAttempts, s.options.RefreshPeriod)
}

// Simulate validates value, maps it to its bracket, stores the simulation and
// enqueues a distribution refresh in the same transaction.
func (s *simulator) Simulate(ctx context.Context, userID domain.UserID, value float64) (*domain.Simulation, error) {
	ctx, span := tracer.Start(ctx, "simulator.Simulate")
	defer span.End()

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, serrors.With(serrors.ErrBadRequest, "qf must be a finite number")
	}
	if value < 0 && s.options.RejectNegativeQF {
		return nil, serrors.With(serrors.ErrBadRequest, "qf must not be negative")
	}

	bracket := qf.BracketFor(value)
	span.SetAttributes(attribute.String("bracket", bracket.ID))

	var sim *domain.Simulation
	if err := s.deps.Storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res, err := tx.StoreSimulations(ctx, domain.Simulation{
			UserID:              userID,
			QF:                  value,
			BracketID:           bracket.ID,
			RepresentativeValue: bracket.Value,
			Label:               bracket.Label,
		})
		if err != nil {
			return fmt.Errorf("could not store simulation: %w", err)
		}
		if len(res) != 1 {
			return fmt.Errorf("stored %d simulations, expected 1", len(res))
		}
		sim = &res[0]

		if _, err := tx.AddJob(ctx, s.refreshJob(), nil); err != nil {
			return fmt.Errorf("could not add refresh job: %w", err)
		}

		return nil
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "simulate failed")

		return nil, fmt.Errorf("could not simulate: %w", err)
	}

	s.invalidateDistribution(ctx)
	s.deps.Metrics.Record(ctx, bracket.ID, value)
	logger.Debug(ctx, "simulation recorded",
		zap.Stringer("simulationID", sim.ID),
		zap.String("bracket", bracket.ID),
		zap.Float64("qf", value))

	return sim, nil
}

// UserSimulations returns a page of the user's simulations. The cursor is
// opaque to clients and points at the last simulation of the previous page.
func (s *simulator) UserSimulations(ctx context.Context,
	userID domain.UserID,
	bracketID string,
	cursor string,
	limit uint) ([]domain.Simulation, string, error) {
	if bracketID != "" {
		if _, ok := qf.ByID(bracketID); !ok {
			return nil, "", serrors.With(serrors.ErrBadRequest, "unknown bracket %q", bracketID)
		}
	}

	after, err := decodeCursor(cursor)
	if err != nil {
		return nil, "", err
	}

	switch {
	case limit == 0:
		limit = s.options.DefaultLimit
	case limit > s.options.MaxLimit:
		limit = s.options.MaxLimit
	}

	page, err := s.deps.Storage.UserSimulations(ctx, userID, bracketID, after, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get user simulations: %w", err)
	}

	return page.Simulations, encodeCursor(page.NextCursor), nil
}

// Simulation returns one live simulation of the user or a not-found error.
func (s *simulator) Simulation(ctx context.Context,
	userID domain.UserID,
	id domain.SimulationID) (*domain.Simulation, error) {
	res, err := s.deps.Storage.SimulationByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("could not get simulation: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "simulation not found")
	}

	return res, nil
}

// Delete soft-deletes one of the user's simulations. The distribution changes
// too, so a refresh job is enqueued with the delete.
func (s *simulator) Delete(ctx context.Context, userID domain.UserID, id domain.SimulationID) error {
	var deleted *domain.Simulation
	if err := s.deps.Storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res, err := tx.DeleteSimulation(ctx, userID, id)
		if err != nil {
			return fmt.Errorf("could not delete simulation: %w", err)
		}
		if res == nil {
			return nil
		}
		deleted = res

		if _, err := tx.AddJob(ctx, s.refreshJob(), nil); err != nil {
			return fmt.Errorf("could not add refresh job: %w", err)
		}

		return nil
	}); err != nil {
		return fmt.Errorf("could not delete simulation: %w", err)
	}
	if deleted == nil {
		return serrors.With(serrors.ErrNotFound, "simulation not found")
	}
	s.invalidateDistribution(ctx)

	return nil
}

// invalidateDistribution runs after a committed write. It bumps the cache
// generation so a refresh job that read the counts before the write cannot
// store them.
func (s *simulator) invalidateDistribution(ctx context.Context) {
	if err := s.deps.Cache.Invalidate(ctx); err != nil {
		logger.Warn(ctx, "could not invalidate cached distribution", zap.Error(err))
	}
}

// Distribution serves the cached distribution, computing and caching it on a
// miss. Cache failures degrade to a direct computation.
func (s *simulator) Distribution(ctx context.Context) (*domain.Distribution, error) {
	cached, err := s.deps.Cache.Distribution(ctx)
	if err != nil {
		logger.Warn(ctx, "could not read cached distribution", zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	generation, genErr := s.deps.Cache.Generation(ctx)
	if genErr != nil {
		logger.Warn(ctx, "could not read distribution generation", zap.Error(genErr))
	}

	d, err := s.compute(ctx)
	if err != nil {
		return nil, err
	}

	if genErr == nil {
		if _, err := s.deps.Cache.StoreDistribution(ctx, *d, generation); err != nil {
			logger.Warn(ctx, "could not cache distribution", zap.Error(err))
		}
	}

	return d, nil
}

// refreshAttempts bounds how many times RefreshDistribution recomputes when
// simulations keep landing while it runs.
const refreshAttempts = 3

// RefreshDistribution recomputes the distribution and overwrites the cache.
// When the cache was invalidated during the computation the counts are
// recomputed; after refreshAttempts tries an error is returned and River
// retries the job.
func (s *simulator) RefreshDistribution(ctx context.Context) (*domain.Distribution, error) {
	ctx, span := tracer.Start(ctx, "simulator.RefreshDistribution")
	defer span.End()

	for attempt := 1; attempt <= refreshAttempts; attempt++ {
		generation, err := s.deps.Cache.Generation(ctx)
		if err != nil {
			span.RecordError(err)

			return nil, fmt.Errorf("could not read distribution generation: %w", err)
		}

		d, err := s.compute(ctx)
		if err != nil {
			span.RecordError(err)

			return nil, err
		}

		stored, err := s.deps.Cache.StoreDistribution(ctx, *d, generation)
		if err != nil {
			span.RecordError(err)

			return nil, fmt.Errorf("could not cache distribution: %w", err)
		}
		if stored {
			logger.Info(ctx, "bracket distribution refreshed", zap.Int64("total", d.Total))

			return d, nil
		}

		logger.Debug(ctx, "distribution changed during refresh, recomputing", zap.Int("attempt", attempt))
	}

	err := fmt.Errorf("distribution kept changing after %d attempts", refreshAttempts)
	span.RecordError(err)

	return nil, err
}

func (s *simulator) compute(ctx context.Context) (*domain.Distribution, error) {
	counts, err := s.deps.Storage.BracketCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not count simulations by bracket: %w", err)
	}

	d := BuildDistribution(counts, s.options.Now())

	return &d, nil
}
