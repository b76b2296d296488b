package simulator

import (
	"context"
	"flooow/pkg/domain"
)

//go:generate mockgen -package mocksimulator -source=interface.go -destination=mock/mocksimulator.go *

// Simulator runs QF simulations for parents and maintains the bracket
// distribution shown on the dashboard.
type Simulator interface {
	// Simulate maps qf to its bracket and records the simulation for userID.
	Simulate(ctx context.Context, userID domain.UserID, qf float64) (*domain.Simulation, error)
	// UserSimulations returns a page of the user's simulations and the cursor of
	// the next page, empty when there is none.
	UserSimulations(ctx context.Context,
		userID domain.UserID,
		bracketID string,
		cursor string,
		limit uint) ([]domain.Simulation, string, error)
	// Simulation returns one of the user's simulations.
	Simulation(ctx context.Context, userID domain.UserID, ID domain.SimulationID) (*domain.Simulation, error)
	// Delete soft-deletes one of the user's simulations.
	Delete(ctx context.Context, userID domain.UserID, ID domain.SimulationID) error
	// Distribution returns the bracket distribution, cached when possible.
	Distribution(ctx context.Context) (*domain.Distribution, error)
	// RefreshDistribution recomputes the distribution and overwrites the cache.
	RefreshDistribution(ctx context.Context) (*domain.Distribution, error)
}

// DistributionCache stores the last computed distribution. A miss is reported
// as (nil, nil).
//
// Writes are guarded by a generation counter: a writer reads Generation before
// computing, and StoreDistribution only succeeds when no Invalidate happened in
// between, so a slow refresh cannot overwrite the cache with counts older than
// the latest simulation.
type DistributionCache interface {
	Distribution(ctx context.Context) (*domain.Distribution, error)
	Generation(ctx context.Context) (int64, error)
	// StoreDistribution reports false when the generation moved since it was read.
	StoreDistribution(ctx context.Context, d domain.Distribution, generation int64) (bool, error)
	// Invalidate drops the stored distribution and bumps the generation.
	Invalidate(ctx context.Context) error
}
