package storage

import (
	"context"
	"flooow/pkg/domain"
	"time"
)

// SimulationCursor is the position of the last row of a page in the
// (created_at DESC, id DESC) order. The ID breaks ties between rows sharing a
// created_at, which happens for rows inserted in one transaction.
type SimulationCursor struct {
	CreatedAt time.Time
	ID        domain.SimulationID
}

// UserSimulations groups a page of simulations together with an optional
// NextCursor used for pagination.
type UserSimulations struct {
	// Simulations contains the current page, newest first.
	Simulations []domain.Simulation
	// NextCursor points at the last row of the page. It is nil when there is no
	// next page.
	NextCursor *SimulationCursor
}

// BracketCount is the number of live simulations that mapped to a bracket.
type BracketCount struct {
	BracketID string
	Count     int64
}

// SimulationStorage defines persistence of QF simulations. Deletes are soft;
// every read excludes soft-deleted rows.
type SimulationStorage interface {
	// StoreSimulations inserts one or more simulations and returns them as
	// stored, including generated ID and CreatedAt.
	StoreSimulations(ctx context.Context, simulations ...domain.Simulation) ([]domain.Simulation, error)
	// UserSimulations returns a page of the user's simulations ordered after
	// cursor, newest first. A nil cursor starts at the newest simulation. A
	// non-empty bracketID filters the page.
	UserSimulations(ctx context.Context,
		userID domain.UserID,
		bracketID string,
		cursor *SimulationCursor,
		limit uint) (UserSimulations, error)
	// SimulationByID returns the user's simulation, or nil when not found.
	SimulationByID(ctx context.Context, userID domain.UserID, ID domain.SimulationID) (*domain.Simulation, error)
	// DeleteSimulation soft-deletes the user's simulation and returns it, or nil
	// when not found.
	DeleteSimulation(ctx context.Context, userID domain.UserID, ID domain.SimulationID) (*domain.Simulation, error)
	// BracketCounts returns live simulation counts grouped by bracket. Brackets
	// without simulations are absent.
	BracketCounts(ctx context.Context) ([]BracketCount, error)
}
