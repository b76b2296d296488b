package postgres

import (
	"context"
	"flooow/pkg/domain"
	"flooow/pkg/storage"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	simulationsTable = "simulations"
)

func (p *PgSQL) StoreSimulations(ctx context.Context, simulations ...domain.Simulation) ([]domain.Simulation, error) {
	if len(simulations) == 0 {
		return nil, nil
	}

	var result []PgSimulation
	if err := p.Builder.Insert(simulationsTable).
		Rows(domainSimulationsToPg(simulations)).
		Returning(&PgSimulation{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store simulations into pg: %w", err)
	}

	return pgSimulationsToDomain(result), nil
}

// UserSimulations returns the user's simulations that sort strictly after
// cursor in created_at DESC, id DESC order. One extra row is fetched to tell
// whether a next page exists.
func (p *PgSQL) UserSimulations(ctx context.Context,
	userID domain.UserID,
	bracketID string,
	cursor *storage.SimulationCursor,
	limit uint) (storage.UserSimulations, error) {
	w := []goqu.Expression{
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	}
	if bracketID != "" {
		w = append(w, goqu.I("bracket_id").Eq(bracketID))
	}
	if cursor != nil {
		w = append(w, goqu.L("(created_at, id) < (?, ?)", cursor.CreatedAt, uuid.UUID(cursor.ID).String()))
	}

	var rows []PgSimulation
	if err := p.Builder.From(simulationsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit + 1).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.UserSimulations{}, fmt.Errorf("could not fetch user simulations from pg: %w", err)
	}

	var nextCursor *storage.SimulationCursor
	if uint(len(rows)) > limit {
		rows = rows[:limit]
		if limit > 0 {
			last := rows[len(rows)-1]
			nextCursor = &storage.SimulationCursor{
				CreatedAt: last.CreatedAt,
				ID:        domain.SimulationID(last.ID),
			}
		}
	}

	return storage.UserSimulations{
		Simulations: pgSimulationsToDomain(rows),
		NextCursor:  nextCursor,
	}, nil
}

// SimulationByID returns a live simulation owned by userID, or nil.
func (p *PgSQL) SimulationByID(ctx context.Context,
	userID domain.UserID,
	id domain.SimulationID) (*domain.Simulation, error) {
	var row PgSimulation
	found, err := p.Builder.From(simulationsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch simulation by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	s := row.ToDomain()

	return &s, nil
}

// DeleteSimulation sets deleted_at on a live simulation owned by userID and
// returns the deleted row, or nil.
func (p *PgSQL) DeleteSimulation(ctx context.Context,
	userID domain.UserID,
	id domain.SimulationID) (*domain.Simulation, error) {
	var row PgSimulation
	found, err := p.Builder.Update(simulationsTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgSimulation{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete simulation in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	s := row.ToDomain()

	return &s, nil
}

// BracketCounts counts live simulations per bracket.
func (p *PgSQL) BracketCounts(ctx context.Context) ([]storage.BracketCount, error) {
	var rows []pgBracketCount
	if err := p.Builder.From(simulationsTable).
		Select(goqu.I("bracket_id"), goqu.COUNT("*").As("count")).
		Where(goqu.I("deleted_at").IsNull()).
		GroupBy(goqu.I("bracket_id")).
		Order(goqu.I("bracket_id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not count simulations by bracket: %w", err)
	}

	out := make([]storage.BracketCount, 0, len(rows))
	for _, r := range rows {
		out = append(out, storage.BracketCount{BracketID: r.BracketID, Count: r.Count})
	}

	return out, nil
}
