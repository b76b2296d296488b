package postgres

import (
	"database/sql"
	"flooow/pkg/domain"
	"time"

	"github.com/google/uuid"
)

// PgSimulation is the row layout of the simulations table.
type PgSimulation struct {
	ID     uuid.UUID `db:"id"      goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`

	QF                  float64 `db:"qf"`
	BracketID           string  `db:"bracket_id"`
	RepresentativeValue int     `db:"representative_value"`
	Label               string  `db:"label"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgSimulation) ToDomain() domain.Simulation {
	return domain.Simulation{
		ID:                  domain.SimulationID(p.ID),
		UserID:              domain.UserID(p.UserID),
		QF:                  p.QF,
		BracketID:           p.BracketID,
		RepresentativeValue: p.RepresentativeValue,
		Label:               p.Label,
		CreatedAt:           p.CreatedAt,
		DeletedAt:           p.DeletedAt.Time,
	}
}

func (p *PgSimulation) FromDomain(s domain.Simulation) {
	*p = PgSimulation{
		ID:                  uuid.UUID(s.ID),
		UserID:              uuid.UUID(s.UserID),
		QF:                  s.QF,
		BracketID:           s.BracketID,
		RepresentativeValue: s.RepresentativeValue,
		Label:               s.Label,
		CreatedAt:           s.CreatedAt,
		DeletedAt: sql.NullTime{
			Time:  s.DeletedAt,
			Valid: !s.DeletedAt.IsZero(),
		},
	}
}

// pgBracketCount is the row layout of the per-bracket aggregate.
type pgBracketCount struct {
	BracketID string `db:"bracket_id"`
	Count     int64  `db:"count"`
}

func domainSimulationsToPg(in []domain.Simulation) []PgSimulation {
	out := make([]PgSimulation, len(in))
	for i := range out {
		out[i].FromDomain(in[i])
	}

	return out
}

func pgSimulationsToDomain(in []PgSimulation) []domain.Simulation {
	out := make([]domain.Simulation, 0, len(in))
	for i := range in {
		out = append(out, in[i].ToDomain())
	}

	return out
}
