package domain

import (
	"time"

	"github.com/google/uuid"
)

// SimulationID uniquely identifies a QF simulation.
type SimulationID uuid.UUID

// String returns the canonical UUID form.
func (s SimulationID) String() string { return uuid.UUID(s).String() }

// Simulation is one run of the aid simulator: the QF a parent entered and the
// bracket it was mapped to at that time.
type Simulation struct {
	// ID is the unique identifier of the simulation.
	ID SimulationID `json:"id"`
	// UserID is the parent who ran the simulation.
	UserID UserID `json:"userId"`

	// QF is the raw quotient familial as entered.
	QF float64 `json:"qf"`
	// BracketID is the ID of the bracket QF mapped to, e.g. "451-700".
	BracketID string `json:"bracketId"`
	// RepresentativeValue is the bracket's representative value used by aid formulas.
	RepresentativeValue int `json:"representativeValue"`
	// Label is the bracket's display label.
	Label string `json:"label"`

	CreatedAt time.Time `json:"createdAt"`
	// DeletedAt marks a soft delete; zero means live.
	DeletedAt time.Time `json:"-"`
}

// BracketShare is one row of the bracket distribution KPI.
type BracketShare struct {
	BracketID string  `json:"bracketId"`
	Label     string  `json:"label"`
	Count     int64   `json:"count"`
	Share     float64 `json:"share"`
}

// Distribution is the per-bracket breakdown of all live simulations.
type Distribution struct {
	Total      int64          `json:"total"`
	Brackets   []BracketShare `json:"brackets"`
	ComputedAt time.Time      `json:"computedAt"`
}
