package simulator

import (
	"flooow/pkg/domain"
	"flooow/pkg/qf"
	"flooow/pkg/storage"
	"time"
)

// BuildDistribution turns raw per-bracket counts into the distribution KPI.
// Every bracket appears in table order, with a zero count when it has no
// simulations. Counts for IDs that are not a known bracket are ignored.
func BuildDistribution(counts []storage.BracketCount, now time.Time) domain.Distribution {
	byID := make(map[string]int64, len(counts))
	for _, c := range counts {
		byID[c.BracketID] += c.Count
	}

	brackets := qf.Brackets()
	out := domain.Distribution{
		Brackets:   make([]domain.BracketShare, 0, len(brackets)),
		ComputedAt: now.UTC(),
	}
	for _, b := range brackets {
		out.Total += byID[b.ID]
	}
	for _, b := range brackets {
		share := domain.BracketShare{
			BracketID: b.ID,
			Label:     b.Label,
			Count:     byID[b.ID],
		}
		if out.Total > 0 {
			share.Share = float64(share.Count) / float64(out.Total)
		}
		out.Brackets = append(out.Brackets, share)
	}

	return out
}
