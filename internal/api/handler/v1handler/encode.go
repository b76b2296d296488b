package v1handler

import (
	"flooow/pkg/domain"
	"flooow/pkg/qf"
	"time"

	"github.com/go-faster/jx"
)

func encodeBracket(e *jx.Encoder, b qf.Bracket) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Str(b.ID) })
		e.Field("label", func(e *jx.Encoder) { e.Str(b.Label) })
		e.Field("value", func(e *jx.Encoder) { e.Int(b.Value) })
		e.Field("description", func(e *jx.Encoder) { e.Str(b.Description) })
		e.Field("upperBound", func(e *jx.Encoder) {
			if upper, ok := qf.UpperBound(b); ok {
				e.Float64(upper)
			} else {
				e.Null()
			}
		})
	})
}

func encodeSimulation(e *jx.Encoder, s *domain.Simulation) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Str(s.ID.String()) })
		e.Field("qf", func(e *jx.Encoder) { e.Float64(s.QF) })
		e.Field("bracketId", func(e *jx.Encoder) { e.Str(s.BracketID) })
		e.Field("representativeValue", func(e *jx.Encoder) { e.Int(s.RepresentativeValue) })
		e.Field("label", func(e *jx.Encoder) { e.Str(s.Label) })
		e.Field("createdAt", func(e *jx.Encoder) { e.Str(s.CreatedAt.UTC().Format(time.RFC3339Nano)) })
	})
}

func encodeDistribution(e *jx.Encoder, d *domain.Distribution) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("total", func(e *jx.Encoder) { e.Int64(d.Total) })
		e.Field("brackets", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, b := range d.Brackets {
					e.Obj(func(e *jx.Encoder) {
						e.Field("bracketId", func(e *jx.Encoder) { e.Str(b.BracketID) })
						e.Field("label", func(e *jx.Encoder) { e.Str(b.Label) })
						e.Field("count", func(e *jx.Encoder) { e.Int64(b.Count) })
						e.Field("share", func(e *jx.Encoder) { e.Float64(b.Share) })
					})
				}
			})
		})
		e.Field("computedAt", func(e *jx.Encoder) { e.Str(d.ComputedAt.UTC().Format(time.RFC3339Nano)) })
	})
}
