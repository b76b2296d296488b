package v1handler

import (
	"flooow/pkg/qf"
	"flooow/pkg/serrors"
	"math"
	"net/http"
	"strconv"

	"github.com/go-faster/jx"
)

// parseNumber reads a required finite number from the query string.
func parseNumber(r *http.Request, name string) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, serrors.With(serrors.ErrBadRequest, "%s is required", name)
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, serrors.With(serrors.ErrBadRequest, "%s must be a finite number", name)
	}

	return v, nil
}

// ListBrackets returns the four QF brackets in ascending order.
func (h Handler) ListBrackets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("items", func(e *jx.Encoder) {
				e.Arr(func(e *jx.Encoder) {
					for _, b := range qf.Brackets() {
						encodeBracket(e, b)
					}
				})
			})
		})
	})
}

// MapBracket maps the qf query parameter to its bracket.
func (h Handler) MapBracket(w http.ResponseWriter, r *http.Request) {
	value, err := parseNumber(r, "qf")
	if err != nil {
		writeError(w, r, err)

		return
	}

	b := qf.BracketFor(value)
	writeJSON(w, r, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("qf", func(e *jx.Encoder) { e.Float64(value) })
			e.Field("representativeValue", func(e *jx.Encoder) { e.Int(b.Value) })
			e.Field("bracket", func(e *jx.Encoder) { encodeBracket(e, b) })
		})
	})
}

// BracketLabel returns the label for the value query parameter. Values that
// are not a representative value, including non-integral ones, get the
// undefined label.
func (h Handler) BracketLabel(w http.ResponseWriter, r *http.Request) {
	value, err := parseNumber(r, "value")
	if err != nil {
		writeError(w, r, err)

		return
	}

	label := qf.UndefinedLabel
	if value == math.Trunc(value) && value >= math.MinInt32 && value <= math.MaxInt32 {
		label = qf.Label(int(value))
	}

	writeJSON(w, r, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("value", func(e *jx.Encoder) { e.Float64(value) })
			e.Field("label", func(e *jx.Encoder) { e.Str(label) })
		})
	})
}
