// Package qf maps a household "quotient familial" (QF) to one of the four
// aid brackets used to tier activity pricing, and maps a bracket's
// representative value back to its display label.
//
// The bracket table is fixed at compile time and never mutated, so every
// function in this package is safe for concurrent use.
package qf

// UndefinedLabel is returned by Label when no bracket carries the given value.
const UndefinedLabel = "Non défini"

// Bracket is one QF range. Value is the representative amount that downstream
// aid formulas use in place of the whole range.
type Bracket struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Value       int    `json:"value"`
	Description string `json:"description"`

	// upper is the inclusive upper bound; the last bracket has none.
	upper   float64
	bounded bool
}

// brackets are ordered by lower bound. Lower bounds are implied by the
// previous bracket's upper bound.
var brackets = [...]Bracket{ //nolint: gochecknoglobals
	{
		ID:          "0-450",
		Label:       "0 - 450 €",
		Value:       300,
		Description: "Quotient familial jusqu'à 450 €, aides maximales",
		upper:       450,
		bounded:     true,
	},
	{
		ID:          "451-700",
		Label:       "451 - 700 €",
		Value:       575,
		Description: "Quotient familial de 451 à 700 €",
		upper:       700,
		bounded:     true,
	},
	{
		ID:          "701-1000",
		Label:       "701 - 1000 €",
		Value:       850,
		Description: "Quotient familial de 701 à 1000 €",
		upper:       1000,
		bounded:     true,
	},
	{
		ID:          "1001+",
		Label:       "1001 € et plus",
		Value:       1200,
		Description: "Quotient familial au-delà de 1000 €, aides minimales",
	},
}

// Brackets returns the ordered bracket table. The returned slice is a copy.
func Brackets() []Bracket {
	out := make([]Bracket, len(brackets))
	copy(out, brackets[:])

	return out
}

// Bounds returns the inclusive upper bounds of every bounded bracket in
// ascending order.
func Bounds() []float64 {
	out := make([]float64, 0, len(brackets)-1)
	for _, b := range brackets {
		if b.bounded {
			out = append(out, b.upper)
		}
	}

	return out
}

// BracketFor returns the bracket qf falls into. Any qf at or below 450,
// negative values included, lands in the first bracket; anything that is not
// at or below a bounded bracket's upper bound (NaN included) lands in the last.
func BracketFor(qf float64) Bracket {
	for _, b := range brackets {
		if b.bounded && qf <= b.upper {
			return b
		}
	}

	return brackets[len(brackets)-1]
}

// RepresentativeValue returns the representative value of the bracket qf
// falls into: 300, 575, 850 or 1200.
func RepresentativeValue(qf float64) int {
	return BracketFor(qf).Value
}

// Label returns the label of the bracket whose representative value is value,
// or UndefinedLabel.
func Label(value int) string {
	if b, ok := ByValue(value); ok {
		return b.Label
	}

	return UndefinedLabel
}

// ByValue looks a bracket up by its representative value.
func ByValue(value int) (Bracket, bool) {
	for _, b := range brackets {
		if b.Value == value {
			return b, true
		}
	}

	return Bracket{}, false
}

// ByID looks a bracket up by its ID, e.g. "451-700".
func ByID(id string) (Bracket, bool) {
	for _, b := range brackets {
		if b.ID == id {
			return b, true
		}
	}

	return Bracket{}, false
}

// UpperBound returns the inclusive upper bound of b. ok is false for the last,
// unbounded bracket.
func UpperBound(b Bracket) (upper float64, ok bool) {
	return b.upper, b.bounded
}
