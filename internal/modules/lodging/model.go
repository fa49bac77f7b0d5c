// README: Lodging candidate and scoring models.
package lodging

import (
	"tripplanner/internal/modules/budget"
	"tripplanner/internal/types"
)

// Candidate is a raw place record as returned by the places lookup. Rating is
// kept as the raw string from the payload; absent or non-numeric values are
// coerced to 0 at scoring time. PriceTier is nil when the API omitted the
// price level.
type Candidate struct {
	Name        string   `json:"name"`
	Rating      string   `json:"rating,omitempty"`
	PriceTier   *int     `json:"price_level,omitempty"`
	Vicinity    string   `json:"vicinity,omitempty"`
	ReviewCount int      `json:"user_ratings_total,omitempty"`
	Types       []string `json:"types,omitempty"`
}

// ScoredHotel augments a candidate with the estimated stay cost and a numeric
// rating usable as a sort key.
type ScoredHotel struct {
	Candidate
	RatingValue float64     `json:"rating_value"`
	RoomsNeeded int         `json:"rooms_needed"`
	NightlyRate types.Money `json:"nightly_rate"`
	TotalStay   types.Money `json:"total_stay"`
}

// Selection is the outcome of a hotel search: the ranked shortlist together
// with the budget breakdown and trip length that produced it, so downstream
// prompt construction can cite the same numbers.
type Selection struct {
	Hotels    []ScoredHotel    `json:"hotels"`
	Breakdown budget.Breakdown `json:"breakdown"`
	Nights    int              `json:"nights"`
}

// RateTable maps a Places price level (0-4) to an estimated nightly rate.
// It is a heuristic standing in for a real pricing feed; construct a Selector
// with a different table to swap it out.
type RateTable map[int]float64

// DefaultRates is the built-in tier-to-nightly-rate heuristic, in GBP.
var DefaultRates = RateTable{
	0: 50,
	1: 75,
	2: 120,
	3: 200,
	4: 320,
}

// fallbackTier is used when a candidate carries no price level, or one
// outside the table.
const fallbackTier = 2

// Nightly returns the rate for the given tier. A nil or unknown tier falls
// back to the mid-range rate.
func (t RateTable) Nightly(tier *int) float64 {
	if tier != nil {
		if rate, ok := t[*tier]; ok {
			return rate
		}
	}
	return t[fallbackTier]
}
