// README: Hotel scoring, filtering and ranking against the lodging budget.
package lodging

import (
	"sort"
	"strconv"
	"strings"

	"tripplanner/internal/modules/budget"
	"tripplanner/internal/types"
)

// genericLodgingTag marks candidates the places lookup classified only as
// generic lodging; they match any accommodation type preference.
const genericLodgingTag = "lodging"

// Selector filters and ranks lodging candidates. It is pure: all I/O happens
// upstream, so a Selector never fails on its own accord.
type Selector struct {
	rates    RateTable
	currency string
}

// NewSelector builds a Selector over the given rate table. A nil table uses
// DefaultRates.
func NewSelector(rates RateTable) *Selector {
	if rates == nil {
		rates = DefaultRates
	}
	return &Selector{rates: rates, currency: "GBP"}
}

// RoomsNeeded assumes two travelers share a room, with at least one room.
func RoomsNeeded(travelers int) int {
	if travelers <= 2 {
		return 1
	}
	return (travelers + 1) / 2
}

// Score estimates the cost of a stay at the candidate and coerces its rating
// into a numeric sort key. Absent or unparsable ratings become 0 so every
// candidate stays sortable.
func (s *Selector) Score(c Candidate, roomsNeeded, nights int) ScoredHotel {
	nightly := s.rates.Nightly(c.PriceTier)
	total := nightly * float64(roomsNeeded) * float64(nights)

	rating, err := strconv.ParseFloat(strings.TrimSpace(c.Rating), 64)
	if err != nil {
		rating = 0
	}

	return ScoredHotel{
		Candidate:   c,
		RatingValue: rating,
		RoomsNeeded: roomsNeeded,
		NightlyRate: types.Money{Amount: nightly, Currency: s.currency},
		TotalStay:   types.Money{Amount: total, Currency: s.currency},
	}
}

// Select filters candidates by rating, accommodation type and affordability
// against the lodging share of the breakdown, then ranks survivors by rating
// (descending) with review count as the tie-break. The full sorted list is
// returned; callers truncate to a top-N at presentation time.
//
// A non-positive lodging budget short-circuits to an empty shortlist: nothing
// can be afforded, which is a defined outcome rather than an error.
func (s *Selector) Select(candidates []Candidate, typePrefs []string, minRating float64, bd budget.Breakdown, nights, travelers int) Selection {
	sel := Selection{Breakdown: bd, Nights: nights}

	if bd.Lodging.Amount <= 0 {
		return sel
	}

	rooms := RoomsNeeded(travelers)

	for _, c := range candidates {
		h := s.Score(c, rooms, nights)

		if h.RatingValue < minRating {
			continue
		}
		if len(typePrefs) > 0 && !matchesType(c.Types, typePrefs) {
			continue
		}
		if h.TotalStay.Amount > bd.Lodging.Amount {
			continue
		}

		sel.Hotels = append(sel.Hotels, h)
	}

	sort.SliceStable(sel.Hotels, func(i, j int) bool {
		a, b := sel.Hotels[i], sel.Hotels[j]
		if a.RatingValue != b.RatingValue {
			return a.RatingValue > b.RatingValue
		}
		return a.ReviewCount > b.ReviewCount
	})

	return sel
}

// matchesType reports whether any of the candidate's type tags intersects the
// preferred set. Candidates tagged only as generic lodging always match.
func matchesType(tags, prefs []string) bool {
	for _, tag := range tags {
		if strings.EqualFold(tag, genericLodgingTag) {
			return true
		}
		for _, p := range prefs {
			if strings.EqualFold(tag, p) {
				return true
			}
		}
	}
	return false
}
