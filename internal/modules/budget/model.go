// README: Budget breakdown value object derived from the total trip budget.
package budget

import "tripplanner/internal/types"

// Breakdown splits a total trip budget into spending categories. Lodging is
// the remainder after the three fixed shares, never negative.
type Breakdown struct {
	Food        types.Money `json:"food"`
	LocalTravel types.Money `json:"local_travel"`
	Tickets     types.Money `json:"tickets"`
	Lodging     types.Money `json:"lodging"`
}

// Total sums all four categories back up.
func (b Breakdown) Total() float64 {
	return b.Food.Amount + b.LocalTravel.Amount + b.Tickets.Amount + b.Lodging.Amount
}
