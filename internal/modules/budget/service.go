// README: Cost allocator; splits the total budget into category shares.
package budget

import "tripplanner/internal/types"

// Policy holds the share of the total budget assigned to each spending
// category. Whatever remains after the three shares funds lodging.
type Policy struct {
	FoodShare        float64
	LocalTravelShare float64
	TicketsShare     float64
}

// DefaultPolicy is the single allocation policy used throughout the planner:
// 25% food, 20% local transport, 15% tickets, remainder (40%) lodging.
var DefaultPolicy = Policy{
	FoodShare:        0.25,
	LocalTravelShare: 0.20,
	TicketsShare:     0.15,
}

// Allocate splits total into a category breakdown. The lodging share is the
// remainder, floored at zero so a degenerate total never yields a negative
// lodging budget. Pure function, no error conditions.
func (p Policy) Allocate(total types.Money) Breakdown {
	food := p.FoodShare * total.Amount
	travel := p.LocalTravelShare * total.Amount
	tickets := p.TicketsShare * total.Amount

	lodging := total.Amount - (food + travel + tickets)
	if lodging < 0 {
		lodging = 0
	}

	return Breakdown{
		Food:        types.Money{Amount: food, Currency: total.Currency},
		LocalTravel: types.Money{Amount: travel, Currency: total.Currency},
		Tickets:     types.Money{Amount: tickets, Currency: total.Currency},
		Lodging:     types.Money{Amount: lodging, Currency: total.Currency},
	}
}
