// README: Common money value object used across modules.
package types

import "fmt"

// Money is a currency amount. Budget shares are percentages of the total, so
// Amount keeps fractional values rather than minor units.
type Money struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// GBP builds a pound-sterling amount, the currency the planner quotes in.
func GBP(amount float64) Money {
	return Money{Amount: amount, Currency: "GBP"}
}

func (m Money) IsZero() bool {
	return m.Amount == 0
}

// String renders the amount with its currency symbol when one is known.
func (m Money) String() string {
	switch m.Currency {
	case "GBP":
		return fmt.Sprintf("£%.2f", m.Amount)
	case "USD":
		return fmt.Sprintf("$%.2f", m.Amount)
	default:
		return fmt.Sprintf("%.2f %s", m.Amount, m.Currency)
	}
}
