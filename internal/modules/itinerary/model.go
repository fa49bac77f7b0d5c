// README: Trip request and plan models.
package itinerary

import (
	"time"

	"tripplanner/internal/modules/budget"
	"tripplanner/internal/modules/lodging"
	"tripplanner/internal/types"
)

// Destination is either a raw place name or an already-resolved coordinate.
// The planner resolves a raw name exactly once at the boundary; everything
// downstream only ever sees the point.
type Destination struct {
	Name  string       `json:"name"`
	Point *types.Point `json:"point,omitempty"`
}

// Resolved reports whether geocoding has already happened.
func (d Destination) Resolved() bool { return d.Point != nil }

// TripRequest carries all user-provided trip parameters. Handlers validate it
// before the planner runs; the core assumes validated input.
type TripRequest struct {
	Destination  Destination `json:"destination"`
	StartDate    time.Time   `json:"start_date"`
	EndDate      time.Time   `json:"end_date"`
	Adults       int         `json:"adults"`
	Children     int         `json:"children"`
	Budget       types.Money `json:"budget"`
	Interests    []string    `json:"interests"`
	LodgingTypes []string    `json:"lodging_types,omitempty"`
	MinRating    float64     `json:"min_rating"`
}

// Nights is the trip duration in nights, never less than one so per-night
// arithmetic downstream stays defined.
func (r TripRequest) Nights() int {
	n := int(r.EndDate.Sub(r.StartDate).Hours() / 24)
	if n < 1 {
		return 1
	}
	return n
}

// Travelers is the total party size.
func (r TripRequest) Travelers() int {
	return r.Adults + r.Children
}

// Validate returns user-facing messages for every invalid field, empty when
// the request is usable.
func (r TripRequest) Validate() []string {
	var errs []string

	if r.Destination.Name == "" && !r.Destination.Resolved() {
		errs = append(errs, "Please enter a destination.")
	}
	if r.StartDate.IsZero() || r.EndDate.IsZero() {
		errs = append(errs, "Please select start and end dates.")
	} else if r.StartDate.After(r.EndDate) {
		errs = append(errs, "Start date must be before end date.")
	}
	if r.Budget.Amount <= 0 {
		errs = append(errs, "Budget must be greater than zero.")
	}
	if len(r.Interests) == 0 {
		errs = append(errs, "Please select at least one interest.")
	}
	if r.Adults < 1 {
		errs = append(errs, "At least one adult is required.")
	}
	if r.Children < 0 {
		errs = append(errs, "Number of children cannot be negative.")
	}
	if r.MinRating != 0 && (r.MinRating < 1.0 || r.MinRating > 5.0) {
		errs = append(errs, "Minimum accommodation rating must be between 1.0 and 5.0.")
	}

	return errs
}

// Plan is the outcome of one planning run: the generated itinerary text, the
// auditable prompt that produced it, the hotel shortlist and budget breakdown
// it cited, and a fresh conversation history seeded with the itinerary.
type Plan struct {
	Itinerary string                `json:"itinerary"`
	Prompt    Prompt                `json:"prompt"`
	Hotels    []lodging.ScoredHotel `json:"hotels"`
	Breakdown budget.Breakdown      `json:"breakdown"`
	History   History               `json:"history"`
}
