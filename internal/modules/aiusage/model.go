package aiusage

import "errors"

// ErrQuotaExhausted is returned when a client has no generations remaining for the current day.
var ErrQuotaExhausted = errors.New("generation quota exhausted")

// DefaultGenerations is the number of itinerary generations granted per client per day.
const DefaultGenerations = 25
