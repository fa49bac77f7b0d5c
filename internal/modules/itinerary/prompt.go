// README: Generation prompt assembly; pure string composition, no I/O.
package itinerary

import (
	"fmt"
	"strings"

	"tripplanner/internal/modules/lodging"
)

// NoAttractionsPhrase stands in for an empty attraction list so the generated
// prompt never contains an awkward empty enumeration.
const NoAttractionsPhrase = "no specific attractions found"

// maxPromptHotels caps the shortlist rendered into the prompt.
const maxPromptHotels = 5

const dateLayout = "2006-01-02"

// Prompt is the finished generation prompt together with the raw inputs that
// produced it, kept as one record so callers can both send the text and audit
// what went into it.
type Prompt struct {
	Text        string                `json:"text"`
	Destination string                `json:"destination"`
	StartDate   string                `json:"start_date"`
	EndDate     string                `json:"end_date"`
	Budget      string                `json:"budget"`
	Interests   []string              `json:"interests"`
	Attractions []string              `json:"attractions"`
	Weather     string                `json:"weather"`
	Hotels      []lodging.ScoredHotel `json:"hotels"`
	Nights      int                   `json:"nights"`
}

// BuildPrompt assembles the natural-language generation prompt from the trip
// parameters, the attraction and weather lookups, and the hotel selection.
func BuildPrompt(req TripRequest, attractions []string, weather string, sel lodging.Selection) Prompt {
	attractionList := NoAttractionsPhrase
	if len(attractions) > 0 {
		attractionList = strings.Join(attractions, ", ")
	}

	hotels := sel.Hotels
	if len(hotels) > maxPromptHotels {
		hotels = hotels[:maxPromptHotels]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are a helpful tour planner.\n")
	fmt.Fprintf(&b, "Please create a day-by-day itinerary, within 1000 words or less,\n")
	fmt.Fprintf(&b, "for a trip to %s,\n", req.Destination.Name)
	fmt.Fprintf(&b, "from %s to %s,\n", req.StartDate.Format(dateLayout), req.EndDate.Format(dateLayout))
	fmt.Fprintf(&b, "for %d adult(s) and %d child(ren),\n", req.Adults, req.Children)
	fmt.Fprintf(&b, "within a budget of %s, and\n", req.Budget)
	fmt.Fprintf(&b, "with focus on the below interests %s.\n", strings.Join(req.Interests, ", "))
	fmt.Fprintf(&b, "Please also include places like %s in the itinerary and\n", attractionList)
	fmt.Fprintf(&b, "factor the forecasted weather, like %s, while building the itinerary.\n", weather)

	if len(hotels) > 0 {
		fmt.Fprintf(&b, "\nRecommended places to stay, affordable within the lodging budget:\n")
		for i, h := range hotels {
			fmt.Fprintf(&b, "%d. %s — rated %.1f (%d reviews), %s, %s — est. %s/night, %s total for %d night(s)\n",
				i+1, h.Name, h.RatingValue, h.ReviewCount, priceGlyph(h.PriceTier), h.Vicinity,
				h.NightlyRate, h.TotalStay, sel.Nights)
		}
	}

	if sel.Breakdown.Total() > 0 {
		bd := sel.Breakdown
		fmt.Fprintf(&b, "\nBudget guide: %s for lodging, %s for food, %s for local transport, %s for attraction tickets.\n",
			bd.Lodging, bd.Food, bd.LocalTravel, bd.Tickets)
	}

	fmt.Fprintf(&b, "\nThe total cost of the plan must not exceed %s. Prioritise free or low-cost options first.\n", req.Budget)

	return Prompt{
		Text:        b.String(),
		Destination: req.Destination.Name,
		StartDate:   req.StartDate.Format(dateLayout),
		EndDate:     req.EndDate.Format(dateLayout),
		Budget:      req.Budget.String(),
		Interests:   req.Interests,
		Attractions: attractions,
		Weather:     weather,
		Hotels:      hotels,
		Nights:      sel.Nights,
	}
}

// priceGlyph renders a price tier as a proportional run of "£" glyphs, or
// "price unknown" when the tier is absent.
func priceGlyph(tier *int) string {
	if tier == nil {
		return "price unknown"
	}
	n := *tier
	if n < 1 {
		n = 1
	}
	if n > 4 {
		n = 4
	}
	return strings.Repeat("£", n)
}
