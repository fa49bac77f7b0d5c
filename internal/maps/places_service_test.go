package maps

import (
	"testing"

	"googlemaps.github.io/maps"
)

func TestToCandidate(t *testing.T) {
	r := maps.PlacesSearchResult{
		Name:             "Alfama Inn",
		Vicinity:         "Rua dos Remédios",
		Rating:           4.5,
		UserRatingsTotal: 120,
		PriceLevel:       2,
		Types:            []string{"lodging", "hotel"},
	}

	c := toCandidate(r)

	if c.Name != "Alfama Inn" || c.Vicinity != "Rua dos Remédios" {
		t.Errorf("unexpected candidate: %+v", c)
	}
	if c.Rating != "4.5" {
		t.Errorf("Rating = %q, want \"4.5\"", c.Rating)
	}
	if c.ReviewCount != 120 {
		t.Errorf("ReviewCount = %d", c.ReviewCount)
	}
	if c.PriceTier == nil || *c.PriceTier != 2 {
		t.Errorf("PriceTier = %v, want 2", c.PriceTier)
	}
}

func TestToCandidate_MissingFields(t *testing.T) {
	c := toCandidate(maps.PlacesSearchResult{Name: "Bare"})

	if c.Rating != "" {
		t.Errorf("Rating = %q, want empty for unrated place", c.Rating)
	}
	if c.PriceTier != nil {
		t.Errorf("PriceTier = %v, want nil for unreported price level", *c.PriceTier)
	}
}
