package lodging

import (
	"testing"

	"tripplanner/internal/modules/budget"
	"tripplanner/internal/types"
)

func intPtr(n int) *int { return &n }

func breakdownWithLodging(amount float64) budget.Breakdown {
	return budget.Breakdown{Lodging: types.GBP(amount)}
}

func TestRoomsNeeded(t *testing.T) {
	tests := []struct {
		travelers int
		want      int
	}{
		{0, 1},
		{1, 1},
		{2, 1},
		{3, 2},
		{4, 2},
		{5, 3},
		{7, 4},
	}

	for _, tt := range tests {
		if got := RoomsNeeded(tt.travelers); got != tt.want {
			t.Errorf("RoomsNeeded(%d) = %d, want %d", tt.travelers, got, tt.want)
		}
	}
}

func TestScore(t *testing.T) {
	s := NewSelector(nil)

	tests := []struct {
		name        string
		c           Candidate
		rooms       int
		nights      int
		wantNightly float64
		wantTotal   float64
		wantRating  float64
	}{
		{
			// 2 adults, 5 nights, tier 1: 75 * 1 * 5 = 375
			name:        "tier 1 single room",
			c:           Candidate{Name: "Inn", Rating: "4.2", PriceTier: intPtr(1)},
			rooms:       1,
			nights:      5,
			wantNightly: 75,
			wantTotal:   375,
			wantRating:  4.2,
		},
		{
			name:        "tier 4 two rooms",
			c:           Candidate{Name: "Grand", Rating: "4.9", PriceTier: intPtr(4)},
			rooms:       2,
			nights:      3,
			wantNightly: 320,
			wantTotal:   1920,
			wantRating:  4.9,
		},
		{
			name:        "missing tier falls back to mid-range",
			c:           Candidate{Name: "Mystery", Rating: "3.5"},
			rooms:       1,
			nights:      2,
			wantNightly: 120,
			wantTotal:   240,
			wantRating:  3.5,
		},
		{
			name:        "out-of-range tier falls back to mid-range",
			c:           Candidate{Name: "Odd", Rating: "4.0", PriceTier: intPtr(9)},
			rooms:       1,
			nights:      1,
			wantNightly: 120,
			wantTotal:   120,
			wantRating:  4.0,
		},
		{
			name:        "absent rating coerced to zero",
			c:           Candidate{Name: "Unrated", PriceTier: intPtr(0)},
			rooms:       1,
			nights:      1,
			wantNightly: 50,
			wantTotal:   50,
			wantRating:  0,
		},
		{
			name:        "garbage rating coerced to zero",
			c:           Candidate{Name: "Weird", Rating: "n/a", PriceTier: intPtr(2)},
			rooms:       1,
			nights:      1,
			wantNightly: 120,
			wantTotal:   120,
			wantRating:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := s.Score(tt.c, tt.rooms, tt.nights)
			if h.NightlyRate.Amount != tt.wantNightly {
				t.Errorf("nightly = %v, want %v", h.NightlyRate.Amount, tt.wantNightly)
			}
			if h.TotalStay.Amount != tt.wantTotal {
				t.Errorf("total = %v, want %v", h.TotalStay.Amount, tt.wantTotal)
			}
			if h.RatingValue != tt.wantRating {
				t.Errorf("rating = %v, want %v", h.RatingValue, tt.wantRating)
			}
			if h.RoomsNeeded != tt.rooms {
				t.Errorf("rooms = %d, want %d", h.RoomsNeeded, tt.rooms)
			}
		})
	}
}

func TestSelect_FiltersAndRanks(t *testing.T) {
	s := NewSelector(nil)

	candidates := []Candidate{
		// Affordable, high rating, many reviews: expected first.
		{Name: "Alpha", Rating: "4.5", PriceTier: intPtr(1), ReviewCount: 120, Types: []string{"lodging", "hotel"}},
		// Same rating, fewer reviews: expected second.
		{Name: "Beta", Rating: "4.5", PriceTier: intPtr(1), ReviewCount: 80, Types: []string{"lodging", "hotel"}},
		// Below the minimum rating: dropped.
		{Name: "Shabby", Rating: "3.1", PriceTier: intPtr(0), ReviewCount: 500, Types: []string{"lodging"}},
		// Too expensive for the lodging budget: dropped.
		{Name: "Palace", Rating: "4.9", PriceTier: intPtr(4), ReviewCount: 900, Types: []string{"lodging", "hotel"}},
		// Lower rating but affordable: expected last.
		{Name: "Gamma", Rating: "4.0", PriceTier: intPtr(0), ReviewCount: 40, Types: []string{"lodging", "guest_house"}},
	}

	sel := s.Select(candidates, nil, 4.0, breakdownWithLodging(450), 5, 2)

	want := []string{"Alpha", "Beta", "Gamma"}
	if len(sel.Hotels) != len(want) {
		t.Fatalf("got %d hotels, want %d: %+v", len(sel.Hotels), len(want), sel.Hotels)
	}
	for i, name := range want {
		if sel.Hotels[i].Name != name {
			t.Errorf("hotel[%d] = %s, want %s", i, sel.Hotels[i].Name, name)
		}
	}

	// Every survivor satisfies the filter contract.
	for _, h := range sel.Hotels {
		if h.RatingValue < 4.0 {
			t.Errorf("%s: rating %v below minimum", h.Name, h.RatingValue)
		}
		if h.TotalStay.Amount > 450 {
			t.Errorf("%s: stay cost %v exceeds lodging budget", h.Name, h.TotalStay.Amount)
		}
	}

	if sel.Nights != 5 {
		t.Errorf("Nights = %d, want 5", sel.Nights)
	}
	if sel.Breakdown.Lodging.Amount != 450 {
		t.Errorf("Breakdown.Lodging = %v, want 450", sel.Breakdown.Lodging.Amount)
	}
}

func TestSelect_TypePreferences(t *testing.T) {
	s := NewSelector(nil)

	candidates := []Candidate{
		{Name: "Hostel", Rating: "4.2", PriceTier: intPtr(0), Types: []string{"hostel"}},
		{Name: "Hotel", Rating: "4.3", PriceTier: intPtr(1), Types: []string{"hotel"}},
		// Generic lodging tag matches any preference.
		{Name: "Generic", Rating: "4.1", PriceTier: intPtr(0), Types: []string{"lodging"}},
	}

	sel := s.Select(candidates, []string{"hostel"}, 0, breakdownWithLodging(10000), 2, 2)

	got := map[string]bool{}
	for _, h := range sel.Hotels {
		got[h.Name] = true
	}
	if !got["Hostel"] || !got["Generic"] || got["Hotel"] {
		t.Errorf("unexpected selection: %+v", sel.Hotels)
	}
}

func TestSelect_NoLodgingBudget(t *testing.T) {
	s := NewSelector(nil)

	candidates := []Candidate{
		{Name: "Alpha", Rating: "5.0", PriceTier: intPtr(0), Types: []string{"lodging"}},
	}

	for _, amount := range []float64{0, -50} {
		sel := s.Select(candidates, nil, 0, breakdownWithLodging(amount), 3, 2)
		if len(sel.Hotels) != 0 {
			t.Errorf("lodging budget %v: got %d hotels, want none", amount, len(sel.Hotels))
		}
	}
}

func TestSelect_EmptyCandidates(t *testing.T) {
	s := NewSelector(nil)

	sel := s.Select(nil, nil, 4.0, breakdownWithLodging(500), 4, 2)
	if len(sel.Hotels) != 0 {
		t.Errorf("got %d hotels from empty candidate list", len(sel.Hotels))
	}
	if sel.Nights != 4 {
		t.Errorf("Nights = %d, want 4", sel.Nights)
	}
}

func TestSelect_CustomRateTable(t *testing.T) {
	s := NewSelector(RateTable{0: 10, 1: 20, 2: 30, 3: 40, 4: 50})

	sel := s.Select([]Candidate{
		{Name: "Cheap", Rating: "4.0", PriceTier: intPtr(4), Types: []string{"lodging"}},
	}, nil, 0, breakdownWithLodging(500), 2, 2)

	if len(sel.Hotels) != 1 {
		t.Fatalf("got %d hotels, want 1", len(sel.Hotels))
	}
	if sel.Hotels[0].NightlyRate.Amount != 50 {
		t.Errorf("nightly = %v, want 50 from custom table", sel.Hotels[0].NightlyRate.Amount)
	}
}
