package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/rs/zerolog"

	"tripplanner/internal/ai"
	"tripplanner/internal/maps"
	"tripplanner/internal/modules/itinerary"
	"tripplanner/internal/types"
	"tripplanner/internal/weather"
)

func main() {
	geminiKey := os.Getenv("GEMINI_API_KEY")
	if geminiKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable not set")
	}
	mapsKey := os.Getenv("GOOGLEMAPS_API_KEY")
	if mapsKey == "" {
		log.Fatal("GOOGLEMAPS_API_KEY environment variable not set")
	}
	weatherKey := os.Getenv("OPENWEATHER_API_KEY")
	if weatherKey == "" {
		log.Fatal("OPENWEATHER_API_KEY environment variable not set")
	}

	ctx := context.Background()
	provider, err := ai.NewGeminiProvider(ctx, geminiKey)
	if err != nil {
		log.Fatalf("Failed to initialize AI provider: %v", err)
	}
	defer provider.Close()

	geo, err := maps.NewGeoService(mapsKey)
	if err != nil {
		log.Fatalf("Failed to initialize geocoder: %v", err)
	}
	places, err := maps.NewPlacesService(mapsKey)
	if err != nil {
		log.Fatalf("Failed to initialize places client: %v", err)
	}
	wx, err := weather.New(weather.DefaultBaseURL, weatherKey, 1)
	if err != nil {
		log.Fatalf("Failed to initialize weather client: %v", err)
	}

	planner := itinerary.NewService(itinerary.Deps{
		Geocoder: geo,
		Places:   places,
		Weather:  wx,
		Text:     provider,
		Logger:   zerolog.New(os.Stderr).With().Timestamp().Logger(),
	})

	start := time.Now().AddDate(0, 1, 0)
	req := itinerary.TripRequest{
		Destination: itinerary.Destination{Name: "Lisbon, Portugal"},
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 5),
		Adults:      2,
		Budget:      types.GBP(1000),
		Interests:   []string{"History", "Food"},
		MinRating:   3.5,
	}

	plan, err := planner.Plan(ctx, req)
	if err != nil {
		log.Fatalf("Error planning trip: %v", err)
	}

	fmt.Printf("Budget: lodging %s, food %s, transport %s, tickets %s\n",
		plan.Breakdown.Lodging, plan.Breakdown.Food, plan.Breakdown.LocalTravel, plan.Breakdown.Tickets)
	for i, h := range plan.Hotels {
		fmt.Printf("Hotel %d: %s (%s total)\n", i+1, h.Name, h.TotalStay)
	}
	fmt.Println()
	fmt.Println(plan.Itinerary)
}
