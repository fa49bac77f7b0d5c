package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"tripplanner/internal/types"
)

// GeoService handles interactions with the Google Geocoding API.
type GeoService struct {
	client *maps.Client
}

// NewGeoService creates a new GeoService with the given API Key.
func NewGeoService(apiKey string) (*GeoService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GeoService{client: client}, nil
}

// Geocode resolves a free-form place name to a coordinate. The boolean is
// false when the lookup succeeded but matched nothing, which callers treat as
// an invalid destination.
func (s *GeoService) Geocode(ctx context.Context, place string) (types.Point, bool, error) {
	r := &maps.GeocodingRequest{
		Address: place,
	}

	results, err := s.client.Geocode(ctx, r)
	if err != nil {
		return types.Point{}, false, fmt.Errorf("geocoding api error: %w", err)
	}
	if len(results) == 0 {
		return types.Point{}, false, nil
	}

	loc := results[0].Geometry.Location
	return types.Point{Lat: loc.Lat, Lng: loc.Lng}, true, nil
}
