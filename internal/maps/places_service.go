package maps

import (
	"context"
	"fmt"
	"strconv"

	"googlemaps.github.io/maps"

	"tripplanner/internal/modules/lodging"
	"tripplanner/internal/types"
)

// PlacesService handles interactions with the Google Places API.
type PlacesService struct {
	client *maps.Client
}

// NewPlacesService creates a new PlacesService with the given API Key.
func NewPlacesService(apiKey string) (*PlacesService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &PlacesService{client: client}, nil
}

// SearchAttractions returns the names of tourist attractions within the given
// radius of the location.
func (s *PlacesService) SearchAttractions(ctx context.Context, loc types.Point, radiusMeters uint) ([]string, error) {
	resp, err := s.nearby(ctx, loc, radiusMeters, maps.PlaceTypeTouristAttraction)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, result := range resp.Results {
		names = append(names, result.Name)
	}
	return names, nil
}

// SearchLodging returns raw lodging candidates within the given radius of the
// location, mapped into the selector's candidate shape.
func (s *PlacesService) SearchLodging(ctx context.Context, loc types.Point, radiusMeters uint) ([]lodging.Candidate, error) {
	resp, err := s.nearby(ctx, loc, radiusMeters, maps.PlaceTypeLodging)
	if err != nil {
		return nil, err
	}

	var candidates []lodging.Candidate
	for _, result := range resp.Results {
		candidates = append(candidates, toCandidate(result))
	}
	return candidates, nil
}

func (s *PlacesService) nearby(ctx context.Context, loc types.Point, radiusMeters uint, placeType maps.PlaceType) (maps.PlacesSearchResponse, error) {
	r := &maps.NearbySearchRequest{
		Location: &maps.LatLng{Lat: loc.Lat, Lng: loc.Lng},
		Radius:   radiusMeters,
		Type:     placeType,
	}

	resp, err := s.client.NearbySearch(ctx, r)
	if err != nil {
		return maps.PlacesSearchResponse{}, fmt.Errorf("places api error: %w", err)
	}
	return resp, nil
}

func toCandidate(r maps.PlacesSearchResult) lodging.Candidate {
	c := lodging.Candidate{
		Name:        r.Name,
		Vicinity:    r.Vicinity,
		ReviewCount: r.UserRatingsTotal,
		Types:       r.Types,
	}

	if r.Rating > 0 {
		c.Rating = strconv.FormatFloat(float64(r.Rating), 'f', 1, 32)
	}

	// The API reports price_level 0 both for "free" and "not reported"; paid
	// lodging is never free, so 0 is treated as unreported and left nil for
	// the scorer's fallback rate.
	if r.PriceLevel > 0 {
		tier := r.PriceLevel
		c.PriceTier = &tier
	}

	return c
}
