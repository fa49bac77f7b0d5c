// README: Planner orchestration; geocode -> lookups -> budget -> hotels -> prompt -> LLM.
package itinerary

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"tripplanner/internal/ai"
	"tripplanner/internal/modules/budget"
	"tripplanner/internal/modules/lodging"
	"tripplanner/internal/types"
)

// searchRadiusMeters is the nearby-search radius around the geocoded
// destination for both attractions and lodging.
const searchRadiusMeters = 5000

// WeatherUnavailable is substituted when the weather lookup fails, so prompt
// construction always has a defined input.
const WeatherUnavailable = "Weather data not available."

// ErrInvalidDestination is returned when the destination cannot be resolved
// to a coordinate.
var ErrInvalidDestination = errors.New("invalid destination")

// Geocoder resolves a place name to a coordinate. found is false when the
// lookup succeeded but returned no results.
type Geocoder interface {
	Geocode(ctx context.Context, place string) (loc types.Point, found bool, err error)
}

// PlacesSearcher finds attractions and lodging candidates around a point.
type PlacesSearcher interface {
	SearchAttractions(ctx context.Context, loc types.Point, radiusMeters uint) ([]string, error)
	SearchLodging(ctx context.Context, loc types.Point, radiusMeters uint) ([]lodging.Candidate, error)
}

// WeatherLookup returns a short weather description for a point.
type WeatherLookup interface {
	Describe(ctx context.Context, loc types.Point) (string, error)
}

// LookupCache is an optional read-through cache for geocoding, attraction and
// weather lookups. Cache failures are never fatal.
type LookupCache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any) error
}

// Deps bundles the service's collaborators. Cache may be nil.
type Deps struct {
	Geocoder Geocoder
	Places   PlacesSearcher
	Weather  WeatherLookup
	Text     ai.TextGenerator
	Cache    LookupCache
	Logger   zerolog.Logger
}

// Service runs the trip-planning pipeline. Each invocation is self-contained;
// the service holds no per-request state and is safe for concurrent use.
type Service struct {
	geo     Geocoder
	places  PlacesSearcher
	weather WeatherLookup
	text    ai.TextGenerator
	cache   LookupCache
	log     zerolog.Logger

	policy   budget.Policy
	selector *lodging.Selector
}

// NewService wires a planner with the default budget policy and rate table.
func NewService(deps Deps) *Service {
	return &Service{
		geo:      deps.Geocoder,
		places:   deps.Places,
		weather:  deps.Weather,
		text:     deps.Text,
		cache:    deps.Cache,
		log:      deps.Logger,
		policy:   budget.DefaultPolicy,
		selector: lodging.NewSelector(nil),
	}
}

// Plan runs the full pipeline for a validated request and returns the
// generated itinerary together with everything that went into it. Upstream
// lookup failures degrade to defined placeholders; only an unresolvable
// destination or a failed generation call abort the run.
func (s *Service) Plan(ctx context.Context, req TripRequest) (*Plan, error) {
	loc, err := s.resolveDestination(ctx, req.Destination)
	if err != nil {
		return nil, err
	}

	attractions := s.attractions(ctx, loc)
	weatherDesc := s.weatherDescription(ctx, loc)
	candidates := s.lodgingCandidates(ctx, loc)

	bd := s.policy.Allocate(req.Budget)
	sel := s.selector.Select(candidates, req.LodgingTypes, req.MinRating, bd, req.Nights(), req.Travelers())

	prompt := BuildPrompt(req, attractions, weatherDesc, sel)

	text, err := s.text.GenerateItinerary(ctx, prompt.Text)
	if err != nil {
		return nil, fmt.Errorf("generate itinerary: %w", err)
	}

	return &Plan{
		Itinerary: text,
		Prompt:    prompt,
		Hotels:    sel.Hotels,
		Breakdown: bd,
		History:   History{}.WithAI(text),
	}, nil
}

// Refine asks the generator for a revised itinerary and returns the reply
// along with the history extended by the user turn and the reply. The input
// history is never mutated.
func (s *Service) Refine(ctx context.Context, history History, input string) (string, History, error) {
	reply, err := s.text.RefineItinerary(ctx, history.Transcript(), input)
	if err != nil {
		return "", history, fmt.Errorf("refine itinerary: %w", err)
	}
	return reply, history.WithUser(input).WithAI(reply), nil
}

// resolveDestination turns the tagged destination variant into a coordinate,
// geocoding at most once. A lookup with no results maps to
// ErrInvalidDestination.
func (s *Service) resolveDestination(ctx context.Context, d Destination) (types.Point, error) {
	if d.Resolved() {
		return *d.Point, nil
	}

	key := "geo:" + d.Name
	var cached types.Point
	if s.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	loc, found, err := s.geo.Geocode(ctx, d.Name)
	if err != nil {
		return types.Point{}, fmt.Errorf("geocode %q: %w", d.Name, err)
	}
	if !found {
		return types.Point{}, fmt.Errorf("%w: %s", ErrInvalidDestination, d.Name)
	}

	s.cacheSet(ctx, key, loc)
	return loc, nil
}

func (s *Service) attractions(ctx context.Context, loc types.Point) []string {
	key := fmt.Sprintf("attractions:%.4f,%.4f", loc.Lat, loc.Lng)
	var cached []string
	if s.cacheGet(ctx, key, &cached) {
		return cached
	}

	names, err := s.places.SearchAttractions(ctx, loc, searchRadiusMeters)
	if err != nil {
		s.log.Warn().Err(err).Msg("attractions lookup failed, continuing without")
		return nil
	}

	s.cacheSet(ctx, key, names)
	return names
}

func (s *Service) weatherDescription(ctx context.Context, loc types.Point) string {
	key := fmt.Sprintf("weather:%.4f,%.4f", loc.Lat, loc.Lng)
	var cached string
	if s.cacheGet(ctx, key, &cached) {
		return cached
	}

	desc, err := s.weather.Describe(ctx, loc)
	if err != nil || desc == "" {
		if err != nil {
			s.log.Warn().Err(err).Msg("weather lookup failed, using placeholder")
		}
		return WeatherUnavailable
	}

	s.cacheSet(ctx, key, desc)
	return desc
}

func (s *Service) lodgingCandidates(ctx context.Context, loc types.Point) []lodging.Candidate {
	candidates, err := s.places.SearchLodging(ctx, loc, searchRadiusMeters)
	if err != nil {
		s.log.Warn().Err(err).Msg("lodging lookup failed, continuing without")
		return nil
	}
	return candidates
}

func (s *Service) cacheGet(ctx context.Context, key string, dst any) bool {
	if s.cache == nil {
		return false
	}
	ok, err := s.cache.Get(ctx, key, dst)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("cache read failed")
		return false
	}
	return ok
}

func (s *Service) cacheSet(ctx context.Context, key string, v any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, v); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}
