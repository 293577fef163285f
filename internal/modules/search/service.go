// README: Result resolver. Turns a raw query plus the UI filter panel into
// a ranked restaurant list, resolving location tokens against known cities
// and geocoded coordinates along the way.
package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"platefinder/internal/features"
	"platefinder/internal/geo"
	"platefinder/internal/modules/query"
	"platefinder/internal/types"
)

// RestaurantStore is what the resolver needs from persistence.
type RestaurantStore interface {
	MatchCity(ctx context.Context, token string) (string, bool, error)
	Search(ctx context.Context, q Query) ([]types.Restaurant, error)
}

// Geocoder resolves a free-text place name to a single coordinate. A nil
// Geocoder (no credentials configured) simply disables distance ranking.
type Geocoder interface {
	Geocode(ctx context.Context, place string) (types.Coordinate, error)
}

// Config carries the business constants of the ranking algorithm.
type Config struct {
	// RadiusMiles bounds the distance filter around a geocoded city center.
	RadiusMiles float64
	// GeocodeTimeout caps how long a search waits for the geocoder before
	// degrading to the name-based city filter.
	GeocodeTimeout time.Duration
}

type Service struct {
	store    RestaurantStore
	geocoder Geocoder
	cfg      Config
	logger   zerolog.Logger
}

func NewService(store RestaurantStore, geocoder Geocoder, cfg Config, logger zerolog.Logger) *Service {
	if cfg.RadiusMiles <= 0 {
		cfg.RadiusMiles = 20
	}
	if cfg.GeocodeTimeout <= 0 {
		cfg.GeocodeTimeout = 3 * time.Second
	}
	return &Service{store: store, geocoder: geocoder, cfg: cfg, logger: logger}
}

// Search resolves a free-text query and the UI filter panel into a ranked
// result. Store failures are fatal to the call; geocoding failures degrade
// to the no-coordinates path.
func (s *Service) Search(ctx context.Context, rawQuery string, filters FilterState) (*Result, error) {
	trimmed := strings.TrimSpace(rawQuery)

	var intent query.Intent
	if trimmed != "" {
		intent = query.Parse(trimmed)
	}

	// The parsed location wins; without one the whole query doubles as the
	// city-lookup token so that bare city names still resolve.
	locationToken := intent.Location
	if locationToken == "" {
		locationToken = trimmed
	}

	matchedCity := ""
	cityMatched := false
	if locationToken != "" {
		city, ok, err := s.store.MatchCity(ctx, strings.ToLower(locationToken))
		if err != nil {
			return nil, fmt.Errorf("resolve city: %w", err)
		}
		matchedCity, cityMatched = city, ok
	}

	var center *types.Coordinate
	if cityMatched && s.geocoder != nil {
		gctx, cancel := context.WithTimeout(ctx, s.cfg.GeocodeTimeout)
		coord, err := s.geocoder.Geocode(gctx, locationToken)
		cancel()
		if err != nil {
			// Degraded ranking path, not an error for the caller.
			s.logger.Warn().Err(err).Str("place", locationToken).Msg("geocoding failed, falling back to city name filter")
		} else {
			center = &coord
		}
	}

	q := Query{
		Flags:         map[string]bool{},
		PriceLevel:    intent.PriceLevel,
		Cuisines:      intent.Cuisines,
		OrderByRating: true,
	}
	mergeFlags(q.Flags, intent.Features)
	mergeFlags(q.Flags, filters.Flags)

	switch {
	case cityMatched && center != nil:
		// Distance ranking replaces the city name filter entirely.
		q.RequireCoordinates = true
	case cityMatched:
		q.City = matchedCity
	case intent.Location != "":
		q.LocationOr = intent.Location
	case trimmed != "" && !intent.HasStructuredSignal():
		// Zero structured signal: a proper name like "Nino's Trattoria"
		// still needs to hit the name column.
		q.BroadText = trimmed
	}

	restaurants, err := s.store.Search(ctx, q)
	if err != nil {
		return nil, err
	}

	var predicates []func(types.Restaurant) bool
	if center != nil {
		predicates = append(predicates, withinRadius(*center, geo.MilesToMeters(s.cfg.RadiusMiles)))
	}
	if len(filters.Cuisines) > 0 {
		predicates = append(predicates, matchesAnyCuisine(filters.Cuisines))
	}
	if len(predicates) > 0 {
		restaurants = applyPostFilters(restaurants, predicates...)
	}

	result := &Result{Restaurants: restaurants}
	if cityMatched {
		result.MatchedCity = matchedCity
	}
	if center != nil {
		result.CityCoordinates = center
	}
	return result, nil
}

// mergeFlags folds semantic flag keys into the column-keyed query flags.
// Unknown keys are dropped so a newer or older UI cannot break a search.
func mergeFlags(dst map[string]bool, src map[string]bool) {
	for key, v := range src {
		if !v {
			continue
		}
		if col, ok := features.Column(key); ok {
			dst[col] = true
		}
	}
}
