// README: In-memory post-filtering for conditions the store's query builder
// cannot express alongside an existing OR clause (distance radius, UI
// cuisine lists). Both call sites share this path so the re-sort is never
// forgotten.
package search

import (
	"strings"

	"platefinder/internal/geo"
	"platefinder/internal/types"
)

// applyPostFilters keeps restaurants that pass every predicate, then
// restores rating-descending order since the store-level ORDER BY no longer
// holds after filtering in application code.
func applyPostFilters(rs []types.Restaurant, predicates ...func(types.Restaurant) bool) []types.Restaurant {
	kept := make([]types.Restaurant, 0, len(rs))
outer:
	for _, r := range rs {
		for _, pred := range predicates {
			if !pred(r) {
				continue outer
			}
		}
		kept = append(kept, r)
	}
	geo.SortDescBy(kept, func(r types.Restaurant) float64 { return r.RatingOrZero() })
	return kept
}

// withinRadius keeps restaurants with coordinates inside radiusMeters of the
// center. Rows without coordinates never qualify.
func withinRadius(center types.Coordinate, radiusMeters float64) func(types.Restaurant) bool {
	return func(r types.Restaurant) bool {
		pos, ok := r.Coordinates()
		if !ok {
			return false
		}
		return geo.HaversineMeters(center.Lat(), center.Lng(), pos.Lat(), pos.Lng()) <= radiusMeters
	}
}

// matchesAnyCuisine keeps restaurants whose cuisine field contains any of
// the requested tokens, case-insensitively.
func matchesAnyCuisine(tokens []string) func(types.Restaurant) bool {
	normalized := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if n := normalizeCuisine(t); n != "" {
			normalized = append(normalized, n)
		}
	}
	return func(r types.Restaurant) bool {
		cuisine := normalizeCuisine(r.Cuisine)
		for _, t := range normalized {
			if strings.Contains(cuisine, t) {
				return true
			}
		}
		return false
	}
}
