// README: Search request/response shapes and the structured query-spec the
// filter pipeline builds up before hitting the store.
package search

import "platefinder/internal/types"

// FilterState is the UI filter panel: a boolean map over the semantic
// feature keys (absent and false are equivalent here, unlike parsed intent)
// plus a cuisine list. Unknown keys are ignored.
type FilterState struct {
	Flags    map[string]bool
	Cuisines []string
}

// Result is a ranked restaurant list plus the resolved city context, when a
// location token matched a known city.
type Result struct {
	Restaurants     []types.Restaurant
	MatchedCity     string
	CityCoordinates *types.Coordinate
}

// Query is the structured store query assembled by the resolver. Each field
// corresponds to one filter stage; the three location fields are mutually
// exclusive and checked in declaration order by the store.
type Query struct {
	// Flags maps storage columns to required values (only true is ever set).
	Flags map[string]bool
	// PriceLevel filters on exact price tier when present.
	PriceLevel *int
	// Cuisines OR-matches case-insensitive substrings of the cuisine column.
	Cuisines []string
	// City filters on the canonical city name (case-insensitive exact).
	City string
	// LocationOr partial-matches the token against city OR address.
	LocationOr string
	// BroadText partial-matches name, cuisine, address and city.
	BroadText string
	// RequireCoordinates keeps only rows with both coordinates present, for
	// the distance-ranking path.
	RequireCoordinates bool
	// OrderByRating asks the store for rating-descending order (nulls last).
	OrderByRating bool
}
