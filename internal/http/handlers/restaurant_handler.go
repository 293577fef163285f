// README: Restaurant endpoints, dispatched on the ?type= query parameter to
// match the frontend's single-route contract.
package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"platefinder/internal/features"
	"platefinder/internal/modules/search"
	"platefinder/internal/types"
)

// Searcher runs the full query-interpretation and ranking pipeline.
type Searcher interface {
	Search(ctx context.Context, rawQuery string, filters search.FilterState) (*search.Result, error)
}

// Suggester serves the typeahead endpoint.
type Suggester interface {
	Suggest(ctx context.Context, partial string) ([]types.Suggestion, error)
}

// Curator serves the curated landing-page subsets.
type Curator interface {
	Featured(ctx context.Context) ([]types.Restaurant, error)
	London(ctx context.Context) ([]types.Restaurant, error)
}

type RestaurantHandler struct {
	search  Searcher
	suggest Suggester
	curated Curator
}

func NewRestaurantHandler(searcher Searcher, suggester Suggester, curator Curator) *RestaurantHandler {
	return &RestaurantHandler{search: searcher, suggest: suggester, curated: curator}
}

// List handles GET /api/restaurants.
func (h *RestaurantHandler) List(c *gin.Context) {
	switch c.Query("type") {
	case "search":
		h.runSearch(c, c.Query("q"))
	case "all":
		h.runSearch(c, "")
	case "suggestions":
		h.runSuggestions(c)
	case "featured":
		h.runCurated(c, h.curated.Featured)
	case "london":
		h.runCurated(c, h.curated.London)
	default:
		writeError(c, http.StatusBadRequest, "unknown or missing type parameter")
	}
}

func (h *RestaurantHandler) runSearch(c *gin.Context, rawQuery string) {
	result, err := h.search.Search(c.Request.Context(), rawQuery, parseFilterState(c))
	if err != nil {
		writeError(c, http.StatusInternalServerError, err.Error())
		return
	}

	restaurants := result.Restaurants
	if restaurants == nil {
		restaurants = []types.Restaurant{}
	}
	c.JSON(http.StatusOK, envelope{
		Data:            restaurants,
		City:            result.MatchedCity,
		CityCoordinates: result.CityCoordinates,
	})
}

func (h *RestaurantHandler) runSuggestions(c *gin.Context) {
	suggestions, err := h.suggest.Suggest(c.Request.Context(), c.Query("q"))
	if err != nil {
		writeError(c, http.StatusInternalServerError, err.Error())
		return
	}
	writeData(c, http.StatusOK, suggestions)
}

func (h *RestaurantHandler) runCurated(c *gin.Context, load func(context.Context) ([]types.Restaurant, error)) {
	restaurants, err := load(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if restaurants == nil {
		restaurants = []types.Restaurant{}
	}
	writeData(c, http.StatusOK, restaurants)
}

// parseFilterState reads the UI filter panel from query parameters: one
// boolean per known feature key plus a CSV cuisine list. Parameters that do
// not name a known feature are ignored.
func parseFilterState(c *gin.Context) search.FilterState {
	state := search.FilterState{Flags: map[string]bool{}}
	for _, key := range features.Keys() {
		if c.Query(key) == "true" {
			state.Flags[key] = true
		}
	}
	if csv := c.Query("cuisines"); csv != "" {
		for _, part := range strings.Split(csv, ",") {
			if part = strings.TrimSpace(part); part != "" {
				state.Cuisines = append(state.Cuisines, part)
			}
		}
	}
	return state
}
