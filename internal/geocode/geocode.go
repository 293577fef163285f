package geocode

import (
	"context"
	"errors"
	"fmt"

	"googlemaps.github.io/maps"

	"platefinder/internal/types"
)

// ErrNoResults is returned when the provider finds no place-level candidate
// for the given name. Callers treat it as a soft failure.
var ErrNoResults = errors.New("no geocoding results")

// placeLevelTypes are the result types accepted as "a place" rather than a
// street address or a point of interest.
var placeLevelTypes = map[string]bool{
	"locality":                    true,
	"postal_town":                 true,
	"sublocality":                 true,
	"neighborhood":                true,
	"administrative_area_level_2": true,
	"political":                   true,
}

// Client wraps the Google Maps geocoding API.
type Client struct {
	maps   *maps.Client
	region string
	limit  int
}

// NewClient creates a geocoding client with the given API key. An optional
// region code (e.g. "uk") biases results.
func NewClient(apiKey, region string, limit int) (*Client, error) {
	c, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	if limit <= 0 {
		limit = 1
	}
	return &Client{maps: c, region: region, limit: limit}, nil
}

// Geocode resolves a place name to a [longitude, latitude] coordinate. Only
// the first place-level candidates (up to the configured limit) are
// considered.
func (c *Client) Geocode(ctx context.Context, place string) (types.Coordinate, error) {
	r := &maps.GeocodingRequest{
		Address: place,
		Region:  c.region,
	}
	results, err := c.maps.Geocode(ctx, r)
	if err != nil {
		return types.Coordinate{}, fmt.Errorf("geocoding api error: %w", err)
	}

	considered := 0
	for _, res := range results {
		if considered >= c.limit {
			break
		}
		considered++
		for _, t := range res.Types {
			if placeLevelTypes[t] {
				loc := res.Geometry.Location
				return types.Coordinate{loc.Lng, loc.Lat}, nil
			}
		}
	}
	return types.Coordinate{}, ErrNoResults
}
