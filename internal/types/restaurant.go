// README: Shared restaurant domain types used across modules.
package types

import "github.com/google/uuid"

// Coordinate is a [longitude, latitude] pair, matching the order used by
// geocoding providers and the frontend map layer.
type Coordinate [2]float64

func (c Coordinate) Lng() float64 { return c[0] }
func (c Coordinate) Lat() float64 { return c[1] }

// Restaurant is a single searchable listing. Latitude, Longitude, Rating and
// PriceLevel are nullable in the store; a listing without coordinates is
// excluded from distance ranking.
type Restaurant struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	Cuisine    string          `json:"cuisine"`
	Address    string          `json:"address"`
	City       string          `json:"city"`
	Country    string          `json:"country"`
	Latitude   *float64        `json:"latitude"`
	Longitude  *float64        `json:"longitude"`
	Rating     *float64        `json:"rating"`
	PriceLevel *int            `json:"price_level"`
	Visible    bool            `json:"visible"`
	Featured   bool            `json:"featured"`
	Features   map[string]bool `json:"features"`
}

// RatingOrZero treats a missing rating as the lowest possible rank.
func (r *Restaurant) RatingOrZero() float64 {
	if r.Rating == nil {
		return 0
	}
	return *r.Rating
}

// Coordinates returns the listing's position, or false when either
// coordinate is missing.
func (r *Restaurant) Coordinates() (Coordinate, bool) {
	if r.Latitude == nil || r.Longitude == nil {
		return Coordinate{}, false
	}
	return Coordinate{*r.Longitude, *r.Latitude}, true
}

// Suggestion is a single typeahead entry. Cities carry only Name and Type.
type Suggestion struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Cuisine string `json:"cuisine,omitempty"`
	Address string `json:"address,omitempty"`
	Type    string `json:"type"` // "restaurant" or "city"
}
