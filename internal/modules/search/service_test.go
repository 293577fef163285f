package search

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"platefinder/internal/types"
)

// fakeStore records the structured query it receives and returns a canned
// restaurant list.
type fakeStore struct {
	cities      map[string]string // lowered token -> canonical city
	restaurants []types.Restaurant
	lastQuery   *Query
	matchErr    error
	searchErr   error
}

func (f *fakeStore) MatchCity(_ context.Context, token string) (string, bool, error) {
	if f.matchErr != nil {
		return "", false, f.matchErr
	}
	for sub, city := range f.cities {
		if sub == token {
			return city, true, nil
		}
	}
	return "", false, nil
}

func (f *fakeStore) Search(_ context.Context, q Query) ([]types.Restaurant, error) {
	f.lastQuery = &q
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	out := make([]types.Restaurant, len(f.restaurants))
	copy(out, f.restaurants)
	return out, nil
}

type fakeGeocoder struct {
	coord types.Coordinate
	err   error
}

func (f *fakeGeocoder) Geocode(context.Context, string) (types.Coordinate, error) {
	return f.coord, f.err
}

func newTestService(store *fakeStore, geocoder Geocoder) *Service {
	return NewService(store, geocoder, Config{RadiusMiles: 20}, zerolog.Nop())
}

func restaurant(name, city, cuisine string, rating float64, lat, lng *float64) types.Restaurant {
	return types.Restaurant{
		ID: uuid.New(), Name: name, City: city, Cuisine: cuisine,
		Rating: &rating, Latitude: lat, Longitude: lng, Visible: true,
	}
}

func f64(v float64) *float64 { return &v }

// Manchester city centre, and points roughly 10 and 25 miles due north.
var (
	manchesterCenter = types.Coordinate{-2.2426, 53.4808}
	latAt10Miles     = 53.4808 + 0.1447
	latAt25Miles     = 53.4808 + 0.3618
)

func TestSearch_CityMatchWithoutGeocoder(t *testing.T) {
	store := &fakeStore{
		cities: map[string]string{"manchester": "Manchester"},
		restaurants: []types.Restaurant{
			restaurant("Herbivore", "Manchester", "Vegan", 4.5, nil, nil),
		},
	}
	svc := newTestService(store, nil)

	result, err := svc.Search(context.Background(), "cheap vegan near Manchester", FilterState{})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	q := store.lastQuery
	if q.City != "Manchester" {
		t.Errorf("City = %q, want Manchester", q.City)
	}
	if !q.Flags["vegan_options"] {
		t.Errorf("vegan_options flag missing: %v", q.Flags)
	}
	if q.PriceLevel == nil || *q.PriceLevel != 1 {
		t.Errorf("PriceLevel = %v, want 1", q.PriceLevel)
	}
	if q.RequireCoordinates {
		t.Error("RequireCoordinates set without a geocoder")
	}
	if result.MatchedCity != "Manchester" {
		t.Errorf("MatchedCity = %q, want Manchester", result.MatchedCity)
	}
	if result.CityCoordinates != nil {
		t.Error("CityCoordinates set without a geocoder")
	}
}

func TestSearch_DistanceRankingReplacesCityFilter(t *testing.T) {
	store := &fakeStore{
		cities: map[string]string{"manchester": "Manchester"},
		restaurants: []types.Restaurant{
			restaurant("Too Far", "Manchester", "Thai", 5.0, f64(latAt25Miles), f64(-2.2426)),
			restaurant("Close Bronze", "Salford", "Thai", 3.5, f64(latAt10Miles), f64(-2.2426)),
			restaurant("Close Gold", "Manchester", "Thai", 4.8, f64(53.49), f64(-2.24)),
			restaurant("No Coordinates", "Manchester", "Thai", 4.9, nil, nil),
		},
	}
	svc := newTestService(store, &fakeGeocoder{coord: manchesterCenter})

	result, err := svc.Search(context.Background(), "thai near Manchester", FilterState{})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	q := store.lastQuery
	if !q.RequireCoordinates {
		t.Error("RequireCoordinates not set on the geocoded path")
	}
	if q.City != "" {
		t.Errorf("City = %q, want empty on the geocoded path", q.City)
	}

	names := make([]string, len(result.Restaurants))
	for i, r := range result.Restaurants {
		names[i] = r.Name
	}
	want := []string{"Close Gold", "Close Bronze"}
	if len(names) != len(want) {
		t.Fatalf("restaurants = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("restaurants = %v, want %v (rating order)", names, want)
		}
	}

	if result.CityCoordinates == nil || *result.CityCoordinates != manchesterCenter {
		t.Errorf("CityCoordinates = %v, want %v", result.CityCoordinates, manchesterCenter)
	}
}

func TestSearch_GeocodeFailureDegradesToCityName(t *testing.T) {
	store := &fakeStore{cities: map[string]string{"manchester": "Manchester"}}
	svc := newTestService(store, &fakeGeocoder{err: errors.New("quota exceeded")})

	result, err := svc.Search(context.Background(), "vegan near Manchester", FilterState{})
	if err != nil {
		t.Fatalf("geocode failure must not fail the search: %v", err)
	}
	if store.lastQuery.City != "Manchester" {
		t.Errorf("City = %q, want Manchester after geocode failure", store.lastQuery.City)
	}
	if result.CityCoordinates != nil {
		t.Error("CityCoordinates set despite geocode failure")
	}
}

func TestSearch_LocationWithoutCityMatch(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store, nil)

	if _, err := svc.Search(context.Background(), "italian in Soho", FilterState{}); err != nil {
		t.Fatalf("Search: %v", err)
	}
	q := store.lastQuery
	if q.LocationOr != "Soho" {
		t.Errorf("LocationOr = %q, want Soho", q.LocationOr)
	}
	if q.City != "" || q.BroadText != "" {
		t.Errorf("unexpected location fields: city=%q broad=%q", q.City, q.BroadText)
	}
}

func TestSearch_ProperNameFallsToBroadText(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store, nil)

	if _, err := svc.Search(context.Background(), "Nino's Trattoria", FilterState{}); err != nil {
		t.Fatalf("Search: %v", err)
	}
	q := store.lastQuery
	if q.BroadText != "Nino's Trattoria" {
		t.Errorf("BroadText = %q, want the raw query", q.BroadText)
	}
	if q.City != "" || q.LocationOr != "" {
		t.Errorf("unexpected location fields: city=%q locationOr=%q", q.City, q.LocationOr)
	}
}

func TestSearch_StructuredSignalSkipsBroadText(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store, nil)

	if _, err := svc.Search(context.Background(), "vegan pizza", FilterState{}); err != nil {
		t.Fatalf("Search: %v", err)
	}
	if q := store.lastQuery; q.BroadText != "" {
		t.Errorf("BroadText = %q, want empty when cuisine/feature detected", q.BroadText)
	}
}

func TestSearch_UICuisinesFilterInMemory(t *testing.T) {
	store := &fakeStore{
		restaurants: []types.Restaurant{
			restaurant("Chippy", "Leeds", "British", 4.9, nil, nil),
			restaurant("Spice Garden", "Leeds", "North Indian", 4.2, nil, nil),
			restaurant("Bangkok Nights", "Leeds", "Thai", 4.7, nil, nil),
		},
	}
	svc := newTestService(store, nil)

	result, err := svc.Search(context.Background(), "somewhere in Leeds", FilterState{
		Cuisines: []string{"Indian", "Thai"},
	})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	names := make([]string, len(result.Restaurants))
	for i, r := range result.Restaurants {
		names[i] = r.Name
	}
	want := []string{"Bangkok Nights", "Spice Garden"}
	if len(names) != len(want) || names[0] != want[0] || names[1] != want[1] {
		t.Fatalf("restaurants = %v, want %v", names, want)
	}
}

func TestSearch_UIFlagsAlwaysApply(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store, nil)

	_, err := svc.Search(context.Background(), "anything", FilterState{
		Flags: map[string]bool{"dogFriendly": true, "freeWifi": false, "notARealFlag": true},
	})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	q := store.lastQuery
	if !q.Flags["dog_friendly"] {
		t.Errorf("dog_friendly not applied: %v", q.Flags)
	}
	if _, ok := q.Flags["free_wifi"]; ok {
		t.Error("false UI flag must not become a filter")
	}
	if len(q.Flags) != 1 {
		t.Errorf("unknown flag leaked into query: %v", q.Flags)
	}
}

func TestSearch_StoreErrorPropagates(t *testing.T) {
	store := &fakeStore{searchErr: errors.New("connection refused")}
	svc := newTestService(store, nil)

	if _, err := svc.Search(context.Background(), "vegan", FilterState{}); err == nil {
		t.Fatal("store error must propagate, not return an empty list")
	}
}

func TestSearch_Idempotent(t *testing.T) {
	store := &fakeStore{
		cities: map[string]string{"manchester": "Manchester"},
		restaurants: []types.Restaurant{
			restaurant("A", "Manchester", "Thai", 4.1, f64(53.49), f64(-2.24)),
			restaurant("B", "Manchester", "Thai", 4.9, f64(53.50), f64(-2.25)),
		},
	}
	svc := newTestService(store, &fakeGeocoder{coord: manchesterCenter})

	first, err := svc.Search(context.Background(), "thai near Manchester", FilterState{})
	if err != nil {
		t.Fatalf("first search: %v", err)
	}
	second, err := svc.Search(context.Background(), "thai near Manchester", FilterState{})
	if err != nil {
		t.Fatalf("second search: %v", err)
	}

	if len(first.Restaurants) != len(second.Restaurants) {
		t.Fatalf("result sizes differ: %d vs %d", len(first.Restaurants), len(second.Restaurants))
	}
	for i := range first.Restaurants {
		if first.Restaurants[i].ID != second.Restaurants[i].ID {
			t.Fatalf("result order differs at %d", i)
		}
	}
}
