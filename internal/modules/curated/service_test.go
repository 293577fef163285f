package curated

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"platefinder/internal/types"
)

type fakeCuratedStore struct {
	featured      []types.Restaurant
	byCity        map[string][]types.Restaurant
	featuredCalls int
	byCityCalls   int
	err           error
}

func (f *fakeCuratedStore) Featured(context.Context) ([]types.Restaurant, error) {
	f.featuredCalls++
	return f.featured, f.err
}

func (f *fakeCuratedStore) ByCity(_ context.Context, city string) ([]types.Restaurant, error) {
	f.byCityCalls++
	return f.byCity[city], f.err
}

func sample(name string) types.Restaurant {
	return types.Restaurant{ID: uuid.New(), Name: name, Visible: true, Featured: true}
}

func TestFeatured_WithoutCacheHitsStore(t *testing.T) {
	store := &fakeCuratedStore{featured: []types.Restaurant{sample("Showcase")}}
	svc := NewService(store, nil, time.Minute, zerolog.Nop())

	got, err := svc.Featured(context.Background())
	if err != nil {
		t.Fatalf("Featured: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Showcase" {
		t.Fatalf("got %v, want the store list", got)
	}
	if store.featuredCalls != 1 {
		t.Errorf("store called %d times, want 1", store.featuredCalls)
	}
}

func TestLondon_QueriesTheRightCity(t *testing.T) {
	store := &fakeCuratedStore{byCity: map[string][]types.Restaurant{
		"London": {sample("The Smoke")},
	}}
	svc := NewService(store, nil, time.Minute, zerolog.Nop())

	got, err := svc.London(context.Background())
	if err != nil {
		t.Fatalf("London: %v", err)
	}
	if len(got) != 1 || got[0].Name != "The Smoke" {
		t.Fatalf("got %v, want the London list", got)
	}
	if store.byCityCalls != 1 {
		t.Errorf("store called %d times, want 1", store.byCityCalls)
	}
}

func TestFeatured_StoreErrorPropagates(t *testing.T) {
	store := &fakeCuratedStore{err: errors.New("connection refused")}
	svc := NewService(store, nil, time.Minute, zerolog.Nop())

	if _, err := svc.Featured(context.Background()); err == nil {
		t.Fatal("expected store error to propagate")
	}
}

func TestNewService_DefaultTTL(t *testing.T) {
	svc := NewService(&fakeCuratedStore{}, nil, 0, zerolog.Nop())
	if svc.ttl != 5*time.Minute {
		t.Errorf("ttl = %v, want 5m default", svc.ttl)
	}
}
