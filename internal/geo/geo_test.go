package geo

import (
	"math"
	"testing"
)

func TestHaversineMeters_KnownDistances(t *testing.T) {
	tests := []struct {
		name       string
		lat1       float64
		lng1       float64
		lat2       float64
		lng2       float64
		wantMeters float64
		tolerance  float64
	}{
		{
			name: "same point",
			lat1: 51.5074, lng1: -0.1278,
			lat2: 51.5074, lng2: -0.1278,
			wantMeters: 0,
			tolerance:  0.001,
		},
		{
			name: "London to Paris (~344km)",
			lat1: 51.5074, lng1: -0.1278,
			lat2: 48.8566, lng2: 2.3522,
			wantMeters: 344_000,
			tolerance:  3_440, // 1%
		},
		{
			name: "Manchester to Liverpool (~49km)",
			lat1: 53.4808, lng1: -2.2426,
			lat2: 53.4084, lng2: -2.9916,
			wantMeters: 50_000,
			tolerance:  2_000,
		},
		{
			name: "near-identical points stay tiny",
			lat1: 53.4808, lng1: -2.2426,
			lat2: 53.4809, lng2: -2.2426,
			wantMeters: 11,
			tolerance:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HaversineMeters(tt.lat1, tt.lng1, tt.lat2, tt.lng2)
			if math.Abs(got-tt.wantMeters) > tt.tolerance {
				t.Errorf("HaversineMeters() = %f, want %f (±%f)", got, tt.wantMeters, tt.tolerance)
			}
		})
	}
}

func TestHaversineMeters_Symmetry(t *testing.T) {
	d1 := HaversineMeters(51.5, -0.12, 48.85, 2.35)
	d2 := HaversineMeters(48.85, 2.35, 51.5, -0.12)
	if math.Abs(d1-d2) > 0.0001 {
		t.Errorf("haversine is not symmetric: %f vs %f", d1, d2)
	}
}

func TestMilesToMeters(t *testing.T) {
	if got := MilesToMeters(20); math.Abs(got-32186.8) > 0.01 {
		t.Errorf("MilesToMeters(20) = %f, want 32186.8", got)
	}
}

func TestSortDescBy(t *testing.T) {
	items := []float64{1, 5, 3, 5, 0}
	SortDescBy(items, func(v float64) float64 { return v })
	want := []float64{5, 5, 3, 1, 0}
	for i := range want {
		if items[i] != want[i] {
			t.Fatalf("sorted = %v, want %v", items, want)
		}
	}
}
