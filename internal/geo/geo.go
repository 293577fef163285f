// Package geo contains pure geographic computation helpers.
package geo

import "math"

// EarthRadiusMeters is the mean Earth radius used by the haversine formula.
const EarthRadiusMeters = 6_371_000.0

const metersPerMile = 1609.34

// HaversineMeters returns the great-circle distance in meters between two
// points specified in decimal degrees.
func HaversineMeters(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := degreesToRadians(lat2 - lat1)
	dLng := degreesToRadians(lng2 - lng1)

	rLat1 := degreesToRadians(lat1)
	rLat2 := degreesToRadians(lat2)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

// MilesToMeters converts a distance in statute miles to meters.
func MilesToMeters(miles float64) float64 {
	return miles * metersPerMile
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// SortDescBy performs an insertion sort (fine for small N) on any slice,
// ordering elements descending by the value returned by the accessor.
func SortDescBy[T any](items []T, value func(T) float64) {
	for i := 1; i < len(items); i++ {
		key := items[i]
		j := i - 1
		for j >= 0 && value(items[j]) < value(key) {
			items[j+1] = items[j]
			j--
		}
		items[j+1] = key
	}
}
