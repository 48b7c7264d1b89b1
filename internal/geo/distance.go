// Package geo provides pure geometric helpers for the studio directory:
// great-circle distance, human-readable distance formatting, and viewport
// filtering. Nothing in this package performs I/O or fails; degenerate input
// degrades to identity or zero.
package geo

import (
	"fmt"
	"math"
)

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371.0

// DistanceKm calculates the great circle distance between two points in
// kilometers using the haversine formula.
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lng1Rad := lng1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	lng2Rad := lng2 * math.Pi / 180

	deltaLat := lat2Rad - lat1Rad
	deltaLng := lng2Rad - lng1Rad

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// FormatDistance renders a distance for display: values below one kilometer
// as rounded meters ("476 m"), everything else with one decimal ("1.2 km").
func FormatDistance(km float64) string {
	if km < 0 {
		km = 0
	}
	meters := math.Round(km * 1000)
	if meters < 1000 {
		return fmt.Sprintf("%d m", int(meters))
	}

	return fmt.Sprintf("%.1f km", meters/1000)
}
