// Package location provides station directory lookups and the pure
// distance/duration estimators used to assemble commute legs.
package location

import "math"

const earthRadiusMiles = 3959

// Assumed travel speeds with padding for urban friction: bikes lose time to
// routing and locking up, walkers to crosswalks.
const (
	bikeMph     = 10.0
	bikePadding = 1.3
	walkMph     = 3.0
	walkPadding = 1.2
)

// HaversineMiles calculates the great-circle distance in miles between two
// lat/lng points
func HaversineMiles(lat1, lng1, lat2, lng2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	deltaLat := (lat2 - lat1) * math.Pi / 180
	deltaLng := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMiles * c
}

// BikeMinutes estimates a bike leg duration for a distance in miles.
func BikeMinutes(distanceMiles float64) int {
	return int(math.Ceil(distanceMiles / bikeMph * 60 * bikePadding))
}

// WalkMinutes estimates a walking leg duration for a distance in miles.
func WalkMinutes(distanceMiles float64) int {
	return int(math.Ceil(distanceMiles / walkMph * 60 * walkPadding))
}
