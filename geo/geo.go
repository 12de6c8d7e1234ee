// Package geo holds the distance and radius math used by the search
// pipeline.
package geo

import (
	"math"

	"github.com/food-finder/api-go/types"
)

const (
	earthRadiusKm = 6371

	// Rough meters per degree of latitude; longitude is scaled by cos(lat).
	metersPerDegree = 111000

	// Viewport-derived radii are kept conservative so results stay on
	// screen: smaller dimension, halved, scaled down, then clamped.
	viewportSafetyFactor = 0.7
	minViewportRadiusM   = 500
	maxViewportRadiusM   = 25000
)

// DistanceKm returns the great-circle distance between two points in
// kilometers using the Haversine formula.
func DistanceKm(a, b types.LatLng) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	// Floating point can push h a hair above 1 near the antipode, which
	// would make Sqrt(1-h) NaN.
	if h > 1 {
		h = 1
	}
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// RadiusFromViewport converts a lat/lng bounding box into a search radius
// in meters. The radius is based on the smaller of the two extents so a
// search never reaches beyond what the viewport shows, then clamped to
// [500m, 25km].
func RadiusFromViewport(northEast, southWest types.LatLng) float64 {
	latExtent := math.Abs(northEast.Lat-southWest.Lat) * metersPerDegree
	lngExtent := math.Abs(northEast.Lng-southWest.Lng) * metersPerDegree *
		math.Cos(northEast.Lat*math.Pi/180)

	smaller := math.Min(latExtent, lngExtent)
	radius := smaller / 2 * viewportSafetyFactor

	if radius < minViewportRadiusM {
		return minViewportRadiusM
	}
	if radius > maxViewportRadiusM {
		return maxViewportRadiusM
	}
	return radius
}
