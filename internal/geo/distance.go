package geo

import (
	"math"

	"transfer-route-service/internal/domain"
)

// Mean Earth radius in kilometers.
const earthRadiusKm = 6371.0

// Distance returns the great-circle distance in kilometers between two
// locations using the haversine formula. Pure and symmetric; identical
// points yield 0. Coordinates are taken as-is: out-of-range values produce
// a mathematically defined result, validation belongs to the caller.
func Distance(a, b domain.Location) float64 {
	dLat := toRad(b.Lat - a.Lat)
	dLon := toRad(b.Lon - a.Lon)
	lat1 := toRad(a.Lat)
	lat2 := toRad(b.Lat)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1)*math.Cos(lat2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c
}

func toRad(deg float64) float64 { return deg * math.Pi / 180 }
