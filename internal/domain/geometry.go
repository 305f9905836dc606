package domain

// GeoPoint represents a geographic coordinate (WGS 84).
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// LegGeometry is the drawable polyline for one travel leg, as returned by the
// directions service or synthesized as a straight line when the fetch fails.
// Fallback marks the degraded straight-line case so the map layer can render
// it distinctly; it is a warning, never an error.
type LegGeometry struct {
	From       StoreID    `json:"from"`
	To         StoreID    `json:"to"`
	Points     []GeoPoint `json:"points"`
	DistanceKm float64    `json:"distance_km"`
	Fallback   bool       `json:"fallback"`
}
