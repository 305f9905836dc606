package domain

// StoreID identifies a store across locations and transfers.
type StoreID string

// Immutable geocoded store location (degrees, WGS 84).
// Supplied by the geocoding pipeline; this service never geocodes.
type Location struct {
	ID   StoreID
	Lat  float64
	Lon  float64
	City string
}

// Return coordinates as [lon, lat] for external API compatibility.
func (l Location) CoordsToList() []float64 { return []float64{l.Lon, l.Lat} }
