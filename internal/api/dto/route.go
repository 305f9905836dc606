package dto

type LocationResponse struct {
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
	City string  `json:"city,omitempty"`
}

type TransferResponse struct {
	ProductID string  `json:"product_id"`
	FromStore string  `json:"from_store"`
	Quantity  int     `json:"quantity"`
	RoadKm    float64 `json:"road_km"`
}

type LegResponse struct {
	From            string  `json:"from"`
	DistanceKm      float64 `json:"distance_km"`
	Trips           int     `json:"trips"`
	MissingLocation bool    `json:"missing_location,omitempty"`
}

type StrategyResponse struct {
	VehicleCount        int           `json:"vehicle_count"`
	TotalDistanceKm     float64       `json:"total_distance_km"`
	CompletionTimeHours float64       `json:"completion_time_hours"`
	Legs                []LegResponse `json:"legs"`
}

type StatsResponse struct {
	TotalDistanceKm float64 `json:"total_distance_km"`
	EtaMinutes      float64 `json:"eta_minutes"`
	Vehicles        int     `json:"vehicles"`
	OriginCount     int     `json:"origin_count"`
	TotalQuantity   int     `json:"total_quantity"`
	Recommended     string  `json:"recommended"`
	Active          string  `json:"active"`
}

type RouteIndexResponse struct {
	Destinations []string                    `json:"destinations"`
	Locations    map[string]LocationResponse `json:"locations"`
}

type RouteDetailResponse struct {
	Destination string                      `json:"destination"`
	Origins     []string                    `json:"origins"`
	Transfers   []TransferResponse          `json:"transfers"`
	Locations   map[string]LocationResponse `json:"locations"`
	Mode        string                      `json:"mode"`
	Parallel    StrategyResponse            `json:"parallel"`
	MultiPickup StrategyResponse            `json:"multi_pickup"`
	Statistics  StatsResponse               `json:"statistics"`
}

type ModeRequest struct {
	Mode string `json:"mode"`
}

type GeoPointResponse struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type LegGeometryResponse struct {
	From       string             `json:"from"`
	To         string             `json:"to"`
	Points     []GeoPointResponse `json:"points"`
	DistanceKm float64            `json:"distance_km"`
	Fallback   bool               `json:"fallback,omitempty"`
}

type GeometryResponse struct {
	Destination string                `json:"destination"`
	Legs        []LegGeometryResponse `json:"legs"`
}
