package routing

// Stats is the externally consumed summary of the active strategy, in
// presentation units. Pure projection: unit conversion and field selection
// only, no routing logic.
type Stats struct {
	TotalDistanceKm float64
	EtaMinutes      float64
	Vehicles        int
	OriginCount     int
	TotalQuantity   int
	Recommended     Strategy
	Active          Strategy
}

// ProjectStats maps a decision onto the summary consumed by dashboards.
func ProjectStats(d DecisionResult, originCount, totalQuantity int) Stats {
	active := d.ActiveResult()
	return Stats{
		TotalDistanceKm: active.TotalDistanceKm,
		EtaMinutes:      active.CompletionTimeHours * 60,
		Vehicles:        active.VehicleCount,
		OriginCount:     originCount,
		TotalQuantity:   totalQuantity,
		Recommended:     d.Recommended,
		Active:          d.Active,
	}
}
