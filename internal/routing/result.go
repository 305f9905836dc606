package routing

import "transfer-route-service/internal/domain"

// Leg is one directed travel segment attributed to a source store.
// Under Parallel, Trips is the number of capacity-split vehicles running the
// leg simultaneously; under MultiPickup every leg is driven once.
// MissingLocation flags legs priced at 0 km because an endpoint had no
// coordinate entry, so consumers can show "unknown" instead of a real zero.
type Leg struct {
	From            domain.StoreID
	DistanceKm      float64
	Trips           int
	MissingLocation bool
}

// StrategyResult is the full evaluation of one candidate strategy.
//
// TotalDistanceKm and CompletionTimeHours are deliberately not on the same
// footing: the former is fleet-wide road-km consumed across all vehicles
// (cost/reporting), the latter is wall-clock time until the slowest vehicle
// arrives.
type StrategyResult struct {
	VehicleCount        int
	TotalDistanceKm     float64
	CompletionTimeHours float64
	Legs                []Leg
}

// DecisionResult is the atomic output of one optimization run. It is always
// replaced wholesale; no field is ever updated in isolation.
type DecisionResult struct {
	Recommended Strategy
	Active      Strategy
	Parallel    StrategyResult
	MultiPickup StrategyResult
}

// ActiveResult returns the StrategyResult the active selection points at.
func (d DecisionResult) ActiveResult() StrategyResult {
	if d.Active == StrategyParallel {
		return d.Parallel
	}
	return d.MultiPickup
}
