package routing

import (
	"math"

	"transfer-route-service/internal/domain"
	"transfer-route-service/internal/geo"
)

// EvaluateParallel computes the "one truck per origin, load-split" plan.
//
// Each origin dispatches ceil(load/capacity) trucks directly to the
// destination; all trucks run simultaneously. The plan completes when the
// slowest vehicle arrives, while total distance accumulates road-km across
// every vehicle. Origins iterate in the supplied enumeration order so the leg
// list is deterministic.
func EvaluateParallel(
	cfg Config,
	origins []domain.StoreID,
	loads map[domain.StoreID]int,
	locations map[domain.StoreID]domain.Location,
	destination domain.StoreID,
) StrategyResult {
	dest, destKnown := locations[destination]

	result := StrategyResult{Legs: make([]Leg, 0, len(origins))}

	for _, origin := range origins {
		load := loads[origin]
		trips := 0
		if load > 0 {
			trips = int(math.Ceil(float64(load) / float64(cfg.TruckCapacity)))
		}

		loc, originKnown := locations[origin]
		legKm := 0.0
		if originKnown && destKnown {
			legKm = geo.Distance(loc, dest)
		}

		result.VehicleCount += trips
		result.TotalDistanceKm += legKm * float64(trips)

		// Every truck on this leg incurs the same travel time in parallel;
		// only the max across the fleet matters for completion.
		if trips > 0 {
			if legTime := cfg.hours(legKm); legTime > result.CompletionTimeHours {
				result.CompletionTimeHours = legTime
			}
		}

		result.Legs = append(result.Legs, Leg{
			From:            origin,
			DistanceKm:      legKm,
			Trips:           trips,
			MissingLocation: !originKnown || !destKnown,
		})
	}

	return result
}
