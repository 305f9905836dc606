package routing

import (
	"slices"

	"transfer-route-service/internal/domain"
	"transfer-route-service/internal/geo"
)

// EvaluateMultiPickup computes the "single truck, sequential stops" plan.
//
// The truck visits origins farthest-first (descending distance to the
// destination) and works inward, which keeps backtracking low for this star
// pickup pattern, then runs the final leg to the destination. One vehicle
// always, even with zero origins.
func EvaluateMultiPickup(
	cfg Config,
	origins []domain.StoreID,
	locations map[domain.StoreID]domain.Location,
	destination domain.StoreID,
) StrategyResult {
	dest, destKnown := locations[destination]

	ordered := sortFarthestFirst(origins, locations, dest, destKnown)

	result := StrategyResult{
		VehicleCount: 1,
		Legs:         make([]Leg, 0, len(ordered)),
	}

	for i, origin := range ordered {
		from, fromKnown := locations[origin]

		var (
			legKm   float64
			toKnown bool
		)
		if i < len(ordered)-1 {
			var to domain.Location
			to, toKnown = locations[ordered[i+1]]
			if fromKnown && toKnown {
				legKm = geo.Distance(from, to)
			}
		} else {
			toKnown = destKnown
			if fromKnown && destKnown {
				legKm = geo.Distance(from, dest)
			}
		}

		result.TotalDistanceKm += legKm
		result.Legs = append(result.Legs, Leg{
			From:            origin,
			DistanceKm:      legKm,
			Trips:           1,
			MissingLocation: !fromKnown || !toKnown,
		})
	}

	result.CompletionTimeHours = cfg.hours(result.TotalDistanceKm)
	return result
}

// sortFarthestFirst orders origins by descending distance to the destination.
// Stable on ties and on unknown locations (which sort as 0 km) so the visiting
// order never depends on map iteration.
func sortFarthestFirst(
	origins []domain.StoreID,
	locations map[domain.StoreID]domain.Location,
	dest domain.Location,
	destKnown bool,
) []domain.StoreID {
	ordered := slices.Clone(origins)

	distTo := func(id domain.StoreID) float64 {
		loc, ok := locations[id]
		if !ok || !destKnown {
			return 0
		}
		return geo.Distance(loc, dest)
	}

	slices.SortStableFunc(ordered, func(a, b domain.StoreID) int {
		da, db := distTo(a), distTo(b)
		if da > db {
			return -1
		}
		if da < db {
			return 1
		}
		return 0
	})

	return ordered
}
