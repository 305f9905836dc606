package services

import (
	"fmt"

	"transfer-route-service/internal/domain"
	"transfer-route-service/internal/routing"
)

// RouteView is one complete optimization snapshot for a destination: the
// context it was computed from, both strategy evaluations, the decision and
// the projected summary. Snapshots are immutable and always replaced
// wholesale, so a reader can never observe a half-updated decision.
type RouteView struct {
	Context  *domain.RouteContext
	Loads    map[domain.StoreID]int
	Override routing.Mode
	Decision routing.DecisionResult
	Stats    routing.Stats
	// Version identifies the context generation this view belongs to.
	// Geometry results carrying an older version are discarded on arrival.
	Version uint64
}

// PlanRoute runs the full optimization pipeline over an immutable context:
// aggregate loads, evaluate both strategies, apply the grace-period decision,
// project the summary. Total over every valid context; only a malformed
// override fails.
func PlanRoute(cfg routing.Config, rc *domain.RouteContext, override routing.Mode) (*RouteView, error) {
	loads := routing.AggregateLoads(rc.Transfers)

	parallel := routing.EvaluateParallel(cfg, rc.Origins, loads, rc.Locations, rc.Destination)
	multiPickup := routing.EvaluateMultiPickup(cfg, rc.Origins, rc.Locations, rc.Destination)

	decision, err := routing.Decide(cfg, parallel, multiPickup, override)
	if err != nil {
		return nil, fmt.Errorf("plan route: %w", err)
	}

	return &RouteView{
		Context:  rc,
		Loads:    loads,
		Override: override,
		Decision: decision,
		Stats:    routing.ProjectStats(decision, len(rc.Origins), rc.TotalQuantity()),
	}, nil
}
