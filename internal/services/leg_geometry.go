package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"transfer-route-service/internal/domain"
	"transfer-route-service/internal/geo"
	"transfer-route-service/internal/platform/metrics"
	"transfer-route-service/internal/routing"
)

// ErrStaleContext reports that the destination's context was replaced while
// leg geometry was being fetched; the caller should re-request against the
// current snapshot instead of drawing superseded legs.
var ErrStaleContext = errors.New("route context superseded during geometry fetch")

type legPair struct {
	from, to domain.StoreID
}

type legFetchResult struct {
	idx  int
	geom domain.LegGeometry
}

// Geometries fetches drawable road geometry for every leg of the active
// strategy, in draw order. Legs are fetched concurrently and independently; a
// failed or slow fetch degrades that leg to a straight line without touching
// the others. Results belonging to a superseded context version are discarded.
func (s *RouteService) Geometries(ctx context.Context, destination domain.StoreID) ([]domain.LegGeometry, error) {
	view, err := s.View(ctx, destination)
	if err != nil {
		return nil, fmt.Errorf("leg geometries: %w", err)
	}

	sess := s.session(destination)
	pairs := activeLegPairs(view)

	geoms := make([]domain.LegGeometry, len(pairs))

	sem := make(chan struct{}, 5)
	var wg sync.WaitGroup
	results := make(chan legFetchResult, len(pairs))

	for i, p := range pairs {
		from, fromOK := view.Context.Locations[p.from]
		to, toOK := view.Context.Locations[p.to]
		if !fromOK || !toOK {
			// Nothing drawable without coordinates; the leg list from the
			// strategy result already flags these as unknown.
			results <- legFetchResult{idx: i, geom: domain.LegGeometry{From: p.from, To: p.to, Fallback: true}}
			continue
		}

		wg.Add(1)
		go func(idx int, from, to domain.Location) {
			sem <- struct{}{}
			defer wg.Done()
			defer func() { <-sem }()

			results <- legFetchResult{idx: idx, geom: s.fetchLeg(ctx, from, to)}
		}(i, from, to)
	}

	wg.Wait()
	close(results)

	// A newer snapshot was published while we were fetching: these legs
	// belong to a dead context, drop them instead of handing them out.
	if sess.version.Load() != view.Version {
		metrics.GeometryFetches.WithLabelValues("stale").Add(float64(len(pairs)))
		return nil, fmt.Errorf("leg geometries for %q: %w", destination, ErrStaleContext)
	}

	for r := range results {
		geoms[r.idx] = r.geom
	}

	return geoms, nil
}

// fetchLeg retrieves one leg from the directions provider, falling back to a
// straight line on any failure. Expiry and transport errors are degraded
// locally, never propagated.
func (s *RouteService) fetchLeg(ctx context.Context, from, to domain.Location) domain.LegGeometry {
	geom, err := s.geometry.FetchLeg(ctx, from, to)
	if err != nil {
		metrics.GeometryFetches.WithLabelValues("fallback").Inc()
		return straightLine(from, to)
	}

	metrics.GeometryFetches.WithLabelValues("ok").Inc()
	return geom
}

func straightLine(from, to domain.Location) domain.LegGeometry {
	return domain.LegGeometry{
		From:       from.ID,
		To:         to.ID,
		Points:     []domain.GeoPoint{{Lat: from.Lat, Lon: from.Lon}, {Lat: to.Lat, Lon: to.Lon}},
		DistanceKm: geo.Distance(from, to),
		Fallback:   true,
	}
}

// activeLegPairs derives the (from, to) pairs the map layer needs for the
// active strategy: the sequential visiting chain for MultiPickup, one direct
// spoke per origin for Parallel.
func activeLegPairs(view *RouteView) []legPair {
	dest := view.Context.Destination

	if view.Decision.Active == routing.StrategyParallel {
		legs := view.Decision.Parallel.Legs
		pairs := make([]legPair, 0, len(legs))
		for _, leg := range legs {
			pairs = append(pairs, legPair{from: leg.From, to: dest})
		}
		return pairs
	}

	legs := view.Decision.MultiPickup.Legs
	pairs := make([]legPair, 0, len(legs))
	for i, leg := range legs {
		if i < len(legs)-1 {
			pairs = append(pairs, legPair{from: leg.From, to: legs[i+1].From})
		} else {
			pairs = append(pairs, legPair{from: leg.From, to: dest})
		}
	}
	return pairs
}
