package services

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/atomic"

	"transfer-route-service/internal/domain"
	"transfer-route-service/internal/platform/metrics"
	"transfer-route-service/internal/ports"
	"transfer-route-service/internal/routing"
)

// RouteService owns the per-destination optimization state. Each destination
// gets a session holding the operator's pinned mode and the latest computed
// snapshot; every input change (fresh data, override toggle) recomputes and
// swaps the whole snapshot atomically. Selecting a destination the operator
// never pinned starts from Auto, so a context switch always yields the
// heuristic's fresh recommendation.
type RouteService struct {
	cfg       routing.Config
	locations ports.LocationRepository
	transfers ports.TransferRepository
	geometry  ports.GeometryProvider

	mu       sync.Mutex
	sessions map[domain.StoreID]*routeSession
}

type routeSession struct {
	version  atomic.Uint64
	override atomic.String
	view     atomic.Pointer[RouteView]
}

func NewRouteService(
	cfg routing.Config,
	locations ports.LocationRepository,
	transfers ports.TransferRepository,
	geometry ports.GeometryProvider,
) *RouteService {
	return &RouteService{
		cfg:       cfg,
		locations: locations,
		transfers: transfers,
		geometry:  geometry,
		sessions:  make(map[domain.StoreID]*routeSession),
	}
}

func (s *RouteService) session(destination domain.StoreID) *routeSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[destination]
	if !ok {
		sess = &routeSession{}
		sess.override.Store(string(routing.ModeAuto))
		s.sessions[destination] = sess
	}
	return sess
}

// Destinations lists the stores with pending inbound transfers.
func (s *RouteService) Destinations(ctx context.Context) ([]domain.StoreID, error) {
	dests, err := s.transfers.ListDestinations(ctx)
	if err != nil {
		return nil, fmt.Errorf("route service: %w", err)
	}
	return dests, nil
}

// Locations returns every known store location.
func (s *RouteService) Locations(ctx context.Context) (map[domain.StoreID]domain.Location, error) {
	locs, err := s.locations.ListLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("route service: %w", err)
	}
	return locs, nil
}

// View loads the current context for a destination, recomputes the decision
// under the session's override, and publishes the result as the new snapshot.
func (s *RouteService) View(ctx context.Context, destination domain.StoreID) (*RouteView, error) {
	locs, err := s.locations.ListLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("route view: %w", err)
	}

	transfers, err := s.transfers.ListTransfers(ctx, destination)
	if err != nil {
		return nil, fmt.Errorf("route view: %w", err)
	}

	rc, err := domain.NewRouteContext(destination, locs, transfers)
	if err != nil {
		return nil, fmt.Errorf("route view: %w", err)
	}

	sess := s.session(destination)
	override := routing.Mode(sess.override.Load())

	view, err := PlanRoute(s.cfg, rc, override)
	if err != nil {
		return nil, fmt.Errorf("route view: %w", err)
	}

	// Publishing under a fresh version invalidates any geometry fetch still
	// in flight for the previous context.
	view.Version = sess.version.Inc()
	sess.view.Store(view)

	metrics.RouteDecisions.WithLabelValues(string(view.Decision.Recommended)).Inc()

	return view, nil
}

// SetMode pins or releases the operator override for a destination and
// recomputes the snapshot. The mode must already be validated at the boundary;
// an unknown value still fails here rather than being coerced.
func (s *RouteService) SetMode(ctx context.Context, destination domain.StoreID, mode routing.Mode) (*RouteView, error) {
	if _, err := routing.ParseMode(string(mode)); err != nil {
		return nil, fmt.Errorf("set mode: %w", err)
	}

	sess := s.session(destination)
	sess.override.Store(string(mode))

	view, err := s.View(ctx, destination)
	if err != nil {
		return nil, fmt.Errorf("set mode: %w", err)
	}
	return view, nil
}
