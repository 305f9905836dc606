package services

import (
	"context"
	"errors"
	"testing"

	"transfer-route-service/internal/domain"
	"transfer-route-service/internal/routing"
)

type fakeLocationRepo struct {
	locs map[domain.StoreID]domain.Location
}

func (r *fakeLocationRepo) ListLocations(ctx context.Context) (map[domain.StoreID]domain.Location, error) {
	return r.locs, nil
}

type fakeTransferRepo struct {
	dests     []domain.StoreID
	transfers map[domain.StoreID][]domain.Transfer
}

func (r *fakeTransferRepo) ListDestinations(ctx context.Context) ([]domain.StoreID, error) {
	return r.dests, nil
}

func (r *fakeTransferRepo) ListTransfers(ctx context.Context, destination domain.StoreID) ([]domain.Transfer, error) {
	return r.transfers[destination], nil
}

// testService wires a service over a small two-origin scenario: store_1 sits
// ~111 km from dest, store_2 ~222 km, with 170 units pending in total.
func testService() *RouteService {
	locs := &fakeLocationRepo{locs: map[domain.StoreID]domain.Location{
		"dest":    {ID: "dest", Lat: 0, Lon: 0},
		"dest_2":  {ID: "dest_2", Lat: 1, Lon: 0},
		"store_1": {ID: "store_1", Lat: 0, Lon: 1},
		"store_2": {ID: "store_2", Lat: 0, Lon: 2},
	}}
	transfers := &fakeTransferRepo{
		dests: []domain.StoreID{"dest", "dest_2"},
		transfers: map[domain.StoreID][]domain.Transfer{
			"dest": {
				{ProductID: "product_1", FromStore: "store_1", Quantity: 50},
				{ProductID: "product_2", FromStore: "store_2", Quantity: 120},
			},
			"dest_2": {
				{ProductID: "product_1", FromStore: "store_1", Quantity: 10},
			},
		},
	}

	return NewRouteService(routing.DefaultConfig(), locs, transfers, nil)
}

func TestRouteServiceView(t *testing.T) {
	svc := testService()

	view, err := svc.View(context.Background(), "dest")
	if err != nil {
		t.Fatalf("view failed: %v", err)
	}

	// Parallel's slowest leg equals the chain's total time here, so the
	// grace period keeps the single truck.
	if view.Decision.Recommended != routing.StrategyMultiPickup {
		t.Fatalf("recommended = %s, want multi-pickup", view.Decision.Recommended)
	}
	if view.Decision.Active != view.Decision.Recommended {
		t.Fatalf("active = %s under auto, want %s", view.Decision.Active, view.Decision.Recommended)
	}
	if view.Override != routing.ModeAuto {
		t.Fatalf("fresh session override = %s, want auto", view.Override)
	}

	if view.Stats.OriginCount != 2 || view.Stats.TotalQuantity != 170 {
		t.Fatalf("stats = %+v, want 2 origins / 170 units", view.Stats)
	}
	if view.Loads["store_2"] != 120 {
		t.Fatalf("store_2 load = %d, want 120", view.Loads["store_2"])
	}

	if view.Version != 1 {
		t.Fatalf("first view version = %d, want 1", view.Version)
	}

	second, err := svc.View(context.Background(), "dest")
	if err != nil {
		t.Fatalf("second view failed: %v", err)
	}
	if second.Version != 2 {
		t.Fatalf("second view version = %d, want 2", second.Version)
	}
}

func TestRouteServiceSetMode(t *testing.T) {
	svc := testService()
	ctx := context.Background()

	pinned, err := svc.SetMode(ctx, "dest", routing.ModeParallel)
	if err != nil {
		t.Fatalf("set mode failed: %v", err)
	}
	if pinned.Decision.Active != routing.StrategyParallel {
		t.Fatalf("active = %s, want pinned parallel", pinned.Decision.Active)
	}
	if pinned.Decision.Recommended != routing.StrategyMultiPickup {
		t.Fatalf("recommended = %s, pin must not change it", pinned.Decision.Recommended)
	}

	// The pin sticks across later views of the same destination.
	again, err := svc.View(ctx, "dest")
	if err != nil {
		t.Fatalf("view after pin failed: %v", err)
	}
	if again.Override != routing.ModeParallel || again.Decision.Active != routing.StrategyParallel {
		t.Fatalf("pin did not persist: override=%s active=%s", again.Override, again.Decision.Active)
	}

	released, err := svc.SetMode(ctx, "dest", routing.ModeAuto)
	if err != nil {
		t.Fatalf("release failed: %v", err)
	}
	if released.Decision.Active != routing.StrategyMultiPickup {
		t.Fatalf("active after release = %s, want recommendation", released.Decision.Active)
	}
}

func TestRouteServiceSetModeRejectsUnknown(t *testing.T) {
	svc := testService()

	_, err := svc.SetMode(context.Background(), "dest", routing.Mode("fastest"))
	if !errors.Is(err, routing.ErrInvalidMode) {
		t.Fatalf("expected ErrInvalidMode, got %v", err)
	}

	// The rejected value must not leak into the session.
	view, err := svc.View(context.Background(), "dest")
	if err != nil {
		t.Fatalf("view failed: %v", err)
	}
	if view.Override != routing.ModeAuto {
		t.Fatalf("override = %s after rejected set, want auto", view.Override)
	}
}

func TestRouteServiceSessionsAreIndependent(t *testing.T) {
	svc := testService()
	ctx := context.Background()

	if _, err := svc.SetMode(ctx, "dest", routing.ModeParallel); err != nil {
		t.Fatalf("set mode failed: %v", err)
	}

	other, err := svc.View(ctx, "dest_2")
	if err != nil {
		t.Fatalf("view failed: %v", err)
	}
	if other.Override != routing.ModeAuto {
		t.Fatalf("dest_2 override = %s, want auto despite dest pin", other.Override)
	}
}

func TestRouteServiceViewUnknownDestination(t *testing.T) {
	svc := testService()

	_, err := svc.View(context.Background(), "nowhere")
	if !errors.Is(err, domain.ErrUnknownDestination) {
		t.Fatalf("expected ErrUnknownDestination, got %v", err)
	}
}

func TestRouteServiceDestinations(t *testing.T) {
	svc := testService()

	dests, err := svc.Destinations(context.Background())
	if err != nil {
		t.Fatalf("destinations failed: %v", err)
	}
	if len(dests) != 2 || dests[0] != "dest" || dests[1] != "dest_2" {
		t.Fatalf("destinations = %v, want [dest dest_2]", dests)
	}
}
