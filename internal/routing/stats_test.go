package routing

import "testing"

func TestProjectStatsActiveSelection(t *testing.T) {
	decision := DecisionResult{
		Recommended: StrategyMultiPickup,
		Active:      StrategyParallel,
		Parallel:    StrategyResult{VehicleCount: 3, TotalDistanceKm: 300, CompletionTimeHours: 2.5},
		MultiPickup: StrategyResult{VehicleCount: 1, TotalDistanceKm: 180, CompletionTimeHours: 4.5},
	}

	stats := ProjectStats(decision, 2, 250)

	if stats.TotalDistanceKm != 300 {
		t.Fatalf("distance = %v, want active strategy's 300", stats.TotalDistanceKm)
	}
	if stats.EtaMinutes != 150 {
		t.Fatalf("eta = %v min, want 150", stats.EtaMinutes)
	}
	if stats.Vehicles != 3 {
		t.Fatalf("vehicles = %d, want 3", stats.Vehicles)
	}
	if stats.OriginCount != 2 || stats.TotalQuantity != 250 {
		t.Fatalf("carried fields wrong: %+v", stats)
	}
	if stats.Recommended != StrategyMultiPickup || stats.Active != StrategyParallel {
		t.Fatalf("selection fields wrong: %+v", stats)
	}
}
