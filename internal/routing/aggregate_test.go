package routing

import (
	"testing"

	"transfer-route-service/internal/domain"
)

func TestAggregateLoadsSumsByOrigin(t *testing.T) {
	transfers := []domain.Transfer{
		{ProductID: "product_1", FromStore: "store_1", Quantity: 40},
		{ProductID: "product_2", FromStore: "store_1", Quantity: 25},
		{ProductID: "product_1", FromStore: "store_2", Quantity: 10},
	}

	loads := AggregateLoads(transfers)

	if len(loads) != 2 {
		t.Fatalf("expected 2 origins, got %d", len(loads))
	}
	if loads["store_1"] != 65 {
		t.Fatalf("store_1 load = %d, want 65", loads["store_1"])
	}
	if loads["store_2"] != 10 {
		t.Fatalf("store_2 load = %d, want 10", loads["store_2"])
	}
}

func TestAggregateLoadsPreservesTotal(t *testing.T) {
	transfers := []domain.Transfer{
		{FromStore: "store_1", Quantity: 7},
		{FromStore: "store_2", Quantity: 13},
		{FromStore: "store_3", Quantity: 5},
		{FromStore: "store_1", Quantity: 11},
	}

	want := 0
	for _, tr := range transfers {
		want += tr.Quantity
	}

	got := 0
	for _, q := range AggregateLoads(transfers) {
		got += q
	}

	if got != want {
		t.Fatalf("aggregated total = %d, want %d", got, want)
	}
}

func TestAggregateLoadsOrderIndependent(t *testing.T) {
	forward := []domain.Transfer{
		{FromStore: "store_1", Quantity: 3},
		{FromStore: "store_2", Quantity: 8},
		{FromStore: "store_1", Quantity: 4},
	}
	reversed := []domain.Transfer{forward[2], forward[1], forward[0]}

	a := AggregateLoads(forward)
	b := AggregateLoads(reversed)

	for origin, q := range a {
		if b[origin] != q {
			t.Fatalf("origin %s: forward=%d reversed=%d", origin, q, b[origin])
		}
	}
}

func TestAggregateLoadsZeroQuantityKeepsOrigin(t *testing.T) {
	transfers := []domain.Transfer{
		{FromStore: "store_1", Quantity: 0},
	}

	loads := AggregateLoads(transfers)

	q, ok := loads["store_1"]
	if !ok {
		t.Fatal("zero-quantity origin should still appear")
	}
	if q != 0 {
		t.Fatalf("store_1 load = %d, want 0", q)
	}
}

func TestAggregateLoadsEmpty(t *testing.T) {
	if loads := AggregateLoads(nil); len(loads) != 0 {
		t.Fatalf("expected empty map, got %v", loads)
	}
}
