package domain

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewRouteContextDerivesOrigins(t *testing.T) {
	locations := map[StoreID]Location{
		"dest": {ID: "dest"},
	}
	transfers := []Transfer{
		{ProductID: "product_1", FromStore: "store_2", Quantity: 5},
		{ProductID: "product_2", FromStore: "store_1", Quantity: 3},
		{ProductID: "product_3", FromStore: "store_2", Quantity: 7},
	}

	rc, err := NewRouteContext("dest", locations, transfers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Distinct origins in first-appearance order, duplicates collapsed.
	want := []StoreID{"store_2", "store_1"}
	if !reflect.DeepEqual(rc.Origins, want) {
		t.Fatalf("origins = %v, want %v", rc.Origins, want)
	}
	if rc.TotalQuantity() != 15 {
		t.Fatalf("total quantity = %d, want 15", rc.TotalQuantity())
	}
}

func TestNewRouteContextUnknownDestination(t *testing.T) {
	_, err := NewRouteContext("dest", map[StoreID]Location{}, nil)
	if !errors.Is(err, ErrUnknownDestination) {
		t.Fatalf("expected ErrUnknownDestination, got %v", err)
	}
}

func TestNewRouteContextEmptyDestination(t *testing.T) {
	if _, err := NewRouteContext("", nil, nil); err == nil {
		t.Fatal("empty destination should be rejected")
	}
}

func TestNewRouteContextNoTransfers(t *testing.T) {
	rc, err := NewRouteContext("dest", map[StoreID]Location{"dest": {ID: "dest"}}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rc.Origins) != 0 || rc.TotalQuantity() != 0 {
		t.Fatalf("empty context not empty: %+v", rc)
	}
}
