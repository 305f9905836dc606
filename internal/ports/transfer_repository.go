package ports

import (
	"context"

	"transfer-route-service/internal/domain"
)

// Port: a boundary for retrieving pending inter-store transfers produced by
// the rebalancing pipeline.
type TransferRepository interface {
	// Return the distinct destination stores with pending transfers, sorted.
	ListDestinations(ctx context.Context) ([]domain.StoreID, error)
	// Return all transfers headed to one destination, in stable order.
	ListTransfers(ctx context.Context, destination domain.StoreID) ([]domain.Transfer, error)
}
