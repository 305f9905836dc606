package ports

import (
	"context"

	"transfer-route-service/internal/domain"
)

// Port: a boundary for retrieving geocoded store locations.
type LocationRepository interface {
	// Return every known store location keyed by store id.
	ListLocations(ctx context.Context) (map[domain.StoreID]domain.Location, error)
}
