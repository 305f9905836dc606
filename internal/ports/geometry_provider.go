package ports

import (
	"context"

	"transfer-route-service/internal/domain"
)

// Contract for retrieving drawable road geometry for one leg from a
// directions service. Implementations must be safe for concurrent use: the
// map layer fetches legs independently and in parallel.
type GeometryProvider interface {
	// Return the road polyline between two located stores.
	FetchLeg(ctx context.Context, from, to domain.Location) (domain.LegGeometry, error)
}
