package geometry

import (
	"context"
	"fmt"

	"transfer-route-service/internal/domain"
)

type MockLeg struct {
	From, To domain.StoreID
	Points   []domain.GeoPoint
	Km       float64
}

// MockGeometryProvider serves canned leg geometries for tests. Pairs that
// were not registered return an error, which exercises the straight-line
// fallback path.
type MockGeometryProvider struct {
	m map[string]domain.LegGeometry
}

func NewMockGeometryProvider(legs []MockLeg) *MockGeometryProvider {
	m := make(map[string]domain.LegGeometry, len(legs))
	for _, l := range legs {
		m[string(l.From)+"|"+string(l.To)] = domain.LegGeometry{
			From:       l.From,
			To:         l.To,
			Points:     l.Points,
			DistanceKm: l.Km,
		}
	}
	return &MockGeometryProvider{m: m}
}

func (p *MockGeometryProvider) FetchLeg(ctx context.Context, from, to domain.Location) (domain.LegGeometry, error) {
	g, ok := p.m[string(from.ID)+"|"+string(to.ID)]
	if !ok {
		return domain.LegGeometry{}, fmt.Errorf("missing leg %q -> %q", from.ID, to.ID)
	}

	return g, nil
}
