package domain

import (
	"errors"
	"fmt"
)

// ErrUnknownDestination rejects contexts whose destination has no location
// entry: with nowhere to route toward, the context is structurally invalid
// (unlike missing origin locations, which only degrade individual legs).
var ErrUnknownDestination = errors.New("destination has no location entry")

// RouteContext is the aggregate input to one optimization run: the selected
// destination, the transfers pending toward it, and the known store locations.
// Constructed once per destination selection and read-only afterward.
type RouteContext struct {
	Destination StoreID
	Origins     []StoreID
	Locations   map[StoreID]Location
	Transfers   []Transfer
}

// NewRouteContext builds a validated context. Origins are derived from the
// distinct from_store values in transfer order; a caller-supplied origin list
// is ignored for grouping since the transfers are authoritative.
// A destination with no location entry is a structural error (there is nothing
// to route toward); missing origin locations merely degrade individual legs.
func NewRouteContext(destination StoreID, locations map[StoreID]Location, transfers []Transfer) (*RouteContext, error) {
	if destination == "" {
		return nil, fmt.Errorf("route context: destination must be non-empty")
	}
	if _, ok := locations[destination]; !ok {
		return nil, fmt.Errorf("route context: destination %q: %w", destination, ErrUnknownDestination)
	}

	seen := make(map[StoreID]struct{}, len(transfers))
	origins := make([]StoreID, 0, len(transfers))
	for _, t := range transfers {
		if _, ok := seen[t.FromStore]; ok {
			continue
		}
		seen[t.FromStore] = struct{}{}
		origins = append(origins, t.FromStore)
	}

	return &RouteContext{
		Destination: destination,
		Origins:     origins,
		Locations:   locations,
		Transfers:   transfers,
	}, nil
}

// TotalQuantity sums units across all transfers in the context.
func (c *RouteContext) TotalQuantity() int {
	total := 0
	for _, t := range c.Transfers {
		total += t.Quantity
	}
	return total
}
