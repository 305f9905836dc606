package routing

import "transfer-route-service/internal/domain"

// AggregateLoads sums transfer quantities grouped by source store.
// Every distinct source that appears keeps an entry, including zero-quantity
// records (which contribute 0 rather than fabricating load). The sum is
// associative, so totals are identical regardless of input order.
func AggregateLoads(transfers []domain.Transfer) map[domain.StoreID]int {
	loads := make(map[domain.StoreID]int, len(transfers))
	for _, t := range transfers {
		loads[t.FromStore] += t.Quantity
	}
	return loads
}
