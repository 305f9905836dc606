package domain

// Represents one pending inter-store transfer: a quantity of a single
// product moving from a source store toward the selected destination.
// RoadKm is informational only (carried from the rebalancing pipeline);
// routing decisions recompute distances from coordinates.
type Transfer struct {
	ProductID string
	FromStore StoreID
	Quantity  int
	RoadKm    float64
}
