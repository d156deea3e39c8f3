package repository

import "context"

// SequenceRepository hands out monotonically increasing numbers for order and
// shipment labels. Backed by dedicated database sequences, so concurrent
// creations never observe the same value (count-then-format is not used).
type SequenceRepository interface {
	NextProductionOrderNumber(ctx context.Context) (int64, error)
	NextShipmentNumber(ctx context.Context) (int64, error)
}
