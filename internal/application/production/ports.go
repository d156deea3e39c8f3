package production

import (
	"context"

	"github.com/folyotek/folyo-erp/internal/domain/repository"
)

// ConsumptionTxRunner runs the conditional stock decrement and the
// consumption insert in one database transaction. Implemented by
// postgres.TxRunner.
type ConsumptionTxRunner interface {
	RunConsumption(ctx context.Context, fn func(
		materials repository.MaterialRepository,
		consumptions repository.ConsumptionRepository,
	) error) error
}

// OrderTxRunner runs a production order status transition with the order row
// locked, so the completion stock credit commits with the status change.
// Implemented by postgres.TxRunner.
type OrderTxRunner interface {
	RunOrderStatus(ctx context.Context, fn func(
		orders repository.ProductionOrderRepository,
		products repository.ProductRepository,
	) error) error
}
