package shipping

import (
	"context"

	"github.com/folyotek/folyo-erp/internal/domain/repository"
)

// TxRunner runs the conditional product stock decrement and the shipment
// insert in one database transaction. Implemented by postgres.TxRunner.
type TxRunner interface {
	RunShipment(ctx context.Context, fn func(
		products repository.ProductRepository,
		shipments repository.ShipmentRepository,
	) error) error
}
