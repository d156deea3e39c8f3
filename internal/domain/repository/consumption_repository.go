package repository

import (
	"context"

	"github.com/folyotek/folyo-erp/internal/domain/entity"
)

// ConsumptionRepository persistence port for the append-only consumption
// event stream.
type ConsumptionRepository interface {
	Create(ctx context.Context, c *entity.Consumption) error
	List(ctx context.Context, limit int) ([]*entity.Consumption, error)
}
