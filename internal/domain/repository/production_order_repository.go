package repository

import (
	"context"
	"time"

	"github.com/folyotek/folyo-erp/internal/domain/entity"
)

// ProductionOrderRepository persistence port for production orders.
type ProductionOrderRepository interface {
	Create(ctx context.Context, o *entity.ProductionOrder) error
	GetByID(ctx context.Context, id string) (*entity.ProductionOrder, error)
	// GetForUpdate locks the order row (SELECT FOR UPDATE) so a status
	// transition and its stock side effect commit atomically.
	GetForUpdate(ctx context.Context, id string) (*entity.ProductionOrder, error)
	List(ctx context.Context, limit int) ([]*entity.ProductionOrder, error)
	UpdateStatus(ctx context.Context, id, status string, completedDate *time.Time) error
}
