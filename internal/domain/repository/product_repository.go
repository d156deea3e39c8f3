package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/folyotek/folyo-erp/internal/domain/entity"
)

// ProductRepository persistence port for finished products.
type ProductRepository interface {
	Create(ctx context.Context, p *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)

	// AdjustStock applies a signed delta as a single atomic increment.
	// Returns domain.ErrNotFound when the product does not exist.
	AdjustStock(ctx context.Context, id string, delta decimal.Decimal) error

	// ReserveStock decrements current_stock by qty only if the stock covers
	// it. Returns false when stock was insufficient.
	ReserveStock(ctx context.Context, id string, qty decimal.Decimal) (bool, error)
}
