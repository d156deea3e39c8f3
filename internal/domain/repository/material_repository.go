package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/folyotek/folyo-erp/internal/domain/entity"
)

// MaterialRepository persistence port for raw materials. Get* methods return
// (nil, nil) when the material does not exist.
type MaterialRepository interface {
	Create(ctx context.Context, m *entity.RawMaterial) error
	GetByID(ctx context.Context, id string) (*entity.RawMaterial, error)
	GetByCode(ctx context.Context, code string) (*entity.RawMaterial, error)
	GetByName(ctx context.Context, name string) (*entity.RawMaterial, error)
	List(ctx context.Context) ([]*entity.RawMaterial, error)

	// AdjustStock applies a signed delta as a single atomic increment.
	// The quantity may go negative; sufficiency is the caller's concern.
	// Returns domain.ErrNotFound when the material does not exist.
	AdjustStock(ctx context.Context, id string, delta decimal.Decimal) error

	// ConsumeStock decrements current_stock by qty only if the remaining
	// stock covers it (single conditional update, no check-then-mutate
	// race). Returns false when stock was insufficient.
	ConsumeStock(ctx context.Context, id string, qty decimal.Decimal) (bool, error)
}
