package repository

import (
	"context"

	"github.com/folyotek/folyo-erp/internal/domain/entity"
)

// ManufacturingRepository persistence port for production run records.
type ManufacturingRepository interface {
	Create(ctx context.Context, r *entity.ManufacturingRecord) error
	GetByID(ctx context.Context, id string) (*entity.ManufacturingRecord, error)
	// List returns records ordered by production date, newest first.
	List(ctx context.Context, limit int) ([]*entity.ManufacturingRecord, error)
	Update(ctx context.Context, r *entity.ManufacturingRecord) error
	// Delete removes the record only; consumption events stay untouched.
	Delete(ctx context.Context, id string) error
}
