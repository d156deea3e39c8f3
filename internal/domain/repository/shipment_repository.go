package repository

import (
	"context"

	"github.com/folyotek/folyo-erp/internal/domain/entity"
)

// ShipmentRepository persistence port for shipments.
type ShipmentRepository interface {
	Create(ctx context.Context, s *entity.Shipment) error
	GetByID(ctx context.Context, id string) (*entity.Shipment, error)
	List(ctx context.Context, limit int) ([]*entity.Shipment, error)
	// UpdateStatus is a plain field update; stock was committed at creation.
	// Returns domain.ErrNotFound when the shipment does not exist.
	UpdateStatus(ctx context.Context, id, status string) error
}
