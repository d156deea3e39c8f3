package shipping

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/folyotek/folyo-erp/internal/application/dto"
	"github.com/folyotek/folyo-erp/internal/domain"
	"github.com/folyotek/folyo-erp/internal/domain/entity"
	"github.com/folyotek/folyo-erp/internal/domain/repository"
)

// UseCase shipment creation and delivery status tracking.
type UseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	shipmentRepo repository.ShipmentRepository
	seqRepo      repository.SequenceRepository
}

// NewUseCase builds the shipment use case.
func NewUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	shipmentRepo repository.ShipmentRepository,
	seqRepo repository.SequenceRepository,
) *UseCase {
	return &UseCase{txRunner: txRunner, productRepo: productRepo, shipmentRepo: shipmentRepo, seqRepo: seqRepo}
}

// Create commits product stock to a shipment immediately at creation, not at
// delivery. The decrement is a single conditional update committed with the
// shipment insert: insufficient stock yields ErrInsufficientStock and leaves
// the product untouched, even under concurrent writers.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateShipmentRequest, actor string) (*dto.ShipmentResponse, error) {
	if !in.Quantity.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	n, err := uc.seqRepo.NextShipmentNumber(ctx)
	if err != nil {
		return nil, err
	}

	s := &entity.Shipment{
		ID:              uuid.New().String(),
		ShipmentNumber:  formatShipmentNumber(n),
		ProductID:       in.ProductID,
		ProductName:     product.Name,
		Quantity:        in.Quantity,
		CustomerCompany: in.CustomerCompany,
		Destination:     in.Destination,
		Status:          entity.ShipmentPending,
		ShipmentDate:    in.ShipmentDate,
		InvoiceNumber:   in.InvoiceNumber,
		VehiclePlate:    in.VehiclePlate,
		DriverName:      in.DriverName,
		CreatedBy:       actor,
		CreatedAt:       time.Now().UTC(),
	}

	err = uc.txRunner.RunShipment(ctx, func(
		products repository.ProductRepository,
		shipments repository.ShipmentRepository,
	) error {
		ok, err := products.ReserveStock(ctx, s.ProductID, s.Quantity)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrInsufficientStock
		}
		return shipments.Create(ctx, s)
	})
	if err != nil {
		return nil, err
	}
	return toShipmentResponse(s), nil
}

// SetStatus updates the delivery status. Stock was committed at creation, so
// this is a pure field update with no stock side effects.
func (uc *UseCase) SetStatus(ctx context.Context, id, status string) error {
	if !entity.ValidShipmentStatus(status) {
		return domain.ErrInvalidInput
	}
	return uc.shipmentRepo.UpdateStatus(ctx, id, status)
}

// List returns shipments, newest first.
func (uc *UseCase) List(ctx context.Context, limit int) ([]dto.ShipmentResponse, error) {
	shipments, err := uc.shipmentRepo.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ShipmentResponse, 0, len(shipments))
	for _, s := range shipments {
		out = append(out, *toShipmentResponse(s))
	}
	return out, nil
}

func formatShipmentNumber(n int64) string {
	return fmt.Sprintf("SHP-%05d", n)
}

func toShipmentResponse(s *entity.Shipment) *dto.ShipmentResponse {
	return &dto.ShipmentResponse{
		ID:              s.ID,
		ShipmentNumber:  s.ShipmentNumber,
		ProductID:       s.ProductID,
		ProductName:     s.ProductName,
		Quantity:        s.Quantity,
		CustomerCompany: s.CustomerCompany,
		Destination:     s.Destination,
		Status:          s.Status,
		ShipmentDate:    s.ShipmentDate,
		InvoiceNumber:   s.InvoiceNumber,
		VehiclePlate:    s.VehiclePlate,
		DriverName:      s.DriverName,
		CreatedBy:       s.CreatedBy,
		CreatedAt:       s.CreatedAt,
	}
}
