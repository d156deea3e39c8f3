package production

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

// OrderUseCase production order lifecycle: creation, listing and the
// planned -> in_progress -> completed/cancelled state machine.
type OrderUseCase struct {
	txRunner    OrderTxRunner
	orderRepo   repository.ProductionOrderRepository
	productRepo repository.ProductRepository
	seqRepo     repository.SequenceRepository
}

// NewOrderUseCase builds the use case.
func NewOrderUseCase(
	txRunner OrderTxRunner,
	orderRepo repository.ProductionOrderRepository,
	productRepo repository.ProductRepository,
	seqRepo repository.SequenceRepository,
) *OrderUseCase {
	return &OrderUseCase{txRunner: txRunner, orderRepo: orderRepo, productRepo: productRepo, seqRepo: seqRepo}
}

// Create plans a new order in status planned. The order number comes from a
// dedicated atomic sequence, so concurrent creations never collide.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest, actor string) (*dto.OrderResponse, error) {
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
	n, err := uc.seqRepo.NextProductionOrderNumber(ctx)
	if err != nil {
		return nil, err
	}
	o := &entity.ProductionOrder{
		ID:          uuid.New().String(),
		OrderNumber: formatOrderNumber(n),
		ProductID:   in.ProductID,
		ProductName: product.Name,
		Quantity:    in.Quantity,
		Status:      entity.OrderPlanned,
		PlannedDate: in.PlannedDate,
		CreatedBy:   actor,
		CreatedAt:   time.Now().UTC(),
	}
	if err := uc.orderRepo.Create(ctx, o); err != nil {
		return nil, err
	}
	return toOrderResponse(o), nil
}

// SetStatus moves an order through its lifecycle. The order row is locked for
// the duration of the transaction, so the completion credit commits together
// with the status change and retried requests cannot double-credit stock:
// re-sending the current status is a no-op, and transitions out of a terminal
// state return ErrConflict.
func (uc *OrderUseCase) SetStatus(ctx context.Context, id, status string) (*dto.OrderResponse, error) {
	if !entity.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidInput
	}

	var result *entity.ProductionOrder
	err := uc.txRunner.RunOrderStatus(ctx, func(
		orders repository.ProductionOrderRepository,
		products repository.ProductRepository,
	) error {
		o, err := orders.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if o == nil {
			return domain.ErrNotFound
		}
		if o.Status == status {
			// Idempotent retry: nothing to apply.
			result = o
			return nil
		}
		if !entity.CanTransitionOrder(o.Status, status) {
			return domain.ErrConflict
		}

		var completedDate *time.Time
		if status == entity.OrderCompleted {
			now := time.Now().UTC()
			completedDate = &now
		}
		if err := orders.UpdateStatus(ctx, o.ID, status, completedDate); err != nil {
			return err
		}
		if status == entity.OrderCompleted {
			// Exactly once per transition into completed.
			if err := products.AdjustStock(ctx, o.ProductID, o.Quantity); err != nil {
				return err
			}
		}
		o.Status = status
		o.CompletedDate = completedDate
		result = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(result), nil
}

// List returns orders, newest first.
func (uc *OrderUseCase) List(ctx context.Context, limit int) ([]dto.OrderResponse, error) {
	orders, err := uc.orderRepo.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, *toOrderResponse(o))
	}
	return out, nil
}

func formatOrderNumber(n int64) string {
	return fmt.Sprintf("PRD-%05d", n)
}

func toOrderResponse(o *entity.ProductionOrder) *dto.OrderResponse {
	return &dto.OrderResponse{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		ProductID:     o.ProductID,
		ProductName:   o.ProductName,
		Quantity:      o.Quantity,
		Status:        o.Status,
		PlannedDate:   o.PlannedDate,
		CompletedDate: o.CompletedDate,
		CreatedBy:     o.CreatedBy,
		CreatedAt:     o.CreatedAt,
	}
}
