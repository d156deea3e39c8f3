package production

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/folyotek/folyo-erp/internal/application/dto"
	"github.com/folyotek/folyo-erp/internal/domain"
	"github.com/folyotek/folyo-erp/internal/domain/entity"
	"github.com/folyotek/folyo-erp/internal/domain/repository"
)

// ConsumptionUseCase records manual material consumption against a
// production order.
type ConsumptionUseCase struct {
	txRunner        ConsumptionTxRunner
	materialRepo    repository.MaterialRepository
	consumptionRepo repository.ConsumptionRepository
}

// NewConsumptionUseCase builds the use case.
func NewConsumptionUseCase(txRunner ConsumptionTxRunner, materialRepo repository.MaterialRepository, consumptionRepo repository.ConsumptionRepository) *ConsumptionUseCase {
	return &ConsumptionUseCase{txRunner: txRunner, materialRepo: materialRepo, consumptionRepo: consumptionRepo}
}

// Record depletes material stock and appends the consumption event. The
// decrement is a single conditional update (only if current_stock covers the
// quantity), committed together with the event insert — an insufficient
// balance therefore yields ErrInsufficientStock with no event and no stock
// change, even under concurrent writers.
//
// The material name is snapshotted into the event; reporting reads the
// snapshot so later renames do not rewrite history.
func (uc *ConsumptionUseCase) Record(ctx context.Context, in dto.CreateConsumptionRequest, actor string) (*dto.ConsumptionResponse, error) {
	if !in.Quantity.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	material, err := uc.materialRepo.GetByID(ctx, in.MaterialID)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.ErrNotFound
	}

	c := &entity.Consumption{
		ID:              uuid.New().String(),
		ProductionRefID: in.ProductionOrderID,
		MaterialID:      in.MaterialID,
		MaterialName:    material.Name,
		Quantity:        in.Quantity,
		CreatedBy:       actor,
		CreatedAt:       time.Now().UTC(),
	}

	err = uc.txRunner.RunConsumption(ctx, func(
		materials repository.MaterialRepository,
		consumptions repository.ConsumptionRepository,
	) error {
		ok, err := materials.ConsumeStock(ctx, c.MaterialID, c.Quantity)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrInsufficientStock
		}
		return consumptions.Create(ctx, c)
	})
	if err != nil {
		return nil, err
	}
	return toConsumptionResponse(c), nil
}

// List returns consumption events, newest first.
func (uc *ConsumptionUseCase) List(ctx context.Context, limit int) ([]dto.ConsumptionResponse, error) {
	consumptions, err := uc.consumptionRepo.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ConsumptionResponse, 0, len(consumptions))
	for _, c := range consumptions {
		out = append(out, *toConsumptionResponse(c))
	}
	return out, nil
}

func toConsumptionResponse(c *entity.Consumption) *dto.ConsumptionResponse {
	return &dto.ConsumptionResponse{
		ID:                c.ID,
		ProductionOrderID: c.ProductionRefID,
		MaterialID:        c.MaterialID,
		MaterialName:      c.MaterialName,
		Quantity:          c.Quantity,
		CreatedBy:         c.CreatedBy,
		CreatedAt:         c.CreatedAt,
	}
}
