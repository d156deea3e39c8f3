package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/folyotek/folyo-erp/internal/application/dto"
	"github.com/folyotek/folyo-erp/internal/domain"
	"github.com/folyotek/folyo-erp/internal/domain/entity"
	"github.com/folyotek/folyo-erp/internal/domain/repository"
)

// MaterialUseCase CRUD for raw materials.
type MaterialUseCase struct {
	materialRepo repository.MaterialRepository
}

// NewMaterialUseCase builds the use case.
func NewMaterialUseCase(materialRepo repository.MaterialRepository) *MaterialUseCase {
	return &MaterialUseCase{materialRepo: materialRepo}
}

// Create persists a material with zero stock. Duplicate code maps to
// domain.ErrDuplicate via the unique constraint.
func (uc *MaterialUseCase) Create(ctx context.Context, in dto.CreateMaterialRequest) (*dto.MaterialResponse, error) {
	if in.Name == "" || in.Code == "" {
		return nil, domain.ErrInvalidInput
	}
	m := &entity.RawMaterial{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Code:          in.Code,
		Unit:          in.Unit,
		UnitPrice:     in.UnitPrice,
		CurrentStock:  decimal.Zero,
		MinStockLevel: in.MinStockLevel,
		CreatedAt:     time.Now().UTC(),
	}
	if err := uc.materialRepo.Create(ctx, m); err != nil {
		return nil, err
	}
	return toMaterialResponse(m), nil
}

// GetByID returns one material.
func (uc *MaterialUseCase) GetByID(ctx context.Context, id string) (*dto.MaterialResponse, error) {
	m, err := uc.materialRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	return toMaterialResponse(m), nil
}

// List returns all materials.
func (uc *MaterialUseCase) List(ctx context.Context) ([]dto.MaterialResponse, error) {
	materials, err := uc.materialRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MaterialResponse, 0, len(materials))
	for _, m := range materials {
		out = append(out, *toMaterialResponse(m))
	}
	return out, nil
}

func toMaterialResponse(m *entity.RawMaterial) *dto.MaterialResponse {
	return &dto.MaterialResponse{
		ID:            m.ID,
		Name:          m.Name,
		Code:          m.Code,
		Unit:          m.Unit,
		UnitPrice:     m.UnitPrice,
		CurrentStock:  m.CurrentStock,
		MinStockLevel: m.MinStockLevel,
		CreatedAt:     m.CreatedAt,
	}
}
