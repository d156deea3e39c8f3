package production_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folyotek/folyo-erp/internal/application/dto"
	"github.com/folyotek/folyo-erp/internal/application/production"
	"github.com/folyotek/folyo-erp/internal/domain"
	"github.com/folyotek/folyo-erp/internal/domain/entity"
)

func newConsumptionUC(materials *fakeMaterialRepo) (*production.ConsumptionUseCase, *fakeConsumptionRepo) {
	consumptions := &fakeConsumptionRepo{}
	runner := &fakeTxRunner{materials: materials, consumptions: consumptions}
	return production.NewConsumptionUseCase(runner, materials, consumptions), consumptions
}

func TestConsumptionRecord_DepletesStockAndAppendsEvent(t *testing.T) {
	materials := newFakeMaterialRepo(&entity.RawMaterial{
		ID: "mat-1", Name: "Granule A", Code: "GRA001",
		CurrentStock: decimal.NewFromInt(100),
	})
	uc, consumptions := newConsumptionUC(materials)

	out, err := uc.Record(context.Background(), dto.CreateConsumptionRequest{
		ProductionOrderID: "ord-1",
		MaterialID:        "mat-1",
		Quantity:          decimal.NewFromInt(30),
	}, "operator")
	require.NoError(t, err)

	assert.Equal(t, "Granule A", out.MaterialName, "material name must be snapshotted")
	assert.Equal(t, "ord-1", out.ProductionOrderID)
	assert.True(t, materials.materials["mat-1"].CurrentStock.Equal(decimal.NewFromInt(70)))
	require.Len(t, consumptions.consumptions, 1)
	assert.Equal(t, "operator", consumptions.consumptions[0].CreatedBy)
}

func TestConsumptionRecord_InsufficientStock(t *testing.T) {
	materials := newFakeMaterialRepo(&entity.RawMaterial{
		ID: "mat-1", Name: "Granule A", CurrentStock: decimal.NewFromInt(10),
	})
	uc, consumptions := newConsumptionUC(materials)

	_, err := uc.Record(context.Background(), dto.CreateConsumptionRequest{
		ProductionOrderID: "ord-1",
		MaterialID:        "mat-1",
		Quantity:          decimal.NewFromInt(11),
	}, "operator")
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.True(t, materials.materials["mat-1"].CurrentStock.Equal(decimal.NewFromInt(10)),
		"failed consumption must not change stock")
	assert.Empty(t, consumptions.consumptions, "failed consumption must not append an event")
}

func TestConsumptionRecord_ExactBalanceSucceeds(t *testing.T) {
	materials := newFakeMaterialRepo(&entity.RawMaterial{
		ID: "mat-1", Name: "Granule A", CurrentStock: decimal.NewFromInt(10),
	})
	uc, _ := newConsumptionUC(materials)

	_, err := uc.Record(context.Background(), dto.CreateConsumptionRequest{
		ProductionOrderID: "ord-1",
		MaterialID:        "mat-1",
		Quantity:          decimal.NewFromInt(10),
	}, "operator")
	require.NoError(t, err)
	assert.True(t, materials.materials["mat-1"].CurrentStock.IsZero())
}

func TestConsumptionRecord_UnknownMaterial(t *testing.T) {
	uc, _ := newConsumptionUC(newFakeMaterialRepo())

	_, err := uc.Record(context.Background(), dto.CreateConsumptionRequest{
		ProductionOrderID: "ord-1",
		MaterialID:        "nope",
		Quantity:          decimal.NewFromInt(1),
	}, "operator")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestConsumptionRecord_RejectsNonPositiveQuantity(t *testing.T) {
	uc, _ := newConsumptionUC(newFakeMaterialRepo())

	for _, qty := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		_, err := uc.Record(context.Background(), dto.CreateConsumptionRequest{
			ProductionOrderID: "ord-1",
			MaterialID:        "mat-1",
			Quantity:          qty,
		}, "operator")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}
