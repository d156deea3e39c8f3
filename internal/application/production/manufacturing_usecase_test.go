package production_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folyotek/folyo-erp/internal/application/dto"
	"github.com/folyotek/folyo-erp/internal/application/production"
	"github.com/folyotek/folyo-erp/internal/domain"
	"github.com/folyotek/folyo-erp/internal/domain/entity"
	"github.com/folyotek/folyo-erp/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "development", Level: "error"})
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func validInput() dto.ManufacturingInput {
	return dto.ManufacturingInput{
		ProductionDate:   time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Machine:          entity.Machine1,
		ThicknessMM:      dec("0.5"),
		WidthCM:          dec("100"),
		LengthM:          dec("2"),
		Quantity:         5,
		MasuraType:       entity.Masura100,
		MasuraQuantity:   5,
		GasConsumptionKG: dec("3.5"),
	}
}

func TestManufacturingCreate_DerivesFields(t *testing.T) {
	records := newFakeManufacturingRepo()
	materials := newFakeMaterialRepo()
	uc := production.NewManufacturingUseCase(records, materials, &fakeConsumptionRepo{}, testLogger())

	out, err := uc.Create(context.Background(), validInput(), "operator")
	require.NoError(t, err)

	assert.True(t, out.SquareMeters.Equal(dec("10")), "(100/100)*2*5 = 10, got %s", out.SquareMeters)
	assert.Equal(t, "0.5 mm x 100 cm x 2 m", out.Model)
	assert.Equal(t, "operator", out.CreatedBy)
	assert.Len(t, records.records, 1)
}

func TestManufacturingCreate_PostsSpoolAndGasConsumption(t *testing.T) {
	spool := &entity.RawMaterial{ID: "mat-spool", Name: entity.Masura100, CurrentStock: decimal.NewFromInt(50)}
	gas := &entity.RawMaterial{ID: "mat-gas", Name: "LPG", Code: entity.GasMaterialCode, CurrentStock: decimal.NewFromInt(200)}
	materials := newFakeMaterialRepo(spool, gas)
	consumptions := &fakeConsumptionRepo{}
	uc := production.NewManufacturingUseCase(newFakeManufacturingRepo(), materials, consumptions, testLogger())

	out, err := uc.Create(context.Background(), validInput(), "operator")
	require.NoError(t, err)

	assert.True(t, spool.CurrentStock.Equal(decimal.NewFromInt(45)), "5 spools consumed")
	assert.True(t, gas.CurrentStock.Equal(dec("196.5")), "3.5 kg gas consumed")

	require.Len(t, consumptions.consumptions, 2)
	for _, c := range consumptions.consumptions {
		assert.Equal(t, out.ID, c.ProductionRefID, "events must reference the run")
	}
}

func TestManufacturingCreate_SkipsMissingAuxMaterials(t *testing.T) {
	// Neither the spool material nor GAZ001 exist; the record must still be
	// created and no event posted.
	materials := newFakeMaterialRepo()
	consumptions := &fakeConsumptionRepo{}
	records := newFakeManufacturingRepo()
	uc := production.NewManufacturingUseCase(records, materials, consumptions, testLogger())

	_, err := uc.Create(context.Background(), validInput(), "operator")
	require.NoError(t, err)
	assert.Len(t, records.records, 1)
	assert.Empty(t, consumptions.consumptions)
}

func TestManufacturingCreate_SkipsInsufficientSpoolStock(t *testing.T) {
	spool := &entity.RawMaterial{ID: "mat-spool", Name: entity.Masura100, CurrentStock: decimal.NewFromInt(2)}
	materials := newFakeMaterialRepo(spool)
	consumptions := &fakeConsumptionRepo{}
	uc := production.NewManufacturingUseCase(newFakeManufacturingRepo(), materials, consumptions, testLogger())

	_, err := uc.Create(context.Background(), validInput(), "operator")
	require.NoError(t, err, "insufficient auxiliary stock must not fail the run")

	assert.True(t, spool.CurrentStock.Equal(decimal.NewFromInt(2)), "partial decrements are not allowed")
	assert.Empty(t, consumptions.consumptions)
}

func TestManufacturingCreate_NoSpoolSentinel(t *testing.T) {
	spool := &entity.RawMaterial{ID: "mat-spool", Name: entity.Masura100, CurrentStock: decimal.NewFromInt(50)}
	materials := newFakeMaterialRepo(spool)
	uc := production.NewManufacturingUseCase(newFakeManufacturingRepo(), materials, &fakeConsumptionRepo{}, testLogger())

	in := validInput()
	in.MasuraType = entity.MasuraNone
	in.MasuraQuantity = 0
	in.GasConsumptionKG = decimal.Zero

	_, err := uc.Create(context.Background(), in, "operator")
	require.NoError(t, err)
	assert.True(t, spool.CurrentStock.Equal(decimal.NewFromInt(50)), "sentinel spool type must not consume anything")
}

func TestManufacturingCreate_SnapshotsColorName(t *testing.T) {
	color := &entity.RawMaterial{ID: "mat-color", Name: "Masterbatch Red", CurrentStock: decimal.NewFromInt(1)}
	materials := newFakeMaterialRepo(color)
	uc := production.NewManufacturingUseCase(newFakeManufacturingRepo(), materials, &fakeConsumptionRepo{}, testLogger())

	in := validInput()
	in.ColorMaterialID = "mat-color"

	out, err := uc.Create(context.Background(), in, "operator")
	require.NoError(t, err)
	assert.Equal(t, "Masterbatch Red", out.ColorName)
}

func TestManufacturingCreate_Validation(t *testing.T) {
	uc := production.NewManufacturingUseCase(newFakeManufacturingRepo(), newFakeMaterialRepo(), &fakeConsumptionRepo{}, testLogger())

	cases := []struct {
		name   string
		mutate func(*dto.ManufacturingInput)
	}{
		{"unknown machine", func(in *dto.ManufacturingInput) { in.Machine = "Makine 3" }},
		{"unknown masura type", func(in *dto.ManufacturingInput) { in.MasuraType = "Masura 300" }},
		{"zero quantity", func(in *dto.ManufacturingInput) { in.Quantity = 0 }},
		{"negative width", func(in *dto.ManufacturingInput) { in.WidthCM = dec("-100") }},
		{"negative gas", func(in *dto.ManufacturingInput) { in.GasConsumptionKG = dec("-1") }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			_, err := uc.Create(context.Background(), in, "operator")
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestManufacturingUpdate_RecomputesWithoutReconsuming(t *testing.T) {
	spool := &entity.RawMaterial{ID: "mat-spool", Name: entity.Masura100, CurrentStock: decimal.NewFromInt(50)}
	materials := newFakeMaterialRepo(spool)
	consumptions := &fakeConsumptionRepo{}
	uc := production.NewManufacturingUseCase(newFakeManufacturingRepo(), materials, consumptions, testLogger())

	created, err := uc.Create(context.Background(), validInput(), "operator")
	require.NoError(t, err)
	eventsAfterCreate := len(consumptions.consumptions)
	stockAfterCreate := spool.CurrentStock

	in := validInput()
	in.WidthCM = dec("150")
	in.MasuraQuantity = 40 // edit must not trigger a second posting

	updated, err := uc.Update(context.Background(), created.ID, in)
	require.NoError(t, err)

	assert.True(t, updated.SquareMeters.Equal(dec("15")), "(150/100)*2*5 = 15")
	assert.Equal(t, "0.5 mm x 150 cm x 2 m", updated.Model)
	assert.Len(t, consumptions.consumptions, eventsAfterCreate, "update must not post consumption")
	assert.True(t, spool.CurrentStock.Equal(stockAfterCreate), "update must not touch stock")
}

func TestManufacturingUpdate_NotFound(t *testing.T) {
	uc := production.NewManufacturingUseCase(newFakeManufacturingRepo(), newFakeMaterialRepo(), &fakeConsumptionRepo{}, testLogger())
	_, err := uc.Update(context.Background(), "missing", validInput())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestManufacturingDelete_LeavesConsumptionEvents(t *testing.T) {
	spool := &entity.RawMaterial{ID: "mat-spool", Name: entity.Masura100, CurrentStock: decimal.NewFromInt(50)}
	materials := newFakeMaterialRepo(spool)
	consumptions := &fakeConsumptionRepo{}
	records := newFakeManufacturingRepo()
	uc := production.NewManufacturingUseCase(records, materials, consumptions, testLogger())

	created, err := uc.Create(context.Background(), validInput(), "operator")
	require.NoError(t, err)
	require.NotEmpty(t, consumptions.consumptions)

	require.NoError(t, uc.Delete(context.Background(), created.ID))
	assert.Empty(t, records.records)
	assert.NotEmpty(t, consumptions.consumptions, "delete must not reverse consumption")
	assert.True(t, spool.CurrentStock.Equal(decimal.NewFromInt(45)), "delete must not restore stock")
}
