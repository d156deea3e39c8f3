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
)

func newOrderFixture() (*production.OrderUseCase, *fakeOrderRepo, *fakeProductRepo) {
	products := newFakeProductRepo(&entity.Product{
		ID: "prod-1", Name: "Stretch Film 100", CurrentStock: decimal.Zero,
	})
	orders := newFakeOrderRepo()
	runner := &fakeTxRunner{orders: orders, products: products}
	uc := production.NewOrderUseCase(runner, orders, products, &fakeSequenceRepo{})
	return uc, orders, products
}

func TestOrderCreate_NumbersFromSequence(t *testing.T) {
	uc, _, _ := newOrderFixture()

	first, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		ProductID: "prod-1", Quantity: decimal.NewFromInt(10), PlannedDate: time.Now(),
	}, "planner")
	require.NoError(t, err)
	second, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		ProductID: "prod-1", Quantity: decimal.NewFromInt(20), PlannedDate: time.Now(),
	}, "planner")
	require.NoError(t, err)

	assert.Equal(t, "PRD-00001", first.OrderNumber)
	assert.Equal(t, "PRD-00002", second.OrderNumber)
	assert.Equal(t, entity.OrderPlanned, first.Status)
	assert.Equal(t, "Stretch Film 100", first.ProductName, "product name must be snapshotted")
}

func TestOrderCreate_UnknownProduct(t *testing.T) {
	uc, _, _ := newOrderFixture()
	_, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		ProductID: "missing", Quantity: decimal.NewFromInt(1),
	}, "planner")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderSetStatus_CompletionCreditsStockOnce(t *testing.T) {
	uc, _, products := newOrderFixture()
	created, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		ProductID: "prod-1", Quantity: decimal.NewFromInt(10), PlannedDate: time.Now(),
	}, "planner")
	require.NoError(t, err)

	out, err := uc.SetStatus(context.Background(), created.ID, entity.OrderCompleted)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderCompleted, out.Status)
	require.NotNil(t, out.CompletedDate)
	assert.True(t, products.products["prod-1"].CurrentStock.Equal(decimal.NewFromInt(10)))

	// Retrying the same transition is a no-op, never a second credit.
	again, err := uc.SetStatus(context.Background(), created.ID, entity.OrderCompleted)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderCompleted, again.Status)
	assert.True(t, products.products["prod-1"].CurrentStock.Equal(decimal.NewFromInt(10)),
		"idempotent retry must not credit stock twice")
}

func TestOrderSetStatus_TerminalStatesAreFrozen(t *testing.T) {
	uc, _, products := newOrderFixture()
	created, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		ProductID: "prod-1", Quantity: decimal.NewFromInt(10), PlannedDate: time.Now(),
	}, "planner")
	require.NoError(t, err)

	_, err = uc.SetStatus(context.Background(), created.ID, entity.OrderCancelled)
	require.NoError(t, err)

	_, err = uc.SetStatus(context.Background(), created.ID, entity.OrderCompleted)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.True(t, products.products["prod-1"].CurrentStock.IsZero(),
		"cancelled order must never credit stock")
}

func TestOrderSetStatus_ThroughInProgress(t *testing.T) {
	uc, _, products := newOrderFixture()
	created, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		ProductID: "prod-1", Quantity: decimal.NewFromInt(7), PlannedDate: time.Now(),
	}, "planner")
	require.NoError(t, err)

	out, err := uc.SetStatus(context.Background(), created.ID, entity.OrderInProgress)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderInProgress, out.Status)
	assert.Nil(t, out.CompletedDate)
	assert.True(t, products.products["prod-1"].CurrentStock.IsZero(), "in_progress must not credit stock")

	_, err = uc.SetStatus(context.Background(), created.ID, entity.OrderCompleted)
	require.NoError(t, err)
	assert.True(t, products.products["prod-1"].CurrentStock.Equal(decimal.NewFromInt(7)))
}

func TestOrderSetStatus_InvalidAndMissing(t *testing.T) {
	uc, _, _ := newOrderFixture()

	_, err := uc.SetStatus(context.Background(), "any", "shipped")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.SetStatus(context.Background(), "missing", entity.OrderCompleted)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
