package shipping_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folyotek/folyo-erp/internal/application/dto"
	"github.com/folyotek/folyo-erp/internal/application/shipping"
	"github.com/folyotek/folyo-erp/internal/domain"
	"github.com/folyotek/folyo-erp/internal/domain/entity"
	"github.com/folyotek/folyo-erp/internal/domain/repository"
)

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductRepo) AdjustStock(_ context.Context, id string, delta decimal.Decimal) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.CurrentStock = p.CurrentStock.Add(delta)
	return nil
}

func (r *fakeProductRepo) ReserveStock(_ context.Context, id string, qty decimal.Decimal) (bool, error) {
	p, ok := r.products[id]
	if !ok || p.CurrentStock.LessThan(qty) {
		return false, nil
	}
	p.CurrentStock = p.CurrentStock.Sub(qty)
	return true, nil
}

type fakeShipmentRepo struct {
	shipments map[string]*entity.Shipment
}

func (r *fakeShipmentRepo) Create(_ context.Context, s *entity.Shipment) error {
	r.shipments[s.ID] = s
	return nil
}

func (r *fakeShipmentRepo) GetByID(_ context.Context, id string) (*entity.Shipment, error) {
	return r.shipments[id], nil
}

func (r *fakeShipmentRepo) List(_ context.Context, limit int) ([]*entity.Shipment, error) {
	out := make([]*entity.Shipment, 0, len(r.shipments))
	for _, s := range r.shipments {
		out = append(out, s)
	}
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeShipmentRepo) UpdateStatus(_ context.Context, id, status string) error {
	s, ok := r.shipments[id]
	if !ok {
		return domain.ErrNotFound
	}
	s.Status = status
	return nil
}

type fakeSequenceRepo struct{ n int64 }

func (r *fakeSequenceRepo) NextProductionOrderNumber(_ context.Context) (int64, error) {
	r.n++
	return r.n, nil
}

func (r *fakeSequenceRepo) NextShipmentNumber(_ context.Context) (int64, error) {
	r.n++
	return r.n, nil
}

type fakeTxRunner struct {
	products  repository.ProductRepository
	shipments repository.ShipmentRepository
}

func (r *fakeTxRunner) RunShipment(ctx context.Context, fn func(
	products repository.ProductRepository,
	shipments repository.ShipmentRepository,
) error) error {
	return fn(r.products, r.shipments)
}

func newFixture(stock int64) (*shipping.UseCase, *fakeProductRepo, *fakeShipmentRepo) {
	products := &fakeProductRepo{products: map[string]*entity.Product{
		"prod-1": {ID: "prod-1", Name: "Stretch Film 100", CurrentStock: decimal.NewFromInt(stock)},
	}}
	shipments := &fakeShipmentRepo{shipments: make(map[string]*entity.Shipment)}
	runner := &fakeTxRunner{products: products, shipments: shipments}
	return shipping.NewUseCase(runner, products, shipments, &fakeSequenceRepo{}), products, shipments
}

func shipmentRequest(qty int64) dto.CreateShipmentRequest {
	return dto.CreateShipmentRequest{
		ProductID:       "prod-1",
		Quantity:        decimal.NewFromInt(qty),
		CustomerCompany: "Acme Ambalaj",
		Destination:     "Izmir",
		ShipmentDate:    time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
		InvoiceNumber:   "INV-42",
		VehiclePlate:    "35 ABC 123",
		DriverName:      "Driver",
	}
}

func TestShipmentCreate_CommitsStockAtCreation(t *testing.T) {
	uc, products, shipments := newFixture(100)

	out, err := uc.Create(context.Background(), shipmentRequest(30), "dispatcher")
	require.NoError(t, err)

	assert.Equal(t, "SHP-00001", out.ShipmentNumber)
	assert.Equal(t, entity.ShipmentPending, out.Status)
	assert.Equal(t, "Stretch Film 100", out.ProductName)
	assert.True(t, products.products["prod-1"].CurrentStock.Equal(decimal.NewFromInt(70)))
	assert.Len(t, shipments.shipments, 1)
}

func TestShipmentCreate_InsufficientStock(t *testing.T) {
	uc, products, shipments := newFixture(10)

	_, err := uc.Create(context.Background(), shipmentRequest(11), "dispatcher")
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.True(t, products.products["prod-1"].CurrentStock.Equal(decimal.NewFromInt(10)),
		"failed shipment must not change product stock")
	assert.Empty(t, shipments.shipments)
}

func TestShipmentCreate_UnknownProduct(t *testing.T) {
	uc, _, _ := newFixture(10)
	in := shipmentRequest(1)
	in.ProductID = "missing"
	_, err := uc.Create(context.Background(), in, "dispatcher")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestShipmentSetStatus_NoStockSideEffects(t *testing.T) {
	uc, products, _ := newFixture(100)
	out, err := uc.Create(context.Background(), shipmentRequest(30), "dispatcher")
	require.NoError(t, err)

	require.NoError(t, uc.SetStatus(context.Background(), out.ID, entity.ShipmentInTransit))
	require.NoError(t, uc.SetStatus(context.Background(), out.ID, entity.ShipmentDelivered))

	assert.True(t, products.products["prod-1"].CurrentStock.Equal(decimal.NewFromInt(70)),
		"status changes never touch stock a second time")
}

func TestShipmentSetStatus_Invalid(t *testing.T) {
	uc, _, _ := newFixture(100)
	err := uc.SetStatus(context.Background(), "any", "returned")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
