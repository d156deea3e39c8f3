package production_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/folyotek/folyo-erp/internal/domain"
	"github.com/folyotek/folyo-erp/internal/domain/entity"
	"github.com/folyotek/folyo-erp/internal/domain/repository"
)

// In-memory repository fakes. They mirror the postgres semantics the use
// cases rely on: Get* returns (nil, nil) on a miss, ConsumeStock is a
// conditional decrement, AdjustStock errors on unknown ids.

type fakeMaterialRepo struct {
	materials map[string]*entity.RawMaterial
}

func newFakeMaterialRepo(materials ...*entity.RawMaterial) *fakeMaterialRepo {
	r := &fakeMaterialRepo{materials: make(map[string]*entity.RawMaterial)}
	for _, m := range materials {
		r.materials[m.ID] = m
	}
	return r
}

func (r *fakeMaterialRepo) Create(_ context.Context, m *entity.RawMaterial) error {
	r.materials[m.ID] = m
	return nil
}

func (r *fakeMaterialRepo) GetByID(_ context.Context, id string) (*entity.RawMaterial, error) {
	return r.materials[id], nil
}

func (r *fakeMaterialRepo) GetByCode(_ context.Context, code string) (*entity.RawMaterial, error) {
	for _, m := range r.materials {
		if m.Code == code {
			return m, nil
		}
	}
	return nil, nil
}

func (r *fakeMaterialRepo) GetByName(_ context.Context, name string) (*entity.RawMaterial, error) {
	for _, m := range r.materials {
		if m.Name == name {
			return m, nil
		}
	}
	return nil, nil
}

func (r *fakeMaterialRepo) List(_ context.Context) ([]*entity.RawMaterial, error) {
	out := make([]*entity.RawMaterial, 0, len(r.materials))
	for _, m := range r.materials {
		out = append(out, m)
	}
	return out, nil
}

func (r *fakeMaterialRepo) AdjustStock(_ context.Context, id string, delta decimal.Decimal) error {
	m, ok := r.materials[id]
	if !ok {
		return domain.ErrNotFound
	}
	m.CurrentStock = m.CurrentStock.Add(delta)
	return nil
}

func (r *fakeMaterialRepo) ConsumeStock(_ context.Context, id string, qty decimal.Decimal) (bool, error) {
	m, ok := r.materials[id]
	if !ok || m.CurrentStock.LessThan(qty) {
		return false, nil
	}
	m.CurrentStock = m.CurrentStock.Sub(qty)
	return true, nil
}

type fakeConsumptionRepo struct {
	consumptions []*entity.Consumption
}

func (r *fakeConsumptionRepo) Create(_ context.Context, c *entity.Consumption) error {
	r.consumptions = append(r.consumptions, c)
	return nil
}

func (r *fakeConsumptionRepo) List(_ context.Context, limit int) ([]*entity.Consumption, error) {
	if limit > len(r.consumptions) {
		limit = len(r.consumptions)
	}
	return r.consumptions[:limit], nil
}

type fakeManufacturingRepo struct {
	records map[string]*entity.ManufacturingRecord
}

func newFakeManufacturingRepo() *fakeManufacturingRepo {
	return &fakeManufacturingRepo{records: make(map[string]*entity.ManufacturingRecord)}
}

func (r *fakeManufacturingRepo) Create(_ context.Context, rec *entity.ManufacturingRecord) error {
	r.records[rec.ID] = rec
	return nil
}

func (r *fakeManufacturingRepo) GetByID(_ context.Context, id string) (*entity.ManufacturingRecord, error) {
	return r.records[id], nil
}

func (r *fakeManufacturingRepo) List(_ context.Context, limit int) ([]*entity.ManufacturingRecord, error) {
	out := make([]*entity.ManufacturingRecord, 0, len(r.records))
	for _, rec := range r.records {
		out = append(out, rec)
	}
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeManufacturingRepo) Update(_ context.Context, rec *entity.ManufacturingRecord) error {
	if _, ok := r.records[rec.ID]; !ok {
		return domain.ErrNotFound
	}
	r.records[rec.ID] = rec
	return nil
}

func (r *fakeManufacturingRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.records[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.records, id)
	return nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
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

type fakeOrderRepo struct {
	orders map[string]*entity.ProductionOrder
}

func newFakeOrderRepo(orders ...*entity.ProductionOrder) *fakeOrderRepo {
	r := &fakeOrderRepo{orders: make(map[string]*entity.ProductionOrder)}
	for _, o := range orders {
		r.orders[o.ID] = o
	}
	return r
}

func (r *fakeOrderRepo) Create(_ context.Context, o *entity.ProductionOrder) error {
	r.orders[o.ID] = o
	return nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id string) (*entity.ProductionOrder, error) {
	return r.orders[id], nil
}

func (r *fakeOrderRepo) GetForUpdate(_ context.Context, id string) (*entity.ProductionOrder, error) {
	return r.orders[id], nil
}

func (r *fakeOrderRepo) List(_ context.Context, limit int) ([]*entity.ProductionOrder, error) {
	out := make([]*entity.ProductionOrder, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, o)
	}
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, id, status string, completedDate *time.Time) error {
	o, ok := r.orders[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.Status = status
	o.CompletedDate = completedDate
	return nil
}

type fakeSequenceRepo struct {
	orderSeq    int64
	shipmentSeq int64
}

func (r *fakeSequenceRepo) NextProductionOrderNumber(_ context.Context) (int64, error) {
	r.orderSeq++
	return r.orderSeq, nil
}

func (r *fakeSequenceRepo) NextShipmentNumber(_ context.Context) (int64, error) {
	r.shipmentSeq++
	return r.shipmentSeq, nil
}

// fakeTxRunner hands the same in-memory repos back to the callback. Rollback
// is not simulated; the tests assert the use cases bail out before mutating.
type fakeTxRunner struct {
	materials    repository.MaterialRepository
	consumptions repository.ConsumptionRepository
	orders       repository.ProductionOrderRepository
	products     repository.ProductRepository
}

func (r *fakeTxRunner) RunConsumption(ctx context.Context, fn func(
	materials repository.MaterialRepository,
	consumptions repository.ConsumptionRepository,
) error) error {
	return fn(r.materials, r.consumptions)
}

func (r *fakeTxRunner) RunOrderStatus(ctx context.Context, fn func(
	orders repository.ProductionOrderRepository,
	products repository.ProductRepository,
) error) error {
	return fn(r.orders, r.products)
}
