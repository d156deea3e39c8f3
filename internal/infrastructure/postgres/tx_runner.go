package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/folyotek/folyo-erp/internal/application/inventory"
	"github.com/folyotek/folyo-erp/internal/application/production"
	"github.com/folyotek/folyo-erp/internal/application/shipping"
	"github.com/folyotek/folyo-erp/internal/domain/repository"
)

// TxRunner wraps use case callbacks in a single database transaction, handing
// them repositories bound to that transaction.
type TxRunner struct {
	pool *pgxpool.Pool
}

func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

var (
	_ inventory.TxRunner             = (*TxRunner)(nil)
	_ production.ConsumptionTxRunner = (*TxRunner)(nil)
	_ production.OrderTxRunner       = (*TxRunner)(nil)
	_ shipping.TxRunner              = (*TxRunner)(nil)
)

func (r *TxRunner) inTx(ctx context.Context, fn func(q Querier) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *TxRunner) RunStockTransaction(ctx context.Context, fn func(materials repository.MaterialRepository, transactions repository.StockTransactionRepository) error) error {
	return r.inTx(ctx, func(q Querier) error {
		return fn(NewMaterialRepository(q), NewStockTransactionRepository(q))
	})
}

func (r *TxRunner) RunConsumption(ctx context.Context, fn func(materials repository.MaterialRepository, consumptions repository.ConsumptionRepository) error) error {
	return r.inTx(ctx, func(q Querier) error {
		return fn(NewMaterialRepository(q), NewConsumptionRepository(q))
	})
}

func (r *TxRunner) RunOrderStatus(ctx context.Context, fn func(orders repository.ProductionOrderRepository, products repository.ProductRepository) error) error {
	return r.inTx(ctx, func(q Querier) error {
		return fn(NewProductionOrderRepository(q), NewProductRepository(q))
	})
}

func (r *TxRunner) RunShipment(ctx context.Context, fn func(products repository.ProductRepository, shipments repository.ShipmentRepository) error) error {
	return r.inTx(ctx, func(q Querier) error {
		return fn(NewProductRepository(q), NewShipmentRepository(q))
	})
}
