package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/folyotek/folyo-erp/internal/domain"
	"github.com/folyotek/folyo-erp/internal/domain/entity"
	"github.com/folyotek/folyo-erp/internal/domain/repository"
)

type productionOrderRepository struct {
	db Querier
}

func NewProductionOrderRepository(db Querier) repository.ProductionOrderRepository {
	return &productionOrderRepository{db: db}
}

const orderColumns = `id, order_number, product_id, product_name, quantity, status,
		planned_date, completed_date, created_by, created_at`

func (r *productionOrderRepository) Create(ctx context.Context, o *entity.ProductionOrder) error {
	query := `
		INSERT INTO production_orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.Exec(ctx, query,
		o.ID, o.OrderNumber, o.ProductID, o.ProductName, o.Quantity, o.Status,
		o.PlannedDate, o.CompletedDate, o.CreatedBy, o.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert production order: %w", err)
	}
	return nil
}

func (r *productionOrderRepository) GetByID(ctx context.Context, id string) (*entity.ProductionOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM production_orders WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *productionOrderRepository) GetForUpdate(ctx context.Context, id string) (*entity.ProductionOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM production_orders WHERE id = $1 FOR UPDATE`
	return r.getOne(ctx, query, id)
}

func (r *productionOrderRepository) getOne(ctx context.Context, query, id string) (*entity.ProductionOrder, error) {
	var o entity.ProductionOrder
	err := r.db.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.OrderNumber, &o.ProductID, &o.ProductName, &o.Quantity, &o.Status,
		&o.PlannedDate, &o.CompletedDate, &o.CreatedBy, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select production order: %w", err)
	}
	return &o, nil
}

func (r *productionOrderRepository) List(ctx context.Context, limit int) ([]*entity.ProductionOrder, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM production_orders
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list production orders: %w", err)
	}
	defer rows.Close()

	var orders []*entity.ProductionOrder
	for rows.Next() {
		var o entity.ProductionOrder
		if err := rows.Scan(&o.ID, &o.OrderNumber, &o.ProductID, &o.ProductName, &o.Quantity, &o.Status,
			&o.PlannedDate, &o.CompletedDate, &o.CreatedBy, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan production order: %w", err)
		}
		orders = append(orders, &o)
	}
	return orders, rows.Err()
}

func (r *productionOrderRepository) UpdateStatus(ctx context.Context, id, status string, completedDate *time.Time) error {
	query := `UPDATE production_orders SET status = $2, completed_date = $3 WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, status, completedDate)
	if err != nil {
		return fmt.Errorf("update production order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
