package postgres

import (
	"context"
	"fmt"

	"github.com/folyotek/folyo-erp/internal/domain/entity"
	"github.com/folyotek/folyo-erp/internal/domain/repository"
)

type stockTransactionRepository struct {
	db Querier
}

func NewStockTransactionRepository(db Querier) repository.StockTransactionRepository {
	return &stockTransactionRepository{db: db}
}

func (r *stockTransactionRepository) Create(ctx context.Context, t *entity.StockTransaction) error {
	query := `
		INSERT INTO stock_transactions (id, material_id, type, quantity, reference, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, query,
		t.ID, t.MaterialID, t.Type, t.Quantity, t.Reference, t.Notes, t.CreatedBy, t.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert stock transaction: %w", err)
	}
	return nil
}

func (r *stockTransactionRepository) List(ctx context.Context, limit int) ([]*entity.StockTransaction, error) {
	query := `
		SELECT id, material_id, type, quantity, reference, notes, created_by, created_at
		FROM stock_transactions
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list stock transactions: %w", err)
	}
	defer rows.Close()

	var transactions []*entity.StockTransaction
	for rows.Next() {
		var t entity.StockTransaction
		if err := rows.Scan(&t.ID, &t.MaterialID, &t.Type, &t.Quantity, &t.Reference, &t.Notes, &t.CreatedBy, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock transaction: %w", err)
		}
		transactions = append(transactions, &t)
	}
	return transactions, rows.Err()
}
