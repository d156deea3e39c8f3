package repository

import (
	"context"

	"github.com/folyotek/folyo-erp/internal/domain/entity"
)

// StockTransactionRepository persistence port for the append-only
// raw-material movement ledger.
type StockTransactionRepository interface {
	Create(ctx context.Context, t *entity.StockTransaction) error
	List(ctx context.Context, limit int) ([]*entity.StockTransaction, error)
}
