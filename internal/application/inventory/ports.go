package inventory

import (
	"context"

	"github.com/folyotek/folyo-erp/internal/domain/repository"
)

// TxRunner executes a callback inside one database transaction with
// repositories bound to it, so a stock transaction and its ledger delta
// cannot diverge. Implemented by postgres.TxRunner.
type TxRunner interface {
	RunStockTransaction(ctx context.Context, fn func(
		materials repository.MaterialRepository,
		transactions repository.StockTransactionRepository,
	) error) error
}
