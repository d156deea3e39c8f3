package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/folyotek/folyo-erp/internal/application/dto"
	"github.com/folyotek/folyo-erp/internal/domain"
	"github.com/folyotek/folyo-erp/internal/domain/entity"
	"github.com/folyotek/folyo-erp/internal/domain/repository"
)

// StockUseCase records manual stock transactions and applies their deltas to
// the material ledger.
type StockUseCase struct {
	txRunner     TxRunner
	materialRepo repository.MaterialRepository
	txRepo       repository.StockTransactionRepository
}

// NewStockUseCase builds the use case.
func NewStockUseCase(txRunner TxRunner, materialRepo repository.MaterialRepository, txRepo repository.StockTransactionRepository) *StockUseCase {
	return &StockUseCase{txRunner: txRunner, materialRepo: materialRepo, txRepo: txRepo}
}

// CreateTransaction appends an immutable stock transaction and applies its
// signed delta as one atomic increment — both inside a single database
// transaction. "out" movements are allowed to drive the quantity negative;
// sufficiency here is deliberately the caller's responsibility (consumption
// and shipments are the guarded paths).
func (uc *StockUseCase) CreateTransaction(ctx context.Context, in dto.CreateStockTransactionRequest, actor string) (*dto.StockTransactionResponse, error) {
	if in.Type != entity.TransactionIn && in.Type != entity.TransactionOut {
		return nil, domain.ErrInvalidInput
	}
	if !in.Quantity.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	material, err := uc.materialRepo.GetByID(ctx, in.MaterialID)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.ErrNotFound
	}

	t := &entity.StockTransaction{
		ID:         uuid.New().String(),
		MaterialID: in.MaterialID,
		Type:       in.Type,
		Quantity:   in.Quantity,
		Reference:  in.Reference,
		Notes:      in.Notes,
		CreatedBy:  actor,
		CreatedAt:  time.Now().UTC(),
	}

	err = uc.txRunner.RunStockTransaction(ctx, func(
		materials repository.MaterialRepository,
		transactions repository.StockTransactionRepository,
	) error {
		if err := transactions.Create(ctx, t); err != nil {
			return err
		}
		return materials.AdjustStock(ctx, t.MaterialID, t.SignedQuantity())
	})
	if err != nil {
		return nil, err
	}
	return toTransactionResponse(t), nil
}

// ListTransactions returns the movement ledger, newest first.
func (uc *StockUseCase) ListTransactions(ctx context.Context, limit int) ([]dto.StockTransactionResponse, error) {
	transactions, err := uc.txRepo.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockTransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		out = append(out, *toTransactionResponse(t))
	}
	return out, nil
}

func toTransactionResponse(t *entity.StockTransaction) *dto.StockTransactionResponse {
	return &dto.StockTransactionResponse{
		ID:         t.ID,
		MaterialID: t.MaterialID,
		Type:       t.Type,
		Quantity:   t.Quantity,
		Reference:  t.Reference,
		Notes:      t.Notes,
		CreatedBy:  t.CreatedBy,
		CreatedAt:  t.CreatedAt,
	}
}
