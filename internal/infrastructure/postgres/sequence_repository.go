package postgres

import (
	"context"
	"fmt"

	"github.com/folyotek/folyo-erp/internal/domain/repository"
)

type sequenceRepository struct {
	db Querier
}

func NewSequenceRepository(db Querier) repository.SequenceRepository {
	return &sequenceRepository{db: db}
}

func (r *sequenceRepository) NextProductionOrderNumber(ctx context.Context) (int64, error) {
	return r.next(ctx, "production_order_number_seq")
}

func (r *sequenceRepository) NextShipmentNumber(ctx context.Context) (int64, error) {
	return r.next(ctx, "shipment_number_seq")
}

func (r *sequenceRepository) next(ctx context.Context, name string) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT nextval($1)`, name).Scan(&n); err != nil {
		return 0, fmt.Errorf("next value of %s: %w", name, err)
	}
	return n, nil
}
