package postgres

import (
	"context"
	"fmt"

	"github.com/folyotek/folyo-erp/internal/domain/entity"
	"github.com/folyotek/folyo-erp/internal/domain/repository"
)

type consumptionRepository struct {
	db Querier
}

func NewConsumptionRepository(db Querier) repository.ConsumptionRepository {
	return &consumptionRepository{db: db}
}

func (r *consumptionRepository) Create(ctx context.Context, c *entity.Consumption) error {
	query := `
		INSERT INTO consumptions (id, production_ref_id, material_id, material_name, quantity, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, query,
		c.ID, c.ProductionRefID, c.MaterialID, c.MaterialName, c.Quantity, c.CreatedBy, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert consumption: %w", err)
	}
	return nil
}

func (r *consumptionRepository) List(ctx context.Context, limit int) ([]*entity.Consumption, error) {
	query := `
		SELECT id, production_ref_id, material_id, material_name, quantity, created_by, created_at
		FROM consumptions
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list consumptions: %w", err)
	}
	defer rows.Close()

	var consumptions []*entity.Consumption
	for rows.Next() {
		var c entity.Consumption
		if err := rows.Scan(&c.ID, &c.ProductionRefID, &c.MaterialID, &c.MaterialName, &c.Quantity, &c.CreatedBy, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan consumption: %w", err)
		}
		consumptions = append(consumptions, &c)
	}
	return consumptions, rows.Err()
}
