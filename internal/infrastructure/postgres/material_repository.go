package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/folyotek/folyo-erp/internal/domain"
	"github.com/folyotek/folyo-erp/internal/domain/entity"
	"github.com/folyotek/folyo-erp/internal/domain/repository"
)

type materialRepository struct {
	db Querier
}

func NewMaterialRepository(db Querier) repository.MaterialRepository {
	return &materialRepository{db: db}
}

func (r *materialRepository) Create(ctx context.Context, m *entity.RawMaterial) error {
	query := `
		INSERT INTO raw_materials (id, name, code, unit, unit_price, current_stock, min_stock_level, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, query,
		m.ID, m.Name, m.Code, m.Unit, m.UnitPrice, m.CurrentStock, m.MinStockLevel, m.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert raw material: %w", err)
	}
	return nil
}

func (r *materialRepository) GetByID(ctx context.Context, id string) (*entity.RawMaterial, error) {
	return r.getBy(ctx, "id", id)
}

func (r *materialRepository) GetByCode(ctx context.Context, code string) (*entity.RawMaterial, error) {
	return r.getBy(ctx, "code", code)
}

func (r *materialRepository) GetByName(ctx context.Context, name string) (*entity.RawMaterial, error) {
	return r.getBy(ctx, "name", name)
}

func (r *materialRepository) getBy(ctx context.Context, column, value string) (*entity.RawMaterial, error) {
	query := fmt.Sprintf(`
		SELECT id, name, code, unit, unit_price, current_stock, min_stock_level, created_at
		FROM raw_materials
		WHERE %s = $1`, column)

	var m entity.RawMaterial
	err := r.db.QueryRow(ctx, query, value).Scan(
		&m.ID, &m.Name, &m.Code, &m.Unit, &m.UnitPrice, &m.CurrentStock, &m.MinStockLevel, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select raw material by %s: %w", column, err)
	}
	return &m, nil
}

func (r *materialRepository) List(ctx context.Context) ([]*entity.RawMaterial, error) {
	query := `
		SELECT id, name, code, unit, unit_price, current_stock, min_stock_level, created_at
		FROM raw_materials
		ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list raw materials: %w", err)
	}
	defer rows.Close()

	var materials []*entity.RawMaterial
	for rows.Next() {
		var m entity.RawMaterial
		if err := rows.Scan(&m.ID, &m.Name, &m.Code, &m.Unit, &m.UnitPrice, &m.CurrentStock, &m.MinStockLevel, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan raw material: %w", err)
		}
		materials = append(materials, &m)
	}
	return materials, rows.Err()
}

func (r *materialRepository) AdjustStock(ctx context.Context, id string, delta decimal.Decimal) error {
	query := `UPDATE raw_materials SET current_stock = current_stock + $1 WHERE id = $2`

	tag, err := r.db.Exec(ctx, query, delta, id)
	if err != nil {
		return fmt.Errorf("adjust material stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *materialRepository) ConsumeStock(ctx context.Context, id string, qty decimal.Decimal) (bool, error) {
	// The WHERE clause makes the sufficiency check and the decrement one
	// atomic statement; concurrent consumers cannot both pass the check.
	query := `
		UPDATE raw_materials
		SET current_stock = current_stock - $1
		WHERE id = $2 AND current_stock >= $1`

	tag, err := r.db.Exec(ctx, query, qty, id)
	if err != nil {
		return false, fmt.Errorf("consume material stock: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
