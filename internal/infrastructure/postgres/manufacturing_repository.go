package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/folyotek/folyo-erp/internal/domain"
	"github.com/folyotek/folyo-erp/internal/domain/entity"
	"github.com/folyotek/folyo-erp/internal/domain/repository"
)

type manufacturingRepository struct {
	db Querier
}

func NewManufacturingRepository(db Querier) repository.ManufacturingRepository {
	return &manufacturingRepository{db: db}
}

const manufacturingColumns = `id, production_date, machine, thickness_mm, width_cm, length_m, quantity,
		square_meters, masura_type, masura_quantity, color_material_id, color_name, model,
		gas_consumption_kg, created_by, created_at`

func (r *manufacturingRepository) Create(ctx context.Context, rec *entity.ManufacturingRecord) error {
	query := `
		INSERT INTO manufacturing_records (` + manufacturingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err := r.db.Exec(ctx, query,
		rec.ID, rec.ProductionDate, rec.Machine, rec.ThicknessMM, rec.WidthCM, rec.LengthM, rec.Quantity,
		rec.SquareMeters, rec.MasuraType, rec.MasuraQuantity, rec.ColorMaterialID, rec.ColorName, rec.Model,
		rec.GasConsumptionKG, rec.CreatedBy, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert manufacturing record: %w", err)
	}
	return nil
}

func (r *manufacturingRepository) GetByID(ctx context.Context, id string) (*entity.ManufacturingRecord, error) {
	query := `SELECT ` + manufacturingColumns + ` FROM manufacturing_records WHERE id = $1`

	rec, err := scanManufacturingRecord(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select manufacturing record: %w", err)
	}
	return rec, nil
}

func (r *manufacturingRepository) List(ctx context.Context, limit int) ([]*entity.ManufacturingRecord, error) {
	query := `
		SELECT ` + manufacturingColumns + `
		FROM manufacturing_records
		ORDER BY production_date DESC, created_at DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list manufacturing records: %w", err)
	}
	defer rows.Close()

	var records []*entity.ManufacturingRecord
	for rows.Next() {
		rec, err := scanManufacturingRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan manufacturing record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *manufacturingRepository) Update(ctx context.Context, rec *entity.ManufacturingRecord) error {
	query := `
		UPDATE manufacturing_records
		SET production_date = $2, machine = $3, thickness_mm = $4, width_cm = $5, length_m = $6,
			quantity = $7, square_meters = $8, masura_type = $9, masura_quantity = $10,
			color_material_id = $11, color_name = $12, model = $13, gas_consumption_kg = $14
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		rec.ID, rec.ProductionDate, rec.Machine, rec.ThicknessMM, rec.WidthCM, rec.LengthM,
		rec.Quantity, rec.SquareMeters, rec.MasuraType, rec.MasuraQuantity,
		rec.ColorMaterialID, rec.ColorName, rec.Model, rec.GasConsumptionKG)
	if err != nil {
		return fmt.Errorf("update manufacturing record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *manufacturingRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM manufacturing_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete manufacturing record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanManufacturingRecord(row pgx.Row) (*entity.ManufacturingRecord, error) {
	var rec entity.ManufacturingRecord
	err := row.Scan(
		&rec.ID, &rec.ProductionDate, &rec.Machine, &rec.ThicknessMM, &rec.WidthCM, &rec.LengthM, &rec.Quantity,
		&rec.SquareMeters, &rec.MasuraType, &rec.MasuraQuantity, &rec.ColorMaterialID, &rec.ColorName, &rec.Model,
		&rec.GasConsumptionKG, &rec.CreatedBy, &rec.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
