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

type shipmentRepository struct {
	db Querier
}

func NewShipmentRepository(db Querier) repository.ShipmentRepository {
	return &shipmentRepository{db: db}
}

const shipmentColumns = `id, shipment_number, product_id, product_name, quantity, customer_company,
		destination, status, shipment_date, invoice_number, vehicle_plate, driver_name, created_by, created_at`

func (r *shipmentRepository) Create(ctx context.Context, s *entity.Shipment) error {
	query := `
		INSERT INTO shipments (` + shipmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.db.Exec(ctx, query,
		s.ID, s.ShipmentNumber, s.ProductID, s.ProductName, s.Quantity, s.CustomerCompany,
		s.Destination, s.Status, s.ShipmentDate, s.InvoiceNumber, s.VehiclePlate, s.DriverName,
		s.CreatedBy, s.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert shipment: %w", err)
	}
	return nil
}

func (r *shipmentRepository) GetByID(ctx context.Context, id string) (*entity.Shipment, error) {
	query := `SELECT ` + shipmentColumns + ` FROM shipments WHERE id = $1`

	var s entity.Shipment
	err := r.db.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.ShipmentNumber, &s.ProductID, &s.ProductName, &s.Quantity, &s.CustomerCompany,
		&s.Destination, &s.Status, &s.ShipmentDate, &s.InvoiceNumber, &s.VehiclePlate, &s.DriverName,
		&s.CreatedBy, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select shipment: %w", err)
	}
	return &s, nil
}

func (r *shipmentRepository) List(ctx context.Context, limit int) ([]*entity.Shipment, error) {
	query := `
		SELECT ` + shipmentColumns + `
		FROM shipments
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list shipments: %w", err)
	}
	defer rows.Close()

	var shipments []*entity.Shipment
	for rows.Next() {
		var s entity.Shipment
		if err := rows.Scan(&s.ID, &s.ShipmentNumber, &s.ProductID, &s.ProductName, &s.Quantity, &s.CustomerCompany,
			&s.Destination, &s.Status, &s.ShipmentDate, &s.InvoiceNumber, &s.VehiclePlate, &s.DriverName,
			&s.CreatedBy, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan shipment: %w", err)
		}
		shipments = append(shipments, &s)
	}
	return shipments, rows.Err()
}

func (r *shipmentRepository) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := r.db.Exec(ctx, `UPDATE shipments SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update shipment status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
