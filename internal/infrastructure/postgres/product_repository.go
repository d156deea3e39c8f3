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

type productRepository struct {
	db Querier
}

func NewProductRepository(db Querier) repository.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (id, name, code, unit, current_stock, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, query, p.ID, p.Name, p.Code, p.Unit, p.CurrentStock, p.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `
		SELECT id, name, code, unit, current_stock, created_at
		FROM products
		WHERE id = $1`

	var p entity.Product
	err := r.db.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.Code, &p.Unit, &p.CurrentStock, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select product: %w", err)
	}
	return &p, nil
}

func (r *productRepository) List(ctx context.Context) ([]*entity.Product, error) {
	query := `
		SELECT id, name, code, unit, current_stock, created_at
		FROM products
		ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Code, &p.Unit, &p.CurrentStock, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, &p)
	}
	return products, rows.Err()
}

func (r *productRepository) AdjustStock(ctx context.Context, id string, delta decimal.Decimal) error {
	query := `UPDATE products SET current_stock = current_stock + $1 WHERE id = $2`

	tag, err := r.db.Exec(ctx, query, delta, id)
	if err != nil {
		return fmt.Errorf("adjust product stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *productRepository) ReserveStock(ctx context.Context, id string, qty decimal.Decimal) (bool, error) {
	query := `
		UPDATE products
		SET current_stock = current_stock - $1
		WHERE id = $2 AND current_stock >= $1`

	tag, err := r.db.Exec(ctx, query, qty, id)
	if err != nil {
		return false, fmt.Errorf("reserve product stock: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
