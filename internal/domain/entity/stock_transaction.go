package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock transaction directions.
const (
	TransactionIn  = "in"
	TransactionOut = "out"
)

// StockTransaction is an immutable raw-material stock movement. Append-only:
// never updated or deleted.
type StockTransaction struct {
	ID         string
	MaterialID string
	Type       string // in, out
	Quantity   decimal.Decimal
	Reference  string
	Notes      string
	CreatedBy  string
	CreatedAt  time.Time
}

// SignedQuantity returns the delta this transaction applies to the material's
// stock: positive for "in", negative for "out".
func (t *StockTransaction) SignedQuantity() decimal.Decimal {
	if t.Type == TransactionOut {
		return t.Quantity.Neg()
	}
	return t.Quantity
}
