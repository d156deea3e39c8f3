package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMaterialRequest body for POST /api/raw-materials.
type CreateMaterialRequest struct {
	Name          string          `json:"name"`
	Code          string          `json:"code"`
	Unit          string          `json:"unit"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	MinStockLevel decimal.Decimal `json:"min_stock_level"`
}

// MaterialResponse public view of a raw material.
type MaterialResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Code          string          `json:"code"`
	Unit          string          `json:"unit"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	CurrentStock  decimal.Decimal `json:"current_stock"`
	MinStockLevel decimal.Decimal `json:"min_stock_level"`
	CreatedAt     time.Time       `json:"created_at"`
}

// CreateStockTransactionRequest body for POST /api/stock-transactions.
type CreateStockTransactionRequest struct {
	MaterialID string          `json:"material_id"`
	Type       string          `json:"transaction_type"` // in, out
	Quantity   decimal.Decimal `json:"quantity"`
	Reference  string          `json:"reference"`
	Notes      string          `json:"notes"`
}

// StockTransactionResponse public view of a stock transaction.
type StockTransactionResponse struct {
	ID         string          `json:"id"`
	MaterialID string          `json:"material_id"`
	Type       string          `json:"transaction_type"`
	Quantity   decimal.Decimal `json:"quantity"`
	Reference  string          `json:"reference,omitempty"`
	Notes      string          `json:"notes,omitempty"`
	CreatedBy  string          `json:"created_by"`
	CreatedAt  time.Time       `json:"created_at"`
}
