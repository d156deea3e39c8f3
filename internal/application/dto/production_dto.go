package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest body for POST /api/production-orders.
type CreateOrderRequest struct {
	ProductID   string          `json:"product_id"`
	Quantity    decimal.Decimal `json:"quantity"`
	PlannedDate time.Time       `json:"planned_date"`
}

// OrderStatusRequest body for PATCH /api/production-orders/:id/status.
type OrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderResponse public view of a production order.
type OrderResponse struct {
	ID            string          `json:"id"`
	OrderNumber   string          `json:"order_number"`
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	Quantity      decimal.Decimal `json:"quantity"`
	Status        string          `json:"status"`
	PlannedDate   time.Time       `json:"planned_date"`
	CompletedDate *time.Time      `json:"completed_date,omitempty"`
	CreatedBy     string          `json:"created_by"`
	CreatedAt     time.Time       `json:"created_at"`
}

// CreateConsumptionRequest body for POST /api/consumptions (manual
// consumption against a production order).
type CreateConsumptionRequest struct {
	ProductionOrderID string          `json:"production_order_id"`
	MaterialID        string          `json:"material_id"`
	Quantity          decimal.Decimal `json:"quantity"`
}

// ConsumptionResponse public view of a consumption event.
type ConsumptionResponse struct {
	ID                string          `json:"id"`
	ProductionOrderID string          `json:"production_order_id"`
	MaterialID        string          `json:"material_id"`
	MaterialName      string          `json:"material_name"`
	Quantity          decimal.Decimal `json:"quantity"`
	CreatedBy         string          `json:"created_by"`
	CreatedAt         time.Time       `json:"created_at"`
}
