package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Production order statuses. Completed and cancelled are terminal.
const (
	OrderPlanned    = "planned"
	OrderInProgress = "in_progress"
	OrderCompleted  = "completed"
	OrderCancelled  = "cancelled"
)

// ValidOrderStatus reports whether s is a known production order status.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderPlanned, OrderInProgress, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// CanTransitionOrder reports whether an order may move from one status to
// another: planned -> in_progress -> completed, and planned/in_progress ->
// cancelled. Terminal states are frozen.
func CanTransitionOrder(from, to string) bool {
	switch from {
	case OrderPlanned:
		return to == OrderInProgress || to == OrderCompleted || to == OrderCancelled
	case OrderInProgress:
		return to == OrderCompleted || to == OrderCancelled
	}
	return false
}

// ProductionOrder plans a quantity of a product. Moving into completed
// credits the product's stock exactly once.
type ProductionOrder struct {
	ID            string
	OrderNumber   string // "PRD-00001", from a dedicated atomic sequence
	ProductID     string
	ProductName   string // snapshot at creation
	Quantity      decimal.Decimal
	Status        string
	PlannedDate   time.Time
	CompletedDate *time.Time
	CreatedBy     string
	CreatedAt     time.Time
}
