package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// GasMaterialCode is the reserved raw-material code for the gas stock that
// manufacturing runs consume automatically.
const GasMaterialCode = "GAZ001"

// RawMaterial is a purchasable input tracked by quantity.
//
// CurrentStock is maintained incrementally: it equals the net sum of all
// StockTransaction and Consumption deltas applied since creation. It is never
// recomputed from the event streams, so every mutation must go through the
// atomic stock operations of MaterialRepository.
type RawMaterial struct {
	ID            string
	Name          string
	Code          string // unique
	Unit          string
	UnitPrice     decimal.Decimal
	CurrentStock  decimal.Decimal
	MinStockLevel decimal.Decimal
	CreatedAt     time.Time
}

// LowStock reports whether the material is at or below its minimum level.
func (m *RawMaterial) LowStock() bool {
	return m.CurrentStock.LessThanOrEqual(m.MinStockLevel)
}
