package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a finished good. CurrentStock follows the same incremental
// invariant as RawMaterial: fed by production order completions (+) and
// shipment creations (-), never recomputed.
type Product struct {
	ID           string
	Name         string
	Code         string // unique
	Unit         string
	CurrentStock decimal.Decimal
	CreatedAt    time.Time
}
