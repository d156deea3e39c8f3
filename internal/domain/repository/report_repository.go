package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// CostAnalysisRow is one material's consumption total, priced at the
// material's current unit price (live re-pricing, not historical cost).
// MaterialName comes from the consumption snapshots, not the live material
// row, so renames do not rewrite history.
type CostAnalysisRow struct {
	MaterialID    string
	MaterialName  string
	TotalQuantity decimal.Decimal
	TotalCost     decimal.Decimal
}

// StockRollupRow aggregates manufacturing output by physical dimensions and
// color. Shipped quantities are not netted out.
type StockRollupRow struct {
	ThicknessMM       decimal.Decimal
	WidthCM           decimal.Decimal
	LengthM           decimal.Decimal
	ColorName         string // empty when the run had no color
	TotalQuantity     int64
	TotalSquareMeters decimal.Decimal
}

// DashboardStats live counts recomputed on every call; no cached aggregates.
type DashboardStats struct {
	TotalRawMaterials int64
	TotalProducts     int64
	ActiveProductions int64 // planned or in_progress
	PendingShipments  int64
	LowStockMaterials int64 // current_stock <= min_stock_level
}

// ReportRepository read-only aggregation queries over the persisted event
// streams. Purely read-side; nothing here mutates state.
type ReportRepository interface {
	CostAnalysis(ctx context.Context) ([]CostAnalysisRow, error)
	StockRollup(ctx context.Context) ([]StockRollupRow, error)
	GetDashboardStats(ctx context.Context) (*DashboardStats, error)
}
