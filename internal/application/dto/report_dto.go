package dto

import "github.com/shopspring/decimal"

// CostAnalysisResponse one material's consumption totals at current pricing.
type CostAnalysisResponse struct {
	MaterialID    string          `json:"material_id"`
	MaterialName  string          `json:"material_name"`
	TotalQuantity decimal.Decimal `json:"total_quantity"`
	TotalCost     decimal.Decimal `json:"total_cost"`
}

// StockRollupResponse produced stock grouped by dimensions and color.
type StockRollupResponse struct {
	ThicknessMM       decimal.Decimal `json:"thickness_mm"`
	WidthCM           decimal.Decimal `json:"width_cm"`
	LengthM           decimal.Decimal `json:"length_m"`
	ColorName         string          `json:"color_name,omitempty"`
	TotalQuantity     int64           `json:"total_quantity"`
	TotalSquareMeters decimal.Decimal `json:"total_square_meters"`
}

// DashboardStatsResponse live counters for the dashboard.
type DashboardStatsResponse struct {
	TotalRawMaterials int64 `json:"total_raw_materials"`
	TotalProducts     int64 `json:"total_products"`
	ActiveProductions int64 `json:"active_productions"`
	PendingShipments  int64 `json:"pending_shipments"`
	LowStockMaterials int64 `json:"low_stock_materials"`
}
