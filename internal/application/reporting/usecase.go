// Package reporting derives cost-analysis and stock-rollup views by
// replaying the persisted event streams. Purely read-side: nothing here
// mutates state, and no aggregates are stored.
package reporting

import (
	"context"
	"fmt"

	"github.com/folyotek/folyo-erp/internal/application/dto"
	"github.com/folyotek/folyo-erp/internal/domain/repository"
)

// Exporter renders report rows into a downloadable workbook. Implemented by
// the excelize adapter in infrastructure/excel.
type Exporter interface {
	CostAnalysisWorkbook(rows []repository.CostAnalysisRow) ([]byte, error)
	StockRollupWorkbook(rows []repository.StockRollupRow) ([]byte, error)
}

// UseCase read-side reporting over consumption, manufacturing and shipment
// records.
type UseCase struct {
	reportRepo repository.ReportRepository
	exporter   Exporter
}

// NewUseCase builds the reporting use case.
func NewUseCase(reportRepo repository.ReportRepository, exporter Exporter) *UseCase {
	return &UseCase{reportRepo: reportRepo, exporter: exporter}
}

// CostAnalysis groups all consumption events by material, summing quantity
// and quantity x the material's CURRENT unit price — a live re-pricing of
// historical consumption, not a frozen historical cost. Names come from the
// consumption snapshots.
func (uc *UseCase) CostAnalysis(ctx context.Context) ([]dto.CostAnalysisResponse, error) {
	rows, err := uc.reportRepo.CostAnalysis(ctx)
	if err != nil {
		return nil, fmt.Errorf("cost analysis: %w", err)
	}
	out := make([]dto.CostAnalysisResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.CostAnalysisResponse{
			MaterialID:    r.MaterialID,
			MaterialName:  r.MaterialName,
			TotalQuantity: r.TotalQuantity,
			TotalCost:     r.TotalCost,
		})
	}
	return out, nil
}

// StockRollup groups manufacturing output by (thickness, width, length,
// color), summing quantity and area. Shipped quantities are not netted out
// against production.
func (uc *UseCase) StockRollup(ctx context.Context) ([]dto.StockRollupResponse, error) {
	rows, err := uc.reportRepo.StockRollup(ctx)
	if err != nil {
		return nil, fmt.Errorf("stock rollup: %w", err)
	}
	out := make([]dto.StockRollupResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.StockRollupResponse{
			ThicknessMM:       r.ThicknessMM,
			WidthCM:           r.WidthCM,
			LengthM:           r.LengthM,
			ColorName:         r.ColorName,
			TotalQuantity:     r.TotalQuantity,
			TotalSquareMeters: r.TotalSquareMeters,
		})
	}
	return out, nil
}

// DashboardStats recomputes the dashboard counters from collection scans on
// every call; no caching or incremental maintenance.
func (uc *UseCase) DashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	stats, err := uc.reportRepo.GetDashboardStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	return &dto.DashboardStatsResponse{
		TotalRawMaterials: stats.TotalRawMaterials,
		TotalProducts:     stats.TotalProducts,
		ActiveProductions: stats.ActiveProductions,
		PendingShipments:  stats.PendingShipments,
		LowStockMaterials: stats.LowStockMaterials,
	}, nil
}

// ExportCostAnalysis renders the cost analysis as an XLSX workbook.
func (uc *UseCase) ExportCostAnalysis(ctx context.Context) ([]byte, error) {
	rows, err := uc.reportRepo.CostAnalysis(ctx)
	if err != nil {
		return nil, fmt.Errorf("cost analysis export: %w", err)
	}
	return uc.exporter.CostAnalysisWorkbook(rows)
}

// ExportStockRollup renders the stock rollup as an XLSX workbook.
func (uc *UseCase) ExportStockRollup(ctx context.Context) ([]byte, error) {
	rows, err := uc.reportRepo.StockRollup(ctx)
	if err != nil {
		return nil, fmt.Errorf("stock rollup export: %w", err)
	}
	return uc.exporter.StockRollupWorkbook(rows)
}
