package reporting_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folyotek/folyo-erp/internal/application/reporting"
	"github.com/folyotek/folyo-erp/internal/domain/repository"
	"github.com/folyotek/folyo-erp/internal/infrastructure/excel"
)

type fakeReportRepo struct {
	costRows   []repository.CostAnalysisRow
	rollupRows []repository.StockRollupRow
	stats      repository.DashboardStats
}

func (r *fakeReportRepo) CostAnalysis(_ context.Context) ([]repository.CostAnalysisRow, error) {
	return r.costRows, nil
}

func (r *fakeReportRepo) StockRollup(_ context.Context) ([]repository.StockRollupRow, error) {
	return r.rollupRows, nil
}

func (r *fakeReportRepo) GetDashboardStats(_ context.Context) (*repository.DashboardStats, error) {
	return &r.stats, nil
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCostAnalysis(t *testing.T) {
	repo := &fakeReportRepo{costRows: []repository.CostAnalysisRow{
		{MaterialID: "mat-1", MaterialName: "Granule A", TotalQuantity: dec("15"), TotalCost: dec("30")},
	}}
	uc := reporting.NewUseCase(repo, excel.NewReportExporter())

	rows, err := uc.CostAnalysis(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Granule A", rows[0].MaterialName)
	assert.True(t, rows[0].TotalQuantity.Equal(dec("15")))
	assert.True(t, rows[0].TotalCost.Equal(dec("30")))
}

func TestDashboardStats(t *testing.T) {
	repo := &fakeReportRepo{stats: repository.DashboardStats{
		TotalRawMaterials: 4,
		TotalProducts:     2,
		ActiveProductions: 3,
		PendingShipments:  1,
		LowStockMaterials: 2,
	}}
	uc := reporting.NewUseCase(repo, excel.NewReportExporter())

	stats, err := uc.DashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalRawMaterials)
	assert.Equal(t, int64(3), stats.ActiveProductions)
	assert.Equal(t, int64(2), stats.LowStockMaterials)
}

func TestExportCostAnalysis_ProducesWorkbook(t *testing.T) {
	repo := &fakeReportRepo{costRows: []repository.CostAnalysisRow{
		{MaterialID: "mat-1", MaterialName: "Granule A", TotalQuantity: dec("15"), TotalCost: dec("30")},
		{MaterialID: "mat-2", MaterialName: "LPG", TotalQuantity: dec("3.5"), TotalCost: dec("7")},
	}}
	uc := reporting.NewUseCase(repo, excel.NewReportExporter())

	data, err := uc.ExportCostAnalysis(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, data)
	// XLSX is a ZIP container; cheap sanity check on the magic bytes.
	assert.Equal(t, []byte{'P', 'K'}, data[:2])
}

func TestExportStockRollup_ProducesWorkbook(t *testing.T) {
	repo := &fakeReportRepo{rollupRows: []repository.StockRollupRow{
		{ThicknessMM: dec("0.5"), WidthCM: dec("100"), LengthM: dec("2"), ColorName: "", TotalQuantity: 5, TotalSquareMeters: dec("10")},
	}}
	uc := reporting.NewUseCase(repo, excel.NewReportExporter())

	data, err := uc.ExportStockRollup(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
