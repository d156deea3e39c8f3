package postgres

import (
	"context"
	"fmt"

	"github.com/folyotek/folyo-erp/internal/domain/entity"
	"github.com/folyotek/folyo-erp/internal/domain/repository"
)

type reportRepository struct {
	db Querier
}

func NewReportRepository(db Querier) repository.ReportRepository {
	return &reportRepository{db: db}
}

// CostAnalysis totals consumption per material. The name is taken from the
// consumption snapshots while the unit price joins against the live material
// row, so quantities reflect history and cost reflects today's price. A
// material deleted since its consumptions still appears, priced at zero.
func (r *reportRepository) CostAnalysis(ctx context.Context) ([]repository.CostAnalysisRow, error) {
	query := `
		SELECT c.material_id,
			MAX(c.material_name) AS material_name,
			SUM(c.quantity) AS total_quantity,
			SUM(c.quantity) * COALESCE(MAX(m.unit_price), 0) AS total_cost
		FROM consumptions c
		LEFT JOIN raw_materials m ON m.id = c.material_id
		GROUP BY c.material_id
		ORDER BY total_cost DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("cost analysis: %w", err)
	}
	defer rows.Close()

	var result []repository.CostAnalysisRow
	for rows.Next() {
		var row repository.CostAnalysisRow
		if err := rows.Scan(&row.MaterialID, &row.MaterialName, &row.TotalQuantity, &row.TotalCost); err != nil {
			return nil, fmt.Errorf("scan cost analysis row: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *reportRepository) StockRollup(ctx context.Context) ([]repository.StockRollupRow, error) {
	query := `
		SELECT thickness_mm, width_cm, length_m, color_name,
			SUM(quantity) AS total_quantity,
			SUM(square_meters) AS total_square_meters
		FROM manufacturing_records
		GROUP BY thickness_mm, width_cm, length_m, color_name
		ORDER BY thickness_mm, width_cm, length_m, color_name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("stock rollup: %w", err)
	}
	defer rows.Close()

	var result []repository.StockRollupRow
	for rows.Next() {
		var row repository.StockRollupRow
		if err := rows.Scan(&row.ThicknessMM, &row.WidthCM, &row.LengthM, &row.ColorName,
			&row.TotalQuantity, &row.TotalSquareMeters); err != nil {
			return nil, fmt.Errorf("scan stock rollup row: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *reportRepository) GetDashboardStats(ctx context.Context) (*repository.DashboardStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM raw_materials),
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM production_orders WHERE status IN ($1, $2)),
			(SELECT COUNT(*) FROM shipments WHERE status = $3),
			(SELECT COUNT(*) FROM raw_materials WHERE current_stock <= min_stock_level)`

	var stats repository.DashboardStats
	err := r.db.QueryRow(ctx, query, entity.OrderPlanned, entity.OrderInProgress, entity.ShipmentPending).Scan(
		&stats.TotalRawMaterials, &stats.TotalProducts, &stats.ActiveProductions,
		&stats.PendingShipments, &stats.LowStockMaterials)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	return &stats, nil
}
