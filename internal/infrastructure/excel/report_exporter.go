// Package excel renders report rows into XLSX workbooks with excelize.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/folyotek/folyo-erp/internal/application/reporting"
	"github.com/folyotek/folyo-erp/internal/domain/repository"
)

// ReportExporter builds downloadable workbooks from report rows.
type ReportExporter struct{}

var _ reporting.Exporter = (*ReportExporter)(nil)

func NewReportExporter() *ReportExporter {
	return &ReportExporter{}
}

func (e *ReportExporter) CostAnalysisWorkbook(rows []repository.CostAnalysisRow) ([]byte, error) {
	const sheet = "Cost Analysis"
	f, err := newWorkbook(sheet, []string{"Material", "Total Quantity", "Total Cost"})
	if err != nil {
		return nil, err
	}
	defer f.Close()

	for i, row := range rows {
		line := i + 2
		setRow(f, sheet, line,
			row.MaterialName,
			row.TotalQuantity.InexactFloat64(),
			row.TotalCost.InexactFloat64())
	}
	return flush(f)
}

func (e *ReportExporter) StockRollupWorkbook(rows []repository.StockRollupRow) ([]byte, error) {
	const sheet = "Stock Rollup"
	f, err := newWorkbook(sheet, []string{"Thickness (mm)", "Width (cm)", "Length (m)", "Color", "Quantity", "Square Meters"})
	if err != nil {
		return nil, err
	}
	defer f.Close()

	for i, row := range rows {
		line := i + 2
		setRow(f, sheet, line,
			row.ThicknessMM.InexactFloat64(),
			row.WidthCM.InexactFloat64(),
			row.LengthM.InexactFloat64(),
			row.ColorName,
			row.TotalQuantity,
			row.TotalSquareMeters.InexactFloat64())
	}
	return flush(f)
}

func newWorkbook(sheet string, headers []string) (*excelize.File, error) {
	f := excelize.NewFile()
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		last, _ := excelize.CoordinatesToCellName(len(headers), 1)
		f.SetCellStyle(sheet, "A1", last, style)
	}
	return f, nil
}

func setRow(f *excelize.File, sheet string, line int, values ...any) {
	for i, v := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, line)
		f.SetCellValue(sheet, cell, v)
	}
}

func flush(f *excelize.File) ([]byte, error) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
