package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/folyotek/folyo-erp/internal/application/reporting"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler read-side reports: cost analysis, stock rollup, dashboard
// counters and the XLSX exports.
type ReportHandler struct {
	uc *reporting.UseCase
}

func NewReportHandler(uc *reporting.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

func (h *ReportHandler) CostAnalysis(c *fiber.Ctx) error {
	rows, err := h.uc.CostAnalysis(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rows)
}

func (h *ReportHandler) StockRollup(c *fiber.Ctx) error {
	rows, err := h.uc.StockRollup(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rows)
}

func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	stats, err := h.uc.DashboardStats(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}

func (h *ReportHandler) ExportCostAnalysis(c *fiber.Ctx) error {
	workbook, err := h.uc.ExportCostAnalysis(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return sendWorkbook(c, "cost_analysis.xlsx", workbook)
}

func (h *ReportHandler) ExportStockRollup(c *fiber.Ctx) error {
	workbook, err := h.uc.ExportStockRollup(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return sendWorkbook(c, "stock_rollup.xlsx", workbook)
}

func sendWorkbook(c *fiber.Ctx, filename string, workbook []byte) error {
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(workbook)
}
