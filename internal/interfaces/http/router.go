package http

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/folyotek/folyo-erp/internal/application/auth"
	"github.com/folyotek/folyo-erp/internal/application/inventory"
	"github.com/folyotek/folyo-erp/internal/application/production"
	"github.com/folyotek/folyo-erp/internal/application/reporting"
	"github.com/folyotek/folyo-erp/internal/application/shipping"
	"github.com/folyotek/folyo-erp/internal/application/usecase"
	"github.com/folyotek/folyo-erp/internal/domain/entity"
)

// RouterDeps use cases wired into the router.
type RouterDeps struct {
	AuthUC          *auth.UseCase
	UserUC          *usecase.UserUseCase
	MaterialUC      *inventory.MaterialUseCase
	StockUC         *inventory.StockUseCase
	ProductUC       *usecase.ProductUseCase
	ManufacturingUC *production.ManufacturingUseCase
	OrderUC         *production.OrderUseCase
	ConsumptionUC   *production.ConsumptionUseCase
	ShipmentUC      *shipping.UseCase
	ReportUC        *reporting.UseCase
	JWTSecret       string
}

// Router registers all API routes. Reads are open to every authenticated
// role; mutations require admin or user; account management is admin only.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api", MetricsMiddleware())

	// Auth (public)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Everything below requires a Bearer token.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)

	canWrite := RequireRole(entity.RoleAdmin, entity.RoleUser)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Users (admin only)
	userHandler := NewUserHandler(deps.UserUC)
	users := protected.Group("/users", adminOnly)
	users.Get("/", userHandler.List)
	users.Delete("/:id", userHandler.Delete)

	// Raw materials
	materialHandler := NewMaterialHandler(deps.MaterialUC)
	materials := protected.Group("/materials")
	materials.Post("/", canWrite, materialHandler.Create)
	materials.Get("/", materialHandler.List)
	materials.Get("/:id", materialHandler.GetByID)

	// Stock transactions
	stockHandler := NewStockHandler(deps.StockUC)
	stock := protected.Group("/stock-transactions")
	stock.Post("/", canWrite, stockHandler.CreateTransaction)
	stock.Get("/", stockHandler.ListTransactions)

	// Products
	productHandler := NewProductHandler(deps.ProductUC)
	products := protected.Group("/products")
	products.Post("/", canWrite, productHandler.Create)
	products.Get("/", productHandler.List)

	// Manufacturing records
	manufacturingHandler := NewManufacturingHandler(deps.ManufacturingUC)
	manufacturing := protected.Group("/manufacturing")
	manufacturing.Post("/", canWrite, manufacturingHandler.Create)
	manufacturing.Get("/", manufacturingHandler.List)
	manufacturing.Put("/:id", canWrite, manufacturingHandler.Update)
	manufacturing.Delete("/:id", canWrite, manufacturingHandler.Delete)

	// Production orders
	orderHandler := NewProductionOrderHandler(deps.OrderUC)
	orders := protected.Group("/production-orders")
	orders.Post("/", canWrite, orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Patch("/:id/status", canWrite, orderHandler.SetStatus)

	// Consumptions
	consumptionHandler := NewConsumptionHandler(deps.ConsumptionUC)
	consumptions := protected.Group("/consumptions")
	consumptions.Post("/", canWrite, consumptionHandler.Record)
	consumptions.Get("/", consumptionHandler.List)

	// Shipments
	shipmentHandler := NewShipmentHandler(deps.ShipmentUC)
	shipments := protected.Group("/shipments")
	shipments.Post("/", canWrite, shipmentHandler.Create)
	shipments.Get("/", shipmentHandler.List)
	shipments.Patch("/:id/status", canWrite, shipmentHandler.SetStatus)

	// Reports (read only)
	reportHandler := NewReportHandler(deps.ReportUC)
	reports := protected.Group("/reports")
	reports.Get("/cost-analysis", reportHandler.CostAnalysis)
	reports.Get("/cost-analysis/export", reportHandler.ExportCostAnalysis)
	reports.Get("/stock-rollup", reportHandler.StockRollup)
	reports.Get("/stock-rollup/export", reportHandler.ExportStockRollup)
	reports.Get("/dashboard", reportHandler.Dashboard)
}
