package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/folyotek/folyo-erp/internal/application/auth"
	"github.com/folyotek/folyo-erp/internal/application/inventory"
	"github.com/folyotek/folyo-erp/internal/application/production"
	"github.com/folyotek/folyo-erp/internal/application/reporting"
	"github.com/folyotek/folyo-erp/internal/application/shipping"
	"github.com/folyotek/folyo-erp/internal/application/usecase"
	"github.com/folyotek/folyo-erp/internal/infrastructure/excel"
	"github.com/folyotek/folyo-erp/internal/infrastructure/postgres"
	httpRouter "github.com/folyotek/folyo-erp/internal/interfaces/http"
	"github.com/folyotek/folyo-erp/pkg/config"
	"github.com/folyotek/folyo-erp/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.RunMigrations(cfg.DB.ConnectionString(), cfg.App.MigrationsDir); err != nil {
		log.Fatal().Err(err).Msg("run migrations")
	}

	userRepo := postgres.NewUserRepository(pool)
	materialRepo := postgres.NewMaterialRepository(pool)
	stockTxRepo := postgres.NewStockTransactionRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	manufacturingRepo := postgres.NewManufacturingRepository(pool)
	orderRepo := postgres.NewProductionOrderRepository(pool)
	consumptionRepo := postgres.NewConsumptionRepository(pool)
	shipmentRepo := postgres.NewShipmentRepository(pool)
	sequenceRepo := postgres.NewSequenceRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	materialUC := inventory.NewMaterialUseCase(materialRepo)
	stockUC := inventory.NewStockUseCase(txRunner, materialRepo, stockTxRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	manufacturingUC := production.NewManufacturingUseCase(manufacturingRepo, materialRepo, consumptionRepo, log)
	orderUC := production.NewOrderUseCase(txRunner, orderRepo, productRepo, sequenceRepo)
	consumptionUC := production.NewConsumptionUseCase(txRunner, materialRepo, consumptionRepo)
	shipmentUC := shipping.NewUseCase(txRunner, productRepo, shipmentRepo, sequenceRepo)
	reportUC := reporting.NewUseCase(reportRepo, excel.NewReportExporter())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		UserUC:          userUC,
		MaterialUC:      materialUC,
		StockUC:         stockUC,
		ProductUC:       productUC,
		ManufacturingUC: manufacturingUC,
		OrderUC:         orderUC,
		ConsumptionUC:   consumptionUC,
		ShipmentUC:      shipmentUC,
		ReportUC:        reportUC,
		JWTSecret:       cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("http server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
}
