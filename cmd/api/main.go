package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/tu-usuario/stocktake-pro/internal/application/analytics"
	"github.com/tu-usuario/stocktake-pro/internal/application/stockcount"
	"github.com/tu-usuario/stocktake-pro/internal/application/usecase"
	infrapdf "github.com/tu-usuario/stocktake-pro/internal/infrastructure/pdf"
	"github.com/tu-usuario/stocktake-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/stocktake-pro/internal/interfaces/http"
	"github.com/tu-usuario/stocktake-pro/pkg/config"
	"github.com/tu-usuario/stocktake-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	uomRepo := postgres.NewUomRepository(pool)
	branchRepo := postgres.NewBranchRepository(pool)
	assignmentRepo := postgres.NewBranchAssignmentRepository(pool)
	countRepo := postgres.NewInventoryCountRepository(pool)
	summaryRepo := postgres.NewStocktakeSummaryRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productUC := usecase.NewProductUseCase(productRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	uomUC := usecase.NewUomUseCase(uomRepo)
	branchUC := usecase.NewBranchUseCase(branchRepo)
	assignmentUC := usecase.NewAssignmentUseCase(assignmentRepo, branchRepo)

	recordUC := stockcount.NewRecordCountUseCase(txRunner, productRepo, assignmentRepo, countRepo)
	coalescer := stockcount.NewCoalescer(
		time.Duration(cfg.Stocktake.CoalesceMillis)*time.Millisecond,
		recordUC.RecordWrite,
		log.Component("coalescer"),
	)
	finishUC := stockcount.NewFinishAssignmentUseCase(txRunner, coalescer, productRepo, categoryRepo, assignmentRepo)
	resolveUC := stockcount.NewResolveProductUseCase(productRepo)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	summaryUC := stockcount.NewSummaryUseCase(summaryRepo, pdfGenerator)
	dashboardUC := appanalytics.NewDashboardUseCase(summaryRepo, assignmentRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Stocktake Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:    productUC,
		CategoryUC:   categoryUC,
		SupplierUC:   supplierUC,
		UomUC:        uomUC,
		BranchUC:     branchUC,
		AssignmentUC: assignmentUC,
		RecordUC:     recordUC,
		ResolveUC:    resolveUC,
		FinishUC:     finishUC,
		SummaryUC:    summaryUC,
		DashboardUC:  dashboardUC,
		Coalescer:    coalescer,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	// Nada encolado puede perderse en el apagado.
	if err := coalescer.FlushAll(); err != nil {
		log.Error().Err(err).Msg("drenar conteos pendientes")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
