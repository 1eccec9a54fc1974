package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ganeshsutar/coldstrg-sub001/internal/application/report"
	"github.com/ganeshsutar/coldstrg-sub001/internal/application/usecase"
	"github.com/ganeshsutar/coldstrg-sub001/internal/application/warehouse"
	infrapdf "github.com/ganeshsutar/coldstrg-sub001/internal/infrastructure/pdf"
	"github.com/ganeshsutar/coldstrg-sub001/internal/infrastructure/postgres"
	httpRouter "github.com/ganeshsutar/coldstrg-sub001/internal/interfaces/http"
	"github.com/ganeshsutar/coldstrg-sub001/pkg/config"
	"github.com/ganeshsutar/coldstrg-sub001/pkg/logger"
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

	chamberRepo := postgres.NewChamberRepository(pool)
	floorRepo := postgres.NewFloorRepository(pool)
	amadRepo := postgres.NewAmadRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	batchRepo := postgres.NewShiftBatchRepository(pool)
	overrideRepo := postgres.NewRackOverrideRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	chamberUC := usecase.NewChamberUseCase(chamberRepo, floorRepo, movementRepo)
	floorUC := usecase.NewFloorUseCase(chamberRepo, floorRepo, movementRepo)
	amadUC := usecase.NewAmadUseCase(amadRepo)
	occupancyUC := warehouse.NewOccupancyUseCase(chamberRepo, floorRepo, movementRepo, overrideRepo, log)
	registerMovementUC := warehouse.NewRegisterMovementUseCase(txRunner, chamberRepo, floorRepo, amadRepo, movementRepo)
	shiftCoordinator := warehouse.NewShiftCoordinator(txRunner, chamberRepo, floorRepo, amadRepo, batchRepo)

	// PDF: parte de ocupación por cámara para auditorías en planta
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	reportUC := report.NewReportUseCase(chamberRepo, floorRepo, movementRepo, overrideRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.MetricsMiddleware())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Coldstrg API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ChamberUC:        chamberUC,
		FloorUC:          floorUC,
		AmadUC:           amadUC,
		OccupancyUC:      occupancyUC,
		RegisterMovement: registerMovementUC,
		ShiftCoordinator: shiftCoordinator,
		ReportUC:         reportUC,
		JWTSecret:        cfg.JWT.Secret,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
