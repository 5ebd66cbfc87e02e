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

	"github.com/supir/suministros-api/internal/application/auth"
	"github.com/supir/suministros-api/internal/application/feed"
	"github.com/supir/suministros-api/internal/application/usecase"
	"github.com/supir/suministros-api/internal/infrastructure/pdf"
	"github.com/supir/suministros-api/internal/infrastructure/postgres"
	httpRouter "github.com/supir/suministros-api/internal/interfaces/http"
	"github.com/supir/suministros-api/pkg/config"
	"github.com/supir/suministros-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	supplierRepo := postgres.NewSupplierRepository(pool)
	itemRepo := postgres.NewSupplyItemRepository(pool, supplierRepo)
	userRepo := postgres.NewUserRepository(pool)

	supplierUC := usecase.NewSupplierUseCase(supplierRepo, itemRepo)
	itemUC := usecase.NewSupplyItemUseCase(itemRepo, supplierRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	importer := feed.NewImporter(supplierUC, itemUC, log.Zerolog())
	alertPDF := pdf.NewAlertReportGenerator()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Suministros API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		SupplierUC:         supplierUC,
		SupplyItemUC:       itemUC,
		AuthUC:             authUC,
		Importer:           importer,
		AlertPDF:           alertPDF,
		FeedPath:           cfg.Feed.Path,
		NearExpirationDays: cfg.Feed.NearExpirationDays,
		JWTSecret:          cfg.JWT.Secret,
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
