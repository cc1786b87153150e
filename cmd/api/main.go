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

	"github.com/albrtaraya/facturas-api/internal/application/billing"
	"github.com/albrtaraya/facturas-api/internal/domain/repository"
	"github.com/albrtaraya/facturas-api/internal/infrastructure/memory"
	infrapdf "github.com/albrtaraya/facturas-api/internal/infrastructure/pdf"
	"github.com/albrtaraya/facturas-api/internal/infrastructure/postgres"
	httpRouter "github.com/albrtaraya/facturas-api/internal/interfaces/http"
	"github.com/albrtaraya/facturas-api/pkg/config"
	"github.com/albrtaraya/facturas-api/pkg/logger"
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
		Str("origen_facturas", cfg.Invoices.Source).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var invoiceRepo repository.InvoiceRepository
	if cfg.Invoices.Source == "postgres" {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		invoiceRepo = postgres.NewInvoiceRepository(pool)
	} else {
		invoiceRepo = memory.NewSeededInvoiceRepository()
	}

	listInvoicesUC := billing.NewListInvoicesUseCase(invoiceRepo)
	pdfUC := billing.NewPDFUseCase(invoiceRepo, infrapdf.NewMarotoPDFGenerator())
	sessions := billing.NewSessionStore(invoiceRepo, cfg.Invoices.RowsPerPage)

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
		Title:    "Facturas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ListInvoices: listInvoicesUC,
		InvoicePDF:   pdfUC,
		Sessions:     sessions,
		RowsPerPage:  cfg.Invoices.RowsPerPage,
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
