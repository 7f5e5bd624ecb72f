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
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jhoicas/pope-market/internal/application/auth"
	"github.com/jhoicas/pope-market/internal/application/orders"
	"github.com/jhoicas/pope-market/internal/application/seed"
	"github.com/jhoicas/pope-market/internal/application/state"
	"github.com/jhoicas/pope-market/internal/application/usecase"
	infrapdf "github.com/jhoicas/pope-market/internal/infrastructure/pdf"
	"github.com/jhoicas/pope-market/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/pope-market/internal/interfaces/http"
	"github.com/jhoicas/pope-market/pkg/config"
	"github.com/jhoicas/pope-market/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	kv, err := storage.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir store")
	}
	defer func() { _ = kv.Close() }()

	store, err := state.Open(ctx, kv, log)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar estado")
	}

	if cfg.Seed.Demo {
		seeded, err := seed.Run(ctx, store, time.Now())
		if err != nil {
			log.Fatal().Err(err).Msg("datos demo")
		}
		if seeded {
			log.Info().
				Str("producer", seed.DemoProducerEmail).
				Str("wholesaler", seed.DemoWholesalerEmail).
				Msg("datos demo cargados")
		}
	}

	authUC := auth.NewAuthUseCase(store)
	productUC := usecase.NewProductUseCase(store)
	orderUC := orders.NewOrderUseCase(store)
	receiptUC := orders.NewReceiptUseCase(store, infrapdf.NewMarotoReceiptGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Popé Market API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		ProductUC: productUC,
		OrderUC:   orderUC,
		ReceiptUC: receiptUC,
		Log:       log.Component("http"),
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
