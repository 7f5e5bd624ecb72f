// seed_demo carga los datos demo (un productor, un grossista y dos lotes) en el store configurado.
//
// Uso: go run ./cmd/seed_demo
// Respeta STORE_DRIVER, STORE_DIR, REDIS_URL, DATABASE_URL, etc. No hace nada si ya hay datos.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/pope-market/internal/application/seed"
	"github.com/jhoicas/pope-market/internal/application/state"
	"github.com/jhoicas/pope-market/internal/infrastructure/storage"
	"github.com/jhoicas/pope-market/pkg/config"
	"github.com/jhoicas/pope-market/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	kv, err := storage.Open(ctx, cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir store: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = kv.Close() }()

	store, err := state.Open(ctx, kv, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar estado: %v\n", err)
		os.Exit(1)
	}

	seeded, err := seed.Run(ctx, store, time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Datos demo: %v\n", err)
		os.Exit(1)
	}
	if !seeded {
		fmt.Println("El store ya tiene datos; no se cargó nada.")
		return
	}
	fmt.Printf("Datos demo cargados. Login: %s / %s (producer), %s / %s (wholesaler)\n",
		seed.DemoProducerEmail, seed.DemoPassword, seed.DemoWholesalerEmail, seed.DemoPassword)
}
