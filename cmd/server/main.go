package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"pawmates/internal/app"
	"pawmates/internal/platform/config"
	"pawmates/internal/platform/httpserver"
	"pawmates/internal/platform/logger"
	platformmetrics "pawmates/internal/platform/metrics"
	httptransport "pawmates/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	engine := app.New(
		app.WithLogger(log),
		app.WithMetrics(app.NewMetrics()),
	)
	if cfg.SeedDemo {
		if err := engine.Seed(context.Background()); err != nil {
			log.Error("demo seed failed", "error", err)
			os.Exit(1)
		}
		log.Info("demo data seeded")
	}

	router := httptransport.NewRouter(engine, log, platformmetrics.NewHTTP())
	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting pawmates", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
