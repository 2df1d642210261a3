package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/minjaeyoo/shopcore-backend/api/routes"
	"github.com/minjaeyoo/shopcore-backend/internal/cart"
	"github.com/minjaeyoo/shopcore-backend/internal/catalog"
	"github.com/minjaeyoo/shopcore-backend/internal/promo"
	"github.com/minjaeyoo/shopcore-backend/internal/shop"
	"github.com/minjaeyoo/shopcore-backend/pkg/config"
	"github.com/minjaeyoo/shopcore-backend/pkg/logger"
	"github.com/minjaeyoo/shopcore-backend/pkg/metrics"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	shopService, err := shop.NewService(shop.ServiceParams{
		Catalog: catalog.New(catalog.SeedProducts()),
		Cart:    cart.New(),
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create shop service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	promoMetrics := metrics.NewPromoMetrics(registry)

	scheduler, err := promo.NewScheduler(promo.SchedulerParams{
		Logger:  logg,
		Applier: shopService,
		Metrics: promoMetrics,
		Config:  cfg.Promo,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create promo scheduler", err)
		os.Exit(1)
	}
	hub := promo.NewHub(logg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := scheduler.Run(ctx); err != nil {
			logg.Error(ctx, "promo scheduler stopped unexpectedly", err)
		}
	}()
	go hub.Run(ctx, scheduler.Events())

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	logCtx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(logCtx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, shopService, hub, registry),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logg.Error(logCtx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logg.Info(logCtx, "shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(logCtx, "graceful shutdown failed", err)
			os.Exit(1)
		}
	}
}
