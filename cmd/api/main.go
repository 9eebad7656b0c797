package main

import (
	"context"
	"log"
	"time"

	"rma-reconcile/internal/core/cache"
	"rma-reconcile/internal/core/config"
	"rma-reconcile/internal/core/logger"
	"rma-reconcile/internal/core/server"
	rmaadapters "rma-reconcile/internal/features/rma/adapters"
	rmaports "rma-reconcile/internal/features/rma/ports"
	trackingadapters "rma-reconcile/internal/features/tracking/adapters"
	trackinghandler "rma-reconcile/internal/features/tracking/handler"
	trackingports "rma-reconcile/internal/features/tracking/ports"
	trackingservice "rma-reconcile/internal/features/tracking/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// @title RMA Reconcile API
// @version 1.0
// @description Read model for RMA shipment tracking: reconciles legacy and modern shipment schemas into an active-shipments view with per-RMA detail.
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
		zap.String("rma_source", cfg.RmaSource),
	)

	// Initialize the RMA record store
	var store rmaports.RmaStore

	switch cfg.RmaSource {
	case config.SourceAPI:
		apiAdapter := rmaadapters.NewRmaAPIAdapter(cfg.RmaAPI)
		if err := apiAdapter.HealthCheck(); err != nil {
			l.Fatal("RMA API Health Check Failed", zap.Error(err))
		}
		l.Info("RMA API connection verified")
		store = apiAdapter

	default:
		connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		repo, err := rmaadapters.NewMongoRmaRepository(connectCtx, cfg.Mongo.URI, cfg.Mongo.Database)
		if err == nil {
			err = repo.Ping(connectCtx)
		}
		cancel()
		if err != nil {
			l.Fatal("Mongo Health Check Failed", zap.Error(err))
		}
		defer repo.Close(context.Background())
		l.Info("Mongo connection verified")
		store = repo
	}

	// Initialize the reconciliation service and optional aggregation cache
	reconcileSvc := trackingservice.NewReconcileService(store, cfg.SlaTargetDays)

	var reader trackingports.ShipmentReader = reconcileSvc
	var invalidator trackinghandler.CacheInvalidator

	if cfg.ActiveCacheTTLSeconds > 0 {
		redisCache, err := cache.NewRedisAdapter(cfg.RedisURL)
		if err != nil {
			l.Fatal("Failed to create Redis adapter", zap.Error(err))
		}
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = redisCache.Ping(pingCtx)
		cancel()
		if err != nil {
			l.Fatal("Redis Health Check Failed", zap.Error(err))
		}
		defer redisCache.Close()
		l.Info("Redis connection verified",
			zap.Int("active_cache_ttl_seconds", cfg.ActiveCacheTTLSeconds),
		)

		cachedReader := trackingadapters.NewCachedShipmentReader(
			reconcileSvc,
			redisCache,
			time.Duration(cfg.ActiveCacheTTLSeconds)*time.Second,
		)
		reader = cachedReader
		invalidator = cachedReader
	}

	trackingHdl := trackinghandler.NewTrackingHandler(reader)
	webhookHdl := trackinghandler.NewWebhookHandler(invalidator)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	srv.App.Get("/shipments/active", trackingHdl.GetActiveShipments)
	srv.App.Get("/rmas/:id/tracking", trackingHdl.GetTrackingDetail)
	srv.App.Get("/delivery-providers", trackingHdl.GetDeliveryProviders)
	srv.App.Post("/webhooks/carrier", webhookHdl.CarrierWebhook)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
