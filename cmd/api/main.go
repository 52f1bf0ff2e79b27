// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-cart/internal/config"
	"github.com/your-org/storefront-cart/internal/domain/catalog"
	"github.com/your-org/storefront-cart/internal/domain/checkout"
	"github.com/your-org/storefront-cart/internal/infrastructure/database/memory"
	"github.com/your-org/storefront-cart/internal/infrastructure/database/postgres"
	"github.com/your-org/storefront-cart/internal/infrastructure/database/redis"
	"github.com/your-org/storefront-cart/internal/interfaces/http"
	"github.com/your-org/storefront-cart/internal/pkg/logger"
	"github.com/your-org/storefront-cart/internal/pkg/receipt"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger := logger.New(cfg.Logging)
	appLogger.Infof("🚀 Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	deps := http.Dependencies{
		Checks: map[string]http.HealthChecker{},
		Listeners: []checkout.Listener{
			checkout.ListenerFunc(func(ctx context.Context, view checkout.View) {
				appLogger.WithFields(logrus.Fields{
					"item_count": view.Summary.ItemCount,
					"method":     view.Summary.Method,
					"total":      view.Summary.Total.StringFixed(2),
				}).Debug("Cart view updated")
			}),
		},
	}

	// Session storage
	if cfg.UsesRedis() {
		redisClient, err := redis.NewConnection(cfg, appLogger)
		if err != nil {
			appLogger.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()

		deps.Storage = redis.NewSessionStore(redisClient.GetClient(), cfg.Session.TTL)
		deps.RedisClient = redisClient.GetClient()
		deps.Checks["redis"] = redisClient
	} else {
		appLogger.Warn("Using in-memory session storage; carts are lost on restart")
		deps.Storage = memory.NewSessionStore(cfg.Session.TTL)
	}

	// Product catalog
	if cfg.Database.Enabled {
		db, err := postgres.NewConnection(cfg, appLogger)
		if err != nil {
			appLogger.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		if err := db.Health(context.Background()); err != nil {
			appLogger.Fatalf("Database health check failed: %v", err)
		}

		migration := postgres.NewMigration(db.GetDB(), appLogger)
		if err := migration.RunAutoMigrations(); err != nil {
			appLogger.Fatalf("Database migration failed: %v", err)
		}
		if err := migration.CreateIndexes(); err != nil {
			appLogger.Warnf("Index creation failed: %v", err)
		}
		if cfg.Database.Seed {
			if err := migration.SeedInitialData(); err != nil {
				appLogger.Warnf("Data seeding failed: %v", err)
			}
		}

		deps.Catalog = catalog.NewService(db.GetDB())
		deps.Checks["postgres"] = db
	}

	// Checkout
	receipts := receipt.NewService(cfg)
	calc := checkout.NewCalculator(cfg.Checkout.ShippingCostCOD, cfg.Checkout.CurrencySymbol)
	deps.Checkout = checkout.NewService(calc, receipts, appLogger)
	deps.Receipts = receipts

	appLogger.Info("✅ All systems operational!")

	server := http.NewServer(cfg, appLogger, deps)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			appLogger.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("👋 Shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		appLogger.Errorf("Failed to shutdown HTTP server gracefully: %v", err)
	}

	appLogger.Info("✅ Server shutdown completed")
}
