// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/your-org/catering-storefront/internal/config"
	"github.com/your-org/catering-storefront/internal/domain/catalog"
	"github.com/your-org/catering-storefront/internal/infrastructure/database/redis"
	"github.com/your-org/catering-storefront/internal/infrastructure/storage"
	"github.com/your-org/catering-storefront/internal/interfaces/http"
	"github.com/your-org/catering-storefront/internal/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logg := logger.New(cfg)
	logg.Infof("Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)
	if !cfg.WebhookEnabled() {
		logg.Info("Order webhook not configured, submissions will rely on the messaging link only")
	}

	// Load the menu catalog. A broken catalog file is not fatal: the
	// server starts with an empty catalog and every lookup degrades.
	catalogStore := catalog.NewStore()
	if err := catalogStore.LoadFile(cfg.Catalog.Path); err != nil {
		logg.WithError(err).WithField("path", cfg.Catalog.Path).Warn("Failed to load catalog, starting empty")
	} else {
		logg.WithField("products", len(catalogStore.Products())).Info("Catalog loaded")
	}

	// Connect to Redis. An unreachable Redis is not fatal either: the
	// storage adapter falls back to its in-memory mirror.
	redisConn, err := redis.NewConnection(cfg)
	if err != nil {
		logg.WithError(err).Warn("Redis unavailable, persistence degraded to in-memory")
	}
	defer redisConn.Close()

	var store storage.Store
	if client := redisConn.GetClient(); client != nil {
		store = storage.NewRedisStore(client, logg)
	} else {
		store = storage.NewMemory()
	}

	// Create and start HTTP server
	server := http.NewServer(cfg, catalogStore, store, redisConn.GetClient(), logg)

	go func() {
		if err := server.Start(); err != nil {
			logg.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logg.Info("Shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		logg.WithError(err).Error("Failed to shutdown HTTP server gracefully")
	}

	logg.Info("Server shutdown completed")
}
