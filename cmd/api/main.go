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
	"github.com/your-org/foodhub-storefront/internal/app"
	"github.com/your-org/foodhub-storefront/internal/config"
	"github.com/your-org/foodhub-storefront/internal/infrastructure/database/postgres"
	"github.com/your-org/foodhub-storefront/internal/infrastructure/database/redis"
	"github.com/your-org/foodhub-storefront/internal/infrastructure/events"
	"github.com/your-org/foodhub-storefront/internal/infrastructure/storage"
	httpserver "github.com/your-org/foodhub-storefront/internal/interfaces/http"
	"github.com/your-org/foodhub-storefront/internal/pkg/email"
	"github.com/your-org/foodhub-storefront/internal/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialise logger: %v", err)
	}

	logr.WithFields(logrus.Fields{
		"version":     cfg.App.Version,
		"environment": cfg.App.Environment,
		"storage":     cfg.Storage.Driver,
	}).Infof("🚀 Starting %s", cfg.App.Name)

	opts := app.Options{HealthChecks: map[string]httpserver.HealthCheck{}}
	var closers []func() error

	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		db, err := postgres.NewConnection(cfg, logr)
		if err != nil {
			logr.WithError(err).Fatal("Failed to connect to database")
		}
		closers = append(closers, db.Close)

		migration := postgres.NewMigration(db.GetDB(), logr)
		if err := migration.RunAutoMigrations(); err != nil {
			logr.WithError(err).Fatal("Database migration failed")
		}
		if err := migration.CreateIndexes(); err != nil {
			logr.WithError(err).Warn("Index creation failed")
		}
		if cfg.IsDevelopment() {
			migration.LogTableInfo()
		}

		opts.Durable = storage.NewPostgresStore(db.GetDB())
		opts.HealthChecks["database"] = db.Health
	case config.StorageRedis:
		// connected with the shared client below
	default:
		opts.Durable = storage.NewMemoryStore()
		logr.Warn("Using in-memory storage, state is lost on restart")
	}

	// Redis backs the store when selected and the rate limiter whenever configured
	if cfg.RedisEnabled() {
		redisClient, err := redis.NewConnection(cfg, logr)
		switch {
		case err == nil:
			closers = append(closers, redisClient.Close)
			opts.RedisClient = redisClient.GetClient()
			opts.HealthChecks["redis"] = redisClient.Health
			if cfg.Storage.Driver == config.StorageRedis {
				opts.Durable = storage.NewRedisStore(redisClient.GetClient(), cfg.Storage.KeyPrefix)
			}
		case cfg.Storage.Driver == config.StorageRedis:
			logr.WithError(err).Fatal("Failed to connect to Redis")
		default:
			logr.WithError(err).Warn("Redis unavailable, rate limiting disabled")
		}
	}

	if len(cfg.Events.KafkaBrokers) > 0 {
		publisher, err := events.NewKafkaPublisher(cfg.Events, logr.WithField("component", "events"))
		if err != nil {
			logr.WithError(err).Fatal("Failed to create event publisher")
		}
		closers = append(closers, publisher.Close)
		opts.Publisher = publisher
	}

	if cfg.OTP.Delivery == config.OTPDeliverySMTP {
		opts.Notifier = email.NewEmailService(cfg, logr.WithField("component", "email"))
	}

	storefront, err := app.New(cfg, logr, opts)
	if err != nil {
		logr.WithError(err).Fatal("Failed to assemble application")
	}

	logr.Info("✅ All systems operational!")

	go func() {
		if err := storefront.Server.Start(); err != nil {
			logr.WithError(err).Fatal("Failed to start HTTP server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logr.Info("👋 Shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := storefront.Server.Stop(ctx); err != nil {
		logr.WithError(err).Error("Failed to shutdown HTTP server gracefully")
	}

	for i := len(closers) - 1; i >= 0; i-- {
		if err := closers[i](); err != nil {
			logr.WithError(err).Warn("Failed to release resource")
		}
	}

	logr.Info("✅ Server shutdown completed")
}
