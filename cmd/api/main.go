package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mahndi/payment-api/internal/api"
	"github.com/mahndi/payment-api/internal/infrastructure/db/mongo"
	"github.com/mahndi/payment-api/internal/infrastructure/db/redis"
	"github.com/mahndi/payment-api/internal/pkg/config"
	"github.com/mahndi/payment-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	authClient, authDB, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.AuthDB.URI,
		Database: cfg.AuthDB.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to auth database")
	}
	defer func() { _ = authClient.Disconnect(ctx) }()
	log.Info().Str("database", cfg.AuthDB.Database).Msg("connected to auth database")

	paymentClient, paymentDB, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.PaymentDB.URI,
		Database: cfg.PaymentDB.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to payment database")
	}
	defer func() { _ = paymentClient.Disconnect(ctx) }()
	log.Info().Str("database", cfg.PaymentDB.Database).Msg("connected to payment database")

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer func() { _ = rdb.Close() }()

	e := api.NewRouter(authDB, paymentDB, rdb, cfg.CORSOrigin, log)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
