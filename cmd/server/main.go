package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/longrunpc/calmato-be/internal/api"
	"github.com/longrunpc/calmato-be/internal/core/service"
	"github.com/longrunpc/calmato-be/internal/infrastructure/db/postgres"
	redisinfra "github.com/longrunpc/calmato-be/internal/infrastructure/db/redis"
	"github.com/longrunpc/calmato-be/internal/infrastructure/queue"
	"github.com/longrunpc/calmato-be/internal/infrastructure/storage/s3"
	"github.com/longrunpc/calmato-be/internal/pkg/config"
	"github.com/longrunpc/calmato-be/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: "calmato-be",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Connect(ctx, cfg.Database.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}
	defer db.Close()

	rdb, err := redisinfra.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	store, err := s3.New(ctx, s3.Config{
		Region:          cfg.S3.Region,
		AccessKeyID:     cfg.S3.AccessKeyID,
		SecretAccessKey: cfg.S3.SecretAccessKey,
		Bucket:          cfg.S3.Bucket,
		Endpoint:        cfg.S3.Endpoint,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("s3 client init failed")
	}

	cleaner := queue.NewCleanupDispatcher(0, store, log)
	cleaner.Start(ctx)

	issuer := service.NewJWTIssuer(cfg.JWTSecret, cfg.JWTTTL)

	e := api.NewRouter(api.Deps{
		DB:      db,
		Redis:   rdb,
		Store:   store,
		Issuer:  issuer,
		Cleaner: cleaner,
		Log:     log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
