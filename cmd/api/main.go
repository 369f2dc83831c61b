package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/blogforge/blog-api/internal/api"
	"github.com/blogforge/blog-api/internal/infrastructure/config"
	"github.com/blogforge/blog-api/internal/infrastructure/db/postgres"
	redisinfra "github.com/blogforge/blog-api/internal/infrastructure/db/redis"
	"github.com/blogforge/blog-api/pkg/logger"
)

// @title        Blog API
// @version      1.0
// @description  Blogging backend with JWT authentication and ownership-based post authorization.
// @host         localhost:8080
// @BasePath     /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	// .env is a local development convenience; absence is fine.
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx := context.Background()

	db, err := postgres.Open(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer db.Close()

	if err := postgres.RunMigrations(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	rdb, err := redisinfra.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
	if err != nil {
		// The service degrades gracefully without Redis: login throttling
		// is disabled but everything else works.
		log.Warn().Err(err).Msg("redis unavailable, login throttling disabled")
		rdb = nil
	} else {
		defer rdb.Close()
	}

	e := api.NewRouter(cfg, db, rdb, log)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
