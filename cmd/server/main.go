package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ddcrdc/content-api/internal/api"
	redisdb "github.com/ddcrdc/content-api/internal/infrastructure/db/redis"
	"github.com/ddcrdc/content-api/internal/infrastructure/db/sqlite"
	"github.com/ddcrdc/content-api/internal/pkg/config"
	"github.com/ddcrdc/content-api/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	secret, configured := cfg.SigningSecret()
	if !configured {
		log.Warn().Msg("JWT_SECRET not set, using the insecure built-in secret")
	}

	db, err := sqlite.Open(cfg.SQLite.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.SQLite.Path).Msg("failed to open database")
	}
	defer db.Close()

	if err := sqlite.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = redisdb.Connect(context.Background(), redisdb.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("failed to connect to redis")
		}
		defer rdb.Close()
	} else {
		log.Info().Msg("redis not configured, login rate limiting disabled")
	}

	e := api.NewRouter(db, rdb, secret, cfg.CORSOrigin, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
