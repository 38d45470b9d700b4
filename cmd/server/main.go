package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sweetshop/sweet-shop-api/internal/api"
	"github.com/sweetshop/sweet-shop-api/internal/core/service"
	"github.com/sweetshop/sweet-shop-api/internal/infrastructure/config"
	mongodb "github.com/sweetshop/sweet-shop-api/internal/infrastructure/db/mongo"
	redisdb "github.com/sweetshop/sweet-shop-api/internal/infrastructure/db/redis"
	"github.com/sweetshop/sweet-shop-api/internal/infrastructure/queue"
	"github.com/sweetshop/sweet-shop-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger is not configured yet; write the failure directly.
		bootLog := logger.New(logger.Options{})
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.Production(),
	})

	if cfg.UsingDevSecret() {
		log.Warn().Msg("JWT_SECRET not set, using insecure development signing secret")
	}

	// --- Storage ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer rdb.Close()

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	sweetRepo := mongodb.NewSweetRepository(db)
	inventoryRepo := mongodb.NewInventoryRepository(db)

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create user indexes")
	}

	// --- Services ---
	tokens := service.NewJWTService(cfg.JWTSecret, 0)
	hasher := service.NewArgon2Hasher()
	limiter := redisdb.NewLoginLimiter(rdb, 0, 0)

	authService := service.NewAuthService(userRepo, hasher, tokens, limiter, log)

	inventoryService := service.NewInventoryService(inventoryRepo, log)
	dispatcher := queue.NewDispatcher(0, inventoryService, log)
	dispatcher.Start(ctx)

	sweetService := service.NewSweetService(sweetRepo, dispatcher, log)

	// --- HTTP ---
	e := api.NewRouter(api.Dependencies{
		AuthService:  authService,
		SweetService: sweetService,
		Tokens:       tokens,
		Mongo:        db,
		Redis:        rdb,
		Logger:       log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
