package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/usermgmt/user-management-api/internal/api"
	"github.com/usermgmt/user-management-api/internal/core/service"
	"github.com/usermgmt/user-management-api/internal/infrastructure/config"
	memdb "github.com/usermgmt/user-management-api/internal/infrastructure/db/memory"
	infraMongo "github.com/usermgmt/user-management-api/internal/infrastructure/db/mongo"
	infraRedis "github.com/usermgmt/user-management-api/internal/infrastructure/db/redis"
	"github.com/usermgmt/user-management-api/internal/infrastructure/seed"
	"github.com/usermgmt/user-management-api/pkg/logger"
)

// @title User Management API
// @version 1.0
// @description Authenticated user and resource management with JWT bearer tokens and ownership-based access control.

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your JWT token with the `Bearer ` prefix, e.g. "Bearer eyJhbGci..."

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(cfg.LogLevel, cfg.Env == "development")

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Storage ---
	mongoClient, db, err := infraMongo.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	rdb, err := infraRedis.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	userRepo := infraMongo.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("mongo index creation failed")
	}
	productRepo := memdb.NewProductRepository()

	// --- Services ---
	denylist := infraRedis.NewDenylist(rdb)
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL, denylist)
	authService := service.NewAuthService(userRepo, tokenService, log)
	productService := service.NewProductService(productRepo, log)

	// --- Demo data ---
	if cfg.SeedDemoData {
		seeder := seed.New(authService, userRepo, productRepo, log)
		if err := seeder.Run(ctx); err != nil {
			log.Warn().Err(err).Msg("demo data seeding failed")
		}
	}

	// --- HTTP server ---
	e := api.NewRouter(api.Deps{
		AuthService:    authService,
		TokenService:   tokenService,
		ProductService: productService,
		Mongo:          db,
		Redis:          rdb,
		Logger:         log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}

	log.Info().Msg("server stopped")
}
