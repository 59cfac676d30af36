package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/asset-store/internal/adapter/handler"
	"github.com/marcos-nsantos/asset-store/internal/adapter/repository/postgres"
	adapterStorage "github.com/marcos-nsantos/asset-store/internal/adapter/storage"
	"github.com/marcos-nsantos/asset-store/internal/infrastructure/auth"
	"github.com/marcos-nsantos/asset-store/internal/infrastructure/cache"
	"github.com/marcos-nsantos/asset-store/internal/infrastructure/config"
	"github.com/marcos-nsantos/asset-store/internal/infrastructure/database"
	"github.com/marcos-nsantos/asset-store/internal/infrastructure/hashing"
	"github.com/marcos-nsantos/asset-store/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/asset-store/internal/infrastructure/observability"
	"github.com/marcos-nsantos/asset-store/internal/infrastructure/server"
	"github.com/marcos-nsantos/asset-store/internal/infrastructure/storage"
	"github.com/marcos-nsantos/asset-store/internal/usecase/asset"
	"github.com/marcos-nsantos/asset-store/internal/usecase/variant"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Log)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	pool, err := database.NewPostgresPool(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	applied, err := database.RunMigrations(ctx, pool, cfg.Database.MigrationsPath)
	if err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}
	if len(applied) > 0 {
		logger.Info("applied migrations", zap.Strings("versions", applied))
	}

	// Repositories
	assetRepo := postgres.NewAssetRepo(pool)

	// Infrastructure services
	jwtSvc := auth.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL, cfg.JWT.Issuer)

	sink, err := storage.NewBlobSink(ctx, cfg.Storage)
	if err != nil {
		logger.Fatal("failed to create blob storage", zap.Error(err))
	}
	imageProcessor := storage.NewImageProcessor()
	variantObserver := observability.NewVariantObserver(logger)

	// Use cases
	planner := variant.NewPlanner(imageProcessor, cfg.Image.Optimize, variantObserver)
	provider := asset.NewProvider(planner, sink, cfg.Image.Sizes, variantObserver)
	assetSvc := asset.NewService(
		assetRepo,
		provider,
		hashing.NewBlake2bHasher(),
		adapterStorage.Params(cfg.Storage.Params),
		logger,
	)

	// Handlers
	assetHandler := handler.NewAssetHandler(assetSvc, cfg.Upload.MaxSize)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtSvc)

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.Warn("rate limiting disabled", zap.Error(err))
		} else {
			defer redisClient.Close()
			rateLimiter = middleware.NewRateLimiter(redisClient, cfg.RateLimit, "upload", logger)
		}
	}

	// Router
	router := server.NewRouter(server.RouterConfig{
		AssetHandler:   assetHandler,
		AuthMiddleware: authMiddleware,
		RateLimiter:    rateLimiter,
		Logger:         logger,
		Environment:    cfg.Server.Environment,
	})

	// Server
	srv := server.NewServer(server.ServerConfig{
		Port:            cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Handler:         router.Engine(),
		Logger:          logger,
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	logger.Info("server stopped")
}
