package server

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/asset-store/internal/adapter/handler"
	"github.com/marcos-nsantos/asset-store/internal/infrastructure/middleware"
)

type Router struct {
	engine         *gin.Engine
	assetHandler   *handler.AssetHandler
	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *middleware.RateLimiter
	logger         *zap.Logger
}

type RouterConfig struct {
	AssetHandler   *handler.AssetHandler
	AuthMiddleware *middleware.AuthMiddleware
	// RateLimiter guards uploads. Nil disables it.
	RateLimiter *middleware.RateLimiter
	Logger      *zap.Logger
	Environment string
}

func NewRouter(cfg RouterConfig) *Router {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	r := &Router{
		engine:         engine,
		assetHandler:   cfg.AssetHandler,
		authMiddleware: cfg.AuthMiddleware,
		rateLimiter:    cfg.RateLimiter,
		logger:         cfg.Logger,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS())
}

func (r *Router) setupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.engine.Group("/api/v1")
	{
		assets := api.Group("/assets")
		assets.Use(r.authMiddleware.RequireAuth())
		{
			assets.POST("", r.uploadChain()...)
			assets.GET("", r.assetHandler.List)
			assets.GET("/:id", r.assetHandler.Get)
			assets.DELETE("/:id", r.assetHandler.Delete)
		}
	}
}

func (r *Router) uploadChain() []gin.HandlerFunc {
	if r.rateLimiter == nil {
		return []gin.HandlerFunc{r.assetHandler.Upload}
	}
	return []gin.HandlerFunc{r.rateLimiter.Limit(), r.assetHandler.Upload}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
