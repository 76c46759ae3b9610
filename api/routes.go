package api

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/killallgit/editor-api/api/exports"
	"github.com/killallgit/editor-api/api/health"
	"github.com/killallgit/editor-api/api/sessions"
	"github.com/killallgit/editor-api/api/types"
	"github.com/killallgit/editor-api/api/version"
	"github.com/killallgit/editor-api/api/videos"
	_ "github.com/killallgit/editor-api/docs/swagger"
	sessionsService "github.com/killallgit/editor-api/internal/services/sessions"
	"github.com/killallgit/editor-api/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	// API v1 routes
	v1 := engine.Group("/api/v1")

	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	if deps == nil {
		return fmt.Errorf("dependencies are nil")
	}

	// Sessions live in memory and need nothing else to exist
	if deps.Sessions == nil {
		deps.Sessions = sessionsService.NewRegistry(sessionsService.Options{
			IdleTimeout:     cfg.Sessions.IdleTimeout,
			CleanupInterval: cfg.Sessions.CleanupInterval,
			MaxSessions:     cfg.Sessions.MaxSessions,
		})
	}

	limit := func(scale float64, burstScale int) gin.HandlerFunc {
		if !cfg.RateLimiting.Enabled || cfg.RateLimiting.RequestsPerSecond <= 0 {
			return func(c *gin.Context) { c.Next() }
		}
		burst := cfg.RateLimiting.Burst * burstScale
		if burst < 1 {
			burst = 1
		}
		return PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized,
			cfg.RateLimiting.RequestsPerSecond*scale, burst)
	}

	// Register session routes with a generous limit (3x): pointer moves
	// arrive at the client's frame rate while scrubbing
	sessionGroup := v1.Group("/sessions")
	sessionGroup.Use(RequestSizeLimit(), limit(3, 3))
	sessions.RegisterRoutes(sessionGroup, deps)

	if deps.VideoService != nil {
		// Register video routes with moderate rate limiting (2x)
		// Higher limits for streaming to allow seeking
		videoGroup := v1.Group("/videos")
		videoGroup.Use(limit(2, 2))
		videos.RegisterRoutes(videoGroup, deps, UploadSizeLimit(cfg.Storage.MaxUploadSize))
	}

	if deps.ExportService != nil {
		// Register export routes with general rate limiting
		exportGroup := v1.Group("/exports")
		exportGroup.Use(RequestSizeLimit(), limit(1, 1))
		exports.RegisterRoutes(exportGroup, deps)
	}

	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
