package api

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/editor-api/api/types"
	"github.com/killallgit/editor-api/internal/database"
	"github.com/killallgit/editor-api/pkg/config"
)

// Server represents the HTTP server
type Server struct {
	engine             *gin.Engine
	httpServer         *http.Server
	db                 *database.DB
	corsOrigins        []string
	enableCORS         bool
	rateLimiters       *sync.Map
	cleanupInitialized sync.Once
	cleanupStop        chan struct{}
	stopOnce           sync.Once

	// Dependencies for handlers
	dependencies *types.Dependencies
}

// NewServer creates a new HTTP server
func NewServer(address string) *Server {
	// Create Gin engine with recovery middleware only
	engine := gin.New()
	engine.Use(gin.Recovery())

	server := &Server{
		engine:       engine,
		enableCORS:   true,
		rateLimiters: &sync.Map{},
		cleanupStop:  make(chan struct{}),
		dependencies: &types.Dependencies{},
		httpServer: &http.Server{
			Addr:           address,
			Handler:        engine,
			ReadTimeout:    30 * time.Second,
			WriteTimeout:   30 * time.Second,
			IdleTimeout:    30 * time.Second,
			MaxHeaderBytes: 1 << 20, // 1 MB
		},
	}

	return server
}

// Configure applies server and security settings. Zero values keep the
// defaults set by NewServer.
func (s *Server) Configure(server config.ServerConfig, security config.SecurityConfig) {
	if server.ReadTimeout > 0 {
		s.httpServer.ReadTimeout = server.ReadTimeout
	}
	if server.WriteTimeout > 0 {
		s.httpServer.WriteTimeout = server.WriteTimeout
	}
	if server.MaxHeaderBytes > 0 {
		s.httpServer.MaxHeaderBytes = server.MaxHeaderBytes
	}
	s.enableCORS = security.EnableCORS
	s.corsOrigins = security.CORSOrigins
}

// SetDatabase sets the database connection
func (s *Server) SetDatabase(db *database.DB) {
	s.db = db
	if s.dependencies == nil {
		s.dependencies = &types.Dependencies{}
	}
	s.dependencies.DB = db
}

// SetDependencies sets all handler dependencies
func (s *Server) SetDependencies(deps *types.Dependencies) {
	if deps != nil && deps.DB == nil {
		deps.DB = s.db
	}
	s.dependencies = deps
}

// Dependencies returns the handler dependencies
func (s *Server) Dependencies() *types.Dependencies {
	return s.dependencies
}

// Engine returns the Gin engine for testing
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Initialize sets up middleware and routes
func (s *Server) Initialize() error {
	// Setup global middleware
	s.setupMiddleware()

	// Setup routes
	if err := s.setupRoutes(); err != nil {
		return err
	}

	return nil
}

// setupMiddleware configures global middleware. Body limits are set per
// route group since uploads need a larger one.
func (s *Server) setupMiddleware() {
	// Logger middleware
	s.engine.Use(gin.Logger())

	if s.enableCORS {
		s.engine.Use(CORS(s.corsOrigins))
	}
}

// setupRoutes delegates to the main route registration
func (s *Server) setupRoutes() error {
	return RegisterRoutes(s.engine, s.dependencies, s.rateLimiters, s.cleanupStop, &s.cleanupInitialized)
}

// Start starts the HTTP server
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server and stops background cleanup.
// Sessions are dropped; the worker pool is stopped by its owner.
func (s *Server) Shutdown(ctx context.Context) error {
	s.stopOnce.Do(func() {
		// Stop the rate limiter cleanup goroutine
		close(s.cleanupStop)

		if s.dependencies != nil && s.dependencies.Sessions != nil {
			s.dependencies.Sessions.Stop()
		}
	})

	return s.httpServer.Shutdown(ctx)
}
