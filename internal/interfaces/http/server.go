// internal/interfaces/http/server.go
package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-cart/internal/config"
	"github.com/your-org/storefront-cart/internal/domain/checkout"
	"github.com/your-org/storefront-cart/internal/interfaces/http/handlers"
	"github.com/your-org/storefront-cart/internal/interfaces/http/middleware"
	"github.com/your-org/storefront-cart/internal/interfaces/http/routes"
)

// HealthChecker is a dependency checked by /health
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Dependencies are the collaborators the server is wired with. Catalog,
// Receipts and RedisClient are optional.
type Dependencies struct {
	Storage     handlers.SessionStorage
	Checkout    *checkout.Service
	Catalog     handlers.ProductCatalog
	Receipts    handlers.ReceiptRenderer
	Listeners   []checkout.Listener
	RedisClient *redis.Client
	Checks      map[string]HealthChecker
}

// Server represents the HTTP server
type Server struct {
	config     *config.Config
	logger     logrus.FieldLogger
	deps       Dependencies
	gin        *gin.Engine
	httpServer *http.Server
	startedAt  time.Time
}

// NewServer creates a new HTTP server instance with middleware and routes installed
func NewServer(cfg *config.Config, logger logrus.FieldLogger, deps Dependencies) *Server {
	s := &Server{
		config:    cfg,
		logger:    logger,
		deps:      deps,
		startedAt: time.Now(),
	}

	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	s.gin = gin.New()
	if err := s.gin.SetTrustedProxies(cfg.Security.TrustedProxies); err != nil {
		logger.WithError(err).Warn("Ignoring invalid trusted proxies")
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Handler exposes the gin engine
func (s *Server) Handler() http.Handler {
	return s.gin
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:         ":" + s.config.Server.Port,
		Handler:      s.gin,
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
		IdleTimeout:  s.config.Server.IdleTimeout,
	}

	s.logger.Infof("🚀 HTTP Server starting on port %s", s.config.Server.Port)
	s.logger.Infof("🛒 Cart API: http://localhost:%s/api/v1/cart", s.config.Server.Port)
	s.logger.Infof("📊 Health Check: http://localhost:%s/health", s.config.Server.Port)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	return nil
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}

	s.logger.Info("🛑 Shutting down HTTP server...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	s.logger.Info("✅ HTTP server stopped gracefully")
	return nil
}

// setupMiddleware configures all middleware for the server
func (s *Server) setupMiddleware() {
	s.gin.Use(gin.Recovery())
	s.gin.Use(middleware.RequestID())
	s.gin.Use(middleware.Logger(s.logger))
	s.gin.Use(middleware.CORS(s.config.Security))
	s.gin.Use(middleware.SecurityHeaders(s.config.App.Name))
	s.gin.Use(middleware.RateLimit(s.config.Security.RateLimitPerMinute, s.deps.RedisClient, s.logger))
	s.gin.Use(middleware.RequestSizeLimit(1 << 20))
	s.gin.Use(middleware.Timeout(s.config.Server.RequestTimeout))
}

// setupRoutes configures all routes for the server
func (s *Server) setupRoutes() {
	s.gin.GET("/health", s.healthCheck)
	s.gin.GET("/ready", s.readinessCheck)

	sessions := handlers.NewSessions(
		s.deps.Storage,
		s.deps.Checkout.Calculator(),
		s.config.Session,
		s.logger,
		s.deps.Listeners...,
	)

	h := routes.Handlers{
		Cart:     handlers.NewCartHandler(sessions, s.deps.Catalog, s.logger),
		Checkout: handlers.NewCheckoutHandler(sessions, s.deps.Checkout, s.deps.Receipts, s.logger),
	}
	if s.deps.Catalog != nil {
		h.Catalog = handlers.NewCatalogHandler(s.deps.Catalog, s.logger)
	}

	routes.SetupRoutes(s.gin.Group("/api/v1"), h)

	if s.config.IsDevelopment() {
		s.gin.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"message":     s.config.App.Name,
				"version":     s.config.App.Version,
				"environment": s.config.App.Environment,
				"health":      "/health",
				"endpoints": gin.H{
					"products": "/api/v1/products",
					"cart":     "/api/v1/cart",
					"checkout": "/api/v1/checkout",
				},
			})
		})
	}
}

// healthCheck handles health check requests
func (s *Server) healthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	for name, check := range s.deps.Checks {
		if err := check.Health(ctx); err != nil {
			s.logger.WithError(err).WithField("dependency", name).Warn("Health check failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  fmt.Sprintf("%s ping failed", name),
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":        "healthy",
		"timestamp":     time.Now().UTC(),
		"version":       s.config.App.Version,
		"environment":   s.config.App.Environment,
		"session_store": s.config.Session.Store,
	})
}

// readinessCheck handles readiness check requests
func (s *Server) readinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ready",
		"timestamp": time.Now().UTC(),
		"uptime":    time.Since(s.startedAt).String(),
	})
}
