package api

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/killallgit/websearch-api/api/health"
	quotaRoutes "github.com/killallgit/websearch-api/api/quota"
	"github.com/killallgit/websearch-api/api/search"
	"github.com/killallgit/websearch-api/api/types"
	"github.com/killallgit/websearch-api/api/version"
	_ "github.com/killallgit/websearch-api/docs/swagger"
	quotaService "github.com/killallgit/websearch-api/internal/services/quota"
	"github.com/killallgit/websearch-api/internal/services/websearch"
	"github.com/killallgit/websearch-api/pkg/config"
	"github.com/sirupsen/logrus"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	// Public routes, no rate limiting
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	engine.NoRoute(NotFoundHandler())

	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	if deps == nil {
		deps = &types.Dependencies{}
	}
	if deps.Log == nil {
		deps.Log = newLogger(cfg)
	}

	// Initialize the search orchestrator if not already set
	if deps.Searcher == nil {
		providers := websearch.DefaultProviders(websearch.Config{
			SearxNG: websearch.SearxNGConfig{
				BaseURL:   cfg.SearxNG.BaseURL,
				UserAgent: cfg.SearxNG.UserAgent,
				Timeout:   cfg.SearxNG.Timeout,
			},
			Google: websearch.GoogleConfig{
				APIKey:         cfg.Google.APIKey,
				SearchEngineID: cfg.Google.SearchEngineID,
				BaseURL:        cfg.Google.BaseURL,
				Timeout:        cfg.Google.Timeout,
			},
			Brave: websearch.BraveConfig{
				APIKey:  cfg.Brave.APIKey,
				BaseURL: cfg.Brave.BaseURL,
				Timeout: cfg.Brave.Timeout,
			},
			DuckDuckGo: websearch.DuckDuckGoConfig{
				BaseURL: cfg.Search.DuckDuckGoBaseURL,
				Timeout: cfg.Search.ProviderTimeout,
			},
		})
		deps.Searcher = websearch.NewOrchestrator(providers, deps.Log)
	}

	// Initialize the quota ledger if a database is available
	if deps.QuotaService == nil && deps.DB != nil {
		repo := quotaService.NewRepository(deps.DB.DB)
		deps.QuotaService = quotaService.NewService(repo, deps.Log)
	}

	// API v1 routes
	v1 := engine.Group("/api/v1")

	rps := cfg.RateLimiting.RequestsPerSecond
	if rps <= 0 {
		rps = 5
	}
	burst := cfg.RateLimiting.Burst
	if burst <= 0 {
		burst = 10
	}

	// Search routes with dedicated rate limiting
	searchGroup := v1.Group("/search")
	if cfg.RateLimiting.Enabled {
		searchGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, rps, burst))
	}
	search.RegisterRoutes(searchGroup, deps)

	// Quota routes share the same limits
	quotaGroup := v1.Group("/quota")
	if cfg.RateLimiting.Enabled {
		quotaGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, rps, burst))
	}
	quotaRoutes.RegisterRoutes(quotaGroup, deps)

	return nil
}

// newLogger builds the service logger from config
func newLogger(cfg *config.Config) *logrus.Logger {
	log := logrus.New()
	if level, err := logrus.ParseLevel(cfg.Logging.Level); err == nil {
		log.SetLevel(level)
	}
	if cfg.Logging.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	return log
}
