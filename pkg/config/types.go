package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Server       ServerConfig    `mapstructure:"server"`
	Database     DatabaseConfig  `mapstructure:"database"`
	SearxNG      SearxNGConfig   `mapstructure:"searxng"`
	Google       GoogleConfig    `mapstructure:"google"`
	Brave        BraveConfig     `mapstructure:"brave"`
	Search       SearchConfig    `mapstructure:"search"`
	RateLimiting RateLimitConfig `mapstructure:"rate_limiting"`
	Logging      LoggingConfig   `mapstructure:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path               string `mapstructure:"path"`
	MaxConnections     int    `mapstructure:"max_connections"`
	MaxIdleConnections int    `mapstructure:"max_idle_connections"`
	LogQueries         bool   `mapstructure:"log_queries"`
}

// SearxNGConfig contains meta-search instance settings
type SearxNGConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	UserAgent string        `mapstructure:"user_agent"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// GoogleConfig contains Google Custom Search API settings
type GoogleConfig struct {
	APIKey         string        `mapstructure:"api_key"`
	SearchEngineID string        `mapstructure:"search_engine_id"`
	BaseURL        string        `mapstructure:"base_url"`
	Timeout        time.Duration `mapstructure:"timeout"`
}

// BraveConfig contains Brave Search API settings
type BraveConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// SearchConfig contains orchestrator-level settings
type SearchConfig struct {
	DuckDuckGoBaseURL string        `mapstructure:"duckduckgo_base_url"`
	ProviderTimeout   time.Duration `mapstructure:"provider_timeout"`
	RequestTimeout    time.Duration `mapstructure:"request_timeout"`
}

// RateLimitConfig contains per-client rate limiting settings
type RateLimitConfig struct {
	Enabled           bool `mapstructure:"enabled"`
	RequestsPerSecond int  `mapstructure:"requests_per_second"`
	Burst             int  `mapstructure:"burst"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
