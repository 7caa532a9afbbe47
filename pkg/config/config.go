package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	once    sync.Once
	initErr error
)

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		setDefaults()

		// Environment overrides, e.g. WEBSEARCH_GOOGLE_API_KEY
		viper.SetEnvPrefix("WEBSEARCH")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		configPath := filepath.Clean("./config/settings.yaml")
		viper.SetConfigFile(configPath)

		if err := viper.ReadInConfig(); err != nil {
			// Missing config file is fine, defaults and env vars apply
			if !os.IsNotExist(err) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
		}

		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

func setDefaults() {
	// Server
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1<<20)

	// Database
	viper.SetDefault("database.path", "./data/websearch.db")
	viper.SetDefault("database.max_connections", 25)
	viper.SetDefault("database.max_idle_connections", 5)
	viper.SetDefault("database.log_queries", false)

	// Providers
	viper.SetDefault("searxng.base_url", "")
	viper.SetDefault("searxng.user_agent", "WebSearchAPI/1.0")
	viper.SetDefault("searxng.timeout", 10*time.Second)
	viper.SetDefault("google.api_key", "")
	viper.SetDefault("google.search_engine_id", "")
	viper.SetDefault("google.base_url", "https://www.googleapis.com/customsearch/v1")
	viper.SetDefault("google.timeout", 10*time.Second)
	viper.SetDefault("brave.api_key", "")
	viper.SetDefault("brave.base_url", "https://api.search.brave.com/res/v1/web/search")
	viper.SetDefault("brave.timeout", 10*time.Second)

	// Search orchestration
	viper.SetDefault("search.duckduckgo_base_url", "https://api.duckduckgo.com")
	viper.SetDefault("search.provider_timeout", 10*time.Second)
	viper.SetDefault("search.request_timeout", 30*time.Second)

	// Rate limiting
	viper.SetDefault("rate_limiting.enabled", true)
	viper.SetDefault("rate_limiting.requests_per_second", 5)
	viper.SetDefault("rate_limiting.burst", 10)

	// Logging
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	if viper.GetString("database.path") == "" {
		fmt.Println("Warning: No database path configured, quota tracking disabled")
	}

	return validateAPIKeys()
}

// validateAPIKeys rejects placeholder credentials in production
func validateAPIKeys() error {
	env := viper.GetString("environment")
	isProduction := env == "production" || env == "prod"

	placeholders := []string{
		"YOUR_KEY_HERE",
		"YOUR_API_KEY",
		"changeme",
		"CHANGEME",
	}

	for _, key := range []string{"google.api_key", "brave.api_key"} {
		value := viper.GetString(key)
		for _, placeholder := range placeholders {
			if value == placeholder {
				if isProduction {
					return fmt.Errorf("invalid %s: cannot use placeholder values in production", key)
				}
				fmt.Printf("Warning: %s is using a placeholder value\n", key)
				break
			}
		}
	}

	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	return nil
}
