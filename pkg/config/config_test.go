package config

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	viper.Reset()
	setDefaults()

	assert.Equal(t, "0.0.0.0", viper.GetString("server.host"))
	assert.Equal(t, 8080, viper.GetInt("server.port"))
	assert.Equal(t, "./data/websearch.db", viper.GetString("database.path"))
	assert.Equal(t, 10*time.Second, viper.GetDuration("searxng.timeout"))
	assert.Equal(t, "https://www.googleapis.com/customsearch/v1", viper.GetString("google.base_url"))
	assert.Equal(t, "https://api.duckduckgo.com", viper.GetString("search.duckduckgo_base_url"))
	assert.True(t, viper.GetBool("rate_limiting.enabled"))
	assert.Equal(t, 5, viper.GetInt("rate_limiting.requests_per_second"))
	assert.Equal(t, "info", viper.GetString("logging.level"))
}

func TestGetConfig(t *testing.T) {
	viper.Reset()
	setDefaults()

	cfg, err := GetConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "./data/websearch.db", cfg.Database.Path)
	assert.Equal(t, "WebSearchAPI/1.0", cfg.SearxNG.UserAgent)
	assert.Equal(t, 10, cfg.RateLimiting.Burst)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		port    int
		wantErr bool
	}{
		{name: "valid port", port: 8080, wantErr: false},
		{name: "zero port", port: 0, wantErr: true},
		{name: "negative port", port: -1, wantErr: true},
		{name: "port too high", port: 70000, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.Server.Port = tt.port

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEnvironmentOverride(t *testing.T) {
	viper.Reset()
	t.Setenv("WEBSEARCH_GOOGLE_API_KEY", "env-key")

	setDefaults()
	viper.SetEnvPrefix("WEBSEARCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	assert.Equal(t, "env-key", viper.GetString("google.api_key"))
}
