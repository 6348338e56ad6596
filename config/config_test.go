package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_IsDevelopment(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected bool
	}{
		{
			name:     "development environment",
			config:   &Config{Server: ServerConfig{AppEnv: "development"}},
			expected: true,
		},
		{
			name:     "debug gin mode",
			config:   &Config{Server: ServerConfig{GinMode: "debug"}},
			expected: true,
		},
		{
			name:     "release mode",
			config:   &Config{Server: ServerConfig{GinMode: "release", AppEnv: "production"}},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.IsDevelopment())
		})
	}
}

func TestConfig_IsProduction(t *testing.T) {
	assert.True(t, (&Config{Server: ServerConfig{AppEnv: "production"}}).IsProduction())
	assert.False(t, (&Config{Server: ServerConfig{AppEnv: "staging"}}).IsProduction())
}

func validConfig() *Config {
	return &Config{
		Server:  ServerConfig{Port: "8080"},
		Zendesk: ZendeskConfig{Subdomain: "acme", TimeoutSeconds: 30},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(c *Config)
		errorMsg string
	}{
		{
			name:   "valid subdomain config",
			mutate: func(c *Config) {},
		},
		{
			name: "api url without subdomain",
			mutate: func(c *Config) {
				c.Zendesk.Subdomain = ""
				c.Zendesk.APIURL = "http://localhost:9999/api/v2/requests.json"
			},
		},
		{
			name:     "missing subdomain",
			mutate:   func(c *Config) { c.Zendesk.Subdomain = "" },
			errorMsg: "ZENDESK_SUBDOMAIN is required",
		},
		{
			name:     "subdomain with host",
			mutate:   func(c *Config) { c.Zendesk.Subdomain = "acme.zendesk.com" },
			errorMsg: "bare subdomain",
		},
		{
			name:     "zero timeout",
			mutate:   func(c *Config) { c.Zendesk.TimeoutSeconds = 0 },
			errorMsg: "ZENDESK_TIMEOUT_SECONDS",
		},
		{
			name:     "missing port",
			mutate:   func(c *Config) { c.Server.Port = "" },
			errorMsg: "PORT is required",
		},
		{
			name: "profiling without endpoint",
			mutate: func(c *Config) {
				c.Profiling.Enabled = true
			},
			errorMsg: "O11Y_PROFILING_ENDPOINT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestConfig_ZendeskEndpoint(t *testing.T) {
	cfg := validConfig()
	assert.Equal(t, "https://acme.zendesk.com/api/v2/requests.json", cfg.ZendeskEndpoint())

	cfg.Zendesk.APIURL = "http://127.0.0.1:8181/requests.json"
	assert.Equal(t, "http://127.0.0.1:8181/requests.json", cfg.ZendeskEndpoint())
}

func TestLoad_WithDefaults(t *testing.T) {
	t.Setenv("ZENDESK_SUBDOMAIN", "acme")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.GinMode)
	assert.Equal(t, "production", cfg.Server.AppEnv)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 30, cfg.Zendesk.TimeoutSeconds)
	assert.Equal(t, "feedback-form", cfg.Observability.ServiceName)
	assert.Equal(t, "https://acme.zendesk.com/api/v2/requests.json", cfg.ZendeskEndpoint())
}

func TestLoad_WithEnvironmentVariables(t *testing.T) {
	t.Setenv("ZENDESK_SUBDOMAIN", "support")
	t.Setenv("ZENDESK_TIMEOUT_SECONDS", "5")
	t.Setenv("PORT", "9000")
	t.Setenv("APP_ENV", "development")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Zendesk.TimeoutSeconds)
	assert.True(t, cfg.IsDevelopment())
}
