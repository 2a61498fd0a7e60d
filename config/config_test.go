package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("AI_API_KEY", "")
	t.Setenv("AI_GATEWAY_URL", "")
	t.Setenv("AI_MODEL", "")
	t.Setenv("AI_BACKEND", "")
	t.Setenv("PORT", "")

	cfg := LoadConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, DefaultGatewayURL, cfg.GatewayURL)
	assert.Equal(t, DefaultModel, cfg.Model)
	assert.Equal(t, BackendGateway, cfg.Backend)
	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.Configured())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("AI_API_KEY", "secret")
	t.Setenv("AI_BACKEND", "gemini")
	t.Setenv("AI_MODEL", "gemini-2.5-flash-image")
	t.Setenv("PORT", "9090")

	cfg := LoadConfig()
	assert.True(t, cfg.Configured())
	assert.Equal(t, BackendGemini, cfg.Backend)
	assert.Equal(t, "gemini-2.5-flash-image", cfg.Model)
	assert.Equal(t, "9090", cfg.Port)
}

func TestLoadConfigUnknownBackend(t *testing.T) {
	t.Setenv("AI_BACKEND", "openai")

	cfg := LoadConfig()
	assert.Equal(t, BackendGateway, cfg.Backend)
}

func TestConfiguredNil(t *testing.T) {
	var cfg *Config
	assert.False(t, cfg.Configured())
}
