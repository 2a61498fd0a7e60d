package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

const (
	DefaultGatewayURL = "https://ai.gateway.needware.dev/v1/chat/completions"
	DefaultModel      = "gemini-2.0-flash-exp-image-generation"

	BackendGateway = "gateway"
	BackendGemini  = "gemini"
)

// Config holds every environment value the API reads at boot.
type Config struct {
	// AIAPIKey is the bearer credential for the upstream generation API.
	// It may be empty; handlers report the service as unconfigured per request.
	AIAPIKey   string
	GatewayURL string
	Model      string
	Backend    string

	Port      string
	Env       string
	SentryDSN string
}

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[Config] .env file not found, using environment variables")
	}

	cfg := &Config{
		AIAPIKey:   GetEnv("AI_API_KEY", ""),
		GatewayURL: GetEnv("AI_GATEWAY_URL", DefaultGatewayURL),
		Model:      GetEnv("AI_MODEL", DefaultModel),
		Backend:    GetEnv("AI_BACKEND", BackendGateway),
		Port:       GetEnv("PORT", "8080"),
		Env:        GetEnv("ENV", "local"),
		SentryDSN:  GetEnv("SENTRY_DSN", ""),
	}
	if cfg.Backend != BackendGateway && cfg.Backend != BackendGemini {
		log.Printf("[Config] Unknown AI_BACKEND %q, falling back to %s", cfg.Backend, BackendGateway)
		cfg.Backend = BackendGateway
	}
	if !cfg.Configured() {
		log.Println("[Config] AI_API_KEY is not set, try-on requests will fail until it is configured")
	}
	log.Printf("[Config] Backend: %s, model: %s, env: %s", cfg.Backend, cfg.Model, cfg.Env)
	return cfg
}

// Configured reports whether the upstream credential is present.
func (c *Config) Configured() bool {
	return c != nil && c.AIAPIKey != ""
}

func GetEnv(key, fallback string) string {
	value := os.Getenv(key)
	if len(value) == 0 {
		return fallback
	}
	return value
}
