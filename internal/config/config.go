package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Config carries the process configuration, loaded from environment
// variables with development-friendly defaults.
type Config struct {
	Port        string
	Environment string
	LogLevel    slog.Level

	// Live generation provider.
	LLMProvider     string
	AnthropicAPIKey string
	ModelName       string
	OllamaURL       string
	GenerateTimeout time.Duration

	// Response cache seed loaded at startup. Empty means start cold.
	SeedPath string

	// Rate limiting for the resolve endpoint.
	RedisURL         string
	RateLimit        string
	RateLimitEnabled bool
}

func Load() (*Config, error) {
	timeout, err := time.ParseDuration(getEnv("GENERATE_TIMEOUT", "6s"))
	if err != nil {
		return nil, fmt.Errorf("invalid GENERATE_TIMEOUT: %w", err)
	}

	return &Config{
		Port:             getEnv("PORT", "8080"),
		Environment:      getEnv("ENVIRONMENT", "development"),
		LogLevel:         parseLogLevel(getEnv("LOG_LEVEL", "info")),
		LLMProvider:      getEnv("LLM_PROVIDER", "anthropic"),
		AnthropicAPIKey:  os.Getenv("ANTHROPIC_API_KEY"),
		ModelName:        getEnv("MODEL_NAME", "claude-sonnet-4-20250514"),
		OllamaURL:        getEnv("OLLAMA_URL", "http://localhost:11434"),
		GenerateTimeout:  timeout,
		SeedPath:         os.Getenv("SEED_PATH"),
		RedisURL:         os.Getenv("REDIS_URL"),
		RateLimit:        getEnv("RATE_LIMIT", "30/minute"),
		RateLimitEnabled: getEnv("RATE_LIMIT_ENABLED", "false") == "true",
	}, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
