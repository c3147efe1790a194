package main

import (
	"context"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/promptstage/scene-engine/internal/config"
	"github.com/promptstage/scene-engine/internal/handlers"
	"github.com/promptstage/scene-engine/internal/logger"
	"github.com/promptstage/scene-engine/internal/middleware"
	"github.com/promptstage/scene-engine/internal/services"
	"github.com/promptstage/scene-engine/pkg/resolver"
	"github.com/promptstage/scene-engine/pkg/seed"
	"github.com/promptstage/scene-engine/pkg/world"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatal(err)
	}

	log := logger.Setup(cfg)

	log.Info("Starting Scene Engine API",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"llm_provider", cfg.LLMProvider,
		"model_name", cfg.ModelName)

	var llmService services.LLMService
	switch strings.ToLower(cfg.LLMProvider) {
	case "anthropic":
		if cfg.AnthropicAPIKey == "" {
			log.Error("Anthropic API key is required when using anthropic provider")
			os.Exit(1)
		}
		llmService = services.NewAnthropicService(cfg.AnthropicAPIKey, cfg.ModelName, log)
		log.Info("Using Anthropic LLM provider")
	case "ollama":
		llmService = services.NewOllamaService(cfg.OllamaURL, cfg.ModelName, log)
		log.Info("Using Ollama LLM provider", "url", cfg.OllamaURL)
	case "mock":
		// Local development without a model: every prompt resolves
		// from the seed cache or the fallback scripts.
		llmService = services.NewMockLLM()
		log.Info("Using mock LLM provider")
	default:
		log.Error("Invalid LLM provider specified", "provider", cfg.LLMProvider, "supported", []string{"anthropic", "ollama", "mock"})
		os.Exit(1)
	}

	cache := resolver.NewCache(log)
	if cfg.SeedPath != "" {
		data, err := seed.ReadFile(cfg.SeedPath)
		if err != nil {
			log.Error("Failed to load seed cache", "path", cfg.SeedPath, "error", err)
			os.Exit(1)
		}
		cache.Load(data)
		log.Info("Seed cache loaded", "path", cfg.SeedPath, "entries", cache.Len())
	}

	var limiter services.RateLimiter
	var limiterCloser interface{ Close() error }
	if cfg.RateLimitEnabled {
		if cfg.RedisURL != "" {
			rl, err := services.NewRedisRateLimiter(cfg.RedisURL, cfg.RateLimit, log)
			if err != nil {
				log.Error("Failed to configure rate limiter", "error", err)
				os.Exit(1)
			}
			limiter = rl
			limiterCloser = rl
			log.Info("Rate limiting via Redis", "addr", cfg.RedisURL, "limit", cfg.RateLimit)
		} else {
			ml, err := services.NewMemoryRateLimiter(cfg.RateLimit)
			if err != nil {
				log.Error("Failed to configure rate limiter", "error", err)
				os.Exit(1)
			}
			limiter = ml
			log.Info("Rate limiting in memory", "limit", cfg.RateLimit)
		}
	}

	res := resolver.New(cache, llmService, world.FallbackScript, cfg.GenerateTimeout, log)

	mux := http.NewServeMux()
	mux.Handle("/health", handlers.NewHealthHandler(cache, cfg.LLMProvider, log))
	mux.Handle("/v1/scene", handlers.NewSceneHandler(res, limiter, log))

	worldsHandler := handlers.NewWorldsHandler(log)
	mux.Handle("/v1/worlds", worldsHandler)
	mux.Handle("/v1/worlds/", worldsHandler)

	handler := middleware.Logger(mux)
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("Server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Server is shutting down...")

	if limiterCloser != nil {
		if err := limiterCloser.Close(); err != nil {
			log.Error("Error closing rate limiter", "error", err)
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("Server exited")
}
