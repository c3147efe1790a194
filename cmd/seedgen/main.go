package main

import (
	"context"
	"flag"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/promptstage/scene-engine/internal/config"
	"github.com/promptstage/scene-engine/internal/logger"
	"github.com/promptstage/scene-engine/internal/services"
	"github.com/promptstage/scene-engine/internal/worker"
	"github.com/promptstage/scene-engine/pkg/seed"
)

// seedgen runs curated prompts through the live generator and writes
// the validated results as a seed cache file for the API to load.
func main() {
	promptsPath := flag.String("prompts", "data/prompts.yaml", "YAML prompt list to seed from")
	outPath := flag.String("out", "data/seed.json", "output seed cache file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatal(err)
	}
	log := logger.Setup(cfg)

	var llmService services.LLMService
	switch strings.ToLower(cfg.LLMProvider) {
	case "anthropic":
		if cfg.AnthropicAPIKey == "" {
			log.Error("Anthropic API key is required when using anthropic provider")
			os.Exit(1)
		}
		llmService = services.NewAnthropicService(cfg.AnthropicAPIKey, cfg.ModelName, log)
	case "ollama":
		llmService = services.NewOllamaService(cfg.OllamaURL, cfg.ModelName, log)
	default:
		log.Error("Seed generation needs a live provider", "provider", cfg.LLMProvider, "supported", []string{"anthropic", "ollama"})
		os.Exit(1)
	}

	prompts, err := seed.ReadPromptList(*promptsPath)
	if err != nil {
		log.Error("Failed to read prompt list", "path", *promptsPath, "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	seeder := worker.NewSeeder(llmService, log)
	data, err := seeder.Run(ctx, prompts)
	if err != nil {
		log.Error("Seed generation aborted", "error", err)
		os.Exit(1)
	}

	if err := seed.WriteFile(*outPath, data); err != nil {
		log.Error("Failed to write seed file", "path", *outPath, "error", err)
		os.Exit(1)
	}

	entries := 0
	for _, m := range data {
		entries += len(m)
	}
	fmt.Printf("Wrote %d entries across %d worlds to %s\n", entries, len(data), *outPath)
}
