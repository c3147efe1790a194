package worker

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sort"
	"time"

	"github.com/promptstage/scene-engine/internal/services"
	"github.com/promptstage/scene-engine/pkg/scenescript"
	"github.com/promptstage/scene-engine/pkg/seed"
	"github.com/promptstage/scene-engine/pkg/world"
)

const (
	// DefaultMaxAttempts is how many times a single prompt is tried
	// before the seeder gives up on it and moves on.
	DefaultMaxAttempts = 4

	baseDelay = 2 * time.Second
	maxDelay  = 30 * time.Second
)

// Seeder generates seed cache entries by running curated prompts
// through the live generator and keeping only scripts that pass strict
// validation.
type Seeder struct {
	llm         services.LLMService
	maxAttempts int
	logger      *slog.Logger

	// sleep is swappable in tests.
	sleep func(ctx context.Context, d time.Duration) error
}

func NewSeeder(llm services.LLMService, logger *slog.Logger) *Seeder {
	return &Seeder{
		llm:         llm,
		maxAttempts: DefaultMaxAttempts,
		logger:      logger,
		sleep:       sleepCtx,
	}
}

// Run generates one seed entry per prompt in the list. Prompts that
// keep failing after all retries are skipped, not fatal: a partial seed
// file is still useful. Worlds are processed in sorted order so output
// is stable across runs.
func (s *Seeder) Run(ctx context.Context, prompts *seed.PromptList) (seed.Data, error) {
	data := seed.Data{}

	worldIDs := make([]string, 0, len(prompts.Worlds))
	for id := range prompts.Worlds {
		worldIDs = append(worldIDs, id)
	}
	sort.Strings(worldIDs)

	for _, worldID := range worldIDs {
		zone, ok := world.Get(worldID)
		if !ok {
			return nil, fmt.Errorf("prompt list references unknown world %q", worldID)
		}
		vocab := zone.Vocabulary()

		for _, prompt := range prompts.Worlds[worldID] {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			script, err := s.generateOne(ctx, zone, vocab, prompt)
			if err != nil {
				s.logger.Warn("Skipping seed prompt after retries",
					"world_id", worldID,
					"prompt", prompt,
					"error", err)
				continue
			}
			if data[worldID] == nil {
				data[worldID] = map[string]*scenescript.SceneScript{}
			}
			data[worldID][prompt] = script
			s.logger.Info("Seeded prompt", "world_id", worldID, "prompt", prompt)
		}
	}
	return data, nil
}

// generateOne retries with exponential backoff and jitter. A script
// that parses but fails strict validation counts as a failed attempt
// too, since a half-valid seed entry would poison the cache.
func (s *Seeder) generateOne(ctx context.Context, zone *world.World, vocab *scenescript.Vocabulary, prompt string) (*scenescript.SceneScript, error) {
	var lastErr error
	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		if attempt > 0 {
			if err := s.sleep(ctx, backoffDelay(attempt)); err != nil {
				return nil, err
			}
		}

		raw, err := s.llm.Generate(ctx, zone.SystemPrompt(), prompt)
		if err != nil {
			lastErr = err
			continue
		}
		script, err := scenescript.Parse(raw)
		if err != nil {
			lastErr = err
			continue
		}
		if err := scenescript.StrictValidate(script, vocab); err != nil {
			lastErr = err
			continue
		}
		return script, nil
	}
	return nil, fmt.Errorf("after %d attempts: %w", s.maxAttempts, lastErr)
}

// backoffDelay returns base * 2^(attempt-1) capped at maxDelay, with up
// to 25% random jitter so parallel seeders don't retry in lockstep.
func backoffDelay(attempt int) time.Duration {
	d := baseDelay << (attempt - 1)
	if d > maxDelay {
		d = maxDelay
	}
	jitter := time.Duration(rand.Int63n(int64(d) / 4))
	return d + jitter
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
