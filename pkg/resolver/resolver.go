package resolver

import (
	"context"
	"log/slog"
	"time"

	"github.com/promptstage/scene-engine/pkg/scenescript"
)

// DefaultGenerateTimeout bounds the live generation tier. A timeout is
// handled exactly like any other generation failure: demotion to the
// fallback tier.
const DefaultGenerateTimeout = 6 * time.Second

// Source tags which tier produced a resolved response.
type Source string

const (
	SourceCache    Source = "cache"
	SourceLive     Source = "live"
	SourceFallback Source = "fallback"
)

// Generator is the external text-generation collaborator. Any error it
// returns, including timeouts and rate limits, is treated identically.
type Generator interface {
	Generate(ctx context.Context, systemPrompt, userInput string) (string, error)
}

// FallbackFunc returns a pre-authored scene for a world. It must always
// return a script, for unknown world ids included.
type FallbackFunc func(worldID string) *scenescript.SceneScript

// ResolvedResponse is the ephemeral result of one resolution.
type ResolvedResponse struct {
	Script    *scenescript.SceneScript `json:"script"`
	Source    Source                   `json:"source"`
	LatencyMs float64                  `json:"latency_ms"`
}

// Resolver runs the three tiers in strict order: cache, live
// generation, static fallback.
type Resolver struct {
	cache     *Cache
	generator Generator
	fallback  FallbackFunc
	timeout   time.Duration
	logger    *slog.Logger
}

// New creates a resolver. A zero timeout uses DefaultGenerateTimeout.
func New(cache *Cache, generator Generator, fallback FallbackFunc, timeout time.Duration, logger *slog.Logger) *Resolver {
	if timeout <= 0 {
		timeout = DefaultGenerateTimeout
	}
	return &Resolver{
		cache:     cache,
		generator: generator,
		fallback:  fallback,
		timeout:   timeout,
		logger:    logger,
	}
}

// Resolve produces a scene for the player's input. It never fails:
// generation and validation errors are logged and demoted to the static
// fallback tier. The caller is responsible for rejecting unknown world
// ids and blank input before calling.
//
// The cache is written only on a successful live generation, never on
// a cache hit and never on fallback.
func (r *Resolver) Resolve(ctx context.Context, worldID, systemPrompt, userInput string) *ResolvedResponse {
	start := time.Now()

	// Tier 1: cache, exact or fuzzy.
	if script, ok := r.cache.Get(worldID, userInput); ok {
		resp := &ResolvedResponse{Script: script, Source: SourceCache, LatencyMs: elapsedMs(start)}
		r.logger.Debug("Resolved from cache", "world", worldID, "latency_ms", resp.LatencyMs)
		return resp
	}

	// Tier 2: live generation, single attempt, bounded by the timeout.
	genCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	raw, err := r.generator.Generate(genCtx, systemPrompt, userInput)
	if err == nil {
		var script *scenescript.SceneScript
		script, err = scenescript.Parse(raw)
		if err == nil {
			r.cache.Put(worldID, userInput, script)
			resp := &ResolvedResponse{Script: script, Source: SourceLive, LatencyMs: elapsedMs(start)}
			r.logger.Info("Resolved from live generation", "world", worldID, "latency_ms", resp.LatencyMs)
			return resp
		}
	}
	r.logger.Warn("Live generation failed, using fallback", "world", worldID, "error", err)

	// Tier 3: static fallback. Always succeeds.
	resp := &ResolvedResponse{Script: r.fallback(worldID), Source: SourceFallback, LatencyMs: elapsedMs(start)}
	r.logger.Info("Resolved from fallback", "world", worldID, "latency_ms", resp.LatencyMs)
	return resp
}

func elapsedMs(start time.Time) float64 {
	return float64(time.Since(start)) / float64(time.Millisecond)
}
