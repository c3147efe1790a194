package resolver

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/promptstage/scene-engine/pkg/scenescript"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubGenerator is a scriptable Generator that records its calls.
type stubGenerator struct {
	mu       sync.Mutex
	response string
	err      error
	delay    time.Duration
	calls    int
}

func (g *stubGenerator) Generate(ctx context.Context, systemPrompt, userInput string) (string, error) {
	g.mu.Lock()
	g.calls++
	g.mu.Unlock()

	if g.delay > 0 {
		select {
		case <-time.After(g.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if g.err != nil {
		return "", g.err
	}
	return g.response, nil
}

func (g *stubGenerator) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

func validRawScript(t *testing.T, narration string) string {
	t.Helper()
	data, err := json.Marshal(map[string]any{
		"success_level":   "FULL_SUCCESS",
		"narration":       narration,
		"actions":         []any{map[string]any{"type": "spawn", "target": "monster", "position": "center"}},
		"prompt_feedback": "nice prompt",
	})
	require.NoError(t, err)
	return string(data)
}

func fallbackTable() FallbackFunc {
	scripts := map[string]*scenescript.SceneScript{
		"monster-party": {
			SuccessLevel:   scenescript.PartialSuccess,
			Narration:      "Fallback monster party narration",
			Actions:        []scenescript.Action{{Type: scenescript.ActionSpawn, Target: "monster", Position: scenescript.PosCenter}},
			PromptFeedback: "Fallback feedback for monster party",
		},
	}
	return func(worldID string) *scenescript.SceneScript {
		if s, ok := scripts[worldID]; ok {
			return s
		}
		return scripts["monster-party"]
	}
}

func newTestResolver(gen Generator) (*Resolver, *Cache) {
	cache := NewCache(testLogger())
	r := New(cache, gen, fallbackTable(), time.Second, testLogger())
	return r, cache
}

func TestResolve_CacheHitSkipsGeneration(t *testing.T) {
	gen := &stubGenerator{response: validRawScript(t, "live")}
	r, cache := newTestResolver(gen)

	cached := script("cached scene")
	cache.Put("monster-party", "bring a giant cake", cached)

	resp := r.Resolve(context.Background(), "monster-party", "prompt", "bring a giant cake")

	assert.Equal(t, SourceCache, resp.Source)
	assert.Same(t, cached, resp.Script)
	assert.GreaterOrEqual(t, resp.LatencyMs, 0.0)
	assert.Zero(t, gen.callCount(), "generator must not be invoked on a cache hit")
	assert.Equal(t, 1, cache.Len(), "cache hit must not write again")
}

func TestResolve_FuzzyCacheHit(t *testing.T) {
	gen := &stubGenerator{response: validRawScript(t, "live")}
	r, cache := newTestResolver(gen)

	cached := script("fuzzy scene")
	cache.Put("monster-party", "bring giant chocolate cake monster", cached)

	resp := r.Resolve(context.Background(), "monster-party", "prompt", "giant chocolate cake")

	assert.Equal(t, SourceCache, resp.Source)
	assert.Same(t, cached, resp.Script)
	assert.Zero(t, gen.callCount())
}

func TestResolve_LiveGenerationCachesResult(t *testing.T) {
	gen := &stubGenerator{response: validRawScript(t, "balloons everywhere")}
	r, _ := newTestResolver(gen)

	resp := r.Resolve(context.Background(), "monster-party", "prompt", "fill the room with balloons")

	assert.Equal(t, SourceLive, resp.Source)
	assert.Equal(t, "balloons everywhere", resp.Script.Narration)
	assert.Equal(t, 1, gen.callCount())

	// The live result is now cached: a resubmit must hit Tier 1.
	again := r.Resolve(context.Background(), "monster-party", "prompt", "FILL the room with balloons!")
	assert.Equal(t, SourceCache, again.Source)
	assert.Same(t, resp.Script, again.Script)
	assert.Equal(t, 1, gen.callCount())
}

func TestResolve_GeneratorErrorFallsBack(t *testing.T) {
	gen := &stubGenerator{err: errors.New("connection refused")}
	r, cache := newTestResolver(gen)

	resp := r.Resolve(context.Background(), "monster-party", "prompt", "bring a giant cake")

	assert.Equal(t, SourceFallback, resp.Source)
	assert.Equal(t, "Fallback monster party narration", resp.Script.Narration)
	assert.Equal(t, 0, cache.Len(), "no cache write on fallback")
}

func TestResolve_MalformedGenerationFallsBack(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"not json", "sure! here's a fun scene for you"},
		{"missing required fields", `{"narration": "no level or actions"}`},
		{"actions not an array", `{"success_level": "FULL_SUCCESS", "actions": "nope", "prompt_feedback": "x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &stubGenerator{response: tt.response}
			r, cache := newTestResolver(gen)

			resp := r.Resolve(context.Background(), "monster-party", "prompt", "bring a giant cake")

			assert.Equal(t, SourceFallback, resp.Source)
			assert.Equal(t, 0, cache.Len())
		})
	}
}

func TestResolve_TimeoutFallsBack(t *testing.T) {
	gen := &stubGenerator{response: validRawScript(t, "slow"), delay: 500 * time.Millisecond}
	cache := NewCache(testLogger())
	r := New(cache, gen, fallbackTable(), 20*time.Millisecond, testLogger())

	resp := r.Resolve(context.Background(), "monster-party", "prompt", "bring a giant cake")

	assert.Equal(t, SourceFallback, resp.Source)
	assert.Equal(t, 0, cache.Len())
}

func TestResolve_UnknownWorldStillFallsBack(t *testing.T) {
	gen := &stubGenerator{err: errors.New("boom")}
	r, _ := newTestResolver(gen)

	resp := r.Resolve(context.Background(), "no-such-world", "prompt", "do something")

	assert.Equal(t, SourceFallback, resp.Source)
	assert.Equal(t, "Fallback monster party narration", resp.Script.Narration)
}

func TestResolve_AlwaysResolves(t *testing.T) {
	// Every combination of cache state and generator behavior must yield
	// a structurally valid script.
	combos := []struct {
		name    string
		precach bool
		gen     *stubGenerator
	}{
		{"hit + generator ok", true, &stubGenerator{}},
		{"hit + generator fails", true, &stubGenerator{err: errors.New("x")}},
		{"miss + generator ok", false, nil}, // response filled in below
		{"miss + generator fails", false, &stubGenerator{err: errors.New("x")}},
		{"miss + invalid output", false, &stubGenerator{response: "garbage"}},
	}

	for _, combo := range combos {
		t.Run(combo.name, func(t *testing.T) {
			gen := combo.gen
			if gen == nil {
				gen = &stubGenerator{response: validRawScript(t, "ok")}
			}
			r, cache := newTestResolver(gen)
			if combo.precach {
				cache.Put("monster-party", "bring a cake", script("cached"))
			}

			resp := r.Resolve(context.Background(), "monster-party", "prompt", "bring a cake")

			require.NotNil(t, resp)
			require.NotNil(t, resp.Script)
			assert.NotEmpty(t, resp.Script.Narration)
			assert.NotNil(t, resp.Script.Actions)
			assert.GreaterOrEqual(t, resp.LatencyMs, 0.0)
			assert.Contains(t, []Source{SourceCache, SourceLive, SourceFallback}, resp.Source)
		})
	}
}

func TestResolve_EndToEndFallbackScenario(t *testing.T) {
	// Empty cache, generator throws: the player still gets the exact
	// pre-authored scene for the world.
	gen := &stubGenerator{err: errors.New("network down")}
	r, _ := newTestResolver(gen)

	resp := r.Resolve(context.Background(), "monster-party", "system prompt", "bring a giant cake")

	assert.Equal(t, SourceFallback, resp.Source)
	assert.Equal(t, "Fallback monster party narration", resp.Script.Narration)
	assert.Equal(t, "Fallback feedback for monster party", resp.Script.PromptFeedback)
}
