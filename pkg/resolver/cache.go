// Package resolver implements the response resolution pipeline: a fuzzy
// in-process cache, a live generation tier, and a static fallback tier.
// Whatever fails, a resolve call always produces a playable scene.
package resolver

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/promptstage/scene-engine/pkg/scenescript"
	"github.com/promptstage/scene-engine/pkg/textmatch"
)

// FuzzyThreshold is the minimum keyword-overlap score for a fuzzy cache
// hit. Tuned against textmatch.Overlap's max-denominator formula.
const FuzzyThreshold = 0.6

// bucket holds one world's cached entries. Keys keep their insertion
// order so fuzzy-score ties resolve first-seen-wins, deterministically.
type bucket struct {
	order   []string
	entries map[string]*scenescript.SceneScript
}

// Cache maps world id to previously resolved player inputs. It is the
// only mutable state in the pipeline: seeded once at startup, then grown
// by successful live generations. Entries are never evicted.
type Cache struct {
	mu      sync.RWMutex
	buckets map[string]*bucket
	logger  *slog.Logger
}

// NewCache creates an empty response cache.
func NewCache(logger *slog.Logger) *Cache {
	return &Cache{
		buckets: make(map[string]*bucket),
		logger:  logger,
	}
}

// Load replaces the entire cache contents with the given seed data.
// Seed keys are stored as-is; they are not required to be pre-normalized
// (Get compares normalized forms). Calling Load again discards
// everything, including entries added by Put.
func (c *Cache) Load(data map[string]map[string]*scenescript.SceneScript) {
	buckets := make(map[string]*bucket, len(data))
	total := 0

	for worldID, scripts := range data {
		b := &bucket{
			order:   make([]string, 0, len(scripts)),
			entries: make(map[string]*scenescript.SceneScript, len(scripts)),
		}
		for key, script := range scripts {
			b.order = append(b.order, key)
			b.entries[key] = script
		}
		// Seed maps carry no order of their own; sort so scans are
		// reproducible across runs.
		sort.Strings(b.order)
		buckets[worldID] = b
		total += len(scripts)
	}

	c.mu.Lock()
	c.buckets = buckets
	c.mu.Unlock()

	c.logger.Info("Response cache loaded", "entries", total, "worlds", len(data))
}

// Get looks up a cached scene for the player's input. Matching runs in
// three phases: exact lookup on the normalized input, an equality scan
// against normalized stored keys (seed keys may be un-normalized), and
// finally a fuzzy keyword-overlap scan. Exact matches always win over
// fuzzy ones.
func (c *Cache) Get(worldID, rawInput string) (*scenescript.SceneScript, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	b, ok := c.buckets[worldID]
	if !ok {
		return nil, false
	}

	norm := textmatch.Normalize(rawInput)

	if script, ok := b.entries[norm]; ok {
		return script, true
	}

	for _, key := range b.order {
		if textmatch.Normalize(key) == norm {
			return b.entries[key], true
		}
	}

	var bestScore float64
	var bestScript *scenescript.SceneScript
	for _, key := range b.order {
		score := textmatch.Overlap(rawInput, key)
		if score > bestScore {
			bestScore = score
			bestScript = b.entries[key]
		}
	}

	if bestScore >= FuzzyThreshold && bestScript != nil {
		c.logger.Debug("Fuzzy cache match",
			"world", worldID,
			"input", rawInput,
			"score", bestScore)
		return bestScript, true
	}

	return nil, false
}

// Put stores a resolved scene under the normalized input. The world
// bucket is created on demand; an existing entry for the same normalized
// key is overwritten.
func (c *Cache) Put(worldID, rawInput string, script *scenescript.SceneScript) {
	norm := textmatch.Normalize(rawInput)

	c.mu.Lock()
	defer c.mu.Unlock()

	b, ok := c.buckets[worldID]
	if !ok {
		b = &bucket{entries: make(map[string]*scenescript.SceneScript)}
		c.buckets[worldID] = b
	}

	if _, exists := b.entries[norm]; !exists {
		b.order = append(b.order, norm)
	}
	b.entries[norm] = script
}

// Len reports the total number of cached entries across all worlds.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := 0
	for _, b := range c.buckets {
		total += len(b.entries)
	}
	return total
}
