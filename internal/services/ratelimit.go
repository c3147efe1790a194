package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Decision is the outcome of one rate limit check, including the values
// surfaced in X-RateLimit-* response headers.
type Decision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

// RateLimiter bounds how often a single caller can hit the resolve
// endpoint.
type RateLimiter interface {
	Allow(ctx context.Context, key string) Decision
}

// ParseRateLimit parses a limit like "30/minute" into a count and
// window. Supported units: second, minute, hour, day.
func ParseRateLimit(s string) (int, time.Duration, error) {
	parts := strings.SplitN(s, "/", 2)
	count, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || count <= 0 {
		return 0, 0, fmt.Errorf("invalid rate limit count in %q", s)
	}

	unit := "minute"
	if len(parts) == 2 {
		unit = strings.ToLower(strings.TrimSpace(parts[1]))
	}

	windows := map[string]time.Duration{
		"second": time.Second,
		"minute": time.Minute,
		"hour":   time.Hour,
		"day":    24 * time.Hour,
	}
	window, ok := windows[unit]
	if !ok {
		return 0, 0, fmt.Errorf("invalid rate limit window in %q", s)
	}
	return count, window, nil
}

// RedisRateLimiter implements a sliding-window limiter on a Redis
// sorted set: one member per request, scored by timestamp, trimmed to
// the window on every check. Redis errors fail open; losing rate
// limiting briefly beats refusing players.
type RedisRateLimiter struct {
	client *redis.Client
	max    int
	window time.Duration
	logger *slog.Logger
}

var _ RateLimiter = (*RedisRateLimiter)(nil)

// NewRedisRateLimiter creates a limiter from a limit string like
// "30/minute".
func NewRedisRateLimiter(redisAddr string, limit string, logger *slog.Logger) (*RedisRateLimiter, error) {
	max, window, err := ParseRateLimit(limit)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(&redis.Options{Addr: redisAddr})
	return &RedisRateLimiter{
		client: client,
		max:    max,
		window: window,
		logger: logger,
	}, nil
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string) Decision {
	now := time.Now()
	windowStart := now.Add(-l.window)
	redisKey := "ratelimit:" + key

	pipe := l.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", strconv.FormatInt(windowStart.UnixMicro(), 10))
	countCmd := pipe.ZCard(ctx, redisKey)
	if _, err := pipe.Exec(ctx); err != nil {
		l.logger.Warn("Rate limiter check failed, allowing request", "error", err)
		return Decision{Allowed: true, Limit: l.max, Remaining: l.max}
	}

	count := int(countCmd.Val())
	if count >= l.max {
		oldest, err := l.client.ZRangeWithScores(ctx, redisKey, 0, 0).Result()
		retryAfter := l.window
		if err == nil && len(oldest) > 0 {
			oldestAt := time.UnixMicro(int64(oldest[0].Score))
			retryAfter = oldestAt.Add(l.window).Sub(now)
		}
		return Decision{Allowed: false, Limit: l.max, Remaining: 0, RetryAfter: retryAfter}
	}

	record := l.client.TxPipeline()
	record.ZAdd(ctx, redisKey, redis.Z{Score: float64(now.UnixMicro()), Member: now.UnixNano()})
	record.Expire(ctx, redisKey, l.window)
	if _, err := record.Exec(ctx); err != nil {
		l.logger.Warn("Rate limiter record failed", "error", err)
	}

	return Decision{Allowed: true, Limit: l.max, Remaining: l.max - count - 1, RetryAfter: l.window}
}

// Close releases the Redis connection.
func (l *RedisRateLimiter) Close() error {
	return l.client.Close()
}

// MemoryRateLimiter is the in-process fallback used when no Redis is
// configured. Same sliding-window semantics, per-process scope.
type MemoryRateLimiter struct {
	mu      sync.Mutex
	windows map[string][]time.Time
	max     int
	window  time.Duration
}

var _ RateLimiter = (*MemoryRateLimiter)(nil)

func NewMemoryRateLimiter(limit string) (*MemoryRateLimiter, error) {
	max, window, err := ParseRateLimit(limit)
	if err != nil {
		return nil, err
	}
	return &MemoryRateLimiter{
		windows: make(map[string][]time.Time),
		max:     max,
		window:  window,
	}, nil
}

func (l *MemoryRateLimiter) Allow(ctx context.Context, key string) Decision {
	now := time.Now()
	windowStart := now.Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	kept := l.windows[key][:0]
	for _, t := range l.windows[key] {
		if t.After(windowStart) {
			kept = append(kept, t)
		}
	}
	l.windows[key] = kept

	if len(kept) >= l.max {
		retryAfter := kept[0].Add(l.window).Sub(now)
		return Decision{Allowed: false, Limit: l.max, Remaining: 0, RetryAfter: retryAfter}
	}

	l.windows[key] = append(kept, now)
	return Decision{Allowed: true, Limit: l.max, Remaining: l.max - len(kept) - 1, RetryAfter: l.window}
}
