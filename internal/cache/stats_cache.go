package cache

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/SAP-F-2025/quiz-selection-service/internal/models"
)

const criteriaStatsKey = "criteria"

// StatsCache holds the criteria-stats listing. It is a display hint only:
// selection never reads it, so every failure degrades to a miss.
type StatsCache interface {
	Get(ctx context.Context) ([]models.CriteriaStat, bool)
	Set(ctx context.Context, stats []models.CriteriaStat)
	Clear(ctx context.Context)
}

// NewStatsCache picks Redis when a client is configured, memory otherwise
func NewStatsCache(client *redis.Client, ttl time.Duration) StatsCache {
	if ttl <= 0 {
		ttl = StatsCacheConfig.TTL
	}
	if client == nil {
		return NewMemoryStatsCache(ttl)
	}
	return NewRedisStatsCache(client, ttl)
}

// ===== REDIS =====

type RedisStatsCache struct {
	helper *CacheHelper
	ttl    time.Duration
}

func NewRedisStatsCache(client *redis.Client, ttl time.Duration) *RedisStatsCache {
	return &RedisStatsCache{
		helper: NewCacheHelper(client, StatsCacheConfig.Prefix),
		ttl:    ttl,
	}
}

func (c *RedisStatsCache) Get(ctx context.Context) ([]models.CriteriaStat, bool) {
	var stats []models.CriteriaStat
	if err := c.helper.Get(ctx, criteriaStatsKey, &stats); err != nil {
		if !errors.Is(err, ErrCacheNotFound) && !errors.Is(err, ErrCacheNotAvailable) {
			slog.WarnContext(ctx, "Criteria stats cache read failed", "error", err)
		}
		return nil, false
	}
	return stats, true
}

func (c *RedisStatsCache) Set(ctx context.Context, stats []models.CriteriaStat) {
	if err := c.helper.Set(ctx, criteriaStatsKey, stats, c.ttl); err != nil {
		slog.WarnContext(ctx, "Criteria stats cache write failed", "error", err)
	}
}

// Clear drops every stats key, not just the criteria listing
func (c *RedisStatsCache) Clear(ctx context.Context) {
	SafeInvalidatePattern(ctx, c.helper, "*")
}

// ===== MEMORY =====

type MemoryStatsCache struct {
	mu        sync.RWMutex
	ttl       time.Duration
	now       func() time.Time
	stats     []models.CriteriaStat
	expiresAt time.Time
}

func NewMemoryStatsCache(ttl time.Duration) *MemoryStatsCache {
	return &MemoryStatsCache{ttl: ttl, now: time.Now}
}

// WithClock replaces the time source, for tests
func (c *MemoryStatsCache) WithClock(now func() time.Time) *MemoryStatsCache {
	c.now = now
	return c
}

func (c *MemoryStatsCache) Get(_ context.Context) ([]models.CriteriaStat, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.stats == nil || !c.now().Before(c.expiresAt) {
		return nil, false
	}
	out := make([]models.CriteriaStat, len(c.stats))
	copy(out, c.stats)
	return out, true
}

func (c *MemoryStatsCache) Set(_ context.Context, stats []models.CriteriaStat) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stats = make([]models.CriteriaStat, len(stats))
	copy(c.stats, stats)
	c.expiresAt = c.now().Add(c.ttl)
}

func (c *MemoryStatsCache) Clear(_ context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stats = nil
	c.expiresAt = time.Time{}
}
