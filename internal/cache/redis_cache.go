package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/povarna/generative-ai-agents/word-agent/internal/models"
	"github.com/redis/go-redis/v9"
)

// Results are immutable per word, so entries only leave the cache on TTL.
type RedisResultCache struct {
	client redis.Cmdable
	prefix string
	ttl    time.Duration
}

func NewRedisResultCache(client redis.Cmdable, prefix string, ttl time.Duration) *RedisResultCache {
	return &RedisResultCache{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (c *RedisResultCache) Key(word string) string {
	return c.prefix + word
}

func (c *RedisResultCache) Get(ctx context.Context, word string) (*models.AnalysisResult, bool, error) {
	raw, err := c.client.Get(ctx, c.Key(word)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get: %w", err)
	}

	var entry cacheEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, false, fmt.Errorf("cache decode: %w", err)
	}

	return &models.AnalysisResult{
		Word:      word,
		Length:    entry.Length,
		Start:     entry.Start,
		End:       entry.End,
		Substring: entry.Substring,
	}, true, nil
}

func (c *RedisResultCache) Set(ctx context.Context, result models.AnalysisResult) error {
	raw, err := json.Marshal(cacheEntry{
		Length:    result.Length,
		Start:     result.Start,
		End:       result.End,
		Substring: result.Substring,
	})
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}

	if err := c.client.Set(ctx, c.Key(result.Word), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Only the scan outcome is cached; request metadata belongs to each call.
type cacheEntry struct {
	Length    int    `json:"length"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
	Substring string `json:"substring"`
}
