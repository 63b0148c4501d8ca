package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/cypherlabdev/chat-bet-parser-service/internal/models"
)

// RedisCache caches parsed chat bets in Redis
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// RedisCacheConfig holds Redis cache configuration
type RedisCacheConfig struct {
	Addr     string // e.g., "localhost:6379"
	Password string
	DB       int
	TTL      time.Duration // e.g., 24 * time.Hour
}

// NewRedisCache creates a new Redis cache
func NewRedisCache(config RedisCacheConfig, logger zerolog.Logger) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	return &RedisCache{
		client: client,
		ttl:    config.TTL,
		logger: logger.With().Str("component", "redis_cache").Logger(),
	}
}

// TextKey derives the cache key for a chat message. Whitespace is
// normalized first so retyped messages with different spacing collide.
func TextKey(text string) string {
	normalized := strings.Join(strings.Fields(text), " ")
	sum := sha256.Sum256([]byte(strings.ToUpper(normalized)))
	return "bet:" + hex.EncodeToString(sum[:16])
}

// Set caches a parse result under its source text
func (c *RedisCache) Set(ctx context.Context, text string, result *models.ParseResult) error {
	key := TextKey(text)

	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal parse result: %w", err)
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set in Redis: %w", err)
	}

	c.logger.Debug().
		Str("key", key).
		Dur("ttl", c.ttl).
		Msg("cached parse result")

	return nil
}

// Get retrieves a cached parse result by its source text
func (c *RedisCache) Get(ctx context.Context, text string) (*models.ParseResult, error) {
	key := TextKey(text)

	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, fmt.Errorf("parse result not found in cache")
	} else if err != nil {
		return nil, fmt.Errorf("failed to get from Redis: %w", err)
	}

	var result models.ParseResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal parse result: %w", err)
	}

	return &result, nil
}

// SetBatch caches multiple parse results keyed by their source texts
func (c *RedisCache) SetBatch(ctx context.Context, texts []string, results []*models.ParseResult) error {
	if len(results) == 0 {
		return nil
	}
	if len(texts) != len(results) {
		return fmt.Errorf("texts and results length mismatch: %d vs %d", len(texts), len(results))
	}

	// Use pipeline for batch operations
	pipe := c.client.Pipeline()

	for i, result := range results {
		data, err := json.Marshal(result)
		if err != nil {
			c.logger.Error().Err(err).Msg("failed to marshal parse result")
			continue
		}
		pipe.Set(ctx, TextKey(texts[i]), data, c.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to execute pipeline: %w", err)
	}

	c.logger.Info().
		Int("count", len(results)).
		Msg("cached batch of parse results")

	return nil
}

// Ping checks Redis connection
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}
