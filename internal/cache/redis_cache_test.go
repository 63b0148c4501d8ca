package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cypherlabdev/chat-bet-parser-service/internal/models"
)

// testRedisCacheSetup is a helper struct to hold test dependencies
type testRedisCacheSetup struct {
	cache     *RedisCache
	miniRedis *miniredis.Miniredis
	ctx       context.Context
}

// setupTestRedisCache creates a test cache with miniredis
func setupTestRedisCache(t *testing.T) *testRedisCacheSetup {
	// Create miniredis server
	mr, err := miniredis.Run()
	require.NoError(t, err)

	logger := zerolog.Nop()

	config := RedisCacheConfig{
		Addr:     mr.Addr(),
		Password: "",
		DB:       0,
		TTL:      24 * time.Hour,
	}

	cache := NewRedisCache(config, logger)
	ctx := context.Background()

	return &testRedisCacheSetup{
		cache:     cache,
		miniRedis: mr,
		ctx:       ctx,
	}
}

// cleanup cleans up test resources
func (s *testRedisCacheSetup) cleanup() {
	s.cache.Close()
	s.miniRedis.Close()
}

// testParseResult builds a representative straight-bet record
func testParseResult() *models.ParseResult {
	date := time.Date(2025, 11, 28, 0, 0, 0, 0, time.UTC)
	size := decimal.NewFromInt(1000)

	return &models.ParseResult{
		ID:       uuid.New(),
		ChatType: models.ChatTypeFill,
		BetType:  models.BetTypeStraight,
		Contract: &models.Contract{
			Kind:   models.ContractTotalPoints,
			Match:  &models.Match{Team1: "76ers", Date: &date},
			Period: models.Period{Code: models.PeriodMatch, Number: 0},
			Line:   226.5,
		},
		Bet: models.Bet{
			Price: -115,
			Size:  &size,
			Risk:  decimal.NewFromInt(1000),
			ToWin: decimal.RequireFromString("869.57"),
		},
		League:   "NBA",
		Sport:    "Basketball",
		ParsedAt: time.Now().UTC(),
	}
}

// TestNewRedisCache tests cache creation
func TestNewRedisCache(t *testing.T) {
	setup := setupTestRedisCache(t)
	defer setup.cleanup()

	assert.NotNil(t, setup.cache)
	assert.NotNil(t, setup.cache.client)
	assert.Equal(t, 24*time.Hour, setup.cache.ttl)
}

// TestTextKey_NormalizesWhitespaceAndCase tests that retyped messages with
// different spacing or casing land on the same key
func TestTextKey_NormalizesWhitespaceAndCase(t *testing.T) {
	base := TextKey("YG 76ers u226.5 @ -115 = 1k")

	assert.Equal(t, base, TextKey("  YG   76ers u226.5  @ -115 = 1k "))
	assert.Equal(t, base, TextKey("yg 76ers U226.5 @ -115 = 1K"))
	assert.NotEqual(t, base, TextKey("YG 76ers u227.5 @ -115 = 1k"))
}

// TestSet_Success tests caching a parse result
func TestSet_Success(t *testing.T) {
	setup := setupTestRedisCache(t)
	defer setup.cleanup()

	text := "YG NBA 11/28/2025 76ers u226.5 @ -115 = 1k"
	result := testParseResult()

	err := setup.cache.Set(setup.ctx, text, result)

	assert.NoError(t, err)
	assert.True(t, setup.miniRedis.Exists(TextKey(text)))
}

// TestGet_RoundTrip tests that a cached record comes back intact
func TestGet_RoundTrip(t *testing.T) {
	setup := setupTestRedisCache(t)
	defer setup.cleanup()

	text := "YG NBA 11/28/2025 76ers u226.5 @ -115 = 1k"
	result := testParseResult()

	require.NoError(t, setup.cache.Set(setup.ctx, text, result))

	got, err := setup.cache.Get(setup.ctx, text)

	require.NoError(t, err)
	assert.Equal(t, result.ID, got.ID)
	assert.Equal(t, result.ChatType, got.ChatType)
	assert.Equal(t, result.BetType, got.BetType)
	require.NotNil(t, got.Contract)
	assert.Equal(t, models.ContractTotalPoints, got.Contract.Kind)
	assert.Equal(t, 226.5, got.Contract.Line)
	assert.True(t, got.Bet.Risk.Equal(result.Bet.Risk))
	assert.True(t, got.Bet.ToWin.Equal(result.Bet.ToWin))
}

// TestGet_NotFound tests the cache miss path
func TestGet_NotFound(t *testing.T) {
	setup := setupTestRedisCache(t)
	defer setup.cleanup()

	got, err := setup.cache.Get(setup.ctx, "IW Lakers @ -110")

	assert.Error(t, err)
	assert.Nil(t, got)
}

// TestSet_AppliesTTL tests that cached entries expire
func TestSet_AppliesTTL(t *testing.T) {
	setup := setupTestRedisCache(t)
	defer setup.cleanup()

	text := "IW Lakers @ -110"
	require.NoError(t, setup.cache.Set(setup.ctx, text, testParseResult()))

	// Fast-forward past the TTL
	setup.miniRedis.FastForward(25 * time.Hour)

	got, err := setup.cache.Get(setup.ctx, text)
	assert.Error(t, err)
	assert.Nil(t, got)
}

// TestSetBatch_Success tests pipelined batch caching
func TestSetBatch_Success(t *testing.T) {
	setup := setupTestRedisCache(t)
	defer setup.cleanup()

	texts := []string{
		"IW Lakers @ -110",
		"IW Celtics -2.5 @ -105",
		"YG Padres @ +150 = 500",
	}
	results := []*models.ParseResult{
		testParseResult(),
		testParseResult(),
		testParseResult(),
	}

	err := setup.cache.SetBatch(setup.ctx, texts, results)

	assert.NoError(t, err)
	for _, text := range texts {
		assert.True(t, setup.miniRedis.Exists(TextKey(text)), "missing key for %q", text)
	}
}

// TestSetBatch_Empty tests that an empty batch is a no-op
func TestSetBatch_Empty(t *testing.T) {
	setup := setupTestRedisCache(t)
	defer setup.cleanup()

	err := setup.cache.SetBatch(setup.ctx, nil, nil)

	assert.NoError(t, err)
}

// TestSetBatch_LengthMismatch tests texts/results pairing enforcement
func TestSetBatch_LengthMismatch(t *testing.T) {
	setup := setupTestRedisCache(t)
	defer setup.cleanup()

	err := setup.cache.SetBatch(setup.ctx, []string{"IW Lakers @ -110"}, []*models.ParseResult{
		testParseResult(),
		testParseResult(),
	})

	assert.Error(t, err)
}

// TestPing tests the Redis connectivity check
func TestPing(t *testing.T) {
	setup := setupTestRedisCache(t)
	defer setup.cleanup()

	assert.NoError(t, setup.cache.Ping(setup.ctx))
}

// TestPing_ServerDown tests ping failure after the server stops
func TestPing_ServerDown(t *testing.T) {
	setup := setupTestRedisCache(t)
	defer setup.cache.Close()

	setup.miniRedis.Close()

	assert.Error(t, setup.cache.Ping(setup.ctx))
}

// TestClose tests connection teardown
func TestClose(t *testing.T) {
	setup := setupTestRedisCache(t)
	defer setup.miniRedis.Close()

	assert.NoError(t, setup.cache.Close())
}
