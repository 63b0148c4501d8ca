package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cypherlabdev/chat-bet-parser-service/internal/mocks"
	"github.com/cypherlabdev/chat-bet-parser-service/internal/models"
	"github.com/cypherlabdev/chat-bet-parser-service/pkg/chatbet"
)

// testParserServiceSetup is a helper struct to hold test dependencies
type testParserServiceSetup struct {
	service    *ParserService
	mockParser *mocks.MockParser
	mockCache  *mocks.MockCache
	ctrl       *gomock.Controller
	ctx        context.Context
}

// setupTestParserService creates a service with mocked dependencies
func setupTestParserService(t *testing.T) *testParserServiceSetup {
	ctrl := gomock.NewController(t)

	mockParser := mocks.NewMockParser(ctrl)
	mockCache := mocks.NewMockCache(ctrl)
	logger := zerolog.Nop()

	return &testParserServiceSetup{
		service:    NewParserService(mockParser, mockCache, logger),
		mockParser: mockParser,
		mockCache:  mockCache,
		ctrl:       ctrl,
		ctx:        context.Background(),
	}
}

// cleanup cleans up test resources
func (s *testParserServiceSetup) cleanup() {
	s.ctrl.Finish()
}

func testResult() *models.ParseResult {
	return &models.ParseResult{
		ID:       uuid.New(),
		ChatType: models.ChatTypeOrder,
		BetType:  models.BetTypeStraight,
		Contract: &models.Contract{
			Kind:       models.ContractHandicapContestantML,
			Match:      &models.Match{Team1: "Lakers"},
			Contestant: "Lakers",
		},
		Bet:      models.Bet{Price: -110, Risk: decimal.Zero, ToWin: decimal.Zero},
		ParsedAt: time.Now().UTC(),
	}
}

// TestParseMessage_CacheHit tests that a cached record short-circuits parsing
func TestParseMessage_CacheHit(t *testing.T) {
	setup := setupTestParserService(t)
	defer setup.cleanup()

	text := "IW Lakers @ -110"
	cached := testResult()

	setup.mockCache.EXPECT().Get(setup.ctx, text).Return(cached, nil)

	got, err := setup.service.ParseMessage(setup.ctx, text, chatbet.Options{})

	require.NoError(t, err)
	assert.Equal(t, cached.ID, got.ID)
}

// TestParseMessage_CacheMiss tests parse-then-cache on a miss
func TestParseMessage_CacheMiss(t *testing.T) {
	setup := setupTestParserService(t)
	defer setup.cleanup()

	text := "IW Lakers @ -110"
	result := testResult()

	setup.mockCache.EXPECT().Get(setup.ctx, text).Return(nil, errors.New("not found"))
	setup.mockParser.EXPECT().Parse(text, chatbet.Options{}).Return(result, nil)
	setup.mockCache.EXPECT().Set(setup.ctx, text, result).Return(nil)

	got, err := setup.service.ParseMessage(setup.ctx, text, chatbet.Options{})

	require.NoError(t, err)
	assert.Equal(t, result.ID, got.ID)
}

// TestParseMessage_ReferenceDateBypassesCache tests that a pinned reference
// date always reparses
func TestParseMessage_ReferenceDateBypassesCache(t *testing.T) {
	setup := setupTestParserService(t)
	defer setup.cleanup()

	text := "IW Lakers date:11/28 @ -110"
	result := testResult()
	opts := chatbet.Options{ReferenceDate: time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)}

	setup.mockParser.EXPECT().Parse(text, opts).Return(result, nil)
	setup.mockCache.EXPECT().Set(setup.ctx, text, result).Return(nil)

	got, err := setup.service.ParseMessage(setup.ctx, text, opts)

	require.NoError(t, err)
	assert.Equal(t, result.ID, got.ID)
}

// TestParseMessage_ParseError tests that parse failures propagate uncached
func TestParseMessage_ParseError(t *testing.T) {
	setup := setupTestParserService(t)
	defer setup.cleanup()

	text := "ZZ Lakers @ -110"
	parseErr := &chatbet.Error{Kind: chatbet.KindPrefix, Input: text, Message: "unrecognized prefix"}

	setup.mockCache.EXPECT().Get(setup.ctx, text).Return(nil, errors.New("not found"))
	setup.mockParser.EXPECT().Parse(text, chatbet.Options{}).Return(nil, parseErr)

	got, err := setup.service.ParseMessage(setup.ctx, text, chatbet.Options{})

	assert.Nil(t, got)
	assert.Equal(t, chatbet.KindPrefix, chatbet.KindOf(err))
}

// TestParseMessage_CacheSetFailureIsNotFatal tests that a cache write error
// does not fail the request
func TestParseMessage_CacheSetFailureIsNotFatal(t *testing.T) {
	setup := setupTestParserService(t)
	defer setup.cleanup()

	text := "IW Lakers @ -110"
	result := testResult()

	setup.mockCache.EXPECT().Get(setup.ctx, text).Return(nil, errors.New("not found"))
	setup.mockParser.EXPECT().Parse(text, chatbet.Options{}).Return(result, nil)
	setup.mockCache.EXPECT().Set(setup.ctx, text, result).Return(errors.New("redis down"))

	got, err := setup.service.ParseMessage(setup.ctx, text, chatbet.Options{})

	require.NoError(t, err)
	assert.Equal(t, result.ID, got.ID)
}

// TestParseOrder tests the order-narrowed path
func TestParseOrder(t *testing.T) {
	setup := setupTestParserService(t)
	defer setup.cleanup()

	text := "IW Lakers @ -110"
	result := testResult()

	setup.mockParser.EXPECT().ParseOrder(text, chatbet.Options{}).Return(result, nil)
	setup.mockCache.EXPECT().Set(setup.ctx, text, result).Return(nil)

	got, err := setup.service.ParseOrder(setup.ctx, text, chatbet.Options{})

	require.NoError(t, err)
	assert.Equal(t, result.ID, got.ID)
}

// TestParseFill tests the fill-narrowed path
func TestParseFill(t *testing.T) {
	setup := setupTestParserService(t)
	defer setup.cleanup()

	text := "YG Lakers @ -110 = 500"
	result := testResult()

	setup.mockParser.EXPECT().ParseFill(text, chatbet.Options{}).Return(result, nil)
	setup.mockCache.EXPECT().Set(setup.ctx, text, result).Return(nil)

	got, err := setup.service.ParseFill(setup.ctx, text, chatbet.Options{})

	require.NoError(t, err)
	assert.Equal(t, result.ID, got.ID)
}

// TestParseBatch tests that bad messages are reported but do not fail the
// batch
func TestParseBatch(t *testing.T) {
	setup := setupTestParserService(t)
	defer setup.cleanup()

	received := time.Date(2025, 11, 1, 18, 30, 0, 0, time.UTC)
	messages := []models.ChatMessage{
		{ID: "m1", Text: "IW Lakers @ -110", ReceivedAt: received},
		{ID: "m2", Text: "garbage", ReceivedAt: received},
		{ID: "m3", Text: "YG Padres @ +150 = 500", ReceivedAt: received},
	}
	opts := chatbet.Options{ReferenceDate: received}

	ok1 := testResult()
	ok2 := testResult()
	parseErr := &chatbet.Error{Kind: chatbet.KindPrefix, Input: "garbage", Message: "unrecognized prefix"}

	setup.mockParser.EXPECT().Parse(messages[0].Text, opts).Return(ok1, nil)
	setup.mockParser.EXPECT().Parse(messages[1].Text, opts).Return(nil, parseErr)
	setup.mockParser.EXPECT().Parse(messages[2].Text, opts).Return(ok2, nil)
	setup.mockCache.EXPECT().
		SetBatch(setup.ctx, []string{messages[0].Text, messages[2].Text}, []*models.ParseResult{ok1, ok2}).
		Return(nil)

	results, parseErrs, err := setup.service.ParseBatch(setup.ctx, messages)

	require.NoError(t, err)
	assert.Len(t, results, 2)
	require.Len(t, parseErrs, 1)
	assert.Equal(t, chatbet.KindPrefix, chatbet.KindOf(parseErrs[0]))
}

// TestParseBatch_Empty tests the empty batch short-circuit
func TestParseBatch_Empty(t *testing.T) {
	setup := setupTestParserService(t)
	defer setup.cleanup()

	results, parseErrs, err := setup.service.ParseBatch(setup.ctx, nil)

	require.NoError(t, err)
	assert.Nil(t, results)
	assert.Nil(t, parseErrs)
}
