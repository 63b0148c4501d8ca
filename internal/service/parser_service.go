package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/cypherlabdev/chat-bet-parser-service/internal/models"
	"github.com/cypherlabdev/chat-bet-parser-service/pkg/chatbet"
)

// ParserService orchestrates chat parsing with caching
type ParserService struct {
	parser Parser
	cache  Cache
	logger zerolog.Logger
}

// NewParserService creates a new parser service
func NewParserService(
	parser Parser,
	cache Cache,
	logger zerolog.Logger,
) *ParserService {
	return &ParserService{
		parser: parser,
		cache:  cache,
		logger: logger.With().Str("component", "parser_service").Logger(),
	}
}

// ParseMessage parses a chat message with cache-first strategy. Identical
// texts parse identically, so a cached result is as good as a fresh one
// unless the caller pins a reference date.
func (s *ParserService) ParseMessage(ctx context.Context, text string, opts chatbet.Options) (*models.ParseResult, error) {
	if opts.ReferenceDate.IsZero() {
		cached, err := s.cache.Get(ctx, text)
		if err == nil && cached != nil {
			s.logger.Debug().
				Str("id", cached.ID.String()).
				Msg("cache hit for chat message")
			return cached, nil
		}
	}

	result, err := s.parser.Parse(text, opts)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, text, result); err != nil {
		s.logger.Warn().
			Err(err).
			Str("id", result.ID.String()).
			Msg("failed to cache parse result")
		// Don't fail the request on cache errors
	}

	s.logger.Info().
		Str("id", result.ID.String()).
		Str("chat_type", string(result.ChatType)).
		Str("bet_type", string(result.BetType)).
		Msg("parsed and cached chat message")

	return result, nil
}

// ParseOrder parses a chat message and rejects fills
func (s *ParserService) ParseOrder(ctx context.Context, text string, opts chatbet.Options) (*models.ParseResult, error) {
	result, err := s.parser.ParseOrder(text, opts)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, text, result); err != nil {
		s.logger.Warn().Err(err).Msg("failed to cache order")
	}

	return result, nil
}

// ParseFill parses a chat message and rejects orders
func (s *ParserService) ParseFill(ctx context.Context, text string, opts chatbet.Options) (*models.ParseResult, error) {
	result, err := s.parser.ParseFill(text, opts)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, text, result); err != nil {
		s.logger.Warn().Err(err).Msg("failed to cache fill")
	}

	return result, nil
}

// ParseBatch parses a batch of chat messages, caching the successes.
// A message that fails to parse is skipped, not fatal; the parse error
// is reported back alongside the results.
func (s *ParserService) ParseBatch(ctx context.Context, messages []models.ChatMessage) ([]*models.ParseResult, []error, error) {
	if len(messages) == 0 {
		return nil, nil, nil
	}

	results := make([]*models.ParseResult, 0, len(messages))
	texts := make([]string, 0, len(messages))
	var parseErrs []error

	for _, msg := range messages {
		opts := chatbet.Options{ReferenceDate: msg.ReceivedAt}
		result, err := s.parser.Parse(msg.Text, opts)
		if err != nil {
			parseErrs = append(parseErrs, fmt.Errorf("message %s: %w", msg.ID, err))
			continue
		}
		results = append(results, result)
		texts = append(texts, msg.Text)
	}

	if err := s.cache.SetBatch(ctx, texts, results); err != nil {
		s.logger.Warn().
			Err(err).
			Int("count", len(results)).
			Msg("failed to cache batch of parse results")
		// Don't fail the batch on cache errors
	}

	s.logger.Info().
		Int("input_count", len(messages)).
		Int("output_count", len(results)).
		Int("error_count", len(parseErrs)).
		Msg("parsed and cached batch")

	return results, parseErrs, nil
}
