package chatbet

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cypherlabdev/chat-bet-parser-service/internal/models"
)

// Defaults are the engine's configurable constants, threaded through every
// call so the parser stays a pure function of its inputs.
type Defaults struct {
	Price        float64 // applied when a k-suffixed size arrives with no price
	SeriesLength int
	RotationMin  int
	RotationMax  int
}

// StandardDefaults returns the conventional defaults: -110 pricing, best of
// 3 series, four-digit rotation numbers.
func StandardDefaults() Defaults {
	return Defaults{
		Price:        -110,
		SeriesLength: 3,
		RotationMin:  100,
		RotationMax:  9999,
	}
}

// Options adjust a single Parse call. ReferenceDate substitutes for "now"
// in date-year inference and fill execution timestamps; zero means the
// current instant.
type Options struct {
	ReferenceDate time.Time
}

// Parser converts chat-shorthand betting notation into typed ParseResults.
// It holds only immutable defaults, so concurrent calls need no
// coordination.
type Parser struct {
	defaults Defaults
	logger   zerolog.Logger
}

// NewParser creates a new chat parser
func NewParser(defaults Defaults, logger zerolog.Logger) *Parser {
	return &Parser{
		defaults: defaults,
		logger:   logger.With().Str("component", "chatbet_parser").Logger(),
	}
}

// resultIDNamespace seeds name-based result IDs
var resultIDNamespace = uuid.MustParse("5b92f1d4-0c6a-4e1f-9e37-2a8d41c07b65")

// resultID derives the result ID from the whitespace- and case-normalized
// message text, so reparsing the same message yields the same record.
func resultID(text string) uuid.UUID {
	norm := strings.ToUpper(strings.Join(strings.Fields(text), " "))
	return uuid.NewSHA1(resultIDNamespace, []byte(norm))
}

// prefixInfo maps a chat-type prefix to its dispatch
type prefixInfo struct {
	chatType models.ChatType
	betType  models.BetType
	writein  bool
}

var chatPrefixes = map[string]prefixInfo{
	"IW":   {models.ChatTypeOrder, models.BetTypeStraight, false},
	"YG":   {models.ChatTypeFill, models.BetTypeStraight, false},
	"IWP":  {models.ChatTypeOrder, models.BetTypeParlay, false},
	"YGP":  {models.ChatTypeFill, models.BetTypeParlay, false},
	"IWRR": {models.ChatTypeOrder, models.BetTypeRoundRobin, false},
	"YGRR": {models.ChatTypeFill, models.BetTypeRoundRobin, false},
	"IWW":  {models.ChatTypeOrder, models.BetTypeStraight, true},
	"YGW":  {models.ChatTypeFill, models.BetTypeStraight, true},
}

// Parse converts one chat message into a ParseResult, dispatching on the
// leading chat-type prefix.
func (p *Parser) Parse(text string, opts Options) (*models.ParseResult, error) {
	now := opts.ReferenceDate
	if now.IsZero() {
		now = time.Now().UTC()
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, newError(KindFormat, text, "", "empty message")
	}

	fields := strings.Fields(trimmed)
	prefix := strings.ToUpper(fields[0])
	info, ok := chatPrefixes[prefix]
	if !ok {
		return nil, newError(KindPrefix, text, fields[0],
			"unrecognized chat-type prefix %q", fields[0])
	}

	body := strings.TrimSpace(trimmed[len(fields[0]):])
	if body == "" {
		return nil, newError(KindFormat, text, "", "message too short: nothing after %q", fields[0])
	}

	var result *models.ParseResult
	var err error
	switch info.betType {
	case models.BetTypeStraight:
		result, err = p.parseStraight(text, body, info, now)
	case models.BetTypeParlay:
		result, err = p.parseParlay(text, body, info, now)
	case models.BetTypeRoundRobin:
		result, err = p.parseRoundRobin(text, body, info, now)
	}
	if err != nil {
		p.logger.Debug().Err(err).Str("text", text).Msg("parse failed")
		return nil, err
	}

	p.logger.Debug().
		Str("chat_type", string(result.ChatType)).
		Str("bet_type", string(result.BetType)).
		Msg("parsed chat message")
	return result, nil
}

// ParseOrder parses text and rejects anything that is not an order
func (p *Parser) ParseOrder(text string, opts Options) (*models.ParseResult, error) {
	result, err := p.Parse(text, opts)
	if err != nil {
		return nil, err
	}
	if result.ChatType != models.ChatTypeOrder {
		return nil, newError(KindPrefix, text, "", "expected an order prefix (IW), got a fill")
	}
	return result, nil
}

// ParseFill parses text and rejects anything that is not a fill
func (p *Parser) ParseFill(text string, opts Options) (*models.ParseResult, error) {
	result, err := p.Parse(text, opts)
	if err != nil {
		return nil, err
	}
	if result.ChatType != models.ChatTypeFill {
		return nil, newError(KindPrefix, text, "", "expected a fill prefix (YG), got an order")
	}
	return result, nil
}
