package chatbet

import (
	"strings"
	"time"

	"github.com/cypherlabdev/chat-bet-parser-service/internal/models"
)

// parseStraight assembles a single-contract result: one leg through the
// classifier, one bet through the price/size engine. Any sub-step failure
// propagates immediately; there is no partial record.
func (p *Parser) parseStraight(raw, body string, info prefixInfo, now time.Time) (*models.ParseResult, error) {
	if strings.ContainsRune(body, '&') || strings.ContainsRune(body, '\n') {
		return nil, newError(KindStructure, raw, "&",
			"straight bets take a single leg; use IWP/YGP for parlays")
	}

	main, sizeText, hasSize := splitSizeClause(body)

	lg, err := p.parseLeg(raw, main, info.writein, now)
	if err != nil {
		return nil, err
	}

	var spec *sizeSpec
	if hasSize {
		spec, err = p.parseSizeClause(raw, sizeText, info.chatType, false)
		if err != nil {
			return nil, err
		}
	}

	price := lg.price
	if !lg.hasPrice {
		if spec != nil && spec.hasKSuffix {
			price = p.defaults.Price
		} else {
			return nil, newError(KindPrice, raw, "", "missing price; add @ <odds>")
		}
	}

	bet, err := p.buildBet(raw, price, spec, info.chatType, lg.mods.freeBet, now)
	if err != nil {
		return nil, err
	}

	contract := lg.contract
	return &models.ParseResult{
		ID:             resultID(raw),
		ChatType:       info.chatType,
		BetType:        models.BetTypeStraight,
		Contract:       &contract,
		Bet:            bet,
		RotationNumber: lg.rotation,
		League:         lg.league,
		Sport:          lg.sport,
		ParsedAt:       now,
	}, nil
}
