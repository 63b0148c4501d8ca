package chatbet

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cypherlabdev/chat-bet-parser-service/internal/models"
)

// splitLegTexts splits a multi-leg body into leg texts: ampersand
// separators, or one leg per line when the message was typed across lines.
func splitLegTexts(input, main string) ([]string, error) {
	var pieces []string
	if strings.Contains(main, "&") {
		flat := strings.ReplaceAll(main, "\n", " ")
		for _, piece := range strings.Split(flat, "&") {
			piece = strings.TrimSpace(piece)
			if piece == "" {
				return nil, newError(KindStructure, input, "&", "empty leg between separators")
			}
			pieces = append(pieces, piece)
		}
		return pieces, nil
	}
	if strings.ContainsRune(main, '\n') {
		for _, line := range strings.Split(main, "\n") {
			line = strings.TrimSpace(line)
			if line != "" {
				pieces = append(pieces, line)
			}
		}
		return pieces, nil
	}
	return []string{strings.TrimSpace(main)}, nil
}

// parseLegs runs the straight-bet pipeline over each leg text. Every leg
// needs its own explicit price for the fair-odds math.
func (p *Parser) parseLegs(raw string, legTexts []string, now time.Time) ([]*parsedLeg, error) {
	legs := make([]*parsedLeg, 0, len(legTexts))
	for _, lt := range legTexts {
		lg, err := p.parseLeg(raw, lt, false, now)
		if err != nil {
			return nil, err
		}
		if !lg.hasPrice {
			return nil, newError(KindPrice, raw, lt, "every leg needs its own @ <odds>")
		}
		legs = append(legs, lg)
	}
	return legs, nil
}

// modelLegs converts parsed legs to their output shape, resolving each
// leg's league from its modifiers or rotation band.
func modelLegs(legs []*parsedLeg) []models.Leg {
	out := make([]models.Leg, len(legs))
	for i, lg := range legs {
		out[i] = models.Leg{
			Contract:       lg.contract,
			Price:          lg.price,
			RotationNumber: lg.rotation,
			League:         lg.league,
			Sport:          lg.sport,
		}
	}
	return out
}

// combinedFlags merges per-leg freebet/pusheslose modifiers up to the
// combination level.
func combinedFlags(legs []*parsedLeg) (freeBet, pushesLose bool) {
	for _, lg := range legs {
		if lg.mods.freeBet {
			freeBet = true
		}
		if lg.mods.pushesLose {
			pushesLose = true
		}
	}
	return freeBet, pushesLose
}

// fairProduct multiplies the legs' decimal odds
func fairProduct(legs []*parsedLeg) decimal.Decimal {
	prod := decOne
	for _, lg := range legs {
		prod = prod.Mul(decimalOdds(lg.price))
	}
	return prod
}

// parseParlay splits the message into legs, assembles each, and computes
// the combined bet at fair odds unless an explicit to-win override was
// supplied.
func (p *Parser) parseParlay(raw, body string, info prefixInfo, now time.Time) (*models.ParseResult, error) {
	main, sizeText, hasSize := splitSizeClause(body)

	legTexts, err := splitLegTexts(raw, main)
	if err != nil {
		return nil, err
	}
	if len(legTexts) < 2 {
		return nil, newError(KindStructure, raw, "",
			"a parlay requires at least 2 legs, got %d", len(legTexts))
	}

	legs, err := p.parseLegs(raw, legTexts, now)
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

	prod := fairProduct(legs)
	multiplier := prod.Sub(decOne)

	bet := models.Bet{}
	useFair := true
	switch {
	case spec == nil:
		if info.chatType == models.ChatTypeFill {
			return nil, newError(KindSize, raw, "", "a fill requires a size or risk amount")
		}
	case spec.size != nil:
		bet.Size = spec.size
		bet.Risk = *spec.size
		bet.ToWin = bet.Risk.Mul(multiplier).Round(2)
	case spec.risk != nil && spec.toWin != nil:
		bet.Risk = *spec.risk
		bet.ToWin = *spec.toWin
		useFair = false
	case spec.risk != nil:
		bet.Risk = *spec.risk
		bet.ToWin = bet.Risk.Mul(multiplier).Round(2)
	case spec.toWin != nil:
		bet.ToWin = *spec.toWin
		bet.Risk = bet.ToWin.Div(multiplier).Round(2)
		useFair = false
	case spec.toPay != nil:
		bet.Risk = spec.toPay.Div(prod).Round(2)
		bet.ToWin = spec.toPay.Sub(bet.Risk)
		useFair = false
	}

	freeBet, pushesLose := combinedFlags(legs)
	bet.IsFreeBet = freeBet
	if info.chatType == models.ChatTypeFill {
		ts := now
		bet.ExecutionDtm = &ts
	}

	return &models.ParseResult{
		ID:         resultID(raw),
		ChatType:   info.chatType,
		BetType:    models.BetTypeParlay,
		Bet:        bet,
		Legs:       modelLegs(legs),
		UseFair:    useFair,
		PushesLose: pushesLose,
		ParsedAt:   now,
	}, nil
}
