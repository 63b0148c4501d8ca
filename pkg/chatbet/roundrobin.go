package chatbet

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cypherlabdev/chat-bet-parser-service/internal/models"
)

// parseRoundRobin parses the nCr sizing token, the leg set, and the
// risk-type-scoped amount, then sums fair to-win over every generated
// sub-parlay combination.
func (p *Parser) parseRoundRobin(raw, body string, info prefixInfo, now time.Time) (*models.ParseResult, error) {
	main, sizeText, hasSize := splitSizeClause(body)

	fields := strings.Fields(main)
	if len(fields) == 0 {
		return nil, newError(KindNCrFormat, raw, "", "round robin needs a size token like 4c2 before its legs")
	}
	ncr, err := parseNCr(raw, fields[0])
	if err != nil {
		return nil, err
	}
	rest := strings.TrimSpace(strings.TrimPrefix(strings.TrimLeft(main, " \t"), fields[0]))

	legTexts, err := splitLegTexts(raw, rest)
	if err != nil {
		return nil, err
	}
	if len(legTexts) != ncr.TotalLegs {
		return nil, newError(KindLegCount, raw, fields[0],
			"declared %d legs but found %d", ncr.TotalLegs, len(legTexts))
	}

	legs, err := p.parseLegs(raw, legTexts, now)
	if err != nil {
		return nil, err
	}

	if !hasSize {
		return nil, newError(KindSize, raw, "", "a round robin requires a risk amount")
	}
	spec, err := p.parseSizeClause(raw, sizeText, info.chatType, true)
	if err != nil {
		return nil, err
	}

	var amount decimal.Decimal
	switch {
	case spec.size != nil:
		amount = *spec.size
	case spec.risk != nil && spec.toWin == nil && spec.toPay == nil:
		amount = *spec.risk
	default:
		return nil, newError(KindSize, raw, sizeText,
			"round robin sizing states risk only, not to-win or to-pay")
	}

	// every sub-parlay combination: exactly k, or 2..k in at-most mode
	sizes := []int{ncr.ParlaySize}
	if ncr.IsAtMost {
		sizes = sizes[:0]
		for r := 2; r <= ncr.ParlaySize; r++ {
			sizes = append(sizes, r)
		}
	}

	var products []decimal.Decimal
	for _, r := range sizes {
		for _, combo := range combinations(ncr.TotalLegs, r) {
			prod := decOne
			for _, idx := range combo {
				prod = prod.Mul(decimalOdds(legs[idx].price))
			}
			products = append(products, prod)
		}
	}
	comboCount := int64(len(products))

	var totalRisk, perRisk decimal.Decimal
	if spec.riskType == models.RiskPerSelection {
		perRisk = amount
		totalRisk = amount.Mul(decimal.NewFromInt(comboCount))
	} else {
		totalRisk = amount
		perRisk = amount.Div(decimal.NewFromInt(comboCount)).Round(2)
	}

	totalToWin := decimal.Zero
	for _, prod := range products {
		totalToWin = totalToWin.Add(perRisk.Mul(prod.Sub(decOne)).Round(2))
	}

	freeBet, pushesLose := combinedFlags(legs)
	bet := models.Bet{
		Risk:      totalRisk,
		ToWin:     totalToWin,
		IsFreeBet: freeBet,
	}
	if info.chatType == models.ChatTypeFill {
		ts := now
		bet.ExecutionDtm = &ts
	}

	return &models.ParseResult{
		ID:         resultID(raw),
		ChatType:   info.chatType,
		BetType:    models.BetTypeRoundRobin,
		Bet:        bet,
		Legs:       modelLegs(legs),
		UseFair:    true,
		PushesLose: pushesLose,
		ParlaySize: ncr.ParlaySize,
		IsAtMost:   ncr.IsAtMost,
		RiskType:   spec.riskType,
		ParsedAt:   now,
	}, nil
}
