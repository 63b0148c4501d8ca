package chatbet

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cypherlabdev/chat-bet-parser-service/internal/models"
)

var decThousand = decimal.NewFromInt(1000)

// sizeSpec is the parsed price/size tail of a message. Exactly one of the
// recognized shapes populates it: a legacy bare size, an explicit risk, an
// explicit to-win, an explicit to-pay, or a risk paired with either.
type sizeSpec struct {
	size          *decimal.Decimal
	risk          *decimal.Decimal
	toWin         *decimal.Decimal
	toPay         *decimal.Decimal
	riskType      models.RiskType
	hasKSuffix    bool
	explicitToWin bool
}

// parseSizeClause parses the token stream after '='. Round robins must
// close the clause with per/each or total to scope the risk amount.
func (p *Parser) parseSizeClause(input, sizeText string, chatType models.ChatType, isRoundRobin bool) (*sizeSpec, error) {
	tokens := strings.Fields(sizeText)
	if len(tokens) == 0 {
		return nil, newError(KindSize, input, "=", "empty size clause after =")
	}

	spec := &sizeSpec{}

	if isRoundRobin {
		switch strings.ToLower(tokens[len(tokens)-1]) {
		case "per", "each":
			spec.riskType = models.RiskPerSelection
		case "total":
			spec.riskType = models.RiskTotal
		default:
			return nil, newError(KindRiskType, input, tokens[len(tokens)-1],
				"round robin size must end with per or total")
		}
		tokens = tokens[:len(tokens)-1]
		if len(tokens) == 0 {
			return nil, newError(KindSize, input, "=", "round robin size clause has no amount")
		}
	}

	// fold the two-word operators into their short forms
	norm := make([]string, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		t := strings.ToLower(tokens[i])
		if t == "to" && i+1 < len(tokens) {
			switch strings.ToLower(tokens[i+1]) {
			case "win":
				norm = append(norm, "tw")
				i++
				continue
			case "pay":
				norm = append(norm, "tp")
				i++
				continue
			}
		}
		norm = append(norm, t)
	}

	switch {
	case len(norm) == 1:
		v, hasK, err := p.parseAmount(input, norm[0], chatType, true)
		if err != nil {
			return nil, err
		}
		spec.size = &v
		spec.hasKSuffix = hasK

	case len(norm) == 2 && norm[0] == "risk":
		v, hasK, err := p.parseAmount(input, norm[1], chatType, false)
		if err != nil {
			return nil, err
		}
		spec.risk = &v
		spec.hasKSuffix = hasK

	case len(norm) == 2 && (norm[0] == "tw" || norm[0] == "towin"):
		v, hasK, err := p.parseAmount(input, norm[1], chatType, false)
		if err != nil {
			return nil, err
		}
		spec.toWin = &v
		spec.hasKSuffix = hasK
		spec.explicitToWin = true

	case len(norm) == 2 && (norm[0] == "tp" || norm[0] == "topay"):
		v, hasK, err := p.parseAmount(input, norm[1], chatType, false)
		if err != nil {
			return nil, err
		}
		spec.toPay = &v
		spec.hasKSuffix = hasK

	case len(norm) == 3 && norm[1] == "tw":
		r, hasK, err := p.parseAmount(input, norm[0], chatType, false)
		if err != nil {
			return nil, err
		}
		w, _, err := p.parseAmount(input, norm[2], chatType, false)
		if err != nil {
			return nil, err
		}
		spec.risk = &r
		spec.toWin = &w
		spec.hasKSuffix = hasK
		spec.explicitToWin = true

	case len(norm) == 3 && norm[1] == "tp":
		r, hasK, err := p.parseAmount(input, norm[0], chatType, false)
		if err != nil {
			return nil, err
		}
		pay, _, err := p.parseAmount(input, norm[2], chatType, false)
		if err != nil {
			return nil, err
		}
		w := pay.Sub(r)
		spec.risk = &r
		spec.toWin = &w
		spec.hasKSuffix = hasK

	default:
		return nil, newError(KindSize, input, sizeText, "unrecognized size clause %q", sizeText)
	}

	return spec, nil
}

// parseAmount interprets one money token. 'k' suffix means thousands in
// every context; '$' prefix means literal dollars; under the legacy bare
// syntax a fill's decimal quantity means thousands while an integer is
// literal units.
func (p *Parser) parseAmount(input, token string, chatType models.ChatType, legacy bool) (decimal.Decimal, bool, error) {
	t := strings.ToLower(token)

	dollar := strings.HasPrefix(t, "$")
	t = strings.TrimPrefix(t, "$")
	hasK := strings.HasSuffix(t, "k")
	t = strings.TrimSuffix(t, "k")

	v, err := decimal.NewFromString(t)
	if err != nil {
		return decimal.Zero, false, newError(KindSize, input, token, "unparseable size %q", token)
	}
	if v.IsNegative() {
		return decimal.Zero, false, newError(KindSize, input, token, "size cannot be negative: %q", token)
	}

	switch {
	case hasK:
		v = v.Mul(decThousand)
	case dollar:
		// literal dollars
	case legacy && chatType == models.ChatTypeFill && !v.Equal(v.Truncate(0)):
		// decimal-thousands heuristic: a bare decimal fill size means thousands
		v = v.Mul(decThousand)
	}
	return v, hasK, nil
}

// buildBet combines a price with a size spec, back-filling Risk and ToWin
// so callers never observe one without the other.
func (p *Parser) buildBet(input string, price float64, spec *sizeSpec, chatType models.ChatType, freeBet bool, now time.Time) (models.Bet, error) {
	bet := models.Bet{Price: price, IsFreeBet: freeBet}
	if chatType == models.ChatTypeFill {
		ts := now
		bet.ExecutionDtm = &ts
	}

	if spec == nil {
		if chatType == models.ChatTypeFill {
			return models.Bet{}, newError(KindSize, input, "", "a fill requires a size or risk amount")
		}
		return bet, nil
	}

	switch {
	case spec.size != nil:
		bet.Size = spec.size
		bet.Risk = *spec.size
		bet.ToWin = toWinFromRisk(bet.Risk, price)
	case spec.risk != nil && spec.toWin != nil:
		bet.Risk = *spec.risk
		bet.ToWin = *spec.toWin
	case spec.risk != nil:
		bet.Risk = *spec.risk
		bet.ToWin = toWinFromRisk(bet.Risk, price)
	case spec.toWin != nil:
		bet.ToWin = *spec.toWin
		bet.Risk = riskFromToWin(bet.ToWin, price)
	case spec.toPay != nil:
		// ToPay covers risk plus winnings, so risk falls out of the
		// decimal multiplier
		bet.Risk = spec.toPay.Div(decimalOdds(price)).Round(2)
		bet.ToWin = spec.toPay.Sub(bet.Risk)
	}

	return bet, nil
}
