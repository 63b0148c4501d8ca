package chatbet

import (
	"math"
	"strconv"
	"strings"
)

// parsePriceToken interprets the token after '@' as signed American odds.
// ev/even are the even-money aliases for +100.
func (p *Parser) parsePriceToken(input, token string) (float64, error) {
	t := strings.ToLower(strings.TrimSpace(token))
	if t == "" {
		return 0, newError(KindPrice, input, "@", "missing price after @")
	}
	if t == "ev" || t == "even" {
		return 100, nil
	}

	v, err := strconv.ParseFloat(strings.TrimPrefix(t, "+"), 64)
	if err != nil {
		return 0, newError(KindPrice, input, token, "unparseable price %q", token)
	}
	if math.Abs(v) < 100 {
		return 0, newError(KindPrice, input, token,
			"american odds must be at least 100 in magnitude, got %q", token)
	}
	return v, nil
}
