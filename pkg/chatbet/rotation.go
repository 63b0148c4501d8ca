package chatbet

import (
	"strconv"
	"strings"
)

// numericNicknames are team names that begin with digits. The tokenizer
// consults this table before rotation/line detection so future exceptions
// are data, not new pattern branches.
var numericNicknames = map[string]bool{
	"49ers": true,
	"66ers": true,
	"76ers": true,
	"86ers": true,
	"89ers": true,
}

func isNumericNickname(token string) bool {
	return numericNicknames[strings.ToLower(token)]
}

func isAllDigits(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// extractRotation reads a leading bare integer as the rotation number.
// Range-validated; numeric-prefixed team names are exempted first.
func (p *Parser) extractRotation(input string, tokens []string) (int, []string, error) {
	if len(tokens) == 0 {
		return 0, tokens, nil
	}
	tok := tokens[0]
	if isNumericNickname(tok) || !isAllDigits(tok) {
		return 0, tokens, nil
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, nil, newError(KindRotation, input, tok, "unreadable rotation number %q", tok)
	}
	if n < p.defaults.RotationMin || n > p.defaults.RotationMax {
		return 0, nil, newError(KindRotation, input, tok,
			"rotation number %d outside %d-%d", n, p.defaults.RotationMin, p.defaults.RotationMax)
	}
	return n, tokens[1:], nil
}

// leagueForRotation infers sport and league from the rotation number's
// numeric band when no explicit league was given.
func leagueForRotation(n int) (league, sport string) {
	switch {
	case n >= 400 && n <= 499:
		return "NFL", "Football"
	case (n >= 500 && n <= 599) || (n >= 700 && n <= 799):
		return "NBA", "Basketball"
	case n >= 800 && n <= 999:
		return "MLB", "Baseball"
	default:
		return "", ""
	}
}

// knownLeagues maps explicit league tokens to their sport
var knownLeagues = map[string]string{
	"NBA":   "Basketball",
	"WNBA":  "Basketball",
	"NCAAB": "Basketball",
	"NFL":   "Football",
	"NCAAF": "Football",
	"CFL":   "Football",
	"MLB":   "Baseball",
	"NHL":   "Hockey",
}

func leagueToken(token string) (league, sport string, ok bool) {
	sport, ok = knownLeagues[strings.ToUpper(token)]
	if !ok {
		return "", "", false
	}
	return strings.ToUpper(token), sport, true
}
