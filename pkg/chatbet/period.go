package chatbet

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/cypherlabdev/chat-bet-parser-service/internal/models"
)

var (
	quarterPattern = regexp.MustCompile(`^[qQ](\d+)$`)
	hockeyPattern  = regexp.MustCompile(`^[pP](\d+)$`)
	halfPattern    = regexp.MustCompile(`^(?:([12])[hH]|[hH]([12]))$`)
	firstNPattern  = regexp.MustCompile(`^[fF](\d)$`)
	ordinalPattern = regexp.MustCompile(`^(\d+)(?:st|nd|rd|th)$`)
)

// composite "first N innings" codes reserve PeriodNumber 10+N
const compositeInningBase = 10

// extractPeriod pulls the first period token (or ordinal+inning pair) out of
// tokens. Period tokens may sit before or after the contestant/line tokens.
// Absent any, the full game period (Match, 0) is returned.
func extractPeriod(input string, tokens []string) (models.Period, []string, error) {
	for i, tok := range tokens {
		switch {
		case halfPattern.MatchString(tok):
			m := halfPattern.FindStringSubmatch(tok)
			digits := m[1]
			if digits == "" {
				digits = m[2]
			}
			n, _ := strconv.Atoi(digits)
			return models.Period{Code: models.PeriodHalf, Number: n}, cutToken(tokens, i, 1), nil

		case quarterPattern.MatchString(tok):
			n, _ := strconv.Atoi(quarterPattern.FindStringSubmatch(tok)[1])
			if n < 1 || n > 4 {
				return models.Period{}, nil, newError(KindPeriod, input, tok, "quarter %d does not exist", n)
			}
			return models.Period{Code: models.PeriodQuarter, Number: n}, cutToken(tokens, i, 1), nil

		case hockeyPattern.MatchString(tok):
			n, _ := strconv.Atoi(hockeyPattern.FindStringSubmatch(tok)[1])
			if n < 1 || n > 3 {
				return models.Period{}, nil, newError(KindPeriod, input, tok, "hockey period %d does not exist", n)
			}
			return models.Period{Code: models.PeriodHockey, Number: n}, cutToken(tokens, i, 1), nil

		case firstNPattern.MatchString(tok):
			n, _ := strconv.Atoi(firstNPattern.FindStringSubmatch(tok)[1])
			// F5 is the baseball first half; F3/F7 are composite inning spans
			if n == 5 {
				return models.Period{Code: models.PeriodHalf, Number: 1}, cutToken(tokens, i, 1), nil
			}
			if n == 3 || n == 7 {
				return models.Period{Code: models.PeriodInning, Number: compositeInningBase + n}, cutToken(tokens, i, 1), nil
			}
			return models.Period{}, nil, newError(KindPeriod, input, tok, "unrecognized period notation %q", tok)

		case ordinalPattern.MatchString(tok) && i+1 < len(tokens) && isInningWord(tokens[i+1]):
			n, _ := strconv.Atoi(ordinalPattern.FindStringSubmatch(tok)[1])
			if n < 1 || n > 9 {
				return models.Period{}, nil, newError(KindPeriod, input, tok, "inning %d does not exist", n)
			}
			return models.Period{Code: models.PeriodInning, Number: n}, cutToken(tokens, i, 2), nil
		}
	}
	return models.Period{Code: models.PeriodMatch, Number: 0}, tokens, nil
}

func isInningWord(tok string) bool {
	t := strings.ToLower(tok)
	return t == "inning" || t == "innings"
}

// cutToken removes count tokens starting at index i
func cutToken(tokens []string, i, count int) []string {
	out := make([]string, 0, len(tokens)-count)
	out = append(out, tokens[:i]...)
	return append(out, tokens[i+count:]...)
}
