package chatbet

import (
	"strings"
	"time"
)

// modifiers are the recognized key:value switches that may appear anywhere
// in a leg before the price/size tail. pusheslose and tieslose are synonyms
// and merge into one flag.
type modifiers struct {
	date       *time.Time
	league     string
	sport      string
	freeBet    bool
	pushesLose bool
}

var knownKeywords = map[string]bool{
	"date":       true,
	"league":     true,
	"freebet":    true,
	"pusheslose": true,
	"tieslose":   true,
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

// extractModifiers pulls key:value tokens out of a leg's token stream,
// returning the residual tokens. Spaces around the ':' separator are a
// syntax error; unrecognized alphabetic keys are an unknown-keyword error.
func (p *Parser) extractModifiers(input string, tokens []string, now time.Time) ([]string, *modifiers, error) {
	mods := &modifiers{}
	residual := make([]string, 0, len(tokens))

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		if tok == ":" {
			return nil, nil, newError(KindKeywordSyntax, input, tok,
				"no spaces allowed around the ':' of a keyword")
		}
		if strings.HasPrefix(tok, ":") && i > 0 && knownKeywords[strings.ToLower(tokens[i-1])] {
			return nil, nil, newError(KindKeywordSyntax, input, tokens[i-1]+" "+tok,
				"no space allowed before the ':' of keyword %q", tokens[i-1])
		}

		colon := strings.Index(tok, ":")
		if colon < 0 {
			residual = append(residual, tok)
			continue
		}

		key := tok[:colon]
		value := tok[colon+1:]
		if !isAlpha(key) {
			// not keyword-shaped (e.g. a time or score); leave it alone
			residual = append(residual, tok)
			continue
		}
		lkey := strings.ToLower(key)
		if !knownKeywords[lkey] {
			return nil, nil, newError(KindKeywordUnknown, input, tok, "unknown keyword %q", key)
		}
		if value == "" {
			return nil, nil, newError(KindKeywordSyntax, input, tok,
				"no space allowed after the ':' of keyword %q", key)
		}

		if err := applyModifier(input, mods, lkey, value, now); err != nil {
			return nil, nil, err
		}
	}

	return residual, mods, nil
}

func applyModifier(input string, mods *modifiers, key, value string, now time.Time) error {
	switch key {
	case "date":
		d, err := parseDateToken(input, value, now)
		if err != nil {
			return err
		}
		mods.date = &d
	case "league":
		if league, sport, ok := leagueToken(value); ok {
			mods.league, mods.sport = league, sport
		} else {
			mods.league = strings.ToUpper(value)
		}
	case "freebet":
		if !strings.EqualFold(value, "true") {
			return newError(KindKeywordValue, input, key+":"+value,
				"freebet only accepts the value true, got %q", value)
		}
		mods.freeBet = true
	case "pusheslose", "tieslose":
		if !strings.EqualFold(value, "true") {
			return newError(KindKeywordValue, input, key+":"+value,
				"%s only accepts the value true, got %q", key, value)
		}
		mods.pushesLose = true
	}
	return nil
}

// splitSizeClause separates the message body from its price/size tail at
// the last '='. Legs never carry their own '=', so the final one always
// delimits the (possibly combined) size clause.
func splitSizeClause(body string) (main, sizeText string, found bool) {
	idx := strings.LastIndex(body, "=")
	if idx < 0 {
		return body, "", false
	}
	return strings.TrimSpace(body[:idx]), strings.TrimSpace(body[idx+1:]), true
}

// splitPriceClause separates one leg's residual text from its price at the
// first '@'.
func splitPriceClause(legText string) (residual, priceText string) {
	idx := strings.Index(legText, "@")
	if idx < 0 {
		return strings.TrimSpace(legText), ""
	}
	return strings.TrimSpace(legText[:idx]), strings.TrimSpace(legText[idx+1:])
}
