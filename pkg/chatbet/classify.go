package chatbet

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/cypherlabdev/chat-bet-parser-service/internal/models"
)

// parsedLeg is one classified leg before assembly
type parsedLeg struct {
	contract models.Contract
	price    float64
	hasPrice bool
	rotation int
	league   string
	sport    string
	mods     *modifiers
}

var (
	ouPattern     = regexp.MustCompile(`^(?i)([ou])(\d+(?:\.\d+)?)$`)
	spreadPattern = regexp.MustCompile(`^([+-])(\d+(?:\.\d+)?)$`)
	daySeqPattern = regexp.MustCompile(`^(?i)(?:gm?|#)(\d+)$`)
	seriesOfLen   = regexp.MustCompile(`^(?i)series/(\d+)$`)
	bareNumber    = regexp.MustCompile(`^\d+(?:\.\d+)?$`)
)

// parseLeg runs the full splitter/extractor/classifier pipeline over one
// leg's text (price clause included, size clause already stripped).
func (p *Parser) parseLeg(input, legText string, forceWritein bool, now time.Time) (*parsedLeg, error) {
	residualText, priceText := splitPriceClause(legText)
	hasPriceClause := strings.Contains(legText, "@")

	tokens := strings.Fields(residualText)

	// write-in short-circuits all other classification; its description is
	// free text, so modifier extraction must not touch it
	if forceWritein || (len(tokens) > 0 && strings.EqualFold(tokens[0], "writein")) {
		if !forceWritein {
			tokens = tokens[1:]
		}
		lg := &parsedLeg{mods: &modifiers{}}
		if err := p.applyPrice(input, lg, hasPriceClause, priceText); err != nil {
			return nil, err
		}
		contract, err := p.parseWritein(input, tokens, now)
		if err != nil {
			return nil, err
		}
		lg.contract = contract
		return lg, nil
	}

	tokens, mods, err := p.extractModifiers(input, tokens, now)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, newError(KindFormat, input, "", "message too short: nothing to parse")
	}

	lg := &parsedLeg{mods: mods, league: mods.league, sport: mods.sport}

	rotation, tokens, err := p.extractRotation(input, tokens)
	if err != nil {
		return nil, err
	}
	lg.rotation = rotation

	// rotation validates ahead of the price clause so a bad rotation number
	// is what gets reported
	if err := p.applyPrice(input, lg, hasPriceClause, priceText); err != nil {
		return nil, err
	}

	// explicit league token beats rotation-band inference
	for i, tok := range tokens {
		if league, sport, ok := leagueToken(tok); ok {
			lg.league, lg.sport = league, sport
			tokens = cutToken(tokens, i, 1)
			break
		}
	}
	if lg.league == "" && rotation > 0 {
		lg.league, lg.sport = leagueForRotation(rotation)
	}

	// positional event date
	eventDate := mods.date
	for i, tok := range tokens {
		if !looksLikeDate(tok) {
			continue
		}
		d, err := parseDateToken(input, tok, now)
		if err != nil {
			return nil, err
		}
		eventDate = &d
		tokens = cutToken(tokens, i, 1)
		break
	}

	daySequence, tokens := extractDaySequence(tokens)

	period, tokens, err := extractPeriod(input, tokens)
	if err != nil {
		return nil, err
	}

	contract, err := p.classify(input, tokens, mods, now)
	if err != nil {
		return nil, err
	}
	contract.Period = period
	if contract.Match != nil {
		contract.Match.Date = eventDate
		contract.Match.DaySequence = daySequence
	}
	lg.contract = contract
	return lg, nil
}

// applyPrice parses the @-clause, when present, onto the leg
func (p *Parser) applyPrice(input string, lg *parsedLeg, hasClause bool, priceText string) error {
	if !hasClause {
		return nil
	}
	v, err := p.parsePriceToken(input, priceText)
	if err != nil {
		return err
	}
	lg.price = v
	lg.hasPrice = true
	return nil
}

// classify runs the fixed-priority contract decision procedure over the
// residual tokens: prop, spread, team total, game total, series, and
// finally moneyline as the bare single-contestant case.
func (p *Parser) classify(input string, tokens []string, mods *modifiers, now time.Time) (models.Contract, error) {
	var zero models.Contract

	prop, tokens, hasProp := findProp(tokens)

	tt := false
	for i, tok := range tokens {
		if strings.EqualFold(tok, "tt") {
			tt = true
			tokens = cutToken(tokens, i, 1)
			break
		}
	}

	line, isOver, hasOU, tokens, err := p.extractOverUnder(input, tokens)
	if err != nil {
		return zero, err
	}

	spreadLine, hasSpread, tokens, err := p.extractSpread(input, tokens)
	if err != nil {
		return zero, err
	}

	if hasProp {
		return p.classifyProp(input, prop, tokens, line, isOver, hasOU, hasSpread)
	}

	seriesLength, hasSeries, tokens, err := p.extractSeries(input, tokens)
	if err != nil {
		return zero, err
	}

	names, err := parseContestants(input, tokens)
	if err != nil {
		return zero, err
	}

	switch {
	case hasSpread:
		if names.team2 != "" {
			return zero, newError(KindContractType, input, strings.Join(tokens, " "),
				"a spread needs exactly one selected side")
		}
		if names.team1 == "" {
			return zero, newError(KindContractType, input, names.player,
				"a spread takes a team, not a player")
		}
		match := &models.Match{Team1: names.team1}
		if spreadLine == 0 {
			return models.Contract{
				Kind:       models.ContractHandicapContestantML,
				Match:      match,
				Contestant: names.team1,
				TiesLose:   mods.pushesLose,
			}, nil
		}
		return models.Contract{
			Kind:       models.ContractHandicapContestantLine,
			Match:      match,
			Contestant: names.team1,
			Line:       spreadLine,
		}, nil

	case tt:
		if !hasOU {
			return zero, newError(KindContractType, input, "tt",
				"a team total requires an over/under line")
		}
		if names.team2 != "" {
			return zero, newError(KindContractType, input, strings.Join(tokens, " "),
				"a team total needs exactly one selected side")
		}
		if names.team1 == "" {
			return zero, newError(KindContractType, input, names.player,
				"a team total takes a team, not a player")
		}
		return models.Contract{
			Kind:       models.ContractTotalPointsContestant,
			Match:      &models.Match{Team1: names.team1},
			Contestant: names.team1,
			Line:       line,
			IsOver:     isOver,
		}, nil

	case hasOU:
		if names.team1 == "" {
			return zero, newError(KindContractType, input, names.player,
				"a player over/under needs its prop keyword")
		}
		return models.Contract{
			Kind:   models.ContractTotalPoints,
			Match:  &models.Match{Team1: names.team1, Team2: names.team2},
			Line:   line,
			IsOver: isOver,
		}, nil

	case hasSeries:
		if names.team2 != "" {
			return zero, newError(KindContractType, input, strings.Join(tokens, " "),
				"a series bet needs exactly one selected side")
		}
		if names.team1 == "" {
			return zero, newError(KindContractType, input, names.player,
				"a series bet takes a team, not a player")
		}
		return models.Contract{
			Kind:         models.ContractSeries,
			Match:        &models.Match{Team1: names.team1},
			Contestant:   names.team1,
			SeriesLength: seriesLength,
		}, nil

	case names.team2 == "" && (names.team1 != "" || names.player != ""):
		// bare single contestant: moneyline
		contestant := names.team1
		match := &models.Match{Team1: names.team1}
		if names.player != "" {
			contestant = names.player
			match = &models.Match{Player: names.player, PlayerTeam: names.playerTeam}
		}
		return models.Contract{
			Kind:       models.ContractHandicapContestantML,
			Match:      match,
			Contestant: contestant,
			TiesLose:   mods.pushesLose,
		}, nil
	}

	return zero, newError(KindContractType, input, strings.Join(tokens, " "),
		"unable to determine contract type from %q", strings.Join(tokens, " "))
}

// classifyProp enforces the shape the prop keyword requires: over/under
// props must carry a line, yes/no props must not.
func (p *Parser) classifyProp(input string, prop propEntry, tokens []string, line float64, isOver, hasOU, hasSpread bool) (models.Contract, error) {
	var zero models.Contract

	// a stray bare number is a line typed without its o/u marker
	for _, tok := range tokens {
		if bareNumber.MatchString(tok) && !isNumericNickname(tok) {
			if prop.kind == models.ContractPropYN {
				return zero, newError(KindContractType, input, tok,
					"prop %q is yes/no and does not take a line", prop.keyword)
			}
			return zero, newError(KindContractType, input, tok,
				"prop line must be marked over or under, e.g. o%s", tok)
		}
	}

	names, err := parseContestants(input, tokens)
	if err != nil {
		return zero, err
	}

	contestantType := prop.contestant
	contestant := names.team1
	match := &models.Match{Team1: names.team1}
	if names.player != "" {
		contestantType = models.ContestantIndividual
		contestant = names.player
		match = &models.Match{Player: names.player, PlayerTeam: names.playerTeam}
	}

	if prop.kind == models.ContractPropOU {
		if !hasOU {
			return zero, newError(KindContractType, input, prop.keyword,
				"prop %q requires an over/under line", prop.keyword)
		}
		return models.Contract{
			Kind:           models.ContractPropOU,
			Match:          match,
			Contestant:     contestant,
			ContestantType: contestantType,
			Prop:           prop.keyword,
			Line:           line,
			IsOver:         isOver,
		}, nil
	}

	if hasOU || hasSpread {
		return zero, newError(KindContractType, input, prop.keyword,
			"prop %q is yes/no and does not take a line", prop.keyword)
	}
	return models.Contract{
		Kind:           models.ContractPropYN,
		Match:          match,
		Contestant:     contestant,
		ContestantType: contestantType,
		Prop:           prop.keyword,
		IsYes:          true,
	}, nil
}

// parseWritein parses the tokens after the writein keyword: an event date
// followed by a free-text description.
func (p *Parser) parseWritein(input string, tokens []string, now time.Time) (models.Contract, error) {
	var zero models.Contract
	if len(tokens) == 0 || !looksLikeDate(tokens[0]) {
		return zero, newError(KindWritein, input, strings.Join(tokens, " "),
			"a write-in starts with an event date")
	}
	d, err := parseDateToken(input, tokens[0], now)
	if err != nil {
		return zero, newError(KindWritein, input, tokens[0], "bad write-in date %q", tokens[0])
	}
	description := strings.Join(tokens[1:], " ")
	if description == "" {
		return zero, newError(KindWritein, input, "", "a write-in needs a description")
	}
	return models.Contract{
		Kind:        models.ContractWritein,
		EventDate:   &d,
		Description: description,
		Period:      models.Period{Code: models.PeriodMatch, Number: 0},
	}, nil
}

// extractOverUnder pulls a fused over/under token (o226.5, u0.5) or the
// word form (over 226.5) out of tokens. Fused matching keeps team names
// containing the substring "over" safe.
func (p *Parser) extractOverUnder(input string, tokens []string) (line float64, isOver, found bool, rest []string, err error) {
	for i, tok := range tokens {
		if m := ouPattern.FindStringSubmatch(tok); m != nil {
			line, err = p.parseLine(input, m[2])
			if err != nil {
				return 0, false, false, nil, err
			}
			return line, strings.EqualFold(m[1], "o"), true, cutToken(tokens, i, 1), nil
		}
		lower := strings.ToLower(tok)
		if (lower == "over" || lower == "under") && i+1 < len(tokens) && bareNumber.MatchString(tokens[i+1]) {
			line, err = p.parseLine(input, tokens[i+1])
			if err != nil {
				return 0, false, false, nil, err
			}
			return line, lower == "over", true, cutToken(tokens, i, 2), nil
		}
	}
	return 0, false, false, tokens, nil
}

// extractSpread pulls a signed handicap line (-3.5, +7, +0) out of tokens
func (p *Parser) extractSpread(input string, tokens []string) (line float64, found bool, rest []string, err error) {
	for i, tok := range tokens {
		m := spreadPattern.FindStringSubmatch(tok)
		if m == nil {
			continue
		}
		line, err = p.parseLine(input, m[2])
		if err != nil {
			return 0, false, nil, err
		}
		if m[1] == "-" {
			line = -line
		}
		return line, true, cutToken(tokens, i, 1), nil
	}
	return 0, false, tokens, nil
}

// parseLine parses a numeric line and enforces the half-point invariant
func (p *Parser) parseLine(input, token string) (float64, error) {
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, newError(KindLineValue, input, token, "unparseable line %q", token)
	}
	if math.Mod(v*2, 1) != 0 {
		return 0, newError(KindLineValue, input, token,
			"line %s is not a multiple of 0.5", token)
	}
	return v, nil
}

// extractSeries detects the series keyword and its optional explicit
// length: "N game series", "series/N", "series out of N", default 3.
func (p *Parser) extractSeries(input string, tokens []string) (length int, found bool, rest []string, err error) {
	for i, tok := range tokens {
		if m := seriesOfLen.FindStringSubmatch(tok); m != nil {
			n, _ := strconv.Atoi(m[1])
			if n < 1 {
				return 0, false, nil, newError(KindContractType, input, tok, "bad series length in %q", tok)
			}
			return n, true, cutToken(tokens, i, 1), nil
		}
		if !strings.EqualFold(tok, "series") {
			continue
		}
		// "N game series"
		if i >= 2 && isAllDigits(tokens[i-2]) && isGameWord(tokens[i-1]) {
			n, _ := strconv.Atoi(tokens[i-2])
			return n, true, cutToken(tokens, i-2, 3), nil
		}
		// "series out of N"
		if i+2 < len(tokens) && strings.EqualFold(tokens[i+1], "out") && strings.EqualFold(tokens[i+2], "of") {
			if i+3 < len(tokens) && isAllDigits(tokens[i+3]) {
				n, _ := strconv.Atoi(tokens[i+3])
				return n, true, cutToken(tokens, i, 4), nil
			}
			return 0, false, nil, newError(KindContractType, input, tok,
				"series length missing after \"out of\"")
		}
		return p.defaults.SeriesLength, true, cutToken(tokens, i, 1), nil
	}
	return 0, false, tokens, nil
}

func isGameWord(tok string) bool {
	t := strings.ToLower(tok)
	return t == "game" || t == "games"
}

// extractDaySequence recognizes doubleheader markers G2, GM2, #2 and the
// spaced form "# 2", before or after the team tokens.
func extractDaySequence(tokens []string) (int, []string) {
	for i, tok := range tokens {
		if m := daySeqPattern.FindStringSubmatch(tok); m != nil {
			n, _ := strconv.Atoi(m[1])
			return n, cutToken(tokens, i, 1)
		}
		if tok == "#" && i+1 < len(tokens) && isAllDigits(tokens[i+1]) {
			n, _ := strconv.Atoi(tokens[i+1])
			return n, cutToken(tokens, i, 2)
		}
	}
	return 0, tokens
}
