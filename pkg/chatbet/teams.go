package chatbet

import (
	"regexp"
	"strings"
)

// contestants holds the team or player side of one leg
type contestants struct {
	team1      string
	team2      string
	player     string
	playerTeam string
}

var (
	initialPattern  = regexp.MustCompile(`^[A-Za-z]\.$`)
	teamAffiliation = regexp.MustCompile(`^\((.+)\)$`)
)

// parseContestants resolves the residual name tokens left after every other
// marker has been extracted. A slash-joined token carries both teams; a
// leading initial ("B. Falter") or a "(TEAM)" suffix marks an individual
// player.
func parseContestants(input string, tokens []string) (contestants, error) {
	if len(tokens) == 0 {
		return contestants{}, newError(KindTeamName, input, "", "no team or player name found")
	}

	// individual player via "(TEAM)" affiliation suffix
	last := tokens[len(tokens)-1]
	if m := teamAffiliation.FindStringSubmatch(last); m != nil {
		name := strings.Join(tokens[:len(tokens)-1], " ")
		if name == "" {
			return contestants{}, newError(KindTeamName, input, last, "player name missing before affiliation")
		}
		return contestants{player: name, playerTeam: m[1]}, nil
	}

	// individual player via initial-dot name shape
	if initialPattern.MatchString(tokens[0]) && len(tokens) > 1 {
		return contestants{player: strings.Join(tokens, " ")}, nil
	}

	// slash-joined pair anywhere in the residual names two teams
	for i, tok := range tokens {
		if !strings.Contains(tok, "/") {
			continue
		}
		parts := strings.SplitN(tok, "/", 2)
		prefix := strings.Join(tokens[:i], " ")
		suffix := strings.Join(tokens[i+1:], " ")
		team1 := strings.TrimSpace(strings.Join([]string{prefix, parts[0]}, " "))
		team2 := strings.TrimSpace(strings.Join([]string{parts[1], suffix}, " "))
		if team1 == "" || team2 == "" {
			return contestants{}, newError(KindTeamName, input, tok, "empty team name in %q", tok)
		}
		if strings.EqualFold(team1, team2) {
			return contestants{}, newError(KindTeamName, input, tok, "team %q listed on both sides", team1)
		}
		return contestants{team1: team1, team2: team2}, nil
	}

	name := strings.TrimSpace(strings.Join(tokens, " "))
	if name == "" {
		return contestants{}, newError(KindTeamName, input, "", "empty team name")
	}
	return contestants{team1: name}, nil
}
