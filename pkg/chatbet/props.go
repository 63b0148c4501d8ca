package chatbet

import (
	"sort"
	"strings"

	"github.com/cypherlabdev/chat-bet-parser-service/internal/models"
)

// propEntry carries the metadata for one recognized prop keyword: the shape
// its contract must take (over/under vs yes/no) and the default contestant
// type it settles on.
type propEntry struct {
	keyword    string
	kind       models.ContractKind
	contestant models.ContestantType
}

// propKeywords is the fixed prop dictionary. Matching is longest-first so
// "passing yards" wins over "yards" and "first td scorer" over "first td".
var propKeywords = []propEntry{
	// football, individual over/under
	{"passing yards", models.ContractPropOU, models.ContestantIndividual},
	{"pass yards", models.ContractPropOU, models.ContestantIndividual},
	{"passing attempts", models.ContractPropOU, models.ContestantIndividual},
	{"passing completions", models.ContractPropOU, models.ContestantIndividual},
	{"completions", models.ContractPropOU, models.ContestantIndividual},
	{"passing tds", models.ContractPropOU, models.ContestantIndividual},
	{"passing touchdowns", models.ContractPropOU, models.ContestantIndividual},
	{"interceptions thrown", models.ContractPropOU, models.ContestantIndividual},
	{"rushing yards", models.ContractPropOU, models.ContestantIndividual},
	{"rush yards", models.ContractPropOU, models.ContestantIndividual},
	{"rushing attempts", models.ContractPropOU, models.ContestantIndividual},
	{"rushing tds", models.ContractPropOU, models.ContestantIndividual},
	{"receiving yards", models.ContractPropOU, models.ContestantIndividual},
	{"rec yards", models.ContractPropOU, models.ContestantIndividual},
	{"receptions", models.ContractPropOU, models.ContestantIndividual},
	{"targets", models.ContractPropOU, models.ContestantIndividual},
	{"receiving tds", models.ContractPropOU, models.ContestantIndividual},
	{"rush + rec yards", models.ContractPropOU, models.ContestantIndividual},
	{"pass + rush yards", models.ContractPropOU, models.ContestantIndividual},
	{"longest reception", models.ContractPropOU, models.ContestantIndividual},
	{"longest rush", models.ContractPropOU, models.ContestantIndividual},
	{"longest completion", models.ContractPropOU, models.ContestantIndividual},
	{"kicking points", models.ContractPropOU, models.ContestantIndividual},
	{"field goals made", models.ContractPropOU, models.ContestantIndividual},
	{"extra points made", models.ContractPropOU, models.ContestantIndividual},
	{"tackles", models.ContractPropOU, models.ContestantIndividual},
	{"tackles + assists", models.ContractPropOU, models.ContestantIndividual},
	{"sacks", models.ContractPropOU, models.ContestantIndividual},

	// football, yes/no
	{"first td", models.ContractPropYN, models.ContestantIndividual},
	{"first touchdown", models.ContractPropYN, models.ContestantIndividual},
	{"first td scorer", models.ContractPropYN, models.ContestantIndividual},
	{"anytime td", models.ContractPropYN, models.ContestantIndividual},
	{"anytime touchdown", models.ContractPropYN, models.ContestantIndividual},
	{"to score a td", models.ContractPropYN, models.ContestantIndividual},
	{"to score a touchdown", models.ContractPropYN, models.ContestantIndividual},
	{"2+ tds", models.ContractPropYN, models.ContestantIndividual},
	{"3+ tds", models.ContractPropYN, models.ContestantIndividual},
	{"to throw an interception", models.ContractPropYN, models.ContestantIndividual},
	{"to record a sack", models.ContractPropYN, models.ContestantIndividual},

	// basketball, individual over/under
	{"points + rebounds + assists", models.ContractPropOU, models.ContestantIndividual},
	{"pts + rebs + asts", models.ContractPropOU, models.ContestantIndividual},
	{"pra", models.ContractPropOU, models.ContestantIndividual},
	{"points + rebounds", models.ContractPropOU, models.ContestantIndividual},
	{"points + assists", models.ContractPropOU, models.ContestantIndividual},
	{"rebounds + assists", models.ContractPropOU, models.ContestantIndividual},
	{"points", models.ContractPropOU, models.ContestantIndividual},
	{"pts", models.ContractPropOU, models.ContestantIndividual},
	{"rebounds", models.ContractPropOU, models.ContestantIndividual},
	{"rebs", models.ContractPropOU, models.ContestantIndividual},
	{"assists", models.ContractPropOU, models.ContestantIndividual},
	{"asts", models.ContractPropOU, models.ContestantIndividual},
	{"steals", models.ContractPropOU, models.ContestantIndividual},
	{"blocks", models.ContractPropOU, models.ContestantIndividual},
	{"turnovers", models.ContractPropOU, models.ContestantIndividual},
	{"threes made", models.ContractPropOU, models.ContestantIndividual},
	{"three pointers made", models.ContractPropOU, models.ContestantIndividual},
	{"3pm", models.ContractPropOU, models.ContestantIndividual},
	{"minutes played", models.ContractPropOU, models.ContestantIndividual},

	// basketball, yes/no
	{"double double", models.ContractPropYN, models.ContestantIndividual},
	{"triple double", models.ContractPropYN, models.ContestantIndividual},
	{"to record a double double", models.ContractPropYN, models.ContestantIndividual},
	{"to record a triple double", models.ContractPropYN, models.ContestantIndividual},
	{"first basket", models.ContractPropYN, models.ContestantIndividual},
	{"first field goal", models.ContractPropYN, models.ContestantIndividual},

	// baseball, individual over/under
	{"strikeouts", models.ContractPropOU, models.ContestantIndividual},
	{"ks", models.ContractPropOU, models.ContestantIndividual},
	{"outs recorded", models.ContractPropOU, models.ContestantIndividual},
	{"earned runs", models.ContractPropOU, models.ContestantIndividual},
	{"hits allowed", models.ContractPropOU, models.ContestantIndividual},
	{"walks allowed", models.ContractPropOU, models.ContestantIndividual},
	{"pitches thrown", models.ContractPropOU, models.ContestantIndividual},
	{"total bases", models.ContractPropOU, models.ContestantIndividual},
	{"hits + runs + rbis", models.ContractPropOU, models.ContestantIndividual},
	{"hits", models.ContractPropOU, models.ContestantIndividual},
	{"runs scored", models.ContractPropOU, models.ContestantIndividual},
	{"rbis", models.ContractPropOU, models.ContestantIndividual},
	{"stolen bases", models.ContractPropOU, models.ContestantIndividual},
	{"singles", models.ContractPropOU, models.ContestantIndividual},
	{"doubles", models.ContractPropOU, models.ContestantIndividual},
	{"home runs", models.ContractPropOU, models.ContestantIndividual},

	// baseball, yes/no
	{"to hit a home run", models.ContractPropYN, models.ContestantIndividual},
	{"to hit a hr", models.ContractPropYN, models.ContestantIndividual},
	{"to record a hit", models.ContractPropYN, models.ContestantIndividual},
	{"to record an rbi", models.ContractPropYN, models.ContestantIndividual},
	{"to steal a base", models.ContractPropYN, models.ContestantIndividual},
	{"to record a win", models.ContractPropYN, models.ContestantIndividual},

	// hockey, individual
	{"shots on goal", models.ContractPropOU, models.ContestantIndividual},
	{"sog", models.ContractPropOU, models.ContestantIndividual},
	{"saves", models.ContractPropOU, models.ContestantIndividual},
	{"goals against", models.ContractPropOU, models.ContestantIndividual},
	{"goalie saves", models.ContractPropOU, models.ContestantIndividual},
	{"anytime goal", models.ContractPropYN, models.ContestantIndividual},
	{"first goal", models.ContractPropYN, models.ContestantIndividual},
	{"to score a goal", models.ContractPropYN, models.ContestantIndividual},
	{"to record an assist", models.ContractPropYN, models.ContestantIndividual},
	{"to record a point", models.ContractPropYN, models.ContestantIndividual},

	// soccer / generic individual
	{"shots on target", models.ContractPropOU, models.ContestantIndividual},
	{"goals", models.ContractPropOU, models.ContestantIndividual},
	{"anytime scorer", models.ContractPropYN, models.ContestantIndividual},
	{"first scorer", models.ContractPropYN, models.ContestantIndividual},
	{"last scorer", models.ContractPropYN, models.ContestantIndividual},
	{"to be carded", models.ContractPropYN, models.ContestantIndividual},
	{"to be sent off", models.ContractPropYN, models.ContestantIndividual},

	// team-level over/under
	{"team total tds", models.ContractPropOU, models.ContestantTeamLeague},
	{"total corners", models.ContractPropOU, models.ContestantTeamLeague},
	{"total cards", models.ContractPropOU, models.ContestantTeamLeague},
	{"total errors", models.ContractPropOU, models.ContestantTeamLeague},
	{"total penalties", models.ContractPropOU, models.ContestantTeamLeague},
	{"total turnovers", models.ContractPropOU, models.ContestantTeamLeague},
	{"total sacks", models.ContractPropOU, models.ContestantTeamLeague},
	{"total threes", models.ContractPropOU, models.ContestantTeamLeague},
	{"total home runs", models.ContractPropOU, models.ContestantTeamLeague},
	{"win total", models.ContractPropOU, models.ContestantTeamLeague},
	{"season wins", models.ContractPropOU, models.ContestantTeamLeague},
	{"longest winning streak", models.ContractPropOU, models.ContestantTeamLeague},

	// team-level yes/no
	{"first to score", models.ContractPropYN, models.ContestantTeamLeague},
	{"last to score", models.ContractPropYN, models.ContestantTeamLeague},
	{"first to 10", models.ContractPropYN, models.ContestantTeamLeague},
	{"first to 15", models.ContractPropYN, models.ContestantTeamLeague},
	{"first to 20", models.ContractPropYN, models.ContestantTeamLeague},
	{"to score first and win", models.ContractPropYN, models.ContestantTeamLeague},
	{"to keep a clean sheet", models.ContractPropYN, models.ContestantTeamLeague},
	{"both teams to score", models.ContractPropYN, models.ContestantTeamLeague},
	{"to win to nil", models.ContractPropYN, models.ContestantTeamLeague},
	{"to make the playoffs", models.ContractPropYN, models.ContestantTeamLeague},
	{"to miss the playoffs", models.ContractPropYN, models.ContestantTeamLeague},
	{"to win the division", models.ContractPropYN, models.ContestantTeamLeague},
	{"to win the conference", models.ContractPropYN, models.ContestantTeamLeague},
	{"to win the championship", models.ContractPropYN, models.ContestantTeamLeague},
	{"to win the title", models.ContractPropYN, models.ContestantTeamLeague},
	{"to win the world series", models.ContractPropYN, models.ContestantTeamLeague},
	{"to win the super bowl", models.ContractPropYN, models.ContestantTeamLeague},
	{"to win the stanley cup", models.ContractPropYN, models.ContestantTeamLeague},
	{"to win the finals", models.ContractPropYN, models.ContestantTeamLeague},
	{"to win the cup", models.ContractPropYN, models.ContestantTeamLeague},
	{"to go over .500", models.ContractPropYN, models.ContestantTeamLeague},
	{"to go undefeated", models.ContractPropYN, models.ContestantTeamLeague},
	{"to win mvp", models.ContractPropYN, models.ContestantIndividual},
	{"to win cy young", models.ContractPropYN, models.ContestantIndividual},
	{"to win roy", models.ContractPropYN, models.ContestantIndividual},
	{"to win dpoy", models.ContractPropYN, models.ContestantIndividual},
	{"to win the hart", models.ContractPropYN, models.ContestantIndividual},
	{"to win the masters", models.ContractPropYN, models.ContestantIndividual},
	{"to make the cut", models.ContractPropYN, models.ContestantIndividual},
	{"to miss the cut", models.ContractPropYN, models.ContestantIndividual},
	{"hole in one", models.ContractPropYN, models.ContestantIndividual},
}

func init() {
	// longest-first so multi-word keywords win over their substrings
	sort.SliceStable(propKeywords, func(i, j int) bool {
		return len(propKeywords[i].keyword) > len(propKeywords[j].keyword)
	})
}

// findProp scans the token list for the longest prop keyword present as a
// whole-word phrase, case-insensitively. Returns the match and the tokens
// with the keyword span removed.
func findProp(tokens []string) (propEntry, []string, bool) {
	lowered := make([]string, len(tokens))
	for i, t := range tokens {
		lowered[i] = strings.ToLower(t)
	}

	for _, entry := range propKeywords {
		words := strings.Fields(entry.keyword)
		if len(words) > len(tokens) {
			continue
		}
		for start := 0; start+len(words) <= len(tokens); start++ {
			match := true
			for k, w := range words {
				if lowered[start+k] != w {
					match = false
					break
				}
			}
			if !match {
				continue
			}
			remaining := make([]string, 0, len(tokens)-len(words))
			remaining = append(remaining, tokens[:start]...)
			remaining = append(remaining, tokens[start+len(words):]...)
			return entry, remaining, true
		}
	}
	return propEntry{}, tokens, false
}
