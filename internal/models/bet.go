package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ChatType distinguishes orders (not yet executed) from fills (executed)
type ChatType string

const (
	ChatTypeOrder ChatType = "order"
	ChatTypeFill  ChatType = "fill"
)

// BetType distinguishes straight bets from multi-leg combinations
type BetType string

const (
	BetTypeStraight   BetType = "straight"
	BetTypeParlay     BetType = "parlay"
	BetTypeRoundRobin BetType = "roundRobin"
)

// ContractKind discriminates the contract variants
type ContractKind string

const (
	ContractTotalPoints            ContractKind = "totalPoints"
	ContractTotalPointsContestant  ContractKind = "totalPointsContestant"
	ContractHandicapContestantML   ContractKind = "handicapContestantML"
	ContractHandicapContestantLine ContractKind = "handicapContestantLine"
	ContractPropOU                 ContractKind = "propOU"
	ContractPropYN                 ContractKind = "propYN"
	ContractSeries                 ContractKind = "series"
	ContractWritein                ContractKind = "writein"
)

// PeriodTypeCode identifies the scoring period a contract settles on
type PeriodTypeCode string

const (
	PeriodMatch   PeriodTypeCode = "M" // full game
	PeriodHalf    PeriodTypeCode = "H"
	PeriodInning  PeriodTypeCode = "I"
	PeriodQuarter PeriodTypeCode = "Q"
	PeriodHockey  PeriodTypeCode = "P"
)

// ContestantType tells whether a prop settles on an individual or a team
type ContestantType string

const (
	ContestantIndividual ContestantType = "individual"
	ContestantTeamLeague ContestantType = "teamLeague"
)

// RiskType tells how a round robin's stated risk amount is scoped
type RiskType string

const (
	RiskPerSelection RiskType = "perSelection"
	RiskTotal        RiskType = "total"
)

// Period identifies the slice of a game a contract applies to.
// Number is 0 for the full game. Composite spans use reserved numbers
// (first three innings = 13, first seven = 17).
type Period struct {
	Code   PeriodTypeCode `json:"code"`
	Number int            `json:"number"`
}

// Match identifies the event a contract settles against. Team fields are
// empty for individual-player props, which carry Player/PlayerTeam instead.
type Match struct {
	Team1       string     `json:"team1,omitempty"`
	Team2       string     `json:"team2,omitempty"`
	Player      string     `json:"player,omitempty"`
	PlayerTeam  string     `json:"player_team,omitempty"`
	Date        *time.Time `json:"date,omitempty"`         // event date, UTC midnight
	DaySequence int        `json:"day_sequence,omitempty"` // doubleheader game index
}

// Contract is the parsed wager subject, discriminated by Kind. Only the
// fields relevant to the Kind are populated; consumers switch on Kind.
type Contract struct {
	Kind           ContractKind   `json:"kind"`
	Match          *Match         `json:"match,omitempty"` // nil for writein
	Period         Period         `json:"period"`
	Contestant     string         `json:"contestant,omitempty"` // selected side
	Line           float64        `json:"line,omitempty"`       // always a multiple of 0.5
	IsOver         bool           `json:"is_over,omitempty"`
	TiesLose       bool           `json:"ties_lose,omitempty"`
	Prop           string         `json:"prop,omitempty"`
	ContestantType ContestantType `json:"contestant_type,omitempty"`
	IsYes          bool           `json:"is_yes,omitempty"`
	SeriesLength   int            `json:"series_length,omitempty"`
	EventDate      *time.Time     `json:"event_date,omitempty"`   // writein only
	Description    string         `json:"description,omitempty"`  // writein only
}

// Bet carries the financial side of a wager. For fills under legacy size
// syntax, Size holds the raw quantity and Risk/ToWin are both back-filled
// from Size and Price so callers never observe one without the other.
type Bet struct {
	Price        float64          `json:"price"` // signed American odds
	Size         *decimal.Decimal `json:"size,omitempty"`
	Risk         decimal.Decimal  `json:"risk"`
	ToWin        decimal.Decimal  `json:"to_win"`
	ExecutionDtm *time.Time       `json:"execution_dtm,omitempty"` // fills only
	IsFreeBet    bool             `json:"is_free_bet,omitempty"`
}

// Leg is one straight-bet-shaped component of a parlay or round robin.
// Risk lives at the combination level, so a leg carries only its price.
type Leg struct {
	Contract       Contract `json:"contract"`
	Price          float64  `json:"price"`
	RotationNumber int      `json:"rotation_number,omitempty"`
	League         string   `json:"league,omitempty"`
	Sport          string   `json:"sport,omitempty"`
}

// ParseResult is the strongly-typed record produced from one chat message.
// Straight results own Contract+Bet; parlay and round-robin results own
// Legs plus a combined Bet.
type ParseResult struct {
	ID             uuid.UUID    `json:"id"`
	ChatType       ChatType     `json:"chat_type"`
	BetType        BetType      `json:"bet_type"`
	Contract       *Contract    `json:"contract,omitempty"` // straight only
	Bet            Bet          `json:"bet"`
	RotationNumber int          `json:"rotation_number,omitempty"`
	League         string       `json:"league,omitempty"`
	Sport          string       `json:"sport,omitempty"`
	Legs           []Leg        `json:"legs,omitempty"`
	UseFair        bool         `json:"use_fair,omitempty"`
	PushesLose     bool         `json:"pushes_lose,omitempty"`
	ParlaySize     int          `json:"parlay_size,omitempty"` // round robin only
	IsAtMost       bool         `json:"is_at_most,omitempty"`  // round robin only
	RiskType       RiskType     `json:"risk_type,omitempty"`   // round robin only
	ParsedAt       time.Time    `json:"parsed_at"`
}

// ChatMessage is one raw chat line arriving over Kafka
type ChatMessage struct {
	ID         string    `json:"id"`
	Text       string    `json:"text"`
	ReceivedAt time.Time `json:"received_at"`
}

// KafkaChatMessageBatch represents the Kafka envelope from the chat ingester
type KafkaChatMessageBatch struct {
	Messages  []ChatMessage `json:"messages"`
	Timestamp time.Time     `json:"timestamp"`
	BatchID   string        `json:"batch_id"`
}
