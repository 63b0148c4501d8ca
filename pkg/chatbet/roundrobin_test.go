package chatbet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cypherlabdev/chat-bet-parser-service/internal/models"
)

const fourLegs = "A -1.5 @ -110 & B -2.5 @ -110 & C -3.5 @ -110 & D -4.5 @ -110"

// TestParseRoundRobin_PerSelection tests per-combination risk scoping:
// 4c2 yields 6 two-leg parlays, 100 each, 600 total risk
func TestParseRoundRobin_PerSelection(t *testing.T) {
	setup := setupTestParser(t)

	result, err := setup.parser.Parse("IWRR 4c2 "+fourLegs+" = 100 per", setup.opts)

	require.NoError(t, err)
	assert.Equal(t, models.BetTypeRoundRobin, result.BetType)
	assert.Equal(t, 2, result.ParlaySize)
	assert.False(t, result.IsAtMost)
	assert.Equal(t, models.RiskPerSelection, result.RiskType)
	assert.True(t, result.UseFair)
	require.Len(t, result.Legs, 4)

	assert.True(t, result.Bet.Risk.Equal(mustDecimal(t, "600")))
	// each two-leg parlay at -110/-110 wins 264.46 on 100
	assert.True(t, result.Bet.ToWin.Equal(mustDecimal(t, "1586.76")))
}

// TestParseRoundRobin_TotalRisk tests total-risk scoping splitting evenly
func TestParseRoundRobin_TotalRisk(t *testing.T) {
	setup := setupTestParser(t)

	result, err := setup.parser.Parse("IWRR 4c2 "+fourLegs+" = 600 total", setup.opts)

	require.NoError(t, err)
	assert.Equal(t, models.RiskTotal, result.RiskType)
	assert.True(t, result.Bet.Risk.Equal(mustDecimal(t, "600")))
	assert.True(t, result.Bet.ToWin.Equal(mustDecimal(t, "1586.76")))
}

// TestParseRoundRobin_AtMost tests the trailing dash expanding to every
// parlay size from 2 up: 4c3- yields C(4,2)+C(4,3) = 10 combinations
func TestParseRoundRobin_AtMost(t *testing.T) {
	setup := setupTestParser(t)

	result, err := setup.parser.Parse("IWRR 4c3- "+fourLegs+" = 100 each", setup.opts)

	require.NoError(t, err)
	assert.Equal(t, 3, result.ParlaySize)
	assert.True(t, result.IsAtMost)
	assert.Equal(t, models.RiskPerSelection, result.RiskType)
	assert.True(t, result.Bet.Risk.Equal(mustDecimal(t, "1000")))
}

// TestParseRoundRobin_LegCountMismatch tests declared vs realized legs
func TestParseRoundRobin_LegCountMismatch(t *testing.T) {
	setup := setupTestParser(t)

	_, err := setup.parser.Parse("IWRR 5c2 "+fourLegs+" = 100 per", setup.opts)

	assert.Equal(t, KindLegCount, KindOf(err))
}

// TestParseRoundRobin_MissingRiskType tests the per/total requirement
func TestParseRoundRobin_MissingRiskType(t *testing.T) {
	setup := setupTestParser(t)

	_, err := setup.parser.Parse("IWRR 4c2 "+fourLegs+" = 100", setup.opts)

	assert.Equal(t, KindRiskType, KindOf(err))
}

// TestParseRoundRobin_MissingSize tests that round robins always need risk
func TestParseRoundRobin_MissingSize(t *testing.T) {
	setup := setupTestParser(t)

	_, err := setup.parser.Parse("IWRR 4c2 "+fourLegs, setup.opts)

	assert.Equal(t, KindSize, KindOf(err))
}

// TestParseRoundRobin_ToWinRejected tests that round robin sizing is
// risk-only
func TestParseRoundRobin_ToWinRejected(t *testing.T) {
	setup := setupTestParser(t)

	_, err := setup.parser.Parse("IWRR 4c2 "+fourLegs+" = tw 100 per", setup.opts)

	assert.Equal(t, KindSize, KindOf(err))
}

// TestParseRoundRobin_MissingNCrToken tests a round robin without its size
// token
func TestParseRoundRobin_MissingNCrToken(t *testing.T) {
	setup := setupTestParser(t)

	_, err := setup.parser.Parse("IWRR "+fourLegs+" = 100 per", setup.opts)

	assert.Equal(t, KindNCrFormat, KindOf(err))
}

// TestParseNCr tests the nCr token grammar and count bounds
func TestParseNCr(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		want     NCr
		wantKind ErrorKind
	}{
		{name: "Exact size", token: "4c2", want: NCr{TotalLegs: 4, ParlaySize: 2}},
		{name: "Uppercase separator", token: "5C3", want: NCr{TotalLegs: 5, ParlaySize: 3}},
		{name: "At-most dash", token: "5c3-", want: NCr{TotalLegs: 5, ParlaySize: 3, IsAtMost: true}},
		{name: "Wrong separator", token: "4x2", wantKind: KindNCrFormat},
		{name: "Comma list", token: "4c2,3", wantKind: KindNCrFormat},
		{name: "Missing parlay size", token: "4c", wantKind: KindNCrFormat},
		{name: "Too few total legs", token: "2c1", wantKind: KindNCrRange},
		{name: "Parlay size one", token: "4c1", wantKind: KindNCrRange},
		{name: "Parlay size equals total", token: "4c4", wantKind: KindNCrRange},
		{name: "Parlay size exceeds total", token: "3c5", wantKind: KindNCrRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseNCr(tt.token, tt.token)

			if tt.wantKind != "" {
				assert.Equal(t, tt.wantKind, KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestCombinations tests the index-subset generator
func TestCombinations(t *testing.T) {
	tests := []struct {
		name string
		n    int
		r    int
		want [][]int
	}{
		{
			name: "C(4,2) in lexicographic order",
			n:    4,
			r:    2,
			want: [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}},
		},
		{
			name: "C(3,3) single subset",
			n:    3,
			r:    3,
			want: [][]int{{0, 1, 2}},
		},
		{
			name: "r greater than n",
			n:    2,
			r:    3,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, combinations(tt.n, tt.r))
		})
	}
}
