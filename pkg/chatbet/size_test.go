package chatbet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParse_SizeShapes tests the recognized size-clause grammars end to end
func TestParse_SizeShapes(t *testing.T) {
	setup := setupTestParser(t)

	tests := []struct {
		name      string
		input     string
		wantRisk  string
		wantToWin string
	}{
		{
			name:      "Legacy bare integer",
			input:     "YG Padres @ +150 = 500",
			wantRisk:  "500",
			wantToWin: "750",
		},
		{
			name:      "Decimal thousands fill",
			input:     "YG Padres @ +150 = 0.094",
			wantRisk:  "94",
			wantToWin: "141",
		},
		{
			name:      "Dollar prefix stays literal",
			input:     "YG Padres @ +150 = $0.50",
			wantRisk:  "0.5",
			wantToWin: "0.75",
		},
		{
			name:      "K suffix",
			input:     "YG Padres @ +150 = 2k",
			wantRisk:  "2000",
			wantToWin: "3000",
		},
		{
			name:      "K suffix on decimal",
			input:     "YG Padres @ +150 = 1.5k",
			wantRisk:  "1500",
			wantToWin: "2250",
		},
		{
			name:      "Explicit risk",
			input:     "YG Padres @ +150 = risk 200",
			wantRisk:  "200",
			wantToWin: "300",
		},
		{
			name:      "Explicit to-win",
			input:     "YG Padres @ +150 = tw 300",
			wantRisk:  "200",
			wantToWin: "300",
		},
		{
			name:      "Spelled-out to win",
			input:     "YG Padres @ +150 = to win 300",
			wantRisk:  "200",
			wantToWin: "300",
		},
		{
			name:      "Risk paired with to-win",
			input:     "YG Padres @ +150 = 100 tw 180",
			wantRisk:  "100",
			wantToWin: "180",
		},
		{
			name:      "Risk paired with to-pay",
			input:     "YG Padres @ +150 = 100 tp 250",
			wantRisk:  "100",
			wantToWin: "150",
		},
		{
			name:      "Lone to-pay derives risk",
			input:     "YG Padres @ +150 = tp 250",
			wantRisk:  "100",
			wantToWin: "150",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := setup.parser.Parse(tt.input, setup.opts)

			require.NoError(t, err)
			assert.True(t, result.Bet.Risk.Equal(mustDecimal(t, tt.wantRisk)),
				"risk = %s, want %s", result.Bet.Risk, tt.wantRisk)
			assert.True(t, result.Bet.ToWin.Equal(mustDecimal(t, tt.wantToWin)),
				"to win = %s, want %s", result.Bet.ToWin, tt.wantToWin)
		})
	}
}

// TestParse_OrderBareDecimalStaysLiteral tests that the decimal-thousands
// heuristic applies to fills only
func TestParse_OrderBareDecimalStaysLiteral(t *testing.T) {
	setup := setupTestParser(t)

	result, err := setup.parser.Parse("IW Padres @ +150 = 0.5", setup.opts)

	require.NoError(t, err)
	assert.True(t, result.Bet.Risk.Equal(mustDecimal(t, "0.5")))
}

// TestParse_SizeErrors tests malformed size clauses
func TestParse_SizeErrors(t *testing.T) {
	setup := setupTestParser(t)

	tests := []struct {
		name  string
		input string
	}{
		{name: "Empty clause", input: "YG Padres @ +150 ="},
		{name: "Garbage amount", input: "YG Padres @ +150 = abc"},
		{name: "Negative amount", input: "YG Padres @ +150 = -50"},
		{name: "Unrecognized shape", input: "YG Padres @ +150 = 100 and 200"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := setup.parser.Parse(tt.input, setup.opts)
			assert.Equal(t, KindSize, KindOf(err))
		})
	}
}
