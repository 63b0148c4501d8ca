package chatbet

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// TestDecimalOdds tests American-to-decimal conversion on both sides of even
func TestDecimalOdds(t *testing.T) {
	tests := []struct {
		name  string
		price float64
		want  string
	}{
		{name: "Plus 150", price: 150, want: "2.5"},
		{name: "Plus 100", price: 100, want: "2"},
		{name: "Minus 200", price: -200, want: "1.5"},
		{name: "Minus 100", price: -100, want: "2"},
		{name: "Plus 120", price: 120, want: "2.2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decimalOdds(tt.price)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"decimalOdds(%v) = %s, want %s", tt.price, got, tt.want)
		})
	}
}

// TestToWinFromRisk tests win amounts at representative prices
func TestToWinFromRisk(t *testing.T) {
	tests := []struct {
		name  string
		risk  string
		price float64
		want  string
	}{
		{name: "Favorite -110", risk: "110", price: -110, want: "100"},
		{name: "Favorite -115", risk: "1000", price: -115, want: "869.57"},
		{name: "Underdog +150", risk: "100", price: 150, want: "150"},
		{name: "Even money", risk: "250", price: 100, want: "250"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := toWinFromRisk(decimal.RequireFromString(tt.risk), tt.price)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"toWinFromRisk(%s, %v) = %s, want %s", tt.risk, tt.price, got, tt.want)
		})
	}
}

// TestRiskFromToWin tests the inverse derivation
func TestRiskFromToWin(t *testing.T) {
	tests := []struct {
		name  string
		toWin string
		price float64
		want  string
	}{
		{name: "Favorite -110", toWin: "100", price: -110, want: "110"},
		{name: "Underdog +150", toWin: "150", price: 150, want: "100"},
		{name: "Even money", toWin: "250", price: 100, want: "250"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := riskFromToWin(decimal.RequireFromString(tt.toWin), tt.price)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"riskFromToWin(%s, %v) = %s, want %s", tt.toWin, tt.price, got, tt.want)
		})
	}
}
