package chatbet

import "github.com/shopspring/decimal"

var (
	decOne     = decimal.NewFromInt(1)
	decHundred = decimal.NewFromInt(100)
)

// decimalOdds converts a signed American price to decimal odds.
// +150 -> 2.50, -150 -> 1.6667, +100 -> 2.00.
func decimalOdds(price float64) decimal.Decimal {
	p := decimal.NewFromFloat(price)
	if price > 0 {
		return decOne.Add(p.Div(decHundred))
	}
	return decOne.Add(decHundred.Div(p.Neg()))
}

// toWinFromRisk computes the win amount implied by a risk amount at price
func toWinFromRisk(risk decimal.Decimal, price float64) decimal.Decimal {
	return risk.Mul(decimalOdds(price).Sub(decOne)).Round(2)
}

// riskFromToWin computes the risk amount implied by a win amount at price
func riskFromToWin(toWin decimal.Decimal, price float64) decimal.Decimal {
	return toWin.Div(decimalOdds(price).Sub(decOne)).Round(2)
}
