// Package aggregate derives the dashboard figures from transactions and
// pre-aggregated series: spending against a limit, income/expense totals,
// category shares and the salary deduction split.
package aggregate

import (
	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	half    = decimal.NewFromFloat(0.5)
)

// roundHalfUp rounds to the nearest integer, halves towards positive infinity.
func roundHalfUp(d decimal.Decimal) int64 {
	return d.Add(half).Floor().IntPart()
}

// percentOf returns part/whole*100 unrounded. whole must be non-zero.
func percentOf(part, whole decimal.Decimal) decimal.Decimal {
	return part.Mul(hundred).Div(whole)
}
