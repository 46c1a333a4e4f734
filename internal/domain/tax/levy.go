package tax

import "github.com/shopspring/decimal"

// EarnerLevyRate is the flat ACC earner levy applied to all earnings.
var EarnerLevyRate = decimal.RequireFromString("0.0153")

// EarnerLevy returns earnings multiplied by the flat levy rate.
func EarnerLevy(earnings decimal.Decimal) decimal.Decimal {
	return earnings.Mul(EarnerLevyRate)
}
