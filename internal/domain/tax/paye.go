package tax

import "github.com/shopspring/decimal"

// PeriodsPerYear is the number of pay periods in a tax year. Payroll runs
// monthly, so periodic amounts are the annual figure divided by 12. This is
// an approximation of true progressive withholding and is the agreed
// behaviour, not a bug.
const PeriodsPerYear = 12

// Bracket is one band of a progressive marginal schedule. UpTo is the
// cumulative annual income ceiling for the band; nil means the band is open
// ended (the top band).
type Bracket struct {
	UpTo *decimal.Decimal
	Rate decimal.Decimal
}

// PAYESchedule holds the income tax brackets for the 2024 tax year, in
// ascending threshold order.
var PAYESchedule = []Bracket{
	{UpTo: dec("14000"), Rate: rate("0.105")},
	{UpTo: dec("48000"), Rate: rate("0.175")},
	{UpTo: dec("70000"), Rate: rate("0.30")},
	{UpTo: dec("180000"), Rate: rate("0.33")},
	{UpTo: nil, Rate: rate("0.39")},
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func rate(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// AnnualPAYE applies the progressive marginal schedule to an annual income.
// For each band the taxed amount is min(remaining income, band width);
// accumulation stops once the income is exhausted. Negative input is not
// validated here.
func AnnualPAYE(annualIncome decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	remaining := annualIncome
	lower := decimal.Zero

	for _, b := range PAYESchedule {
		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}

		taxed := remaining
		if b.UpTo != nil {
			width := b.UpTo.Sub(lower)
			if taxed.GreaterThan(width) {
				taxed = width
			}
			lower = *b.UpTo
		}

		total = total.Add(taxed.Mul(b.Rate))
		remaining = remaining.Sub(taxed)
	}

	return total
}

// PeriodPAYE returns the withholding for one pay period: the annual PAYE
// divided by the number of periods per year.
func PeriodPAYE(annualIncome decimal.Decimal) decimal.Decimal {
	return AnnualPAYE(annualIncome).Div(decimal.NewFromInt(PeriodsPerYear))
}
