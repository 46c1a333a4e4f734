package tax

import "github.com/shopspring/decimal"

// DefaultEmployerRatePercent is the compulsory employer contribution rate.
const DefaultEmployerRatePercent = 3

// AllowedEmployeeRates are the KiwiSaver employee contribution rates an
// employee may elect.
var AllowedEmployeeRates = []int{3, 4, 6, 8, 10}

// IsAllowedEmployeeRate reports whether pct is a valid KiwiSaver employee
// contribution rate.
func IsAllowedEmployeeRate(pct int) bool {
	for _, r := range AllowedEmployeeRates {
		if r == pct {
			return true
		}
	}
	return false
}

// ContributionSplit is the employee/employer portions of a KiwiSaver
// contribution for one set of earnings.
type ContributionSplit struct {
	Employee decimal.Decimal
	Employer decimal.Decimal
}

// Contribution computes both portions as earnings x rate/100.
func Contribution(earnings decimal.Decimal, employeeRatePct, employerRatePct int) ContributionSplit {
	hundred := decimal.NewFromInt(100)
	return ContributionSplit{
		Employee: earnings.Mul(decimal.NewFromInt(int64(employeeRatePct))).Div(hundred),
		Employer: earnings.Mul(decimal.NewFromInt(int64(employerRatePct))).Div(hundred),
	}
}
