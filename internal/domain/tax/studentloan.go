package tax

import "github.com/shopspring/decimal"

var (
	// StudentLoanThreshold is the annual income below which no repayment
	// is deducted (2024 tax year).
	StudentLoanThreshold = decimal.RequireFromString("24128")

	// StudentLoanRate is the flat repayment rate on income above the
	// threshold.
	StudentLoanRate = decimal.RequireFromString("0.12")
)

// AnnualStudentLoan returns the income-contingent repayment for an annual
// income: zero at or below the threshold, otherwise the excess times the
// flat rate.
func AnnualStudentLoan(annualIncome decimal.Decimal) decimal.Decimal {
	if annualIncome.LessThanOrEqual(StudentLoanThreshold) {
		return decimal.Zero
	}
	return annualIncome.Sub(StudentLoanThreshold).Mul(StudentLoanRate)
}

// PeriodStudentLoan returns the repayment for one pay period.
func PeriodStudentLoan(annualIncome decimal.Decimal) decimal.Decimal {
	return AnnualStudentLoan(annualIncome).Div(decimal.NewFromInt(PeriodsPerYear))
}
