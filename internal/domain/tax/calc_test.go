package tax

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAnnualPAYEKnownValues(t *testing.T) {
	cases := []struct {
		income string
		want   string
	}{
		{"0", "0"},
		{"14000", "1470"},        // first band fully used
		{"48000", "7420"},        // 1470 + 34000 x 17.5%
		{"70000", "14020"},       // + 22000 x 30%
		{"95000", "22270"},       // + 25000 x 33%
		{"180000", "50320"},      // top of the 33% band
		{"200000", "58120"},      // + 20000 x 39%
	}

	for _, c := range cases {
		got := AnnualPAYE(d(c.income))
		assert.True(t, got.Equal(d(c.want)), "AnnualPAYE(%s) = %s, want %s", c.income, got, c.want)
	}
}

func TestAnnualPAYEMonotonic(t *testing.T) {
	incomes := []string{"0", "5000", "13999", "14000", "14001", "47999", "48000",
		"48001", "69999", "70000", "70001", "179999", "180000", "180001", "500000"}

	prev := decimal.NewFromInt(-1)
	for _, inc := range incomes {
		got := AnnualPAYE(d(inc))
		require.True(t, got.GreaterThanOrEqual(decimal.Zero), "PAYE(%s) is negative", inc)
		require.True(t, got.GreaterThanOrEqual(prev),
			"PAYE not monotonic at income %s: %s < %s", inc, got, prev)
		prev = got
	}
}

func TestAnnualPAYEBoundaryContinuity(t *testing.T) {
	// No negative jump crossing a bracket threshold.
	eps := d("0.01")
	for _, threshold := range []string{"14000", "48000", "70000", "180000"} {
		at := AnnualPAYE(d(threshold))
		above := AnnualPAYE(d(threshold).Add(eps))
		assert.True(t, above.GreaterThanOrEqual(at),
			"discontinuity at %s: tax(t+eps)=%s < tax(t)=%s", threshold, above, at)
	}
}

func TestPeriodPAYE(t *testing.T) {
	annual := AnnualPAYE(d("95000"))
	period := PeriodPAYE(d("95000"))
	assert.True(t, period.Mul(decimal.NewFromInt(PeriodsPerYear)).Sub(annual).Abs().LessThan(d("0.01")))
}

func TestEarnerLevy(t *testing.T) {
	got := EarnerLevy(d("1000"))
	assert.True(t, got.Equal(d("15.3")), "EarnerLevy(1000) = %s", got)
}

func TestContributionExact(t *testing.T) {
	// Employee portion must be exactly earnings x rate/100.
	split := Contribution(d("7916.67"), 3, DefaultEmployerRatePercent)
	assert.True(t, split.Employee.Equal(d("237.5001")), "employee = %s", split.Employee)
	assert.True(t, split.Employer.Equal(d("237.5001")), "employer = %s", split.Employer)

	split = Contribution(d("1000"), 8, 3)
	assert.True(t, split.Employee.Equal(d("80")))
	assert.True(t, split.Employer.Equal(d("30")))
}

func TestIsAllowedEmployeeRate(t *testing.T) {
	for _, r := range []int{3, 4, 6, 8, 10} {
		assert.True(t, IsAllowedEmployeeRate(r), "rate %d should be allowed", r)
	}
	for _, r := range []int{0, 1, 2, 5, 7, 9, 11, -3} {
		assert.False(t, IsAllowedEmployeeRate(r), "rate %d should not be allowed", r)
	}
}

func TestStudentLoan(t *testing.T) {
	assert.True(t, AnnualStudentLoan(d("24128")).IsZero())
	assert.True(t, AnnualStudentLoan(d("10000")).IsZero())

	// (40000 - 24128) x 12%
	got := AnnualStudentLoan(d("40000"))
	assert.True(t, got.Equal(d("1904.64")), "AnnualStudentLoan(40000) = %s", got)

	period := PeriodStudentLoan(d("40000"))
	assert.True(t, period.Mul(decimal.NewFromInt(PeriodsPerYear)).Sub(got).Abs().LessThan(d("0.01")))
}
