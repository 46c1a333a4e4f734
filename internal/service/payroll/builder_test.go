package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kauri-hr/payroll-backend-go/internal/domain/employee"
	"github.com/kauri-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/kauri-hr/payroll-backend-go/internal/domain/timesheet"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	v := decimal.RequireFromString(s)
	return &v
}

func wagedEmployee(rate string) employee.Employee {
	return employee.Employee{
		ID:            "emp-1",
		CompanyID:     "co-1",
		EmployeeCode:  "2024-0001",
		FullName:      "Tom Parata",
		IRDNumber:     "49091850",
		TaxCode:       employee.TaxCodeM,
		KiwiSaverRate: 3,
		HourlyRate:    decPtr(rate),
		BankAccount:   employee.BankAccount{Bank: "01", Branch: "0001", Account: "0123456", Suffix: "00"},
	}
}

func salariedEmployee(salary string) employee.Employee {
	emp := wagedEmployee("0")
	emp.HourlyRate = nil
	emp.AnnualSalary = decPtr(salary)
	return emp
}

func march2024() payroll.Period {
	return payroll.Period{Month: 3, Year: 2024}
}

func TestBuildEntryRegularHoursRoundTrip(t *testing.T) {
	entry, violations := BuildEntry(BuildInput{
		Employee: wagedEmployee("25.00"),
		Hours:    timesheet.HourTotals{Regular: d("8")},
		Period:   march2024(),
	})

	require.Empty(t, violations)
	assert.True(t, entry.Gross.Equal(d("200.00")), "gross = %s", entry.Gross)
	assert.True(t, entry.Additions.Overtime.IsZero())
}

func TestBuildEntryPremiumHours(t *testing.T) {
	// 8 regular + 3 tier-1 + 1 tier-2 + 4 public holiday at $24/h:
	// 192 + 108 + 48 + 240 = 588. Holiday pay uses the 2.5x path.
	entry, violations := BuildEntry(BuildInput{
		Employee: wagedEmployee("24.00"),
		Hours: timesheet.HourTotals{
			Regular:       d("8"),
			OvertimeTier1: d("3"),
			OvertimeTier2: d("1"),
			PublicHoliday: d("4"),
		},
		Period: march2024(),
	})

	require.Empty(t, violations)
	assert.True(t, entry.Gross.Equal(d("588.00")), "gross = %s", entry.Gross)
	assert.True(t, entry.Additions.Overtime.Equal(d("396.00")), "overtime = %s", entry.Additions.Overtime)
}

func TestBuildEntrySalariedScenario(t *testing.T) {
	// $95,000 salary, 3% KiwiSaver, no student loan.
	entry, violations := BuildEntry(BuildInput{
		Employee: salariedEmployee("95000"),
		Period:   march2024(),
	})

	require.Empty(t, violations)
	assert.True(t, entry.Gross.Sub(d("7916.67")).Abs().LessThanOrEqual(d("0.01")),
		"monthly gross = %s", entry.Gross)
	assert.True(t, entry.Deductions.KiwiSaverEmployee.Sub(d("237.50")).Abs().LessThanOrEqual(d("0.01")),
		"kiwisaver employee = %s", entry.Deductions.KiwiSaverEmployee)
	assert.True(t, entry.Deductions.StudentLoan.IsZero())

	// Net is gross minus everything withheld; the employer KiwiSaver
	// portion is not withheld.
	expectedNet := entry.Gross.
		Sub(entry.Deductions.PAYE).
		Sub(entry.Deductions.ACCLevy).
		Sub(entry.Deductions.KiwiSaverEmployee).
		Sub(entry.Deductions.StudentLoan)
	assert.True(t, entry.Net.Equal(expectedNet), "net = %s, want %s", entry.Net, expectedNet)
}

func TestBuildEntryStudentLoan(t *testing.T) {
	emp := salariedEmployee("60000")
	emp.TaxCode = employee.TaxCodeMSL
	emp.HasStudentLoan = true

	entry, violations := BuildEntry(BuildInput{Employee: emp, Period: march2024()})
	require.Empty(t, violations)

	// (60000.00 - 24128) x 12% / 12 = 358.72
	assert.True(t, entry.Deductions.StudentLoan.Sub(d("358.72")).Abs().LessThanOrEqual(d("0.01")),
		"student loan = %s", entry.Deductions.StudentLoan)
}

func TestBuildEntryMinimumWageBoundary(t *testing.T) {
	// Exactly the minimum wage passes.
	_, violations := BuildEntry(BuildInput{
		Employee: wagedEmployee("22.70"),
		Hours:    timesheet.HourTotals{Regular: d("8")},
		Period:   march2024(),
	})
	assert.Empty(t, violations)

	// One cent below fails, and the rate is not clamped.
	entry, violations := BuildEntry(BuildInput{
		Employee: wagedEmployee("22.69"),
		Hours:    timesheet.HourTotals{Regular: d("8")},
		Period:   march2024(),
	})
	require.Len(t, violations, 1)
	assert.Equal(t, SeverityError, violations[0].Severity)
	assert.Equal(t, "hourly_rate", violations[0].Field)
	assert.True(t, entry.Gross.IsZero(), "rejected entry should not carry amounts")
}

func TestBuildEntryInvalidContributionRate(t *testing.T) {
	emp := wagedEmployee("25.00")
	emp.KiwiSaverRate = 5

	_, violations := BuildEntry(BuildInput{
		Employee: emp,
		Hours:    timesheet.HourTotals{Regular: d("8")},
		Period:   march2024(),
	})
	require.NotEmpty(t, violations)
	assert.Equal(t, "kiwisaver_rate", violations[0].Field)
	assert.Equal(t, SeverityError, violations[0].Severity)
}

func TestBuildEntryAggregatesAllViolations(t *testing.T) {
	emp := wagedEmployee("20.00") // below minimum wage
	emp.KiwiSaverRate = 7         // not allowed either

	_, violations := BuildEntry(BuildInput{
		Employee: emp,
		Hours:    timesheet.HourTotals{Regular: d("8")},
		Period:   march2024(),
	})
	assert.Len(t, violations, 2, "all violations should be reported together")
}

func TestBuildEntryWeeklyHoursCapWarns(t *testing.T) {
	// ~44 weeks' worth of hours in one month trips the cap but the
	// entry still builds.
	entry, violations := BuildEntry(BuildInput{
		Employee: wagedEmployee("25.00"),
		Hours:    timesheet.HourTotals{Regular: d("200")},
		Period:   march2024(),
	})

	require.Len(t, violations, 1)
	assert.Equal(t, SeverityWarning, violations[0].Severity)
	assert.False(t, entry.Gross.IsZero())
}
