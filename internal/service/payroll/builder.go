package payroll

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/kauri-hr/payroll-backend-go/internal/domain/employee"
	"github.com/kauri-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/kauri-hr/payroll-backend-go/internal/domain/tax"
	"github.com/kauri-hr/payroll-backend-go/internal/domain/timesheet"
)

// Severity distinguishes violations that reject an entry from ones that
// merely warn.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Violation is one rule breach found while building an entry. The builder
// collects every violation for an employee before reporting; it never stops
// at the first one.
type Violation struct {
	EmployeeID string
	Field      string
	Message    string
	Severity   Severity
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s %s", v.EmployeeID, v.Field, v.Message)
}

// BuildInput is everything needed to compute one employee's pay for one
// period. Collections are passed in explicitly; the builder touches no
// stores.
type BuildInput struct {
	Employee        employee.Employee
	Hours           timesheet.HourTotals
	Allowances      decimal.Decimal
	OtherDeductions decimal.Decimal
	Period          payroll.Period
}

var periodsPerYear = decimal.NewFromInt(tax.PeriodsPerYear)

// BuildEntry combines aggregated hours, premium rates and the statutory
// calculators into a single pay entry.
//
// Gross is category-hours times the resolved premium rate for waged
// employees, or annual salary divided by periods for salaried ones, plus
// allowances. Deductions are computed against the annualised gross (period
// gross x periods per year) and divided back to the period; the bracket
// calculators need annual figures to land in the right band.
func BuildEntry(in BuildInput) (payroll.Entry, []Violation) {
	violations := validateBuild(in)
	for _, v := range violations {
		if v.Severity == SeverityError {
			return payroll.Entry{}, violations
		}
	}

	emp := in.Employee
	gross := decimal.Zero
	additions := payroll.Additions{
		Overtime:   decimal.Zero,
		Allowances: in.Allowances,
	}

	if emp.IsSalaried() {
		gross = emp.AnnualSalary.Div(periodsPerYear)
	} else {
		base := *emp.HourlyRate
		regular := in.Hours.Regular.Mul(payroll.PremiumRate(base, payroll.TierStandard))
		overtime := in.Hours.OvertimeTier1.Mul(payroll.PremiumRate(base, payroll.TierOvertime1)).
			Add(in.Hours.OvertimeTier2.Mul(payroll.PremiumRate(base, payroll.TierOvertime2)))
		holiday := in.Hours.PublicHoliday.Mul(payroll.PremiumRate(base, payroll.TierPublicHoliday))

		gross = regular.Add(overtime).Add(holiday)
		additions.Overtime = overtime.Add(holiday)
	}

	gross = gross.Add(in.Allowances).Round(2)
	annualised := gross.Mul(periodsPerYear)

	split := tax.Contribution(gross, emp.KiwiSaverRate, tax.DefaultEmployerRatePercent)

	studentLoan := decimal.Zero
	if emp.HasStudentLoan || emp.TaxCode.HasLoan() {
		studentLoan = tax.PeriodStudentLoan(annualised).Round(2)
	}

	deductions := payroll.Deductions{
		PAYE:              tax.PeriodPAYE(annualised).Round(2),
		ACCLevy:           tax.EarnerLevy(gross).Round(2),
		KiwiSaverEmployee: split.Employee.Round(2),
		KiwiSaverEmployer: split.Employer.Round(2),
		StudentLoan:       studentLoan,
		Other:             in.OtherDeductions.Round(2),
	}

	entry := payroll.Entry{
		CompanyID:  emp.CompanyID,
		EmployeeID: emp.ID,
		Period:     in.Period,
		Gross:      gross,
		Net:        gross.Sub(deductions.Withheld()),
		Status:     payroll.StatusPending,
		Deductions: deductions,
		Additions:  additions,
		Payment: payroll.Payment{
			Account:   emp.BankAccount,
			Reference: emp.EmployeeCode,
			Date:      in.Period.End(),
		},
	}

	return entry, violations
}

func validateBuild(in BuildInput) []Violation {
	var violations []Violation
	emp := in.Employee

	if !emp.IsSalaried() {
		if emp.HourlyRate == nil {
			violations = append(violations, Violation{
				EmployeeID: emp.ID,
				Field:      "hourly_rate",
				Message:    "is required for waged employees",
				Severity:   SeverityError,
			})
		} else if emp.HourlyRate.LessThan(payroll.MinimumHourlyWage) {
			violations = append(violations, Violation{
				EmployeeID: emp.ID,
				Field:      "hourly_rate",
				Message:    fmt.Sprintf("%s is below the minimum wage %s", emp.HourlyRate, payroll.MinimumHourlyWage),
				Severity:   SeverityError,
			})
		}
	}

	if !tax.IsAllowedEmployeeRate(emp.KiwiSaverRate) {
		violations = append(violations, Violation{
			EmployeeID: emp.ID,
			Field:      "kiwisaver_rate",
			Message:    fmt.Sprintf("%d%% is not an allowed contribution rate", emp.KiwiSaverRate),
			Severity:   SeverityError,
		})
	}

	weeklyCap := payroll.MaxWeeklyHours.Mul(in.Period.WeeksIn())
	if in.Hours.Total().GreaterThan(weeklyCap) {
		violations = append(violations, Violation{
			EmployeeID: emp.ID,
			Field:      "hours",
			Message:    fmt.Sprintf("%s hours exceeds the %s-hour weekly cap for the period", in.Hours.Total(), payroll.MaxWeeklyHours),
			Severity:   SeverityWarning,
		})
	}

	return violations
}
