package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is the payroll-relevant projection of an employee record.
// Master data is owned by the HR side of the platform; payroll reads it and
// never writes it back.
type Employee struct {
	ID               string
	CompanyID        string
	EmployeeCode     string
	FullName         string
	Email            *string
	IRDNumber        string
	TaxCode          TaxCode
	KiwiSaverRate    int // employee contribution percent, one of the allowed set
	HasStudentLoan   bool
	AnnualSalary     *decimal.Decimal // salaried basis
	HourlyRate       *decimal.Decimal // waged basis
	BankAccount      BankAccount
	EmploymentStatus EmploymentStatus
	HireDate         time.Time

	// Leave balances carried onto the payslip. Accrual is owned by the
	// leave module.
	AnnualLeaveHours decimal.Decimal
	SickLeaveDays    decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsSalaried reports whether the employee is paid a flat annual salary
// rather than by worked hours.
func (e Employee) IsSalaried() bool {
	return e.AnnualSalary != nil && !e.AnnualSalary.IsZero()
}

type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "active"
	EmploymentStatusResigned   EmploymentStatus = "resigned"
	EmploymentStatusTerminated EmploymentStatus = "terminated"
)
