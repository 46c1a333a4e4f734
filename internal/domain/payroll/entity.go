package payroll

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kauri-hr/payroll-backend-go/internal/domain/employee"
)

// Status enum
type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

// Period identifies one calendar month of payroll.
type Period struct {
	Month int
	Year  int
}

// Start is the first instant of the period.
func (p Period) Start() time.Time {
	return time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
}

// End is the last instant of the period's final day.
func (p Period) End() time.Time {
	return p.Start().AddDate(0, 1, 0).Add(-time.Second)
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

// WeeksIn is the period length in weeks, used for the weekly hours check.
func (p Period) WeeksIn() decimal.Decimal {
	days := p.Start().AddDate(0, 1, 0).Sub(p.Start()).Hours() / 24
	return decimal.NewFromFloat(days).Div(decimal.NewFromInt(7))
}

// Deductions itemises everything withheld from gross pay. Each statutory
// category gets its own field; free-form key/value maps are deliberately
// avoided.
type Deductions struct {
	PAYE              decimal.Decimal
	ACCLevy           decimal.Decimal
	KiwiSaverEmployee decimal.Decimal
	KiwiSaverEmployer decimal.Decimal // employer portion, not withheld from net
	StudentLoan       decimal.Decimal
	Other             decimal.Decimal
}

// Withheld is the amount subtracted from gross to reach net. The employer
// KiwiSaver portion is paid on top of gross and excluded here.
func (d Deductions) Withheld() decimal.Decimal {
	return d.PAYE.Add(d.ACCLevy).Add(d.KiwiSaverEmployee).Add(d.StudentLoan).Add(d.Other)
}

// Additions itemises earnings already folded into gross pay. They are part
// of gross, never added on after deductions.
type Additions struct {
	Overtime   decimal.Decimal
	Allowances decimal.Decimal
}

// Payment carries the banking metadata for one entry.
type Payment struct {
	Account   employee.BankAccount
	Reference string
	Date      time.Time
}

// Entry is one employee's computed pay for one period. Once marked paid an
// entry is immutable by convention.
type Entry struct {
	ID         string
	CompanyID  string
	EmployeeID string
	Period     Period
	Gross      decimal.Decimal
	Net        decimal.Decimal
	Status     Status
	Deductions Deductions
	Additions  Additions
	Payment    Payment
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	EmployeeName *string
	IRDNumber    *string
}
