package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kauri-hr/payroll-backend-go/internal/pkg/validator"
)

// ========== RUN DTOs ==========

type RunPayrollRequest struct {
	PeriodMonth int    `json:"period_month"`
	PeriodYear  int    `json:"period_year"`
	Description string `json:"description,omitempty"`
}

func (r *RunPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PeriodMonth < 1 || r.PeriodMonth > 12 {
		errs = append(errs, validator.ValidationError{Field: "period_month", Message: "must be between 1 and 12"})
	}
	if r.PeriodYear < 2000 || r.PeriodYear > 2100 {
		errs = append(errs, validator.ValidationError{Field: "period_year", Message: "is out of range"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RunSummaryResponse reports the outcome of one batch run: either the
// structural validation errors that stopped it, or the counts and totals
// of the completed run plus any per-employee generation failures.
type RunSummaryResponse struct {
	RunID            string              `json:"run_id"`
	Period           string              `json:"period"`
	State            string              `json:"state"`
	ProcessedCount   int                 `json:"processed_count"`
	SkippedCount     int                 `json:"skipped_count"`
	ErrorCount       int                 `json:"error_count"`
	TotalGross       decimal.Decimal     `json:"total_gross"`
	TotalNet         decimal.Decimal     `json:"total_net"`
	ValidationErrors map[string][]string `json:"validation_errors,omitempty"` // keyed by employee ID
	GenerationErrors []GenerationError   `json:"generation_errors,omitempty"`
	Warnings         []string            `json:"warnings,omitempty"`
	Entries          []EntryResponse     `json:"entries,omitempty"`
}

// GenerationError is one caught per-employee failure during artifact
// generation. It never aborts the batch.
type GenerationError struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	Message      string `json:"message"`
}

// ========== ENTRY DTOs ==========

type EntryResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name,omitempty"`
	Period       string          `json:"period"`
	Gross        decimal.Decimal `json:"gross"`
	Net          decimal.Decimal `json:"net"`
	Status       string          `json:"status"`

	PAYE              decimal.Decimal `json:"paye"`
	ACCLevy           decimal.Decimal `json:"acc_levy"`
	KiwiSaverEmployee decimal.Decimal `json:"kiwisaver_employee"`
	KiwiSaverEmployer decimal.Decimal `json:"kiwisaver_employer"`
	StudentLoan       decimal.Decimal `json:"student_loan"`
	OtherDeductions   decimal.Decimal `json:"other_deductions"`

	Overtime   decimal.Decimal `json:"overtime"`
	Allowances decimal.Decimal `json:"allowances"`

	BankAccount      string     `json:"bank_account,omitempty"`
	PaymentReference string     `json:"payment_reference,omitempty"`
	PaymentDate      *time.Time `json:"payment_date,omitempty"`
}

type EntryFilter struct {
	PeriodMonth *int    `json:"period_month,omitempty"`
	PeriodYear  *int    `json:"period_year,omitempty"`
	Status      *string `json:"status,omitempty"`
	EmployeeID  *string `json:"employee_id,omitempty"`
	Page        int     `json:"page"`
	Limit       int     `json:"limit"`
}

type ListEntryResponse struct {
	Data       []EntryResponse `json:"data"`
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
}

// ========== HOURS PREVIEW DTOs ==========

// HourTotalsResponse is the categorised hour breakdown for one employee
// over one period, shown before a run is committed.
type HourTotalsResponse struct {
	EmployeeID    string          `json:"employee_id"`
	Period        string          `json:"period"`
	Regular       decimal.Decimal `json:"regular"`
	OvertimeTier1 decimal.Decimal `json:"overtime_tier_1"`
	OvertimeTier2 decimal.Decimal `json:"overtime_tier_2"`
	PublicHoliday decimal.Decimal `json:"public_holiday"`
	Total         decimal.Decimal `json:"total"`
}

// ========== RATE PREVIEW DTOs ==========

type RatePreviewResponse struct {
	BaseRate decimal.Decimal `json:"base_rate"`
	Category string          `json:"category"`
	Rate     decimal.Decimal `json:"rate"`
}
