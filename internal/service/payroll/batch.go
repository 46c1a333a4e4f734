package payroll

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/kauri-hr/payroll-backend-go/internal/domain/employee"
	"github.com/kauri-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/kauri-hr/payroll-backend-go/internal/domain/timesheet"
)

// RunState tracks where a batch run is in its lifecycle. Per-employee
// failures during Calculating and GeneratingArtifacts do not fail the run.
type RunState string

const (
	StateIdle                RunState = "idle"
	StateValidating          RunState = "validating"
	StateInvalid             RunState = "invalid"
	StateCalculating         RunState = "calculating"
	StateGeneratingArtifacts RunState = "generating_artifacts"
	StateDone                RunState = "done"
)

// BatchResult is the outcome of one batch run: either the structural
// validation errors that stopped it before any computation, or the built
// entries plus running totals and any per-employee generation failures.
type BatchResult struct {
	State            RunState
	Entries          []payroll.Entry
	Processed        int
	Skipped          int
	ErrorCount       int
	TotalGross       decimal.Decimal
	TotalNet         decimal.Decimal
	ValidationErrors map[string][]string // keyed by employee ID
	GenerationErrors []payroll.GenerationError
	Warnings         []string
}

// BatchProcessor builds payroll entries for every active employee in a
// period. It operates on plain values handed to it; loading and persistence
// belong to the orchestrating service.
type BatchProcessor struct {
	calendar timesheet.HolidayCalendar
	logger   *slog.Logger
}

func NewBatchProcessor(calendar timesheet.HolidayCalendar, logger *slog.Logger) *BatchProcessor {
	if logger == nil {
		logger = slog.Default()
	}
	return &BatchProcessor{calendar: calendar, logger: logger}
}

// HoursFor aggregates raw time entries against the processor's holiday
// calendar. The hours preview uses it so previews and runs categorise
// identically.
func (p *BatchProcessor) HoursFor(entries []timesheet.TimeEntry) timesheet.HourTotals {
	return timesheet.Aggregate(entries, p.calendar)
}

// ProcessPeriod validates every employee up front and aborts the whole
// batch if anything is structurally wrong: a statutory filing is never
// partially processed. Once past the gate it builds one entry per employee,
// catching and counting per-employee failures without stopping the rest.
// Cancellation is honoured only at the employee iteration boundary.
func (p *BatchProcessor) ProcessPeriod(
	ctx context.Context,
	employees []employee.Employee,
	entriesByEmployee map[string][]timesheet.TimeEntry,
	period payroll.Period,
) (BatchResult, error) {
	result := BatchResult{
		State:      StateValidating,
		TotalGross: decimal.Zero,
		TotalNet:   decimal.Zero,
	}

	// Structural gate: all-or-nothing.
	validationErrors := make(map[string][]string)
	for _, emp := range employees {
		if errs := ValidateEmployee(emp); len(errs) > 0 {
			validationErrors[emp.ID] = errs.Messages()
		}
	}
	if len(validationErrors) > 0 {
		result.State = StateInvalid
		result.ValidationErrors = validationErrors
		p.logger.Warn("payroll batch aborted by validation",
			slog.String("period", period.String()),
			slog.Int("employees_failing", len(validationErrors)))
		return result, nil
	}

	result.State = StateCalculating
	for _, emp := range employees {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		hours := timesheet.Aggregate(entriesByEmployee[emp.ID], p.calendar)
		entry, violations := BuildEntry(BuildInput{
			Employee: emp,
			Hours:    hours,
			Period:   period,
		})

		skip := false
		for _, v := range violations {
			if v.Severity == SeverityError {
				skip = true
				result.GenerationErrors = append(result.GenerationErrors, payroll.GenerationError{
					EmployeeID:   emp.ID,
					EmployeeName: emp.FullName,
					Message:      fmt.Sprintf("%s %s", v.Field, v.Message),
				})
			} else {
				result.Warnings = append(result.Warnings, v.String())
			}
		}
		if skip {
			result.ErrorCount++
			result.Skipped++
			p.logger.Error("skipping employee in payroll batch",
				slog.String("employee_id", emp.ID),
				slog.String("period", period.String()))
			continue
		}

		result.Entries = append(result.Entries, entry)
		result.Processed++
		result.TotalGross = result.TotalGross.Add(entry.Gross)
		result.TotalNet = result.TotalNet.Add(entry.Net)
	}

	result.State = StateDone
	return result, nil
}
