package payroll

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"

	"github.com/kauri-hr/payroll-backend-go/internal/domain/employee"
	"github.com/kauri-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/kauri-hr/payroll-backend-go/internal/domain/timesheet"
	"github.com/kauri-hr/payroll-backend-go/internal/pkg/database"
	"github.com/kauri-hr/payroll-backend-go/internal/repository/postgresql"
	"github.com/kauri-hr/payroll-backend-go/internal/service/export"
)

type PayrollServiceImpl struct {
	db            *database.DB
	payrollRepo   payroll.PayrollRepository
	employeeRepo  employee.EmployeeRepository
	timesheetRepo timesheet.TimesheetRepository
	processor     *BatchProcessor
	bankWriter    export.BankFileWriter
	logger        *slog.Logger
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	timesheetRepo timesheet.TimesheetRepository,
	processor *BatchProcessor,
	bankWriter export.BankFileWriter,
	logger *slog.Logger,
) payroll.Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &PayrollServiceImpl{
		db:            db,
		payrollRepo:   payrollRepo,
		employeeRepo:  employeeRepo,
		timesheetRepo: timesheetRepo,
		processor:     processor,
		bankWriter:    bankWriter,
		logger:        logger,
	}
}

// Helper to get company_id and user_id from JWT context
func getClaimsFromContext(ctx context.Context) (companyID, userID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", "", fmt.Errorf("company_id claim is missing or invalid")
	}

	userID, _ = claims["user_id"].(string)

	return companyID, userID, nil
}

// ========== BATCH RUN ==========

func (s *PayrollServiceImpl) RunPayroll(ctx context.Context, req payroll.RunPayrollRequest) (payroll.RunSummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.RunSummaryResponse{}, err
	}

	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.RunSummaryResponse{}, err
	}

	period := payroll.Period{Month: req.PeriodMonth, Year: req.PeriodYear}
	runID := uuid.NewString()

	s.logger.Info("starting payroll run",
		slog.String("run_id", runID),
		slog.String("company_id", companyID),
		slog.String("period", period.String()))

	employees, err := s.employeeRepo.GetActiveByCompanyID(ctx, companyID)
	if err != nil {
		return payroll.RunSummaryResponse{}, fmt.Errorf("failed to get employees: %w", err)
	}

	entriesByEmployee, err := s.timesheetRepo.GetByCompanyPeriod(ctx, companyID, period.Start(), period.End())
	if err != nil {
		return payroll.RunSummaryResponse{}, fmt.Errorf("failed to get time entries: %w", err)
	}

	result, err := s.processor.ProcessPeriod(ctx, employees, entriesByEmployee, period)
	if err != nil {
		return payroll.RunSummaryResponse{}, err
	}

	summary := payroll.RunSummaryResponse{
		RunID:            runID,
		Period:           period.String(),
		State:            string(result.State),
		ProcessedCount:   result.Processed,
		SkippedCount:     result.Skipped,
		ErrorCount:       result.ErrorCount,
		TotalGross:       result.TotalGross,
		TotalNet:         result.TotalNet,
		ValidationErrors: result.ValidationErrors,
		GenerationErrors: result.GenerationErrors,
		Warnings:         result.Warnings,
	}

	if result.State == StateInvalid {
		return summary, nil
	}

	summary.State = string(StateGeneratingArtifacts)
	for _, entry := range result.Entries {
		// One entry per employee per period; re-runs skip what exists.
		_, err := s.payrollRepo.GetEntryByEmployeePeriod(ctx, entry.EmployeeID, period, companyID)
		if err == nil {
			summary.SkippedCount++
			continue
		}
		if !errors.Is(err, payroll.ErrEntryNotFound) {
			return payroll.RunSummaryResponse{}, fmt.Errorf("failed to check existing payroll entry: %w", err)
		}

		created, err := s.payrollRepo.CreateEntry(ctx, entry)
		if err != nil {
			if errors.Is(err, payroll.ErrEntryAlreadyExists) {
				summary.SkippedCount++
				continue
			}
			// A persistence failure for one employee is a generation
			// failure, not a batch abort.
			s.logger.Error("failed to persist payroll entry",
				slog.String("employee_id", entry.EmployeeID),
				slog.String("period", period.String()),
				slog.String("error", err.Error()))
			summary.ErrorCount++
			summary.GenerationErrors = append(summary.GenerationErrors, payroll.GenerationError{
				EmployeeID: entry.EmployeeID,
				Message:    err.Error(),
			})
			continue
		}
		summary.Entries = append(summary.Entries, mapToEntryResponse(created))
	}
	summary.State = string(StateDone)

	return summary, nil
}

// ========== ENTRIES ==========

func (s *PayrollServiceImpl) GetEntry(ctx context.Context, id string) (payroll.EntryResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.EntryResponse{}, err
	}

	entry, err := s.payrollRepo.GetEntryByID(ctx, id, companyID)
	if err != nil {
		return payroll.EntryResponse{}, err
	}

	return mapToEntryResponse(entry), nil
}

func (s *PayrollServiceImpl) EmployeeHours(ctx context.Context, employeeID string, period payroll.Period) (payroll.HourTotalsResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.HourTotalsResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID, companyID)
	if err != nil {
		return payroll.HourTotalsResponse{}, err
	}

	entries, err := s.timesheetRepo.GetByEmployeePeriod(ctx, employeeID, companyID, period.Start(), period.End())
	if err != nil {
		return payroll.HourTotalsResponse{}, fmt.Errorf("failed to get time entries: %w", err)
	}

	hours := s.processor.HoursFor(entries)
	return payroll.HourTotalsResponse{
		EmployeeID:    emp.ID,
		Period:        period.String(),
		Regular:       hours.Regular,
		OvertimeTier1: hours.OvertimeTier1,
		OvertimeTier2: hours.OvertimeTier2,
		PublicHoliday: hours.PublicHoliday,
		Total:         hours.Total(),
	}, nil
}

func (s *PayrollServiceImpl) ListEntries(ctx context.Context, filter payroll.EntryFilter) (payroll.ListEntryResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.ListEntryResponse{}, err
	}

	entries, totalCount, err := s.payrollRepo.ListEntries(ctx, companyID, filter)
	if err != nil {
		return payroll.ListEntryResponse{}, err
	}

	result := make([]payroll.EntryResponse, 0, len(entries))
	for _, e := range entries {
		result = append(result, mapToEntryResponse(e))
	}

	return payroll.ListEntryResponse{
		Data:       result,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *PayrollServiceImpl) MarkPaid(ctx context.Context, ids []string) error {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	// All listed entries flip to paid together or not at all.
	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		return s.payrollRepo.MarkEntriesPaid(txCtx, ids, companyID)
	})
}

// ========== ARTIFACTS ==========

func (s *PayrollServiceImpl) BankPaymentFile(ctx context.Context, period payroll.Period) ([]byte, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := s.payrollRepo.GetEntriesByPeriod(ctx, companyID, period)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	description := fmt.Sprintf("SALARIES %s", period)
	if err := s.bankWriter.Write(&buf, entries, time.Now(), period.Month, description); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *PayrollServiceImpl) MonthlySchedule(ctx context.Context, period payroll.Period) ([]byte, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := s.payrollRepo.GetEntriesByPeriod(ctx, companyID, period)
	if err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.GetActiveByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	employeeMap := make(map[string]employee.Employee, len(employees))
	for _, emp := range employees {
		employeeMap[emp.ID] = emp
	}

	var buf bytes.Buffer
	if err := export.WriteMonthlySchedule(&buf, entries, employeeMap); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *PayrollServiceImpl) PayslipPDF(ctx context.Context, entryID string) ([]byte, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	entry, err := s.payrollRepo.GetEntryByID(ctx, entryID, companyID)
	if err != nil {
		return nil, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, entry.EmployeeID, companyID)
	if err != nil {
		return nil, err
	}

	return export.RenderPayslipPDF(export.BuildPayslipData(entry, emp))
}

// ========== HELPERS ==========

func mapToEntryResponse(e payroll.Entry) payroll.EntryResponse {
	employeeName := ""
	if e.EmployeeName != nil {
		employeeName = *e.EmployeeName
	}

	resp := payroll.EntryResponse{
		ID:                e.ID,
		EmployeeID:        e.EmployeeID,
		EmployeeName:      employeeName,
		Period:            e.Period.String(),
		Gross:             e.Gross,
		Net:               e.Net,
		Status:            string(e.Status),
		PAYE:              e.Deductions.PAYE,
		ACCLevy:           e.Deductions.ACCLevy,
		KiwiSaverEmployee: e.Deductions.KiwiSaverEmployee,
		KiwiSaverEmployer: e.Deductions.KiwiSaverEmployer,
		StudentLoan:       e.Deductions.StudentLoan,
		OtherDeductions:   e.Deductions.Other,
		Overtime:          e.Additions.Overtime,
		Allowances:        e.Additions.Allowances,
		PaymentReference:  e.Payment.Reference,
	}
	if !e.Payment.Account.IsZero() {
		resp.BankAccount = e.Payment.Account.String()
	}
	if !e.Payment.Date.IsZero() {
		d := e.Payment.Date
		resp.PaymentDate = &d
	}
	return resp
}
