package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/kauri-hr/payroll-backend-go/internal/domain/timesheet"
	"github.com/kauri-hr/payroll-backend-go/internal/pkg/database"
)

type timesheetRepository struct {
	db *database.DB
}

func NewTimesheetRepository(db *database.DB) timesheet.TimesheetRepository {
	return &timesheetRepository{db: db}
}

func (r *timesheetRepository) GetByEmployeePeriod(ctx context.Context, employeeID, companyID string, start, end time.Time) ([]timesheet.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, company_id, clock_in, clock_out, break_minutes, category, created_at, updated_at
		FROM time_entries
		WHERE employee_id = $1 AND company_id = $2 AND clock_in >= $3 AND clock_in <= $4
		ORDER BY clock_in
	`

	rows, err := q.Query(ctx, query, employeeID, companyID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get time entries: %w", err)
	}
	defer rows.Close()

	var entries []timesheet.TimeEntry
	for rows.Next() {
		var e timesheet.TimeEntry
		if err := rows.Scan(
			&e.ID, &e.EmployeeID, &e.CompanyID, &e.ClockIn, &e.ClockOut,
			&e.BreakMinutes, &e.Category, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan time entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, nil
}

func (r *timesheetRepository) GetByCompanyPeriod(ctx context.Context, companyID string, start, end time.Time) (map[string][]timesheet.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, company_id, clock_in, clock_out, break_minutes, category, created_at, updated_at
		FROM time_entries
		WHERE company_id = $1 AND clock_in >= $2 AND clock_in <= $3
		ORDER BY employee_id, clock_in
	`

	rows, err := q.Query(ctx, query, companyID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get time entries: %w", err)
	}
	defer rows.Close()

	entries := make(map[string][]timesheet.TimeEntry)
	for rows.Next() {
		var e timesheet.TimeEntry
		if err := rows.Scan(
			&e.ID, &e.EmployeeID, &e.CompanyID, &e.ClockIn, &e.ClockOut,
			&e.BreakMinutes, &e.Category, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan time entry: %w", err)
		}
		entries[e.EmployeeID] = append(entries[e.EmployeeID], e)
	}

	return entries, nil
}
