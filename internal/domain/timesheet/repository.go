package timesheet

import (
	"context"
	"time"
)

// TimesheetRepository reads time entries recorded by time tracking.
type TimesheetRepository interface {
	// GetByEmployeePeriod returns all entries for the employee whose
	// clock-in falls within [start, end].
	GetByEmployeePeriod(ctx context.Context, employeeID, companyID string, start, end time.Time) ([]TimeEntry, error)

	// GetByCompanyPeriod returns entries for all employees of a company
	// within [start, end], keyed by employee ID.
	GetByCompanyPeriod(ctx context.Context, companyID string, start, end time.Time) (map[string][]TimeEntry, error)
}
