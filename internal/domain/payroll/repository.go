package payroll

import "context"

// PayrollRepository persists computed payroll entries. All methods take
// companyID to prevent cross-company data access.
type PayrollRepository interface {
	CreateEntry(ctx context.Context, entry Entry) (Entry, error)
	GetEntryByID(ctx context.Context, id string, companyID string) (Entry, error)
	GetEntryByEmployeePeriod(ctx context.Context, employeeID string, period Period, companyID string) (Entry, error)
	GetEntriesByPeriod(ctx context.Context, companyID string, period Period) ([]Entry, error)
	ListEntries(ctx context.Context, companyID string, filter EntryFilter) ([]Entry, int64, error)
	MarkEntriesPaid(ctx context.Context, ids []string, companyID string) error
}
