package payroll

import "context"

// Service is the payroll application surface consumed by the HTTP layer.
type Service interface {
	RunPayroll(ctx context.Context, req RunPayrollRequest) (RunSummaryResponse, error)
	GetEntry(ctx context.Context, id string) (EntryResponse, error)
	EmployeeHours(ctx context.Context, employeeID string, period Period) (HourTotalsResponse, error)
	ListEntries(ctx context.Context, filter EntryFilter) (ListEntryResponse, error)
	MarkPaid(ctx context.Context, ids []string) error

	BankPaymentFile(ctx context.Context, period Period) ([]byte, error)
	MonthlySchedule(ctx context.Context, period Period) ([]byte, error)
	PayslipPDF(ctx context.Context, entryID string) ([]byte, error)
}
