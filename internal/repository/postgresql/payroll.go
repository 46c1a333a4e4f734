package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/kauri-hr/payroll-backend-go/internal/domain/employee"
	"github.com/kauri-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/kauri-hr/payroll-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const entryColumns = `
	pe.id, pe.company_id, pe.employee_id, pe.period_month, pe.period_year,
	pe.gross, pe.net, pe.status,
	pe.paye, pe.acc_levy, pe.kiwisaver_employee, pe.kiwisaver_employer,
	pe.student_loan, pe.other_deductions,
	pe.overtime, pe.allowances,
	pe.bank_account, pe.payment_reference, pe.payment_date,
	pe.created_at, pe.updated_at
`

func scanEntry(row pgx.Row, joined bool) (payroll.Entry, error) {
	var e payroll.Entry
	var bankAccount string
	dest := []interface{}{
		&e.ID, &e.CompanyID, &e.EmployeeID, &e.Period.Month, &e.Period.Year,
		&e.Gross, &e.Net, &e.Status,
		&e.Deductions.PAYE, &e.Deductions.ACCLevy,
		&e.Deductions.KiwiSaverEmployee, &e.Deductions.KiwiSaverEmployer,
		&e.Deductions.StudentLoan, &e.Deductions.Other,
		&e.Additions.Overtime, &e.Additions.Allowances,
		&bankAccount, &e.Payment.Reference, &e.Payment.Date,
		&e.CreatedAt, &e.UpdatedAt,
	}
	if joined {
		dest = append(dest, &e.EmployeeName, &e.IRDNumber)
	}

	if err := row.Scan(dest...); err != nil {
		return payroll.Entry{}, err
	}

	if bankAccount != "" {
		if acct, err := employee.ParseBankAccount(bankAccount); err == nil {
			e.Payment.Account = acct
		}
	}

	return e, nil
}

func (r *payrollRepository) CreateEntry(ctx context.Context, entry payroll.Entry) (payroll.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO payroll_entries (
			company_id, employee_id, period_month, period_year,
			gross, net, status,
			paye, acc_levy, kiwisaver_employee, kiwisaver_employer,
			student_loan, other_deductions,
			overtime, allowances,
			bank_account, payment_reference, payment_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING %s
	`, strings.ReplaceAll(entryColumns, "pe.", ""))

	created, err := scanEntry(q.QueryRow(ctx, query,
		entry.CompanyID, entry.EmployeeID, entry.Period.Month, entry.Period.Year,
		entry.Gross, entry.Net, entry.Status,
		entry.Deductions.PAYE, entry.Deductions.ACCLevy,
		entry.Deductions.KiwiSaverEmployee, entry.Deductions.KiwiSaverEmployer,
		entry.Deductions.StudentLoan, entry.Deductions.Other,
		entry.Additions.Overtime, entry.Additions.Allowances,
		entry.Payment.Account.String(), entry.Payment.Reference, entry.Payment.Date,
	), false)
	if err != nil {
		if strings.Contains(err.Error(), "uk_payroll_entry_employee_period") {
			return payroll.Entry{}, payroll.ErrEntryAlreadyExists
		}
		return payroll.Entry{}, fmt.Errorf("failed to create payroll entry: %w", err)
	}

	return created, nil
}

func (r *payrollRepository) GetEntryByID(ctx context.Context, id string, companyID string) (payroll.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s, e.full_name AS employee_name, e.ird_number
		FROM payroll_entries pe
		JOIN employees e ON pe.employee_id = e.id
		WHERE pe.id = $1 AND pe.company_id = $2
	`, entryColumns)

	entry, err := scanEntry(q.QueryRow(ctx, query, id, companyID), true)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Entry{}, payroll.ErrEntryNotFound
		}
		return payroll.Entry{}, fmt.Errorf("failed to get payroll entry: %w", err)
	}

	return entry, nil
}

func (r *payrollRepository) GetEntryByEmployeePeriod(ctx context.Context, employeeID string, period payroll.Period, companyID string) (payroll.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM payroll_entries pe
		WHERE pe.employee_id = $1 AND pe.period_month = $2 AND pe.period_year = $3 AND pe.company_id = $4
	`, entryColumns)

	entry, err := scanEntry(q.QueryRow(ctx, query, employeeID, period.Month, period.Year, companyID), false)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Entry{}, payroll.ErrEntryNotFound
		}
		return payroll.Entry{}, fmt.Errorf("failed to get payroll entry: %w", err)
	}

	return entry, nil
}

func (r *payrollRepository) GetEntriesByPeriod(ctx context.Context, companyID string, period payroll.Period) ([]payroll.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s, e.full_name AS employee_name, e.ird_number
		FROM payroll_entries pe
		JOIN employees e ON pe.employee_id = e.id
		WHERE pe.company_id = $1 AND pe.period_month = $2 AND pe.period_year = $3
		ORDER BY e.full_name
	`, entryColumns)

	rows, err := q.Query(ctx, query, companyID, period.Month, period.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll entries: %w", err)
	}
	defer rows.Close()

	var entries []payroll.Entry
	for rows.Next() {
		entry, err := scanEntry(rows, true)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func (r *payrollRepository) ListEntries(ctx context.Context, companyID string, filter payroll.EntryFilter) ([]payroll.Entry, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseQuery := `
		FROM payroll_entries pe
		JOIN employees e ON pe.employee_id = e.id
		WHERE pe.company_id = $1
	`
	args := []interface{}{companyID}
	argIdx := 2

	if filter.PeriodMonth != nil {
		baseQuery += fmt.Sprintf(" AND pe.period_month = $%d", argIdx)
		args = append(args, *filter.PeriodMonth)
		argIdx++
	}
	if filter.PeriodYear != nil {
		baseQuery += fmt.Sprintf(" AND pe.period_year = $%d", argIdx)
		args = append(args, *filter.PeriodYear)
		argIdx++
	}
	if filter.Status != nil {
		baseQuery += fmt.Sprintf(" AND pe.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.EmployeeID != nil {
		baseQuery += fmt.Sprintf(" AND pe.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	var totalCount int64
	countQuery := "SELECT COUNT(*) " + baseQuery
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll entries: %w", err)
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	selectQuery := fmt.Sprintf(`
		SELECT %s, e.full_name AS employee_name, e.ird_number
		%s
		ORDER BY pe.period_year DESC, pe.period_month DESC, e.full_name
		LIMIT $%d OFFSET $%d
	`, entryColumns, baseQuery, argIdx, argIdx+1)

	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll entries: %w", err)
	}
	defer rows.Close()

	var entries []payroll.Entry
	for rows.Next() {
		entry, err := scanEntry(rows, true)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, totalCount, nil
}

func (r *payrollRepository) MarkEntriesPaid(ctx context.Context, ids []string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_entries
		SET status = 'paid', updated_at = NOW()
		WHERE id = ANY($1) AND company_id = $2 AND status = 'pending'
	`

	tag, err := q.Exec(ctx, query, ids, companyID)
	if err != nil {
		return fmt.Errorf("failed to mark payroll entries paid: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrEntryNotFound
	}
	// A short count means some listed entry was missing or already paid;
	// the caller runs this in a transaction, so nothing sticks.
	if tag.RowsAffected() < int64(len(ids)) {
		return payroll.ErrEntryAlreadyPaid
	}

	return nil
}
