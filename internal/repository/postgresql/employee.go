package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kauri-hr/payroll-backend-go/internal/domain/employee"
	"github.com/kauri-hr/payroll-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, company_id, employee_code, full_name, email,
	ird_number, tax_code, kiwisaver_rate, has_student_loan,
	annual_salary, hourly_rate, bank_account,
	employment_status, hire_date,
	annual_leave_hours, sick_leave_days,
	created_at, updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	var taxCode, bankAccount string
	err := row.Scan(
		&e.ID, &e.CompanyID, &e.EmployeeCode, &e.FullName, &e.Email,
		&e.IRDNumber, &taxCode, &e.KiwiSaverRate, &e.HasStudentLoan,
		&e.AnnualSalary, &e.HourlyRate, &bankAccount,
		&e.EmploymentStatus, &e.HireDate,
		&e.AnnualLeaveHours, &e.SickLeaveDays,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}

	e.TaxCode = employee.TaxCode(taxCode)
	if bankAccount != "" {
		// A malformed stored account is surfaced by validation before a
		// run, not swallowed here.
		acct, parseErr := employee.ParseBankAccount(bankAccount)
		if parseErr == nil {
			e.BankAccount = acct
		}
	}

	return e, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string, companyID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM employees
		WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL
	`, employeeColumns)

	e, err := scanEmployee(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) GetActiveByCompanyID(ctx context.Context, companyID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM employees
		WHERE company_id = $1 AND employment_status = 'active' AND deleted_at IS NULL
		ORDER BY employee_code
	`, employeeColumns)

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	return employees, nil
}
