package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kauri-hr/payroll-backend-go/internal/domain/employee"
	"github.com/kauri-hr/payroll-backend-go/internal/domain/timesheet"
	"github.com/kauri-hr/payroll-backend-go/internal/service/export"
)

type stubEmployeeRepo struct {
	emp employee.Employee
}

func (s stubEmployeeRepo) GetByID(_ context.Context, id string, companyID string) (employee.Employee, error) {
	if id != s.emp.ID || companyID != s.emp.CompanyID {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return s.emp, nil
}

func (s stubEmployeeRepo) GetActiveByCompanyID(_ context.Context, companyID string) ([]employee.Employee, error) {
	if companyID != s.emp.CompanyID {
		return nil, nil
	}
	return []employee.Employee{s.emp}, nil
}

type stubTimesheetRepo struct {
	entries []timesheet.TimeEntry
}

func (s stubTimesheetRepo) GetByEmployeePeriod(_ context.Context, employeeID, _ string, _, _ time.Time) ([]timesheet.TimeEntry, error) {
	var out []timesheet.TimeEntry
	for _, e := range s.entries {
		if e.EmployeeID == employeeID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s stubTimesheetRepo) GetByCompanyPeriod(_ context.Context, _ string, _, _ time.Time) (map[string][]timesheet.TimeEntry, error) {
	byEmployee := make(map[string][]timesheet.TimeEntry)
	for _, e := range s.entries {
		byEmployee[e.EmployeeID] = append(byEmployee[e.EmployeeID], e)
	}
	return byEmployee, nil
}

func authedContext(t *testing.T, companyID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id":    "user-1",
		"company_id": companyID,
		"type":       "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func timeEntry(employeeID, clockIn string, hours float64) timesheet.TimeEntry {
	start, _ := time.Parse(time.RFC3339, clockIn)
	end := start.Add(time.Duration(hours * float64(time.Hour)))
	return timesheet.TimeEntry{
		EmployeeID: employeeID,
		CompanyID:  "co-1",
		ClockIn:    start,
		ClockOut:   &end,
		Category:   timesheet.CategoryRegular,
	}
}

func TestEmployeeHoursPreview(t *testing.T) {
	emp := wagedEmployee("25")
	svc := NewPayrollService(
		nil, nil,
		stubEmployeeRepo{emp: emp},
		stubTimesheetRepo{entries: []timesheet.TimeEntry{
			timeEntry(emp.ID, "2024-03-04T08:00:00Z", 10),
			timeEntry(emp.ID, "2024-03-05T08:00:00Z", 8),
		}},
		testProcessor(),
		export.BankFileWriter{},
		nil,
	)

	result, err := svc.EmployeeHours(authedContext(t, emp.CompanyID), emp.ID, march2024())
	require.NoError(t, err)

	assert.Equal(t, emp.ID, result.EmployeeID)
	assert.Equal(t, "2024-03", result.Period)
	assert.True(t, result.Regular.Equal(decimal.NewFromInt(16)), "regular = %s", result.Regular)
	assert.True(t, result.OvertimeTier1.Equal(decimal.NewFromInt(2)), "tier1 = %s", result.OvertimeTier1)
	assert.True(t, result.Total.Equal(decimal.NewFromInt(18)))
}

func TestEmployeeHoursUnknownEmployee(t *testing.T) {
	emp := wagedEmployee("25")
	svc := NewPayrollService(
		nil, nil,
		stubEmployeeRepo{emp: emp},
		stubTimesheetRepo{},
		testProcessor(),
		export.BankFileWriter{},
		nil,
	)

	_, err := svc.EmployeeHours(authedContext(t, emp.CompanyID), "emp-999", march2024())
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeHoursRequiresClaims(t *testing.T) {
	svc := NewPayrollService(
		nil, nil,
		stubEmployeeRepo{emp: wagedEmployee("25")},
		stubTimesheetRepo{},
		testProcessor(),
		export.BankFileWriter{},
		nil,
	)

	_, err := svc.EmployeeHours(context.Background(), "emp-1", march2024())
	assert.Error(t, err)
}
