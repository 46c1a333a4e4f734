package export

import (
	"encoding/csv"
	"io"

	"github.com/kauri-hr/payroll-backend-go/internal/domain/employee"
	"github.com/kauri-hr/payroll-backend-go/internal/domain/payroll"
)

// WriteMonthlySchedule emits the employer monthly schedule: one row per
// employee with the statutory deduction breakdown, all currency fields to
// two decimal places.
func WriteMonthlySchedule(out io.Writer, entries []payroll.Entry, employees map[string]employee.Employee) error {
	w := csv.NewWriter(out)
	defer w.Flush()

	header := []string{
		"ird_number",
		"name",
		"gross_earnings",
		"paye_deducted",
		"student_loan",
		"kiwisaver_employee",
		"kiwisaver_employer",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, e := range entries {
		emp := employees[e.EmployeeID]
		row := []string{
			emp.IRDNumber,
			emp.FullName,
			e.Gross.StringFixed(2),
			e.Deductions.PAYE.StringFixed(2),
			e.Deductions.StudentLoan.StringFixed(2),
			e.Deductions.KiwiSaverEmployee.StringFixed(2),
			e.Deductions.KiwiSaverEmployer.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
