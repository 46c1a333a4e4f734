package payroll

import (
	"github.com/kauri-hr/payroll-backend-go/internal/domain/employee"
	"github.com/kauri-hr/payroll-backend-go/internal/domain/tax"
	"github.com/kauri-hr/payroll-backend-go/internal/pkg/validator"
)

// ValidateEmployee runs the structural pre-batch checks for one employee.
// Every problem is reported, not just the first. A batch run refuses to
// start while any employee fails these checks.
func ValidateEmployee(emp employee.Employee) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if !emp.IsSalaried() && emp.HourlyRate == nil {
		errs = append(errs, validator.ValidationError{
			Field: "salary", Message: "employee has neither an annual salary nor an hourly rate",
		})
	}

	if emp.BankAccount.IsZero() {
		errs = append(errs, validator.ValidationError{
			Field: "bank_account", Message: "is missing",
		})
	} else if !validator.IsValidBankAccount(emp.BankAccount.String()) {
		errs = append(errs, validator.ValidationError{
			Field: "bank_account", Message: "does not match the BB-bbbb-AAAAAAA-SS format",
		})
	}

	if validator.IsEmpty(emp.IRDNumber) {
		errs = append(errs, validator.ValidationError{
			Field: "ird_number", Message: "is missing",
		})
	} else if !validator.IsValidIRDNumber(emp.IRDNumber) {
		errs = append(errs, validator.ValidationError{
			Field: "ird_number", Message: "fails the checksum",
		})
	}

	if !emp.TaxCode.IsValid() {
		errs = append(errs, validator.ValidationError{
			Field: "tax_code", Message: "is not a recognised tax code",
		})
	}

	if emp.KiwiSaverRate == 0 {
		errs = append(errs, validator.ValidationError{
			Field: "kiwisaver_rate", Message: "is missing",
		})
	} else if !tax.IsAllowedEmployeeRate(emp.KiwiSaverRate) {
		errs = append(errs, validator.ValidationError{
			Field: "kiwisaver_rate", Message: "is not in the allowed set",
		})
	}

	return errs
}
