package response

import (
	"errors"
	"net/http"

	"github.com/kauri-hr/payroll-backend-go/internal/domain/employee"
	"github.com/kauri-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/kauri-hr/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrInvalidBankAccount):
		BadRequest(w, "Invalid bank account format", nil)
	case errors.Is(err, employee.ErrInvalidIRDNumber):
		BadRequest(w, "Invalid IRD number", nil)
	case errors.Is(err, employee.ErrInvalidTaxCode):
		BadRequest(w, "Invalid tax code", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrEntryNotFound):
		NotFound(w, "Payroll entry not found")
	case errors.Is(err, payroll.ErrEntryAlreadyExists):
		Conflict(w, "Payroll entry already exists for this period")
	case errors.Is(err, payroll.ErrEntryAlreadyPaid):
		Conflict(w, "Payroll entry already paid")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
