package payroll

import "errors"

var (
	ErrEntryNotFound      = errors.New("payroll entry not found")
	ErrEntryAlreadyExists = errors.New("payroll entry already exists for this period")
	ErrEntryAlreadyPaid   = errors.New("payroll entry already paid, cannot modify")
)
