package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrInvalidBankAccount = errors.New("invalid bank account format")
	ErrInvalidIRDNumber   = errors.New("invalid IRD number")
	ErrInvalidTaxCode     = errors.New("invalid tax code")
)
