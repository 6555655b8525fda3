package salary

import "errors"

var (
	ErrSalaryNotFound        = errors.New("salary record not found")
	ErrSalaryAlreadyExists   = errors.New("salary record already exists for this period")
	ErrSalaryAlreadyPaid     = errors.New("salary record already paid")
	ErrPaymentAccountUnknown = errors.New("payment account not found")
	ErrNoBasicSalary         = errors.New("employee has no basic salary set")
	ErrInvalidPeriod         = errors.New("invalid period")
)
