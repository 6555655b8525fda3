package expense

import "errors"

var (
	ErrExpenseNotFound = errors.New("expense not found")
	ErrInvalidCategory = errors.New("invalid expense category")
	ErrInvalidPeriod   = errors.New("invalid reporting period")
)
