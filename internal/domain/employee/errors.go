package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrERPIDExists      = errors.New("ERP ID already exists")
	ErrCNICExists       = errors.New("CNIC already registered")
)
