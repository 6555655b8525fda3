package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type EmploymentStatus string

const (
	EmploymentStatusActive   EmploymentStatus = "active"
	EmploymentStatusResigned EmploymentStatus = "resigned"
)

type Employee struct {
	ID               string
	ERPID            string // display id on slips, e.g. "HP-1023"
	FullName         string
	CNIC             string
	Department       string
	Designation      string
	Workplace        string
	Shift            string // "09:00 - 17:00"
	BasicSalary      *decimal.Decimal
	EmploymentStatus EmploymentStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time
}
