package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is the stored lifecycle state of a salary record.
type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

// PayrollStatus is the derived three-way state reported to callers. A record
// that does not exist for a period is "not_generated"; that state is never
// stored.
type PayrollStatus string

const (
	PayrollNotGenerated PayrollStatus = "not_generated"
	PayrollPending      PayrollStatus = PayrollStatus(StatusPending)
	PayrollPaid         PayrollStatus = PayrollStatus(StatusPaid)
)

// CashAccount is the reserved settlement sentinel: payment made in cash,
// outside any registered payment account.
const CashAccount = "CASH"

// Record is one employee's salary for one period. Unique per
// (employee, month, year); the storage layer enforces that.
type Record struct {
	ID          string
	EmployeeID  string
	Month       int // 1-12
	Year        int
	BasicSalary decimal.Decimal
	Allowances  decimal.Decimal
	Deductions  decimal.Decimal
	LateDays    int
	// LateDeduction is the share of Deductions attributable to lateness,
	// kept for the slip. It is informational: Deductions is the single
	// amount subtracted, so nothing is counted twice.
	LateDeduction decimal.Decimal
	NetSalary     decimal.Decimal
	Status        Status
	// Payment metadata, set exactly once when the record is paid.
	PaymentAccountID *string
	TransactionID    *string
	PaidDate         *time.Time
	Notes            *string
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Joined fields. The payment account pair is filled on the slip query
	// only, and stays nil for cash settlements.
	EmployeeName           *string
	EmployeeERPID          *string
	Department             *string
	PaymentAccountTitle    *string
	PaymentAccountProvider *string
}

// NetOf computes the salary formula. The arithmetic result is surfaced as-is,
// negative values included; catching unreasonable figures is the admin's call.
func NetOf(basic, allowances, deductions decimal.Decimal) decimal.Decimal {
	return basic.Add(allowances).Sub(deductions)
}

// PeriodTotals aggregates every record of one period. All zeros when no
// record has been generated yet.
type PeriodTotals struct {
	Records            int
	TotalBasicSalary   decimal.Decimal
	TotalAllowances    decimal.Decimal
	TotalDeductions    decimal.Decimal
	TotalLateDeduction decimal.Decimal
	TotalNetSalary     decimal.Decimal
	PendingCount       int
	PaidCount          int
}
