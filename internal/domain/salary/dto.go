package salary

import (
	"github.com/shopspring/decimal"

	"github.com/hunarmand-punjab/erp-backend-go/internal/pkg/validator"
)

// GenerateSalaryRequest creates a pending record for one employee and period.
// Month accepts "3" or "March". BasicSalary overrides the employee's stored
// pay for this record only. Deductions is the combined total to subtract:
// the admin previews the late deduction and folds it in before submitting,
// so it is never added on top.
type GenerateSalaryRequest struct {
	EmployeeID  string  `json:"employee_id"`
	Month       string  `json:"month"`
	Year        int     `json:"year"`
	BasicSalary string  `json:"basic_salary"`
	Allowances  string  `json:"allowances"`
	Deductions  string  `json:"deductions"`
	Notes       *string `json:"notes,omitempty"`
}

func (r *GenerateSalaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if _, err := ParsePeriod(r.Month, r.Year); err != nil {
		errs = append(errs, validator.ValidationError{Field: "month", Message: err.Error()})
	}
	for _, f := range []struct{ name, val string }{
		{"basic_salary", r.BasicSalary},
		{"allowances", r.Allowances},
		{"deductions", r.Deductions},
	} {
		if validator.IsEmpty(f.val) {
			continue // optional, defaults to zero
		}
		d, err := decimal.NewFromString(f.val)
		if err != nil {
			errs = append(errs, validator.ValidationError{Field: f.name, Message: "must be a number"})
		} else if d.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: f.name, Message: "must not be negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AllowancesAmount returns the parsed allowances, zero when omitted. Call
// only after Validate.
func (r *GenerateSalaryRequest) AllowancesAmount() decimal.Decimal {
	if validator.IsEmpty(r.Allowances) {
		return decimal.Zero
	}
	d, _ := decimal.NewFromString(r.Allowances)
	return d
}

// BasicSalaryAmount returns the per-record basic pay override and whether one
// was submitted. Call only after Validate.
func (r *GenerateSalaryRequest) BasicSalaryAmount() (decimal.Decimal, bool) {
	if validator.IsEmpty(r.BasicSalary) {
		return decimal.Zero, false
	}
	d, _ := decimal.NewFromString(r.BasicSalary)
	return d, true
}

// DeductionsAmount returns the combined deductions total and whether one was
// submitted.
func (r *GenerateSalaryRequest) DeductionsAmount() (decimal.Decimal, bool) {
	if validator.IsEmpty(r.Deductions) {
		return decimal.Zero, false
	}
	d, _ := decimal.NewFromString(r.Deductions)
	return d, true
}

// PaySalaryRequest settles a pending record. PaymentAccountID may be a
// registered account id or the CASH sentinel; TransactionID defaults to
// "CASH" when settling in cash.
type PaySalaryRequest struct {
	ID               string
	PaymentAccountID string  `json:"payment_account_id"`
	TransactionID    *string `json:"transaction_id,omitempty"`
}

func (r *PaySalaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PaymentAccountID) {
		errs = append(errs, validator.ValidationError{Field: "payment_account_id", Message: "payment_account_id is required"})
	} else if r.PaymentAccountID != CashAccount && !validator.IsValidUUID(r.PaymentAccountID) {
		errs = append(errs, validator.ValidationError{Field: "payment_account_id", Message: "must be an account id or CASH"})
	}
	if r.PaymentAccountID == CashAccount && r.TransactionID != nil && !validator.IsEmpty(*r.TransactionID) && *r.TransactionID != CashAccount {
		errs = append(errs, validator.ValidationError{Field: "transaction_id", Message: "cash payments cannot carry a transaction id"})
	}
	if r.PaymentAccountID != CashAccount && (r.TransactionID == nil || validator.IsEmpty(*r.TransactionID)) {
		errs = append(errs, validator.ValidationError{Field: "transaction_id", Message: "transaction_id is required for account payments"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// QuoteResponse is the read-only deduction preview for a period. Nothing is
// persisted when it is computed.
type QuoteResponse struct {
	EmployeeID      string `json:"employee_id"`
	Month           int    `json:"month"`
	MonthName       string `json:"month_name"`
	Year            int    `json:"year"`
	LateDays        int    `json:"late_days"`
	DeductibleDays  int    `json:"deductible_days"`
	DailyRate       string `json:"daily_rate"`
	DeductionAmount string `json:"deduction_amount"`
}

type SalaryResponse struct {
	ID                     string  `json:"id"`
	EmployeeID             string  `json:"employee_id"`
	EmployeeName           *string `json:"employee_name,omitempty"`
	EmployeeERPID          *string `json:"employee_erp_id,omitempty"`
	Department             *string `json:"department,omitempty"`
	Month                  int     `json:"month"`
	MonthName              string  `json:"month_name"`
	Year                   int     `json:"year"`
	BasicSalary            string  `json:"basic_salary"`
	Allowances             string  `json:"allowances"`
	Deductions             string  `json:"deductions"`
	LateDays               int     `json:"late_days"`
	LateDeduction          string  `json:"late_deduction"`
	NetSalary              string  `json:"net_salary"`
	Status                 string  `json:"status"`
	PaymentAccountID       *string `json:"payment_account_id,omitempty"`
	PaymentAccountTitle    *string `json:"payment_account_title,omitempty"`
	PaymentAccountProvider *string `json:"payment_account_provider,omitempty"`
	TransactionID          *string `json:"transaction_id,omitempty"`
	PaidDate               *string `json:"paid_date,omitempty"`
	Notes                  *string `json:"notes,omitempty"`
	CreatedAt              string  `json:"created_at"`
}

// StatusResponse reports the derived payroll state for an employee and
// period, including not_generated when no record exists.
type StatusResponse struct {
	EmployeeID string          `json:"employee_id"`
	Month      int             `json:"month"`
	Year       int             `json:"year"`
	Status     PayrollStatus   `json:"status"`
	Record     *SalaryResponse `json:"record,omitempty"`
}

// ListFilter narrows the admin salary listing. Zero values mean no filter.
type ListFilter struct {
	Month      int
	Year       int
	Status     Status
	EmployeeID string
	Department string
}

// BreakdownRow is one department's payroll contribution.
type BreakdownRow struct {
	Department string `json:"department"`
	Employees  int    `json:"employees"`
	Total      string `json:"total"`
}

// BreakdownResponse is the monthly payroll outlay grouped by department,
// computed from current basic salaries of active employees.
type BreakdownResponse struct {
	Departments []BreakdownRow `json:"departments"`
	GrandTotal  string         `json:"grand_total"`
}

// PeriodSummaryResponse aggregates the generated records of one period.
type PeriodSummaryResponse struct {
	Month              int    `json:"month"`
	MonthName          string `json:"month_name"`
	Year               int    `json:"year"`
	Records            int    `json:"records"`
	TotalBasicSalary   string `json:"total_basic_salary"`
	TotalAllowances    string `json:"total_allowances"`
	TotalDeductions    string `json:"total_deductions"`
	TotalLateDeduction string `json:"total_late_deduction"`
	TotalNetSalary     string `json:"total_net_salary"`
	PendingCount       int    `json:"pending_count"`
	PaidCount          int    `json:"paid_count"`
}
