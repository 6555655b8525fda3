package salary

import (
	"context"
	"time"
)

// SalaryRepository defines data access methods for salary records.
type SalaryRepository interface {
	// Create inserts a pending record. A second insert for the same
	// (employee, month, year) fails with ErrSalaryAlreadyExists.
	Create(ctx context.Context, rec Record) (Record, error)

	GetByID(ctx context.Context, id string) (Record, error)

	// GetByEmployeePeriod returns the record for one employee and period,
	// or ErrSalaryNotFound.
	GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (Record, error)

	// List returns records matching the filter with employee fields joined,
	// newest period first.
	List(ctx context.Context, filter ListFilter) ([]Record, error)

	// MarkPaid flips a pending record to paid in one guarded update and
	// returns the updated row. A record that is already paid fails with
	// ErrSalaryAlreadyPaid; a missing one with ErrSalaryNotFound.
	MarkPaid(ctx context.Context, id string, paymentAccountID *string, transactionID string, paidDate time.Time) (Record, error)

	// ReplacePending overwrites the pending record for rec's
	// (employee, month, year) with rec's amounts in one guarded update.
	// A paid record is never replaced: ErrSalaryAlreadyPaid.
	ReplacePending(ctx context.Context, rec Record) (Record, error)

	// SummarizePeriod aggregates every record of a period in one query.
	SummarizePeriod(ctx context.Context, month, year int) (PeriodTotals, error)
}
