package expense

import (
	"context"
	"time"
)

// ExpenseRepository defines data access methods for office expenses.
type ExpenseRepository interface {
	Create(ctx context.Context, exp Expense) (Expense, error)

	GetByID(ctx context.Context, id string) (Expense, error)

	// ListByRange returns expenses with expense_date in [from, to), newest
	// first.
	ListByRange(ctx context.Context, from, to time.Time) ([]Expense, error)

	Update(ctx context.Context, exp Expense) (Expense, error)

	Delete(ctx context.Context, id string) error

	// CategoryTotals sums amounts per category over [from, to) in one
	// grouped query.
	CategoryTotals(ctx context.Context, from, to time.Time) (map[Category]string, error)

	// Ledger merges expenses and paid salaries over [from, to), newest
	// first.
	Ledger(ctx context.Context, from, to time.Time) ([]LedgerEntry, error)
}
