package expense

import "context"

type ExpenseService interface {
	Create(ctx context.Context, req CreateExpenseRequest) (ExpenseResponse, error)

	Update(ctx context.Context, req UpdateExpenseRequest) (ExpenseResponse, error)

	Delete(ctx context.Context, id string) error

	// List returns expenses inside a reporting window. period is daily,
	// monthly or yearly, anchored at date (YYYY-MM-DD).
	List(ctx context.Context, period, date string) ([]ExpenseResponse, error)

	// Totals sums the window by category.
	Totals(ctx context.Context, period, date string) (TotalsResponse, error)

	// Ledger merges expenses and paid salaries over the window.
	Ledger(ctx context.Context, period, date string) (LedgerResponse, error)
}
