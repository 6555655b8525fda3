package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/hunarmand-punjab/erp-backend-go/internal/domain/expense"
	"github.com/hunarmand-punjab/erp-backend-go/internal/pkg/database"
)

type expenseRepository struct {
	db *database.DB
}

func NewExpenseRepository(db *database.DB) expense.ExpenseRepository {
	return &expenseRepository{db: db}
}

func scanExpense(row pgx.Row) (expense.Expense, error) {
	var exp expense.Expense
	err := row.Scan(
		&exp.ID, &exp.Title, &exp.Category, &exp.Amount, &exp.ExpenseDate,
		&exp.PaymentAccountID, &exp.Notes, &exp.CreatedBy, &exp.CreatedAt, &exp.UpdatedAt,
	)
	return exp, err
}

func (r *expenseRepository) Create(ctx context.Context, exp expense.Expense) (expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO expenses (title, category, amount, expense_date, payment_account_id, notes, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, title, category, amount, expense_date, payment_account_id,
			notes, created_by, created_at, updated_at
	`

	created, err := scanExpense(q.QueryRow(ctx, query,
		exp.Title, exp.Category, exp.Amount, exp.ExpenseDate,
		exp.PaymentAccountID, exp.Notes, exp.CreatedBy,
	))
	if err != nil {
		return expense.Expense{}, fmt.Errorf("failed to create expense: %w", err)
	}

	return created, nil
}

func (r *expenseRepository) GetByID(ctx context.Context, id string) (expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, title, category, amount, expense_date, payment_account_id,
			notes, created_by, created_at, updated_at
		FROM expenses
		WHERE id = $1
	`

	exp, err := scanExpense(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return expense.Expense{}, expense.ErrExpenseNotFound
		}
		return expense.Expense{}, fmt.Errorf("failed to get expense: %w", err)
	}

	return exp, nil
}

func (r *expenseRepository) ListByRange(ctx context.Context, from, to time.Time) ([]expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, title, category, amount, expense_date, payment_account_id,
			notes, created_by, created_at, updated_at
		FROM expenses
		WHERE expense_date >= $1 AND expense_date < $2
		ORDER BY expense_date DESC, created_at DESC
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []expense.Expense
	for rows.Next() {
		exp, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, exp)
	}

	return expenses, nil
}

func (r *expenseRepository) Update(ctx context.Context, exp expense.Expense) (expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE expenses
		SET title = $2, category = $3, amount = $4, expense_date = $5,
			payment_account_id = $6, notes = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING id, title, category, amount, expense_date, payment_account_id,
			notes, created_by, created_at, updated_at
	`

	updated, err := scanExpense(q.QueryRow(ctx, query,
		exp.ID, exp.Title, exp.Category, exp.Amount, exp.ExpenseDate,
		exp.PaymentAccountID, exp.Notes,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return expense.Expense{}, expense.ErrExpenseNotFound
		}
		return expense.Expense{}, fmt.Errorf("failed to update expense: %w", err)
	}

	return updated, nil
}

func (r *expenseRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM expenses WHERE id = $1 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return expense.ErrExpenseNotFound
		}
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	return nil
}

func (r *expenseRepository) CategoryTotals(ctx context.Context, from, to time.Time) (map[expense.Category]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT category, COALESCE(SUM(amount), 0)::text
		FROM expenses
		WHERE expense_date >= $1 AND expense_date < $2
		GROUP BY category
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get category totals: %w", err)
	}
	defer rows.Close()

	totals := make(map[expense.Category]string)
	for rows.Next() {
		var category expense.Category
		var total string
		if err := rows.Scan(&category, &total); err != nil {
			return nil, fmt.Errorf("failed to scan category total: %w", err)
		}
		totals[category] = total
	}

	return totals, nil
}

func (r *expenseRepository) Ledger(ctx context.Context, from, to time.Time) ([]expense.LedgerEntry, error) {
	q := GetQuerier(ctx, r.db)

	// Office expenses and paid salaries merged in one chronological view.
	query := `
		SELECT id, 'expense' as source, title, category::text, amount,
			expense_date as date, payment_account_id
		FROM expenses
		WHERE expense_date >= $1 AND expense_date < $2
		UNION ALL
		SELECT s.id, 'salary' as source,
			'Salary - ' || e.full_name || ' (' || s.month || '/' || s.year || ')' as title,
			'Salaries' as category, s.net_salary as amount,
			s.paid_date as date, s.payment_account_id
		FROM salaries s
		JOIN employees e ON s.employee_id = e.id
		WHERE s.status = 'paid' AND s.paid_date >= $1 AND s.paid_date < $2
		ORDER BY date DESC
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get ledger: %w", err)
	}
	defer rows.Close()

	var entries []expense.LedgerEntry
	for rows.Next() {
		var entry expense.LedgerEntry
		if err := rows.Scan(
			&entry.ID, &entry.Source, &entry.Title, &entry.Category,
			&entry.Amount, &entry.Date, &entry.PaymentAccountID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
