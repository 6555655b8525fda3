package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/hunarmand-punjab/erp-backend-go/internal/domain/salary"
	"github.com/hunarmand-punjab/erp-backend-go/internal/pkg/database"
)

type salaryRepository struct {
	db *database.DB
}

func NewSalaryRepository(db *database.DB) salary.SalaryRepository {
	return &salaryRepository{db: db}
}

func scanSalary(row pgx.Row) (salary.Record, error) {
	var rec salary.Record
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Month, &rec.Year, &rec.BasicSalary,
		&rec.Allowances, &rec.Deductions, &rec.LateDays, &rec.LateDeduction,
		&rec.NetSalary, &rec.Status, &rec.PaymentAccountID, &rec.TransactionID,
		&rec.PaidDate, &rec.Notes, &rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

func (r *salaryRepository) Create(ctx context.Context, rec salary.Record) (salary.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salaries (
			employee_id, month, year, basic_salary, allowances, deductions,
			late_days, late_deduction, net_salary, status, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, employee_id, month, year, basic_salary, allowances, deductions,
			late_days, late_deduction, net_salary, status, payment_account_id,
			transaction_id, paid_date, notes, created_at, updated_at
	`

	created, err := scanSalary(q.QueryRow(ctx, query,
		rec.EmployeeID, rec.Month, rec.Year, rec.BasicSalary, rec.Allowances,
		rec.Deductions, rec.LateDays, rec.LateDeduction, rec.NetSalary,
		rec.Status, rec.Notes,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_salaries_employee_period") {
			return salary.Record{}, salary.ErrSalaryAlreadyExists
		}
		return salary.Record{}, fmt.Errorf("failed to create salary record: %w", err)
	}

	return created, nil
}

func (r *salaryRepository) GetByID(ctx context.Context, id string) (salary.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.employee_id, s.month, s.year, s.basic_salary, s.allowances,
			s.deductions, s.late_days, s.late_deduction, s.net_salary, s.status,
			s.payment_account_id, s.transaction_id, s.paid_date, s.notes,
			s.created_at, s.updated_at,
			e.full_name as employee_name, e.erp_id, e.department,
			pa.title as payment_account_title, pa.provider as payment_account_provider
		FROM salaries s
		JOIN employees e ON s.employee_id = e.id
		LEFT JOIN payment_accounts pa ON s.payment_account_id = pa.id
		WHERE s.id = $1
	`

	var rec salary.Record
	err := q.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.EmployeeID, &rec.Month, &rec.Year, &rec.BasicSalary,
		&rec.Allowances, &rec.Deductions, &rec.LateDays, &rec.LateDeduction,
		&rec.NetSalary, &rec.Status, &rec.PaymentAccountID, &rec.TransactionID,
		&rec.PaidDate, &rec.Notes, &rec.CreatedAt, &rec.UpdatedAt,
		&rec.EmployeeName, &rec.EmployeeERPID, &rec.Department,
		&rec.PaymentAccountTitle, &rec.PaymentAccountProvider,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return salary.Record{}, salary.ErrSalaryNotFound
		}
		return salary.Record{}, fmt.Errorf("failed to get salary record: %w", err)
	}

	return rec, nil
}

func (r *salaryRepository) GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (salary.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, month, year, basic_salary, allowances, deductions,
			late_days, late_deduction, net_salary, status, payment_account_id,
			transaction_id, paid_date, notes, created_at, updated_at
		FROM salaries
		WHERE employee_id = $1 AND month = $2 AND year = $3
	`

	rec, err := scanSalary(q.QueryRow(ctx, query, employeeID, month, year))
	if err != nil {
		if err == pgx.ErrNoRows {
			return salary.Record{}, salary.ErrSalaryNotFound
		}
		return salary.Record{}, fmt.Errorf("failed to get salary record: %w", err)
	}

	return rec, nil
}

func (r *salaryRepository) List(ctx context.Context, filter salary.ListFilter) ([]salary.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.employee_id, s.month, s.year, s.basic_salary, s.allowances,
			s.deductions, s.late_days, s.late_deduction, s.net_salary, s.status,
			s.payment_account_id, s.transaction_id, s.paid_date, s.notes,
			s.created_at, s.updated_at,
			e.full_name as employee_name, e.erp_id, e.department
		FROM salaries s
		JOIN employees e ON s.employee_id = e.id
		WHERE 1=1
	`
	var args []interface{}
	argIdx := 1

	if filter.Month != 0 {
		query += fmt.Sprintf(" AND s.month = $%d", argIdx)
		args = append(args, filter.Month)
		argIdx++
	}
	if filter.Year != 0 {
		query += fmt.Sprintf(" AND s.year = $%d", argIdx)
		args = append(args, filter.Year)
		argIdx++
	}
	if filter.Status != "" {
		query += fmt.Sprintf(" AND s.status = $%d", argIdx)
		args = append(args, filter.Status)
		argIdx++
	}
	if filter.EmployeeID != "" {
		query += fmt.Sprintf(" AND s.employee_id = $%d", argIdx)
		args = append(args, filter.EmployeeID)
		argIdx++
	}
	if filter.Department != "" {
		query += fmt.Sprintf(" AND e.department = $%d", argIdx)
		args = append(args, filter.Department)
		argIdx++
	}

	query += " ORDER BY s.year DESC, s.month DESC, e.full_name"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary records: %w", err)
	}
	defer rows.Close()

	var records []salary.Record
	for rows.Next() {
		var rec salary.Record
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Month, &rec.Year, &rec.BasicSalary,
			&rec.Allowances, &rec.Deductions, &rec.LateDays, &rec.LateDeduction,
			&rec.NetSalary, &rec.Status, &rec.PaymentAccountID, &rec.TransactionID,
			&rec.PaidDate, &rec.Notes, &rec.CreatedAt, &rec.UpdatedAt,
			&rec.EmployeeName, &rec.EmployeeERPID, &rec.Department,
		); err != nil {
			return nil, fmt.Errorf("failed to scan salary record: %w", err)
		}
		records = append(records, rec)
	}

	return records, nil
}

func (r *salaryRepository) MarkPaid(ctx context.Context, id string, paymentAccountID *string, transactionID string, paidDate time.Time) (salary.Record, error) {
	q := GetQuerier(ctx, r.db)

	// Guarded update: the status predicate makes a double payment a no-op
	// at the database, whichever request loses the race.
	query := `
		UPDATE salaries
		SET status = 'paid', payment_account_id = $2, transaction_id = $3,
			paid_date = $4, updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
		RETURNING id, employee_id, month, year, basic_salary, allowances, deductions,
			late_days, late_deduction, net_salary, status, payment_account_id,
			transaction_id, paid_date, notes, created_at, updated_at
	`

	rec, err := scanSalary(q.QueryRow(ctx, query, id, paymentAccountID, transactionID, paidDate))
	if err != nil {
		if err == pgx.ErrNoRows {
			// Distinguish missing from already settled.
			var status string
			checkErr := q.QueryRow(ctx, `SELECT status FROM salaries WHERE id = $1`, id).Scan(&status)
			if checkErr != nil {
				return salary.Record{}, salary.ErrSalaryNotFound
			}
			return salary.Record{}, salary.ErrSalaryAlreadyPaid
		}
		return salary.Record{}, fmt.Errorf("failed to mark salary paid: %w", err)
	}

	return rec, nil
}

func (r *salaryRepository) ReplacePending(ctx context.Context, rec salary.Record) (salary.Record, error) {
	q := GetQuerier(ctx, r.db)

	// Same guard as MarkPaid: only a pending record may be rewritten.
	query := `
		UPDATE salaries
		SET basic_salary = $4, allowances = $5, deductions = $6, late_days = $7,
			late_deduction = $8, net_salary = $9, notes = $10, updated_at = NOW()
		WHERE employee_id = $1 AND month = $2 AND year = $3 AND status = 'pending'
		RETURNING id, employee_id, month, year, basic_salary, allowances, deductions,
			late_days, late_deduction, net_salary, status, payment_account_id,
			transaction_id, paid_date, notes, created_at, updated_at
	`

	updated, err := scanSalary(q.QueryRow(ctx, query,
		rec.EmployeeID, rec.Month, rec.Year, rec.BasicSalary, rec.Allowances,
		rec.Deductions, rec.LateDays, rec.LateDeduction, rec.NetSalary, rec.Notes,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			var status string
			checkErr := q.QueryRow(ctx,
				`SELECT status FROM salaries WHERE employee_id = $1 AND month = $2 AND year = $3`,
				rec.EmployeeID, rec.Month, rec.Year,
			).Scan(&status)
			if checkErr != nil {
				return salary.Record{}, salary.ErrSalaryNotFound
			}
			return salary.Record{}, salary.ErrSalaryAlreadyPaid
		}
		return salary.Record{}, fmt.Errorf("failed to replace pending salary: %w", err)
	}

	return updated, nil
}

func (r *salaryRepository) SummarizePeriod(ctx context.Context, month, year int) (salary.PeriodTotals, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) as records,
			COALESCE(SUM(basic_salary), 0) as total_basic_salary,
			COALESCE(SUM(allowances), 0) as total_allowances,
			COALESCE(SUM(deductions), 0) as total_deductions,
			COALESCE(SUM(late_deduction), 0) as total_late_deduction,
			COALESCE(SUM(net_salary), 0) as total_net_salary,
			COUNT(*) FILTER (WHERE status = 'pending') as pending_count,
			COUNT(*) FILTER (WHERE status = 'paid') as paid_count
		FROM salaries
		WHERE month = $1 AND year = $2
	`

	var totals salary.PeriodTotals
	err := q.QueryRow(ctx, query, month, year).Scan(
		&totals.Records, &totals.TotalBasicSalary, &totals.TotalAllowances,
		&totals.TotalDeductions, &totals.TotalLateDeduction, &totals.TotalNetSalary,
		&totals.PendingCount, &totals.PaidCount,
	)
	if err != nil {
		return salary.PeriodTotals{}, fmt.Errorf("failed to summarize salary period: %w", err)
	}

	return totals, nil
}
