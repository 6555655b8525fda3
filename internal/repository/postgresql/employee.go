package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/hunarmand-punjab/erp-backend-go/internal/domain/employee"
	"github.com/hunarmand-punjab/erp-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, erp_id, full_name, cnic, department, designation, workplace, shift,
	basic_salary, employment_status, created_at, updated_at, deleted_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.ERPID, &e.FullName, &e.CNIC, &e.Department, &e.Designation,
		&e.Workplace, &e.Shift, &e.BasicSalary, &e.EmploymentStatus,
		&e.CreatedAt, &e.UpdatedAt, &e.DeletedAt,
	)
	return e, err
}

func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (erp_id, full_name, cnic, department, designation, workplace, shift, basic_salary, employment_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		emp.ERPID, emp.FullName, emp.CNIC, emp.Department, emp.Designation,
		emp.Workplace, emp.Shift, emp.BasicSalary, emp.EmploymentStatus,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_employees_erp_id") {
			return employee.Employee{}, employee.ErrERPIDExists
		}
		if strings.Contains(err.Error(), "uk_employees_cnic") {
			return employee.Employee{}, employee.ErrCNICExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1 AND deleted_at IS NULL`

	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) GetActive(ctx context.Context) ([]employee.Employee, error) {
	return r.list(ctx, true)
}

func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	return r.list(ctx, false)
}

func (r *employeeRepository) list(ctx context.Context, activeOnly bool) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE deleted_at IS NULL`
	if activeOnly {
		query += ` AND employment_status = 'active'`
	}
	query += ` ORDER BY full_name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	return employees, nil
}

func (r *employeeRepository) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argIdx := 2

	if req.FullName != nil {
		setParts = append(setParts, fmt.Sprintf("full_name = $%d", argIdx))
		args = append(args, *req.FullName)
		argIdx++
	}
	if req.Department != nil {
		setParts = append(setParts, fmt.Sprintf("department = $%d", argIdx))
		args = append(args, *req.Department)
		argIdx++
	}
	if req.Designation != nil {
		setParts = append(setParts, fmt.Sprintf("designation = $%d", argIdx))
		args = append(args, *req.Designation)
		argIdx++
	}
	if req.Workplace != nil {
		setParts = append(setParts, fmt.Sprintf("workplace = $%d", argIdx))
		args = append(args, *req.Workplace)
		argIdx++
	}
	if req.Shift != nil {
		setParts = append(setParts, fmt.Sprintf("shift = $%d", argIdx))
		args = append(args, *req.Shift)
		argIdx++
	}
	if req.BasicSalary != nil {
		setParts = append(setParts, fmt.Sprintf("basic_salary = $%d", argIdx))
		args = append(args, *req.BasicSalary)
		argIdx++
	}
	if req.EmploymentStatus != nil {
		setParts = append(setParts, fmt.Sprintf("employment_status = $%d", argIdx))
		args = append(args, *req.EmploymentStatus)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE employees
		SET %s
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id
	`, strings.Join(setParts, ", "))

	var updatedID string
	err := q.QueryRow(ctx, query, args...).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}

	return nil
}
