package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/hunarmand-punjab/erp-backend-go/internal/domain/attendance"
	"github.com/hunarmand-punjab/erp-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (employee_id, date, status, check_in, check_out)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, employee_id, date, status, check_in, check_out, created_at, updated_at
	`

	var created attendance.Attendance
	err := q.QueryRow(ctx, query,
		att.EmployeeID, att.Date, att.Status, att.CheckIn, att.CheckOut,
	).Scan(
		&created.ID, &created.EmployeeID, &created.Date, &created.Status,
		&created.CheckIn, &created.CheckOut, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_attendances_employee_date") {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return created, nil
}

func (r *attendanceRepository) SetCheckOut(ctx context.Context, employeeID string, date time.Time, checkOut time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	// Guarded update: only an open record for the day takes the stamp.
	query := `
		UPDATE attendances
		SET check_out = $3, updated_at = NOW()
		WHERE employee_id = $1 AND date = $2 AND check_in IS NOT NULL AND check_out IS NULL
		RETURNING id, employee_id, date, status, check_in, check_out, created_at, updated_at
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, employeeID, date, checkOut).Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.Status,
		&att.CheckIn, &att.CheckOut, &att.CreatedAt, &att.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			existing, getErr := r.GetByEmployeeAndDate(ctx, employeeID, date)
			if getErr != nil {
				return attendance.Attendance{}, attendance.ErrNotCheckedIn
			}
			if existing.CheckOut != nil {
				return attendance.Attendance{}, attendance.ErrAlreadyCheckedOut
			}
			return attendance.Attendance{}, attendance.ErrNotCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to set check out: %w", err)
	}

	return att, nil
}

func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, status, check_in, check_out, created_at, updated_at
		FROM attendances
		WHERE employee_id = $1 AND date = $2
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.Status,
		&att.CheckIn, &att.CheckOut, &att.CreatedAt, &att.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	return att, nil
}

func (r *attendanceRepository) ListByEmployeePeriod(ctx context.Context, employeeID string, month, year int) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, status, check_in, check_out, created_at, updated_at
		FROM attendances
		WHERE employee_id = $1
			AND EXTRACT(MONTH FROM date) = $2
			AND EXTRACT(YEAR FROM date) = $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		if err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date, &att.Status,
			&att.CheckIn, &att.CheckOut, &att.CreatedAt, &att.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}

	return records, nil
}

func (r *attendanceRepository) MonthlyStats(ctx context.Context, month, year int) ([]attendance.MonthlyStats, error) {
	q := GetQuerier(ctx, r.db)

	// One grouped pass over the period for the whole directory.
	query := `
		SELECT
			e.id,
			COUNT(*) FILTER (WHERE a.status = 'present') as present,
			COUNT(*) FILTER (WHERE a.status = 'late') as late,
			COUNT(*) FILTER (WHERE a.status = 'absent') as absent,
			COUNT(*) FILTER (WHERE a.status = 'off') as off
		FROM employees e
		LEFT JOIN attendances a ON a.employee_id = e.id
			AND EXTRACT(MONTH FROM a.date) = $1
			AND EXTRACT(YEAR FROM a.date) = $2
		WHERE e.deleted_at IS NULL AND e.employment_status = 'active'
		GROUP BY e.id
	`

	rows, err := q.Query(ctx, query, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly stats: %w", err)
	}
	defer rows.Close()

	var stats []attendance.MonthlyStats
	for rows.Next() {
		var s attendance.MonthlyStats
		if err := rows.Scan(&s.EmployeeID, &s.Present, &s.Late, &s.Absent, &s.Off); err != nil {
			return nil, fmt.Errorf("failed to scan monthly stats: %w", err)
		}
		stats = append(stats, s)
	}

	return stats, nil
}

func (r *attendanceRepository) CountLate(ctx context.Context, employeeID string, month, year int) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM attendances
		WHERE employee_id = $1
			AND status = 'late'
			AND EXTRACT(MONTH FROM date) = $2
			AND EXTRACT(YEAR FROM date) = $3
	`

	var count int
	if err := q.QueryRow(ctx, query, employeeID, month, year).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count late days: %w", err)
	}

	return count, nil
}

func (r *attendanceRepository) UpdateStatus(ctx context.Context, id string, status attendance.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, id, status).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to update attendance status: %w", err)
	}

	return nil
}

func (r *attendanceRepository) MarkAbsentees(ctx context.Context, date time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (employee_id, date, status)
		SELECT e.id, $1, 'absent'
		FROM employees e
		WHERE e.deleted_at IS NULL
			AND e.employment_status = 'active'
			AND NOT EXISTS (
				SELECT 1 FROM attendances a
				WHERE a.employee_id = e.id AND a.date = $1
			)
	`

	tag, err := q.Exec(ctx, query, date)
	if err != nil {
		return 0, fmt.Errorf("failed to mark absentees: %w", err)
	}

	return tag.RowsAffected(), nil
}
