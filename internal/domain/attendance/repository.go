package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create inserts a clock-in record. A second insert for the same
	// (employee, date) fails with ErrAlreadyCheckedIn.
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// SetCheckOut stamps the check-out time on today's open record.
	SetCheckOut(ctx context.Context, employeeID string, date time.Time, checkOut time.Time) (Attendance, error)

	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Attendance, error)

	// ListByEmployeePeriod returns one employee's records for a month,
	// oldest first.
	ListByEmployeePeriod(ctx context.Context, employeeID string, month, year int) ([]Attendance, error)

	// MonthlyStats returns per-employee counters for every active employee
	// in one grouped query.
	MonthlyStats(ctx context.Context, month, year int) ([]MonthlyStats, error)

	// CountLate returns the number of late records for one employee in a
	// period. Zero rows is zero, not an error.
	CountLate(ctx context.Context, employeeID string, month, year int) (int, error)

	// UpdateStatus is the admin correction path.
	UpdateStatus(ctx context.Context, id string, status Status) error

	// MarkAbsentees inserts absent records for active employees with no
	// record on date. Returns the number of rows inserted.
	MarkAbsentees(ctx context.Context, date time.Time) (int64, error)
}
