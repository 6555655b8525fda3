package attendance

import "context"

type AttendanceService interface {
	// ClockIn records today's check-in for the authenticated employee and
	// derives present or late from the employee's shift.
	ClockIn(ctx context.Context) (AttendanceResponse, error)

	// ClockOut stamps today's check-out for the authenticated employee.
	ClockOut(ctx context.Context) (AttendanceResponse, error)

	// MyStats returns the authenticated employee's history and counters for
	// a period.
	MyStats(ctx context.Context, month, year int) (StatsResponse, error)

	// EmployeeStats is the admin view of one employee's period.
	EmployeeStats(ctx context.Context, employeeID string, month, year int) (StatsResponse, error)

	// MonthlyOverview returns counters for every active employee in one
	// pass.
	MonthlyOverview(ctx context.Context, month, year int) ([]MonthlyStatsResponse, error)

	// Correct lets the admin fix a recorded status.
	Correct(ctx context.Context, req CorrectAttendanceRequest) error
}
