package attendance

import (
	"time"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"
	StatusAbsent  Status = "absent"
	StatusOff     Status = "off"
)

// Attendance is one clock record. At most one exists per (employee, date);
// the storage layer enforces that with a unique index.
type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Status     Status
	CheckIn    *time.Time
	CheckOut   *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	EmployeeName *string
}

// MonthlyStats aggregates one employee's records for a period. Produced by a
// single grouped query for the whole directory, never by per-employee fetches.
type MonthlyStats struct {
	EmployeeID string
	Present    int
	Late       int
	Absent     int
	Off        int
}
