package attendance

import (
	"github.com/hunarmand-punjab/erp-backend-go/internal/pkg/validator"
)

type AttendanceResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	Status     string  `json:"status"`
	CheckIn    *string `json:"check_in,omitempty"`
	CheckOut   *string `json:"check_out,omitempty"`
}

// StatsResponse is the per-employee history + counters payload used by both
// the employee dashboard and the admin payroll preview.
type StatsResponse struct {
	History []AttendanceResponse `json:"history"`
	Stats   StatsCounters        `json:"stats"`
}

type StatsCounters struct {
	Present int `json:"present"`
	Late    int `json:"late"`
	Absent  int `json:"absent"`
	Off     int `json:"off"`
}

type MonthlyStatsResponse struct {
	EmployeeID string `json:"employee_id"`
	Present    int    `json:"present"`
	Late       int    `json:"late"`
	Absent     int    `json:"absent"`
	Off        int    `json:"off"`
}

type CorrectAttendanceRequest struct {
	ID     string
	Status string `json:"status"`
}

func (r *CorrectAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	switch Status(r.Status) {
	case StatusPresent, StatusLate, StatusAbsent, StatusOff:
	default:
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be present, late, absent or off"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
