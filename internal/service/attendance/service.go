package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/hunarmand-punjab/erp-backend-go/internal/domain/attendance"
	"github.com/hunarmand-punjab/erp-backend-go/internal/domain/employee"
	"github.com/hunarmand-punjab/erp-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	graceMinutes   int
	now            func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	graceMinutes int,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		graceMinutes:   graceMinutes,
		now:            time.Now,
	}
}

// employeeIDFromContext extracts the employee_id claim set at login.
func employeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", fmt.Errorf("employee_id claim is missing")
	}

	return employeeID, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *AttendanceServiceImpl) ClockIn(ctx context.Context) (attendance.AttendanceResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := s.now()
	status := attendance.StatusPresent

	// A check-in after shift start plus the grace window counts as late.
	if hour, minute, ok := validator.ParseShiftStart(emp.Shift); ok {
		shiftStart := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
		if now.After(shiftStart.Add(time.Duration(s.graceMinutes) * time.Minute)) {
			status = attendance.StatusLate
		}
	}

	att := attendance.Attendance{
		EmployeeID: employeeID,
		Date:       dateOnly(now),
		Status:     status,
		CheckIn:    &now,
	}

	created, err := s.attendanceRepo.Create(ctx, att)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toResponse(created), nil
}

func (s *AttendanceServiceImpl) ClockOut(ctx context.Context) (attendance.AttendanceResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := s.now()
	att, err := s.attendanceRepo.SetCheckOut(ctx, employeeID, dateOnly(now), now)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toResponse(att), nil
}

func (s *AttendanceServiceImpl) MyStats(ctx context.Context, month, year int) (attendance.StatsResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.StatsResponse{}, err
	}
	return s.stats(ctx, employeeID, month, year)
}

func (s *AttendanceServiceImpl) EmployeeStats(ctx context.Context, employeeID string, month, year int) (attendance.StatsResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return attendance.StatsResponse{}, err
	}
	return s.stats(ctx, employeeID, month, year)
}

func (s *AttendanceServiceImpl) stats(ctx context.Context, employeeID string, month, year int) (attendance.StatsResponse, error) {
	records, err := s.attendanceRepo.ListByEmployeePeriod(ctx, employeeID, month, year)
	if err != nil {
		return attendance.StatsResponse{}, err
	}

	resp := attendance.StatsResponse{History: make([]attendance.AttendanceResponse, 0, len(records))}
	for _, att := range records {
		resp.History = append(resp.History, toResponse(att))
		switch att.Status {
		case attendance.StatusPresent:
			resp.Stats.Present++
		case attendance.StatusLate:
			resp.Stats.Late++
		case attendance.StatusAbsent:
			resp.Stats.Absent++
		case attendance.StatusOff:
			resp.Stats.Off++
		}
	}

	return resp, nil
}

func (s *AttendanceServiceImpl) MonthlyOverview(ctx context.Context, month, year int) ([]attendance.MonthlyStatsResponse, error) {
	stats, err := s.attendanceRepo.MonthlyStats(ctx, month, year)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.MonthlyStatsResponse, 0, len(stats))
	for _, st := range stats {
		responses = append(responses, attendance.MonthlyStatsResponse{
			EmployeeID: st.EmployeeID,
			Present:    st.Present,
			Late:       st.Late,
			Absent:     st.Absent,
			Off:        st.Off,
		})
	}
	return responses, nil
}

func (s *AttendanceServiceImpl) Correct(ctx context.Context, req attendance.CorrectAttendanceRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.attendanceRepo.UpdateStatus(ctx, req.ID, attendance.Status(req.Status))
}

func toResponse(att attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:         att.ID,
		EmployeeID: att.EmployeeID,
		Date:       att.Date.Format("2006-01-02"),
		Status:     string(att.Status),
	}
	if att.CheckIn != nil {
		v := att.CheckIn.Format(time.RFC3339)
		resp.CheckIn = &v
	}
	if att.CheckOut != nil {
		v := att.CheckOut.Format(time.RFC3339)
		resp.CheckOut = &v
	}
	return resp
}
