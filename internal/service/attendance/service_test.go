package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hunarmand-punjab/erp-backend-go/internal/domain/attendance"
	"github.com/hunarmand-punjab/erp-backend-go/internal/domain/employee"
)

// ---------- in-memory fakes ----------

type fakeAttendanceRepo struct {
	attendance.AttendanceRepository
	records map[string]attendance.Attendance
	nextID  int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.Attendance)}
}

func dayKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	key := dayKey(att.EmployeeID, att.Date)
	if _, ok := f.records[key]; ok {
		return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
	}
	f.nextID++
	att.ID = fmt.Sprintf("att-%d", f.nextID)
	f.records[key] = att
	return att, nil
}

func (f *fakeAttendanceRepo) SetCheckOut(_ context.Context, employeeID string, date, checkOut time.Time) (attendance.Attendance, error) {
	key := dayKey(employeeID, date)
	att, ok := f.records[key]
	if !ok {
		return attendance.Attendance{}, attendance.ErrNotCheckedIn
	}
	if att.CheckOut != nil {
		return attendance.Attendance{}, attendance.ErrAlreadyCheckedOut
	}
	att.CheckOut = &checkOut
	f.records[key] = att
	return att, nil
}

func (f *fakeAttendanceRepo) ListByEmployeePeriod(_ context.Context, employeeID string, month, year int) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, att := range f.records {
		if att.EmployeeID == employeeID && int(att.Date.Month()) == month && att.Date.Year() == year {
			out = append(out, att)
		}
	}
	return out, nil
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

// ---------- helpers ----------

// authedContext builds a request context carrying the claims the middleware
// would have verified.
func authedContext(t *testing.T, employeeID string) context.Context {
	t.Helper()

	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id":     "user-1",
		"employee_id": employeeID,
		"type":        "access",
	})
	require.NoError(t, err)

	return jwtauth.NewContext(context.Background(), token, nil)
}

func newTestService(now time.Time) (attendance.AttendanceService, *fakeAttendanceRepo) {
	basic := decimal.NewFromInt(30000)
	attendanceRepo := newFakeAttendanceRepo()
	employeeRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {
			ID:               "emp-1",
			ERPID:            "HP-1023",
			FullName:         "Ahmed Raza",
			Shift:            "09:00 - 17:00",
			BasicSalary:      &basic,
			EmploymentStatus: employee.EmploymentStatusActive,
		},
	}}

	svc := NewAttendanceService(attendanceRepo, employeeRepo, 15)
	svc.(*AttendanceServiceImpl).now = func() time.Time { return now }
	return svc, attendanceRepo
}

func at(hour, minute int) time.Time {
	return time.Date(2025, time.April, 14, hour, minute, 0, 0, time.UTC)
}

// ---------- tests ----------

func TestClockIn_WithinGraceIsPresent(t *testing.T) {
	svc, _ := newTestService(at(9, 10))

	resp, err := svc.ClockIn(authedContext(t, "emp-1"))

	require.NoError(t, err)
	assert.Equal(t, "present", resp.Status)
	assert.Equal(t, "2025-04-14", resp.Date)
	require.NotNil(t, resp.CheckIn)
}

func TestClockIn_AfterGraceIsLate(t *testing.T) {
	svc, _ := newTestService(at(9, 16))

	resp, err := svc.ClockIn(authedContext(t, "emp-1"))

	require.NoError(t, err)
	assert.Equal(t, "late", resp.Status)
}

func TestClockIn_TwiceSameDay(t *testing.T) {
	svc, _ := newTestService(at(9, 0))
	ctx := authedContext(t, "emp-1")

	_, err := svc.ClockIn(ctx)
	require.NoError(t, err)

	_, err = svc.ClockIn(ctx)

	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestClockOut_StampsOpenRecord(t *testing.T) {
	svc, _ := newTestService(at(9, 0))
	ctx := authedContext(t, "emp-1")

	_, err := svc.ClockIn(ctx)
	require.NoError(t, err)

	resp, err := svc.ClockOut(ctx)

	require.NoError(t, err)
	require.NotNil(t, resp.CheckOut)
}

func TestClockOut_WithoutClockIn(t *testing.T) {
	svc, _ := newTestService(at(17, 0))

	_, err := svc.ClockOut(authedContext(t, "emp-1"))

	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestMyStats_CountsByStatus(t *testing.T) {
	svc, repo := newTestService(at(9, 0))

	day := func(d int) time.Time { return time.Date(2025, time.April, d, 0, 0, 0, 0, time.UTC) }
	for d, status := range map[int]attendance.Status{
		1: attendance.StatusPresent,
		2: attendance.StatusLate,
		3: attendance.StatusLate,
		4: attendance.StatusAbsent,
	} {
		_, err := repo.Create(context.Background(), attendance.Attendance{
			EmployeeID: "emp-1",
			Date:       day(d),
			Status:     status,
		})
		require.NoError(t, err)
	}

	resp, err := svc.MyStats(authedContext(t, "emp-1"), 4, 2025)

	require.NoError(t, err)
	assert.Len(t, resp.History, 4)
	assert.Equal(t, 1, resp.Stats.Present)
	assert.Equal(t, 2, resp.Stats.Late)
	assert.Equal(t, 1, resp.Stats.Absent)
	assert.Equal(t, 0, resp.Stats.Off)
}

func TestCorrect_RejectsUnknownStatus(t *testing.T) {
	svc, _ := newTestService(at(9, 0))

	err := svc.Correct(context.Background(), attendance.CorrectAttendanceRequest{
		ID:     "att-1",
		Status: "vacation",
	})

	assert.Error(t, err)
}
