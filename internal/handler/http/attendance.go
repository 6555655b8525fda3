package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hunarmand-punjab/erp-backend-go/internal/domain/attendance"
	"github.com/hunarmand-punjab/erp-backend-go/internal/domain/salary"
	"github.com/hunarmand-punjab/erp-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	MyStats(w http.ResponseWriter, r *http.Request)
	EmployeeStats(w http.ResponseWriter, r *http.Request)
	MonthlyOverview(w http.ResponseWriter, r *http.Request)
	Correct(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// periodFromQuery reads month and year query params, defaulting to the
// current period. Month accepts "3" or "March".
func periodFromQuery(r *http.Request) (month, year int, err error) {
	now := time.Now()
	month = int(now.Month())
	year = now.Year()

	if m := r.URL.Query().Get("month"); m != "" {
		month, err = salary.ParseMonth(m)
		if err != nil {
			return 0, 0, err
		}
	}
	if y := r.URL.Query().Get("year"); y != "" {
		year, err = strconv.Atoi(y)
		if err != nil {
			return 0, 0, err
		}
	}

	return month, year, nil
}

// ClockIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	att, err := h.attendanceService.ClockIn(r.Context())
	if err != nil {
		slog.Error("ClockIn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Checked in successfully", att)
}

// ClockOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	att, err := h.attendanceService.ClockOut(r.Context())
	if err != nil {
		slog.Error("ClockOut service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked out successfully", att)
}

// MyStats implements AttendanceHandler.
func (h *AttendanceHandlerImpl) MyStats(w http.ResponseWriter, r *http.Request) {
	month, year, err := periodFromQuery(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	stats, err := h.attendanceService.MyStats(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// EmployeeStats implements AttendanceHandler.
func (h *AttendanceHandlerImpl) EmployeeStats(w http.ResponseWriter, r *http.Request) {
	month, year, err := periodFromQuery(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	employeeID := chi.URLParam(r, "id")
	stats, err := h.attendanceService.EmployeeStats(r.Context(), employeeID, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// MonthlyOverview implements AttendanceHandler.
func (h *AttendanceHandlerImpl) MonthlyOverview(w http.ResponseWriter, r *http.Request) {
	month, year, err := periodFromQuery(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	overview, err := h.attendanceService.MonthlyOverview(r.Context(), month, year)
	if err != nil {
		slog.Error("MonthlyOverview service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, overview)
}

// Correct implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Correct(w http.ResponseWriter, r *http.Request) {
	var req attendance.CorrectAttendanceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Correct attendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.attendanceService.Correct(r.Context(), req); err != nil {
		slog.Error("Correct attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance corrected successfully", nil)
}
