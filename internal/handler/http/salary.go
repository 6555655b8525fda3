package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hunarmand-punjab/erp-backend-go/internal/domain/salary"
	"github.com/hunarmand-punjab/erp-backend-go/internal/handler/http/response"
)

type SalaryHandler interface {
	Quote(w http.ResponseWriter, r *http.Request)
	Generate(w http.ResponseWriter, r *http.Request)
	Pay(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Slip(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	DepartmentBreakdown(w http.ResponseWriter, r *http.Request)
}

type SalaryHandlerImpl struct {
	salaryService salary.SalaryService
}

func NewSalaryHandler(salaryService salary.SalaryService) SalaryHandler {
	return &SalaryHandlerImpl{salaryService: salaryService}
}

// Quote implements SalaryHandler.
func (h *SalaryHandlerImpl) Quote(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employeeId")
	month := r.URL.Query().Get("month")
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		response.BadRequest(w, "year must be a number", nil)
		return
	}

	quote, err := h.salaryService.Quote(r.Context(), employeeID, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, quote)
}

// Generate implements SalaryHandler.
func (h *SalaryHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req salary.GenerateSalaryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Generate salary decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	rec, err := h.salaryService.Generate(r.Context(), req)
	if err != nil {
		slog.Error("Generate salary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Salary generated", "employee_id", rec.EmployeeID, "month", rec.Month, "year", rec.Year)
	response.Created(w, "Salary generated successfully", rec)
}

// Pay implements SalaryHandler.
func (h *SalaryHandlerImpl) Pay(w http.ResponseWriter, r *http.Request) {
	var req salary.PaySalaryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Pay salary decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	rec, err := h.salaryService.Pay(r.Context(), req)
	if err != nil {
		slog.Error("Pay salary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Salary paid", "salary_id", rec.ID)
	response.SuccessWithMessage(w, "Salary paid successfully", rec)
}

// List implements SalaryHandler.
func (h *SalaryHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter salary.ListFilter

	if m := r.URL.Query().Get("month"); m != "" {
		month, err := salary.ParseMonth(m)
		if err != nil {
			response.BadRequest(w, err.Error(), nil)
			return
		}
		filter.Month = month
	}
	if y := r.URL.Query().Get("year"); y != "" {
		year, err := strconv.Atoi(y)
		if err != nil {
			response.BadRequest(w, "year must be a number", nil)
			return
		}
		filter.Year = year
	}
	if st := r.URL.Query().Get("status"); st != "" {
		filter.Status = salary.Status(st)
	}
	filter.EmployeeID = r.URL.Query().Get("employee_id")
	filter.Department = r.URL.Query().Get("department")

	records, err := h.salaryService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List salaries service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// Slip implements SalaryHandler.
func (h *SalaryHandlerImpl) Slip(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	slip, err := h.salaryService.Slip(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, slip)
}

// Status implements SalaryHandler.
func (h *SalaryHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employeeId")
	month := r.URL.Query().Get("month")
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		response.BadRequest(w, "year must be a number", nil)
		return
	}

	status, err := h.salaryService.StatusFor(r.Context(), employeeID, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, status)
}

// Summary implements SalaryHandler.
func (h *SalaryHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		response.BadRequest(w, "year must be a number", nil)
		return
	}

	summary, err := h.salaryService.PeriodSummary(r.Context(), month, year)
	if err != nil {
		slog.Error("Salary summary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// DepartmentBreakdown implements SalaryHandler.
func (h *SalaryHandlerImpl) DepartmentBreakdown(w http.ResponseWriter, r *http.Request) {
	breakdown, err := h.salaryService.DepartmentBreakdown(r.Context())
	if err != nil {
		slog.Error("Department breakdown service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, breakdown)
}
