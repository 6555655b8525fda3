package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hunarmand-punjab/erp-backend-go/internal/domain/expense"
	"github.com/hunarmand-punjab/erp-backend-go/internal/handler/http/response"
)

type ExpenseHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Totals(w http.ResponseWriter, r *http.Request)
	Ledger(w http.ResponseWriter, r *http.Request)
}

type ExpenseHandlerImpl struct {
	expenseService expense.ExpenseService
}

func NewExpenseHandler(expenseService expense.ExpenseService) ExpenseHandler {
	return &ExpenseHandlerImpl{expenseService: expenseService}
}

// windowFromQuery reads the reporting window params, defaulting to the
// current month.
func windowFromQuery(r *http.Request) (period, date string) {
	period = r.URL.Query().Get("period")
	if period == "" {
		period = "monthly"
	}
	date = r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	return period, date
}

// Create implements ExpenseHandler.
func (h *ExpenseHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req expense.CreateExpenseRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create expense decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	exp, err := h.expenseService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create expense service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Expense recorded successfully", exp)
}

// Update implements ExpenseHandler.
func (h *ExpenseHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req expense.UpdateExpenseRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update expense decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	exp, err := h.expenseService.Update(r.Context(), req)
	if err != nil {
		slog.Error("Update expense service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Expense updated successfully", exp)
}

// Delete implements ExpenseHandler.
func (h *ExpenseHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.expenseService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Expense deleted successfully", nil)
}

// List implements ExpenseHandler.
func (h *ExpenseHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	period, date := windowFromQuery(r)

	expenses, err := h.expenseService.List(r.Context(), period, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, expenses)
}

// Totals implements ExpenseHandler.
func (h *ExpenseHandlerImpl) Totals(w http.ResponseWriter, r *http.Request) {
	period, date := windowFromQuery(r)

	totals, err := h.expenseService.Totals(r.Context(), period, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, totals)
}

// Ledger implements ExpenseHandler.
func (h *ExpenseHandlerImpl) Ledger(w http.ResponseWriter, r *http.Request) {
	period, date := windowFromQuery(r)

	ledger, err := h.expenseService.Ledger(r.Context(), period, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, ledger)
}
