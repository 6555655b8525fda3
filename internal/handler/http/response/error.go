package response

import (
	"errors"
	"net/http"

	"github.com/hunarmand-punjab/erp-backend-go/internal/domain/attendance"
	"github.com/hunarmand-punjab/erp-backend-go/internal/domain/auth"
	"github.com/hunarmand-punjab/erp-backend-go/internal/domain/broadcast"
	"github.com/hunarmand-punjab/erp-backend-go/internal/domain/employee"
	"github.com/hunarmand-punjab/erp-backend-go/internal/domain/expense"
	"github.com/hunarmand-punjab/erp-backend-go/internal/domain/paymentaccount"
	"github.com/hunarmand-punjab/erp-backend-go/internal/domain/salary"
	"github.com/hunarmand-punjab/erp-backend-go/internal/domain/user"
	"github.com/hunarmand-punjab/erp-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrERPIDExists):
		Conflict(w, "ERP ID already exists")
	case errors.Is(err, employee.ErrCNICExists):
		Conflict(w, "CNIC already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, "No open check-in for today", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, "Invalid attendance status", nil)

	// Salary domain errors
	case errors.Is(err, salary.ErrSalaryNotFound):
		NotFound(w, "Salary record not found")
	case errors.Is(err, salary.ErrSalaryAlreadyExists):
		Conflict(w, "Salary already generated for this period")
	case errors.Is(err, salary.ErrSalaryAlreadyPaid):
		Conflict(w, "Salary already paid")
	case errors.Is(err, salary.ErrPaymentAccountUnknown):
		NotFound(w, "Payment account not found")
	case errors.Is(err, salary.ErrNoBasicSalary):
		BadRequest(w, "Employee has no basic salary set", nil)
	case errors.Is(err, salary.ErrInvalidPeriod):
		BadRequest(w, err.Error(), nil)

	// Expense domain errors
	case errors.Is(err, expense.ErrExpenseNotFound):
		NotFound(w, "Expense not found")
	case errors.Is(err, expense.ErrInvalidCategory):
		BadRequest(w, "Invalid expense category", nil)
	case errors.Is(err, expense.ErrInvalidPeriod):
		BadRequest(w, "Invalid reporting period", nil)

	// Payment account domain errors
	case errors.Is(err, paymentaccount.ErrAccountNotFound):
		NotFound(w, "Payment account not found")
	case errors.Is(err, paymentaccount.ErrAccountExists):
		Conflict(w, "Payment account already exists")
	case errors.Is(err, paymentaccount.ErrAccountReferenced):
		Conflict(w, "Payment account is referenced by existing payments")

	// Broadcast domain errors
	case errors.Is(err, broadcast.ErrMessageNotFound):
		NotFound(w, "Broadcast message not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
