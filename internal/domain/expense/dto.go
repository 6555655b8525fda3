package expense

import (
	"github.com/shopspring/decimal"

	"github.com/hunarmand-punjab/erp-backend-go/internal/pkg/validator"
)

type CreateExpenseRequest struct {
	Title            string  `json:"title"`
	Category         string  `json:"category"`
	Amount           string  `json:"amount"`
	ExpenseDate      string  `json:"expense_date"`
	PaymentAccountID *string `json:"payment_account_id,omitempty"`
	Notes            *string `json:"notes,omitempty"`
}

func (r *CreateExpenseRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title is required"})
	}
	if !ValidCategory(Category(r.Category)) {
		errs = append(errs, validator.ValidationError{Field: "category", Message: "unknown category"})
	}
	if validator.IsEmpty(r.Amount) {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "amount is required"})
	} else if d, err := decimal.NewFromString(r.Amount); err != nil {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be a number"})
	} else if !d.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be greater than zero"})
	}
	if validator.IsEmpty(r.ExpenseDate) {
		errs = append(errs, validator.ValidationError{Field: "expense_date", Message: "expense_date is required"})
	} else if _, ok := validator.IsValidDate(r.ExpenseDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "expense_date", Message: "must be YYYY-MM-DD"})
	}
	if r.PaymentAccountID != nil && !validator.IsEmpty(*r.PaymentAccountID) && !validator.IsValidUUID(*r.PaymentAccountID) {
		errs = append(errs, validator.ValidationError{Field: "payment_account_id", Message: "must be a valid account id"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateExpenseRequest struct {
	ID               string
	Title            *string `json:"title,omitempty"`
	Category         *string `json:"category,omitempty"`
	Amount           *string `json:"amount,omitempty"`
	ExpenseDate      *string `json:"expense_date,omitempty"`
	PaymentAccountID *string `json:"payment_account_id,omitempty"`
	Notes            *string `json:"notes,omitempty"`
}

func (r *UpdateExpenseRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Title != nil && validator.IsEmpty(*r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title cannot be empty"})
	}
	if r.Category != nil && !ValidCategory(Category(*r.Category)) {
		errs = append(errs, validator.ValidationError{Field: "category", Message: "unknown category"})
	}
	if r.Amount != nil {
		if d, err := decimal.NewFromString(*r.Amount); err != nil {
			errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be a number"})
		} else if !d.IsPositive() {
			errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be greater than zero"})
		}
	}
	if r.ExpenseDate != nil {
		if _, ok := validator.IsValidDate(*r.ExpenseDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "expense_date", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ExpenseResponse struct {
	ID               string  `json:"id"`
	Title            string  `json:"title"`
	Category         string  `json:"category"`
	Amount           string  `json:"amount"`
	ExpenseDate      string  `json:"expense_date"`
	PaymentAccountID *string `json:"payment_account_id,omitempty"`
	Notes            *string `json:"notes,omitempty"`
	CreatedAt        string  `json:"created_at"`
}

// TotalsResponse reports spending over a reporting window, bucketed by
// category.
type TotalsResponse struct {
	Period     string            `json:"period"`
	From       string            `json:"from"`
	To         string            `json:"to"`
	Total      string            `json:"total"`
	ByCategory map[string]string `json:"by_category"`
}

type LedgerEntryResponse struct {
	ID               string  `json:"id"`
	Source           string  `json:"source"`
	Title            string  `json:"title"`
	Category         string  `json:"category"`
	Amount           string  `json:"amount"`
	Date             string  `json:"date"`
	PaymentAccountID *string `json:"payment_account_id,omitempty"`
}

type LedgerResponse struct {
	Entries []LedgerEntryResponse `json:"entries"`
	Total   string                `json:"total"`
}
