package paymentaccount

import (
	"github.com/hunarmand-punjab/erp-backend-go/internal/pkg/validator"
)

type CreateAccountRequest struct {
	Title         string `json:"title"`
	Type          string `json:"type"`
	Provider      string `json:"provider"`
	AccountNumber string `json:"account_number"`
	HolderName    string `json:"holder_name"`
}

func (r *CreateAccountRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title is required"})
	}
	switch AccountType(r.Type) {
	case TypeBank, TypeOther:
	case TypeWallet:
		if !ValidWalletProvider(r.Provider) {
			errs = append(errs, validator.ValidationError{Field: "provider", Message: "unknown wallet provider"})
		}
	default:
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be Bank, Wallet or Other"})
	}
	if validator.IsEmpty(r.Provider) {
		errs = append(errs, validator.ValidationError{Field: "provider", Message: "provider is required"})
	}
	if validator.IsEmpty(r.AccountNumber) {
		errs = append(errs, validator.ValidationError{Field: "account_number", Message: "account_number is required"})
	}
	if validator.IsEmpty(r.HolderName) {
		errs = append(errs, validator.ValidationError{Field: "holder_name", Message: "holder_name is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAccountRequest struct {
	ID         string
	Title      *string `json:"title,omitempty"`
	HolderName *string `json:"holder_name,omitempty"`
	IsActive   *bool   `json:"is_active,omitempty"`
}

func (r *UpdateAccountRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Title != nil && validator.IsEmpty(*r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title cannot be empty"})
	}
	if r.HolderName != nil && validator.IsEmpty(*r.HolderName) {
		errs = append(errs, validator.ValidationError{Field: "holder_name", Message: "holder_name cannot be empty"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AccountResponse struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Type          string `json:"type"`
	Provider      string `json:"provider"`
	AccountNumber string `json:"account_number"`
	HolderName    string `json:"holder_name"`
	IsActive      bool   `json:"is_active"`
	CreatedAt     string `json:"created_at"`
}

func ToResponse(a Account) AccountResponse {
	return AccountResponse{
		ID:            a.ID,
		Title:         a.Title,
		Type:          string(a.Type),
		Provider:      a.Provider,
		AccountNumber: a.AccountNumber,
		HolderName:    a.HolderName,
		IsActive:      a.IsActive,
		CreatedAt:     a.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
