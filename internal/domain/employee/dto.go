package employee

import (
	"github.com/hunarmand-punjab/erp-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	ERPID       string           `json:"erp_id"`
	FullName    string           `json:"full_name"`
	CNIC        string           `json:"cnic"`
	Department  string           `json:"department"`
	Designation string           `json:"designation"`
	Workplace   string           `json:"workplace"`
	Shift       string           `json:"shift"`
	BasicSalary *decimal.Decimal `json:"basic_salary,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ERPID) {
		errs = append(errs, validator.ValidationError{Field: "erp_id", Message: "is required"})
	} else if !validator.IsValidERPID(r.ERPID) {
		errs = append(errs, validator.ValidationError{Field: "erp_id", Message: "must look like HP-1023"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if validator.IsEmpty(r.CNIC) {
		errs = append(errs, validator.ValidationError{Field: "cnic", Message: "is required"})
	} else if !validator.IsValidCNIC(r.CNIC) {
		errs = append(errs, validator.ValidationError{Field: "cnic", Message: "is not a valid CNIC"})
	}
	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "is required"})
	}
	if !validator.IsEmpty(r.Shift) && !validator.IsValidShift(r.Shift) {
		errs = append(errs, validator.ValidationError{Field: "shift", Message: "must look like 09:00 - 17:00"})
	}
	if r.BasicSalary != nil && r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID               string
	FullName         *string          `json:"full_name,omitempty"`
	Department       *string          `json:"department,omitempty"`
	Designation      *string          `json:"designation,omitempty"`
	Workplace        *string          `json:"workplace,omitempty"`
	Shift            *string          `json:"shift,omitempty"`
	BasicSalary      *decimal.Decimal `json:"basic_salary,omitempty"`
	EmploymentStatus *string          `json:"employment_status,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Shift != nil && !validator.IsValidShift(*r.Shift) {
		errs = append(errs, validator.ValidationError{Field: "shift", Message: "must look like 09:00 - 17:00"})
	}
	if r.BasicSalary != nil && r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "must be non-negative"})
	}
	if r.EmploymentStatus != nil &&
		*r.EmploymentStatus != string(EmploymentStatusActive) &&
		*r.EmploymentStatus != string(EmploymentStatusResigned) {
		errs = append(errs, validator.ValidationError{Field: "employment_status", Message: "must be 'active' or 'resigned'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID               string           `json:"id"`
	ERPID            string           `json:"erp_id"`
	FullName         string           `json:"full_name"`
	CNIC             string           `json:"cnic"`
	Department       string           `json:"department"`
	Designation      string           `json:"designation"`
	Workplace        string           `json:"workplace"`
	Shift            string           `json:"shift"`
	BasicSalary      *decimal.Decimal `json:"basic_salary,omitempty"`
	EmploymentStatus string           `json:"employment_status"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:               e.ID,
		ERPID:            e.ERPID,
		FullName:         e.FullName,
		CNIC:             e.CNIC,
		Department:       e.Department,
		Designation:      e.Designation,
		Workplace:        e.Workplace,
		Shift:            e.Shift,
		BasicSalary:      e.BasicSalary,
		EmploymentStatus: string(e.EmploymentStatus),
	}
}
