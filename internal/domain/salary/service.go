package salary

import "context"

type SalaryService interface {
	// Quote previews the late deduction for an employee and period without
	// persisting anything.
	Quote(ctx context.Context, employeeID, month string, year int) (QuoteResponse, error)

	// Generate creates a pending salary record, pricing the late deduction
	// from attendance at generation time.
	Generate(ctx context.Context, req GenerateSalaryRequest) (SalaryResponse, error)

	// Pay settles a pending record exactly once.
	Pay(ctx context.Context, req PaySalaryRequest) (SalaryResponse, error)

	List(ctx context.Context, filter ListFilter) ([]SalaryResponse, error)

	// Slip returns one record with employee details joined.
	Slip(ctx context.Context, id string) (SalaryResponse, error)

	// StatusFor reports the derived payroll state for an employee and
	// period, not_generated included.
	StatusFor(ctx context.Context, employeeID, month string, year int) (StatusResponse, error)

	// PeriodSummary totals the generated records of one period, with
	// pending and paid counts.
	PeriodSummary(ctx context.Context, month string, year int) (PeriodSummaryResponse, error)

	// DepartmentBreakdown groups the standing monthly payroll commitment
	// by department.
	DepartmentBreakdown(ctx context.Context) (BreakdownResponse, error)
}
