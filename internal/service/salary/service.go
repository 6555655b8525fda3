package salary

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hunarmand-punjab/erp-backend-go/internal/domain/attendance"
	"github.com/hunarmand-punjab/erp-backend-go/internal/domain/employee"
	"github.com/hunarmand-punjab/erp-backend-go/internal/domain/paymentaccount"
	"github.com/hunarmand-punjab/erp-backend-go/internal/domain/salary"
)

type SalaryServiceImpl struct {
	salaryRepo     salary.SalaryRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	accountRepo    paymentaccount.AccountRepository
	latePolicy     LatePolicy
	// allowRegenerate lets Generate overwrite a pending record for the
	// period instead of conflicting. Paid records are never overwritten.
	allowRegenerate bool
	now             func() time.Time
}

func NewSalaryService(
	salaryRepo salary.SalaryRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	accountRepo paymentaccount.AccountRepository,
	latePolicy LatePolicy,
	allowRegenerate bool,
) salary.SalaryService {
	return &SalaryServiceImpl{
		salaryRepo:      salaryRepo,
		employeeRepo:    employeeRepo,
		attendanceRepo:  attendanceRepo,
		accountRepo:     accountRepo,
		latePolicy:      latePolicy,
		allowRegenerate: allowRegenerate,
		now:             time.Now,
	}
}

func (s *SalaryServiceImpl) Quote(ctx context.Context, employeeID, month string, year int) (salary.QuoteResponse, error) {
	period, err := salary.ParsePeriod(month, year)
	if err != nil {
		return salary.QuoteResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return salary.QuoteResponse{}, err
	}
	if emp.BasicSalary == nil {
		return salary.QuoteResponse{}, salary.ErrNoBasicSalary
	}

	lateDays, err := s.attendanceRepo.CountLate(ctx, employeeID, period.Month, period.Year)
	if err != nil {
		return salary.QuoteResponse{}, err
	}

	penalty := ComputePenalty(*emp.BasicSalary, lateDays, period, s.latePolicy)

	return salary.QuoteResponse{
		EmployeeID:      employeeID,
		Month:           period.Month,
		MonthName:       salary.MonthName(period.Month),
		Year:            period.Year,
		LateDays:        penalty.LateDays,
		DeductibleDays:  penalty.DeductibleDays,
		DailyRate:       penalty.DailyRate.String(),
		DeductionAmount: penalty.Deduction.String(),
	}, nil
}

func (s *SalaryServiceImpl) Generate(ctx context.Context, req salary.GenerateSalaryRequest) (salary.SalaryResponse, error) {
	if err := req.Validate(); err != nil {
		return salary.SalaryResponse{}, err
	}

	period, err := salary.ParsePeriod(req.Month, req.Year)
	if err != nil {
		return salary.SalaryResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return salary.SalaryResponse{}, err
	}

	basic, hasBasic := req.BasicSalaryAmount()
	if !hasBasic {
		if emp.BasicSalary == nil {
			return salary.SalaryResponse{}, salary.ErrNoBasicSalary
		}
		basic = *emp.BasicSalary
	}

	lateDays, err := s.attendanceRepo.CountLate(ctx, req.EmployeeID, period.Month, period.Year)
	if err != nil {
		return salary.SalaryResponse{}, err
	}

	// Lateness is priced once, at generation time. Later attendance edits
	// do not reopen a generated record.
	penalty := ComputePenalty(basic, lateDays, period, s.latePolicy)

	// The submitted deductions already include the previewed late deduction;
	// the stored late_deduction only itemizes the share of that total owed to
	// lateness. Only when the admin submits no total does the computed
	// penalty stand alone.
	deductions, hasDeductions := req.DeductionsAmount()
	if !hasDeductions {
		deductions = penalty.Deduction
	}
	allowances := req.AllowancesAmount()

	rec := salary.Record{
		EmployeeID:    req.EmployeeID,
		Month:         period.Month,
		Year:          period.Year,
		BasicSalary:   basic,
		Allowances:    allowances,
		Deductions:    deductions,
		LateDays:      penalty.LateDays,
		LateDeduction: penalty.Deduction,
		NetSalary:     salary.NetOf(basic, allowances, deductions),
		Status:        salary.StatusPending,
		Notes:         req.Notes,
	}

	created, err := s.salaryRepo.Create(ctx, rec)
	if errors.Is(err, salary.ErrSalaryAlreadyExists) && s.allowRegenerate {
		created, err = s.salaryRepo.ReplacePending(ctx, rec)
	}
	if err != nil {
		return salary.SalaryResponse{}, err
	}

	created.EmployeeName = &emp.FullName
	created.EmployeeERPID = &emp.ERPID
	created.Department = &emp.Department

	return toResponse(created), nil
}

func (s *SalaryServiceImpl) Pay(ctx context.Context, req salary.PaySalaryRequest) (salary.SalaryResponse, error) {
	if err := req.Validate(); err != nil {
		return salary.SalaryResponse{}, err
	}

	var accountID *string
	transactionID := salary.CashAccount

	if req.PaymentAccountID != salary.CashAccount {
		acc, err := s.accountRepo.GetByID(ctx, req.PaymentAccountID)
		if err != nil {
			if errors.Is(err, paymentaccount.ErrAccountNotFound) {
				return salary.SalaryResponse{}, salary.ErrPaymentAccountUnknown
			}
			return salary.SalaryResponse{}, err
		}
		accountID = &acc.ID
		transactionID = *req.TransactionID
	}

	rec, err := s.salaryRepo.MarkPaid(ctx, req.ID, accountID, transactionID, s.now())
	if err != nil {
		return salary.SalaryResponse{}, err
	}

	return toResponse(rec), nil
}

func (s *SalaryServiceImpl) List(ctx context.Context, filter salary.ListFilter) ([]salary.SalaryResponse, error) {
	records, err := s.salaryRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]salary.SalaryResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, toResponse(rec))
	}
	return responses, nil
}

func (s *SalaryServiceImpl) Slip(ctx context.Context, id string) (salary.SalaryResponse, error) {
	rec, err := s.salaryRepo.GetByID(ctx, id)
	if err != nil {
		return salary.SalaryResponse{}, err
	}
	return toResponse(rec), nil
}

func (s *SalaryServiceImpl) StatusFor(ctx context.Context, employeeID, month string, year int) (salary.StatusResponse, error) {
	period, err := salary.ParsePeriod(month, year)
	if err != nil {
		return salary.StatusResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return salary.StatusResponse{}, err
	}

	resp := salary.StatusResponse{
		EmployeeID: employeeID,
		Month:      period.Month,
		Year:       period.Year,
	}

	rec, err := s.salaryRepo.GetByEmployeePeriod(ctx, employeeID, period.Month, period.Year)
	if err != nil {
		if errors.Is(err, salary.ErrSalaryNotFound) {
			// Absence of a record is itself the answer here.
			resp.Status = salary.PayrollNotGenerated
			return resp, nil
		}
		return salary.StatusResponse{}, err
	}

	resp.Status = salary.PayrollStatus(rec.Status)
	full := toResponse(rec)
	resp.Record = &full

	return resp, nil
}

func (s *SalaryServiceImpl) PeriodSummary(ctx context.Context, month string, year int) (salary.PeriodSummaryResponse, error) {
	period, err := salary.ParsePeriod(month, year)
	if err != nil {
		return salary.PeriodSummaryResponse{}, err
	}

	totals, err := s.salaryRepo.SummarizePeriod(ctx, period.Month, period.Year)
	if err != nil {
		return salary.PeriodSummaryResponse{}, err
	}

	return salary.PeriodSummaryResponse{
		Month:              period.Month,
		MonthName:          salary.MonthName(period.Month),
		Year:               period.Year,
		Records:            totals.Records,
		TotalBasicSalary:   totals.TotalBasicSalary.String(),
		TotalAllowances:    totals.TotalAllowances.String(),
		TotalDeductions:    totals.TotalDeductions.String(),
		TotalLateDeduction: totals.TotalLateDeduction.String(),
		TotalNetSalary:     totals.TotalNetSalary.String(),
		PendingCount:       totals.PendingCount,
		PaidCount:          totals.PaidCount,
	}, nil
}

func (s *SalaryServiceImpl) DepartmentBreakdown(ctx context.Context) (salary.BreakdownResponse, error) {
	// The breakdown reflects the standing monthly commitment from current
	// basic salaries, not any particular generated period.
	employees, err := s.employeeRepo.GetActive(ctx)
	if err != nil {
		return salary.BreakdownResponse{}, err
	}

	type bucket struct {
		count int
		total decimal.Decimal
	}
	buckets := make(map[string]*bucket)
	var order []string
	grand := decimal.Zero

	for _, emp := range employees {
		if emp.BasicSalary == nil {
			continue
		}
		b, ok := buckets[emp.Department]
		if !ok {
			b = &bucket{}
			buckets[emp.Department] = b
			order = append(order, emp.Department)
		}
		b.count++
		b.total = b.total.Add(*emp.BasicSalary)
		grand = grand.Add(*emp.BasicSalary)
	}

	resp := salary.BreakdownResponse{GrandTotal: grand.String()}
	for _, dept := range order {
		b := buckets[dept]
		resp.Departments = append(resp.Departments, salary.BreakdownRow{
			Department: dept,
			Employees:  b.count,
			Total:      b.total.String(),
		})
	}

	return resp, nil
}

func toResponse(rec salary.Record) salary.SalaryResponse {
	resp := salary.SalaryResponse{
		ID:                     rec.ID,
		EmployeeID:             rec.EmployeeID,
		EmployeeName:           rec.EmployeeName,
		EmployeeERPID:          rec.EmployeeERPID,
		Department:             rec.Department,
		Month:                  rec.Month,
		MonthName:              salary.MonthName(rec.Month),
		Year:                   rec.Year,
		BasicSalary:            rec.BasicSalary.String(),
		Allowances:             rec.Allowances.String(),
		Deductions:             rec.Deductions.String(),
		LateDays:               rec.LateDays,
		LateDeduction:          rec.LateDeduction.String(),
		NetSalary:              rec.NetSalary.String(),
		Status:                 string(rec.Status),
		PaymentAccountID:       rec.PaymentAccountID,
		PaymentAccountTitle:    rec.PaymentAccountTitle,
		PaymentAccountProvider: rec.PaymentAccountProvider,
		TransactionID:          rec.TransactionID,
		Notes:                  rec.Notes,
		CreatedAt:              rec.CreatedAt.Format(time.RFC3339),
	}
	if rec.PaidDate != nil {
		paid := rec.PaidDate.Format(time.RFC3339)
		resp.PaidDate = &paid
	}
	return resp
}
