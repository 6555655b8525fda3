package salary

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hunarmand-punjab/erp-backend-go/internal/domain/attendance"
	"github.com/hunarmand-punjab/erp-backend-go/internal/domain/employee"
	"github.com/hunarmand-punjab/erp-backend-go/internal/domain/paymentaccount"
	"github.com/hunarmand-punjab/erp-backend-go/internal/domain/salary"
	"github.com/hunarmand-punjab/erp-backend-go/internal/pkg/validator"
)

// ---------- in-memory fakes ----------

type fakeSalaryRepo struct {
	records map[string]salary.Record
	nextID  int
}

func newFakeSalaryRepo() *fakeSalaryRepo {
	return &fakeSalaryRepo{records: make(map[string]salary.Record)}
}

func (f *fakeSalaryRepo) Create(_ context.Context, rec salary.Record) (salary.Record, error) {
	for _, existing := range f.records {
		if existing.EmployeeID == rec.EmployeeID && existing.Month == rec.Month && existing.Year == rec.Year {
			return salary.Record{}, salary.ErrSalaryAlreadyExists
		}
	}
	f.nextID++
	rec.ID = fmt.Sprintf("sal-%d", f.nextID)
	rec.CreatedAt = time.Now()
	rec.UpdatedAt = rec.CreatedAt
	f.records[rec.ID] = rec
	return rec, nil
}

func (f *fakeSalaryRepo) GetByID(_ context.Context, id string) (salary.Record, error) {
	rec, ok := f.records[id]
	if !ok {
		return salary.Record{}, salary.ErrSalaryNotFound
	}
	return rec, nil
}

func (f *fakeSalaryRepo) GetByEmployeePeriod(_ context.Context, employeeID string, month, year int) (salary.Record, error) {
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID && rec.Month == month && rec.Year == year {
			return rec, nil
		}
	}
	return salary.Record{}, salary.ErrSalaryNotFound
}

func (f *fakeSalaryRepo) List(_ context.Context, filter salary.ListFilter) ([]salary.Record, error) {
	var out []salary.Record
	for _, rec := range f.records {
		if filter.Month != 0 && rec.Month != filter.Month {
			continue
		}
		if filter.Year != 0 && rec.Year != filter.Year {
			continue
		}
		if filter.Status != "" && rec.Status != filter.Status {
			continue
		}
		if filter.EmployeeID != "" && rec.EmployeeID != filter.EmployeeID {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (f *fakeSalaryRepo) MarkPaid(_ context.Context, id string, paymentAccountID *string, transactionID string, paidDate time.Time) (salary.Record, error) {
	rec, ok := f.records[id]
	if !ok {
		return salary.Record{}, salary.ErrSalaryNotFound
	}
	if rec.Status != salary.StatusPending {
		return salary.Record{}, salary.ErrSalaryAlreadyPaid
	}
	rec.Status = salary.StatusPaid
	rec.PaymentAccountID = paymentAccountID
	rec.TransactionID = &transactionID
	rec.PaidDate = &paidDate
	f.records[id] = rec
	return rec, nil
}

func (f *fakeSalaryRepo) ReplacePending(_ context.Context, rec salary.Record) (salary.Record, error) {
	for id, existing := range f.records {
		if existing.EmployeeID != rec.EmployeeID || existing.Month != rec.Month || existing.Year != rec.Year {
			continue
		}
		if existing.Status != salary.StatusPending {
			return salary.Record{}, salary.ErrSalaryAlreadyPaid
		}
		rec.ID = id
		rec.Status = existing.Status
		rec.CreatedAt = existing.CreatedAt
		rec.UpdatedAt = time.Now()
		f.records[id] = rec
		return rec, nil
	}
	return salary.Record{}, salary.ErrSalaryNotFound
}

func (f *fakeSalaryRepo) SummarizePeriod(_ context.Context, month, year int) (salary.PeriodTotals, error) {
	var totals salary.PeriodTotals
	for _, rec := range f.records {
		if rec.Month != month || rec.Year != year {
			continue
		}
		totals.Records++
		totals.TotalBasicSalary = totals.TotalBasicSalary.Add(rec.BasicSalary)
		totals.TotalAllowances = totals.TotalAllowances.Add(rec.Allowances)
		totals.TotalDeductions = totals.TotalDeductions.Add(rec.Deductions)
		totals.TotalLateDeduction = totals.TotalLateDeduction.Add(rec.LateDeduction)
		totals.TotalNetSalary = totals.TotalNetSalary.Add(rec.NetSalary)
		switch rec.Status {
		case salary.StatusPending:
			totals.PendingCount++
		case salary.StatusPaid:
			totals.PaidCount++
		}
	}
	return totals, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetActive(_ context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		if emp.EmploymentStatus == employee.EmploymentStatusActive {
			out = append(out, emp)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		out = append(out, emp)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Update(context.Context, employee.UpdateEmployeeRequest) error {
	return nil
}

type fakeAttendanceRepo struct {
	attendance.AttendanceRepository
	lateDays map[string]int
}

func (f *fakeAttendanceRepo) CountLate(_ context.Context, employeeID string, _, _ int) (int, error) {
	return f.lateDays[employeeID], nil
}

type fakeAccountRepo struct {
	paymentaccount.AccountRepository
	accounts map[string]paymentaccount.Account
}

func (f *fakeAccountRepo) GetByID(_ context.Context, id string) (paymentaccount.Account, error) {
	acc, ok := f.accounts[id]
	if !ok {
		return paymentaccount.Account{}, paymentaccount.ErrAccountNotFound
	}
	return acc, nil
}

// ---------- helpers ----------

const (
	testAccountID = "3c0f7b5a-0000-7000-8000-000000000001"
)

func buildTestService(lateDays int, allowRegenerate bool) (salary.SalaryService, *fakeSalaryRepo) {
	basic := decimal.NewFromInt(30000)
	salaryRepo := newFakeSalaryRepo()
	employeeRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {
			ID:               "emp-1",
			ERPID:            "HP-1023",
			FullName:         "Ahmed Raza",
			Department:       "Production",
			BasicSalary:      &basic,
			EmploymentStatus: employee.EmploymentStatusActive,
		},
	}}
	attendanceRepo := &fakeAttendanceRepo{lateDays: map[string]int{"emp-1": lateDays}}
	accountRepo := &fakeAccountRepo{accounts: map[string]paymentaccount.Account{
		testAccountID: {ID: testAccountID, Title: "Office JazzCash", Provider: "JazzCash"},
	}}

	svc := NewSalaryService(salaryRepo, employeeRepo, attendanceRepo, accountRepo, StepLatePolicy(3), allowRegenerate)
	return svc, salaryRepo
}

func newTestService(lateDays int) (salary.SalaryService, *fakeSalaryRepo) {
	return buildTestService(lateDays, false)
}

func generateFor(t *testing.T, svc salary.SalaryService) salary.SalaryResponse {
	t.Helper()
	resp, err := svc.Generate(context.Background(), salary.GenerateSalaryRequest{
		EmployeeID: "emp-1",
		Month:      "April",
		Year:       2025,
	})
	require.NoError(t, err)
	return resp
}

// ---------- tests ----------

func TestGenerate_OnTimeEmployeeKeepsFullSalary(t *testing.T) {
	svc, _ := newTestService(0)

	resp := generateFor(t, svc)

	assert.Equal(t, 0, resp.LateDays)
	assert.Equal(t, "0", resp.LateDeduction)
	assert.Equal(t, "30000", resp.NetSalary)
	assert.Equal(t, "pending", resp.Status)
}

func TestGenerate_PricesLatenessAtGenerationTime(t *testing.T) {
	// 7 lates at one deductible day per 3 is 2 days of pay. April has 30
	// days, so 30000 prices at 1000/day. With no submitted deductions the
	// computed late deduction is the whole total.
	svc, _ := newTestService(7)

	resp := generateFor(t, svc)

	assert.Equal(t, 7, resp.LateDays)
	assert.Equal(t, "2000", resp.LateDeduction)
	assert.Equal(t, "2000", resp.Deductions)
	assert.Equal(t, "28000", resp.NetSalary)
}

func TestGenerate_FoldedLateDeductionNotDoubleCounted(t *testing.T) {
	// The admin previews the 1000 late deduction and submits it inside the
	// deductions total, so exactly 1000 comes off: 3 lates on 30000 in a
	// 30-day month leaves 29000, not 28000.
	svc, _ := newTestService(3)

	resp, err := svc.Generate(context.Background(), salary.GenerateSalaryRequest{
		EmployeeID: "emp-1",
		Month:      "April",
		Year:       2025,
		Deductions: "1000",
	})

	require.NoError(t, err)
	assert.Equal(t, 3, resp.LateDays)
	assert.Equal(t, "1000", resp.LateDeduction)
	assert.Equal(t, "1000", resp.Deductions)
	assert.Equal(t, "29000", resp.NetSalary)
}

func TestGenerate_BasicSalaryOverride(t *testing.T) {
	svc, _ := newTestService(0)

	resp, err := svc.Generate(context.Background(), salary.GenerateSalaryRequest{
		EmployeeID:  "emp-1",
		Month:       "April",
		Year:        2025,
		BasicSalary: "42000",
	})

	require.NoError(t, err)
	assert.Equal(t, "42000", resp.BasicSalary)
	assert.Equal(t, "42000", resp.NetSalary)
}

func TestGenerate_MalformedBasicSalary(t *testing.T) {
	svc, _ := newTestService(0)

	_, err := svc.Generate(context.Background(), salary.GenerateSalaryRequest{
		EmployeeID:  "emp-1",
		Month:       "April",
		Year:        2025,
		BasicSalary: "forty thousand",
	})

	var errs validator.ValidationErrors
	assert.ErrorAs(t, err, &errs)
}

func TestGenerate_DuplicatePeriodConflicts(t *testing.T) {
	svc, _ := newTestService(0)
	generateFor(t, svc)

	_, err := svc.Generate(context.Background(), salary.GenerateSalaryRequest{
		EmployeeID: "emp-1",
		Month:      "4",
		Year:       2025,
	})

	assert.ErrorIs(t, err, salary.ErrSalaryAlreadyExists)
}

func TestGenerate_UnknownEmployee(t *testing.T) {
	svc, _ := newTestService(0)

	_, err := svc.Generate(context.Background(), salary.GenerateSalaryRequest{
		EmployeeID: "emp-missing",
		Month:      "April",
		Year:       2025,
	})

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestPay_CashDefaultsTransactionID(t *testing.T) {
	svc, _ := newTestService(0)
	rec := generateFor(t, svc)

	paid, err := svc.Pay(context.Background(), salary.PaySalaryRequest{
		ID:               rec.ID,
		PaymentAccountID: salary.CashAccount,
	})

	require.NoError(t, err)
	assert.Equal(t, "paid", paid.Status)
	assert.Nil(t, paid.PaymentAccountID)
	require.NotNil(t, paid.TransactionID)
	assert.Equal(t, "CASH", *paid.TransactionID)
	assert.NotNil(t, paid.PaidDate)
}

func TestPay_ThroughRegisteredAccount(t *testing.T) {
	svc, _ := newTestService(0)
	rec := generateFor(t, svc)
	txn := "TXN-889900"

	paid, err := svc.Pay(context.Background(), salary.PaySalaryRequest{
		ID:               rec.ID,
		PaymentAccountID: testAccountID,
		TransactionID:    &txn,
	})

	require.NoError(t, err)
	require.NotNil(t, paid.PaymentAccountID)
	assert.Equal(t, testAccountID, *paid.PaymentAccountID)
	require.NotNil(t, paid.TransactionID)
	assert.Equal(t, "TXN-889900", *paid.TransactionID)
}

func TestPay_SecondAttemptFails(t *testing.T) {
	svc, _ := newTestService(0)
	rec := generateFor(t, svc)

	_, err := svc.Pay(context.Background(), salary.PaySalaryRequest{
		ID:               rec.ID,
		PaymentAccountID: salary.CashAccount,
	})
	require.NoError(t, err)

	_, err = svc.Pay(context.Background(), salary.PaySalaryRequest{
		ID:               rec.ID,
		PaymentAccountID: salary.CashAccount,
	})

	assert.ErrorIs(t, err, salary.ErrSalaryAlreadyPaid)
}

func TestPay_UnknownAccount(t *testing.T) {
	svc, _ := newTestService(0)
	rec := generateFor(t, svc)
	txn := "TXN-1"

	_, err := svc.Pay(context.Background(), salary.PaySalaryRequest{
		ID:               rec.ID,
		PaymentAccountID: "3c0f7b5a-0000-7000-8000-00000000dead",
		TransactionID:    &txn,
	})

	assert.ErrorIs(t, err, salary.ErrPaymentAccountUnknown)
}

func TestStatusFor_NotGeneratedPeriod(t *testing.T) {
	svc, _ := newTestService(0)

	resp, err := svc.StatusFor(context.Background(), "emp-1", "March", 2025)

	require.NoError(t, err)
	assert.Equal(t, salary.PayrollNotGenerated, resp.Status)
	assert.Nil(t, resp.Record)
}

func TestStatusFor_FollowsLifecycle(t *testing.T) {
	svc, _ := newTestService(0)
	rec := generateFor(t, svc)

	resp, err := svc.StatusFor(context.Background(), "emp-1", "April", 2025)
	require.NoError(t, err)
	assert.Equal(t, salary.PayrollPending, resp.Status)
	require.NotNil(t, resp.Record)

	_, err = svc.Pay(context.Background(), salary.PaySalaryRequest{
		ID:               rec.ID,
		PaymentAccountID: salary.CashAccount,
	})
	require.NoError(t, err)

	resp, err = svc.StatusFor(context.Background(), "emp-1", "April", 2025)
	require.NoError(t, err)
	assert.Equal(t, salary.PayrollPaid, resp.Status)
}

func TestQuote_DoesNotPersist(t *testing.T) {
	svc, repo := newTestService(3)

	quote, err := svc.Quote(context.Background(), "emp-1", "April", 2025)

	require.NoError(t, err)
	assert.Equal(t, 3, quote.LateDays)
	assert.Equal(t, 1, quote.DeductibleDays)
	assert.Equal(t, "1000", quote.DeductionAmount)
	assert.Empty(t, repo.records)
}

func TestGenerate_RegenerateOverwritesPending(t *testing.T) {
	svc, repo := buildTestService(0, true)
	first := generateFor(t, svc)

	notes := "revised allowances"
	resp, err := svc.Generate(context.Background(), salary.GenerateSalaryRequest{
		EmployeeID: "emp-1",
		Month:      "April",
		Year:       2025,
		Allowances: "5000",
		Notes:      &notes,
	})

	require.NoError(t, err)
	assert.Equal(t, first.ID, resp.ID)
	assert.Equal(t, "35000", resp.NetSalary)
	assert.Equal(t, "pending", resp.Status)
	assert.Len(t, repo.records, 1)
}

func TestGenerate_RegenerateNeverTouchesPaid(t *testing.T) {
	svc, _ := buildTestService(0, true)
	rec := generateFor(t, svc)

	_, err := svc.Pay(context.Background(), salary.PaySalaryRequest{
		ID:               rec.ID,
		PaymentAccountID: salary.CashAccount,
	})
	require.NoError(t, err)

	_, err = svc.Generate(context.Background(), salary.GenerateSalaryRequest{
		EmployeeID: "emp-1",
		Month:      "April",
		Year:       2025,
	})

	assert.ErrorIs(t, err, salary.ErrSalaryAlreadyPaid)
}

func TestPeriodSummary_CountsByStatus(t *testing.T) {
	svc, _ := newTestService(0)
	rec := generateFor(t, svc)

	_, err := svc.Pay(context.Background(), salary.PaySalaryRequest{
		ID:               rec.ID,
		PaymentAccountID: salary.CashAccount,
	})
	require.NoError(t, err)

	resp, err := svc.PeriodSummary(context.Background(), "April", 2025)

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Records)
	assert.Equal(t, "30000", resp.TotalNetSalary)
	assert.Equal(t, 0, resp.PendingCount)
	assert.Equal(t, 1, resp.PaidCount)
}

func TestPeriodSummary_EmptyPeriodIsAllZeros(t *testing.T) {
	svc, _ := newTestService(0)

	resp, err := svc.PeriodSummary(context.Background(), "January", 2025)

	require.NoError(t, err)
	assert.Equal(t, 0, resp.Records)
	assert.Equal(t, "0", resp.TotalNetSalary)
}

func TestDepartmentBreakdown_GroupsByDepartment(t *testing.T) {
	svc, _ := newTestService(0)

	resp, err := svc.DepartmentBreakdown(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Departments, 1)
	assert.Equal(t, "Production", resp.Departments[0].Department)
	assert.Equal(t, 1, resp.Departments[0].Employees)
	assert.Equal(t, "30000", resp.Departments[0].Total)
	assert.Equal(t, "30000", resp.GrandTotal)
}
