package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hunarmand-punjab/erp-backend-go/internal/domain/salary"
	"github.com/hunarmand-punjab/erp-backend-go/internal/pkg/database"
	"github.com/hunarmand-punjab/erp-backend-go/internal/repository/postgresql"
)

var testDB *database.DB

// testRepoDB connects once per run. Tests are skipped when TEST_DATABASE_URL
// is not set so the suite stays runnable without a database.
func testRepoDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	if testDB == nil {
		var err error
		testDB, err = database.NewPostgreSQLDB(dsn)
		require.NoError(t, err, "failed to connect to test database")
	}
	return testDB
}

func truncateTables(t *testing.T, ctx context.Context, db *database.DB) {
	t.Helper()
	for _, table := range []string{"salaries", "attendances", "employees", "payment_accounts"} {
		_, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

func createTestEmployee(t *testing.T, ctx context.Context, db *database.DB, erpID string) string {
	t.Helper()
	var id string
	err := db.QueryRow(ctx, `
		INSERT INTO employees (erp_id, full_name, cnic, department, designation, workplace, shift, basic_salary, employment_status)
		VALUES ($1, 'Ahmed Raza', $2, 'Production', 'Operator', 'Unit 1', '09:00 - 17:00', 30000, 'active')
		RETURNING id
	`, erpID, erpID+"-cnic").Scan(&id)
	require.NoError(t, err)
	return id
}

func createTestAccount(t *testing.T, ctx context.Context, db *database.DB, title, provider string) string {
	t.Helper()
	var id string
	err := db.QueryRow(ctx, `
		INSERT INTO payment_accounts (title, type, provider, account_number, holder_name, is_active)
		VALUES ($1, 'wallet', $2, $1 || '-0300', 'Hunarmand Punjab', true)
		RETURNING id
	`, title, provider).Scan(&id)
	require.NoError(t, err)
	return id
}

func pendingRecord(employeeID string, month, year int) salary.Record {
	basic := decimal.NewFromInt(30000)
	deduction := decimal.NewFromInt(1000)
	return salary.Record{
		EmployeeID:    employeeID,
		Month:         month,
		Year:          year,
		BasicSalary:   basic,
		Allowances:    decimal.Zero,
		Deductions:    deduction,
		LateDays:      3,
		LateDeduction: deduction,
		NetSalary:     salary.NetOf(basic, decimal.Zero, deduction),
		Status:        salary.StatusPending,
	}
}

func TestSalaryRepository_Create_Success(t *testing.T) {
	db := testRepoDB(t)
	ctx := context.Background()
	truncateTables(t, ctx, db)

	empID := createTestEmployee(t, ctx, db, "HP-1001")
	repo := postgresql.NewSalaryRepository(db)

	created, err := repo.Create(ctx, pendingRecord(empID, 3, 2025))

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, salary.StatusPending, created.Status)
	assert.Equal(t, "29000", created.NetSalary.String())
	assert.Nil(t, created.PaidDate)
}

func TestSalaryRepository_Create_DuplicatePeriod(t *testing.T) {
	db := testRepoDB(t)
	ctx := context.Background()
	truncateTables(t, ctx, db)

	empID := createTestEmployee(t, ctx, db, "HP-1002")
	repo := postgresql.NewSalaryRepository(db)

	_, err := repo.Create(ctx, pendingRecord(empID, 3, 2025))
	require.NoError(t, err)

	_, err = repo.Create(ctx, pendingRecord(empID, 3, 2025))

	assert.ErrorIs(t, err, salary.ErrSalaryAlreadyExists)
}

func TestSalaryRepository_MarkPaid_Lifecycle(t *testing.T) {
	db := testRepoDB(t)
	ctx := context.Background()
	truncateTables(t, ctx, db)

	empID := createTestEmployee(t, ctx, db, "HP-1003")
	repo := postgresql.NewSalaryRepository(db)

	created, err := repo.Create(ctx, pendingRecord(empID, 4, 2025))
	require.NoError(t, err)

	paid, err := repo.MarkPaid(ctx, created.ID, nil, "CASH", time.Now())
	require.NoError(t, err)
	assert.Equal(t, salary.StatusPaid, paid.Status)
	require.NotNil(t, paid.TransactionID)
	assert.Equal(t, "CASH", *paid.TransactionID)
	assert.NotNil(t, paid.PaidDate)

	// Second settlement loses the status guard.
	_, err = repo.MarkPaid(ctx, created.ID, nil, "CASH", time.Now())
	assert.ErrorIs(t, err, salary.ErrSalaryAlreadyPaid)

	_, err = repo.MarkPaid(ctx, "00000000-0000-0000-0000-000000000000", nil, "CASH", time.Now())
	assert.ErrorIs(t, err, salary.ErrSalaryNotFound)
}

func TestSalaryRepository_GetByID_PopulatesPaymentAccount(t *testing.T) {
	db := testRepoDB(t)
	ctx := context.Background()
	truncateTables(t, ctx, db)

	empID := createTestEmployee(t, ctx, db, "HP-1007")
	accID := createTestAccount(t, ctx, db, "Office JazzCash", "JazzCash")
	repo := postgresql.NewSalaryRepository(db)

	created, err := repo.Create(ctx, pendingRecord(empID, 7, 2025))
	require.NoError(t, err)

	// Before settlement the slip carries no account.
	slip, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, slip.PaymentAccountTitle)
	assert.Nil(t, slip.PaymentAccountProvider)

	_, err = repo.MarkPaid(ctx, created.ID, &accID, "TXN-778811", time.Now())
	require.NoError(t, err)

	slip, err = repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, slip.PaymentAccountTitle)
	assert.Equal(t, "Office JazzCash", *slip.PaymentAccountTitle)
	require.NotNil(t, slip.PaymentAccountProvider)
	assert.Equal(t, "JazzCash", *slip.PaymentAccountProvider)
	require.NotNil(t, slip.EmployeeName)
	assert.Equal(t, "Ahmed Raza", *slip.EmployeeName)
}

func TestSalaryRepository_ReplacePending(t *testing.T) {
	db := testRepoDB(t)
	ctx := context.Background()
	truncateTables(t, ctx, db)

	empID := createTestEmployee(t, ctx, db, "HP-1004")
	repo := postgresql.NewSalaryRepository(db)

	created, err := repo.Create(ctx, pendingRecord(empID, 5, 2025))
	require.NoError(t, err)

	revised := pendingRecord(empID, 5, 2025)
	revised.Allowances = decimal.NewFromInt(5000)
	revised.NetSalary = salary.NetOf(revised.BasicSalary, revised.Allowances, revised.Deductions)

	replaced, err := repo.ReplacePending(ctx, revised)
	require.NoError(t, err)
	assert.Equal(t, created.ID, replaced.ID)
	assert.Equal(t, "34000", replaced.NetSalary.String())
	assert.Equal(t, salary.StatusPending, replaced.Status)

	_, err = repo.MarkPaid(ctx, created.ID, nil, "CASH", time.Now())
	require.NoError(t, err)

	_, err = repo.ReplacePending(ctx, revised)
	assert.ErrorIs(t, err, salary.ErrSalaryAlreadyPaid)
}

func TestSalaryRepository_SummarizePeriod(t *testing.T) {
	db := testRepoDB(t)
	ctx := context.Background()
	truncateTables(t, ctx, db)

	repo := postgresql.NewSalaryRepository(db)

	first := createTestEmployee(t, ctx, db, "HP-1005")
	second := createTestEmployee(t, ctx, db, "HP-1006")

	recA, err := repo.Create(ctx, pendingRecord(first, 6, 2025))
	require.NoError(t, err)
	_, err = repo.Create(ctx, pendingRecord(second, 6, 2025))
	require.NoError(t, err)

	_, err = repo.MarkPaid(ctx, recA.ID, nil, "CASH", time.Now())
	require.NoError(t, err)

	totals, err := repo.SummarizePeriod(ctx, 6, 2025)

	require.NoError(t, err)
	assert.Equal(t, 2, totals.Records)
	assert.Equal(t, 1, totals.PendingCount)
	assert.Equal(t, 1, totals.PaidCount)
	assert.Equal(t, "58000", totals.TotalNetSalary.String())

	empty, err := repo.SummarizePeriod(ctx, 12, 2030)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Records)
	assert.True(t, empty.TotalNetSalary.IsZero())
}
