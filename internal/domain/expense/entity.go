package expense

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category buckets office spending for reporting.
type Category string

const (
	CategoryUtilities   Category = "Utilities"
	CategorySupplies    Category = "Supplies"
	CategoryFood        Category = "Food"
	CategoryLogistics   Category = "Logistics"
	CategorySalaries    Category = "Salaries"
	CategoryMaintenance Category = "Maintenance"
	CategoryRent        Category = "Rent"
	CategoryOther       Category = "Other"
)

// Categories lists every valid category, in display order.
var Categories = []Category{
	CategoryUtilities,
	CategorySupplies,
	CategoryFood,
	CategoryLogistics,
	CategorySalaries,
	CategoryMaintenance,
	CategoryRent,
	CategoryOther,
}

func ValidCategory(c Category) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// Expense is one office outflow entry.
type Expense struct {
	ID          string
	Title       string
	Category    Category
	Amount      decimal.Decimal
	ExpenseDate time.Time
	// PaymentAccountID is nil for cash spending.
	PaymentAccountID *string
	Notes            *string
	CreatedBy        string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// LedgerSource tags where a ledger entry came from.
type LedgerSource string

const (
	LedgerSourceExpense LedgerSource = "expense"
	LedgerSourceSalary  LedgerSource = "salary"
)

// LedgerEntry is one row of the merged outflow ledger: office expenses and
// paid salaries in a single chronological view.
type LedgerEntry struct {
	ID               string
	Source           LedgerSource
	Title            string
	Category         string
	Amount           decimal.Decimal
	Date             time.Time
	PaymentAccountID *string
}
