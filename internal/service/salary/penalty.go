package salary

import (
	"github.com/shopspring/decimal"

	"github.com/hunarmand-punjab/erp-backend-go/internal/domain/salary"
)

// LatePolicy maps counted late days to deductible days.
type LatePolicy func(lateDays int) int

// StepLatePolicy forgives lateness below the threshold: every full group of
// daysPerDeductible late days costs one day of pay. The office default is 3.
func StepLatePolicy(daysPerDeductible int) LatePolicy {
	if daysPerDeductible <= 0 {
		daysPerDeductible = 3
	}
	return func(lateDays int) int {
		if lateDays <= 0 {
			return 0
		}
		return lateDays / daysPerDeductible
	}
}

// Penalty is the outcome of pricing one employee's lateness for one period.
type Penalty struct {
	LateDays       int
	DeductibleDays int
	DailyRate      decimal.Decimal
	Deduction      decimal.Decimal
}

// ComputePenalty prices lateness against the period's calendar. The daily
// rate divides the basic salary by the actual days in the month, so February
// lateness costs more per day than January lateness on the same salary.
// Pure function: callers fetch the late count, this only does arithmetic.
func ComputePenalty(basic decimal.Decimal, lateDays int, period salary.Period, policy LatePolicy) Penalty {
	days := decimal.NewFromInt(int64(period.Days()))
	dailyRate := basic.Div(days)

	deductible := policy(lateDays)
	deduction := dailyRate.Mul(decimal.NewFromInt(int64(deductible))).Round(0)

	return Penalty{
		LateDays:       lateDays,
		DeductibleDays: deductible,
		DailyRate:      dailyRate.Round(2),
		Deduction:      deduction,
	}
}
