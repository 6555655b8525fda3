package salary

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/hunarmand-punjab/erp-backend-go/internal/domain/salary"
)

func TestStepLatePolicy(t *testing.T) {
	policy := StepLatePolicy(3)

	tests := []struct {
		lateDays int
		want     int
	}{
		{0, 0},
		{1, 0},
		{2, 0},
		{3, 1},
		{5, 1},
		{6, 2},
		{9, 3},
		{-1, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, policy(tt.lateDays), "lateDays=%d", tt.lateDays)
	}
}

func TestStepLatePolicy_DefaultsOnBadThreshold(t *testing.T) {
	policy := StepLatePolicy(0)
	assert.Equal(t, 1, policy(3))
	assert.Equal(t, 2, policy(6))
}

func TestComputePenalty(t *testing.T) {
	// 30000 over April (30 days) is a 1000/day rate.
	basic := decimal.NewFromInt(30000)
	period := salary.Period{Month: 4, Year: 2025}

	p := ComputePenalty(basic, 7, period, StepLatePolicy(3))

	assert.Equal(t, 7, p.LateDays)
	assert.Equal(t, 2, p.DeductibleDays)
	assert.True(t, p.DailyRate.Equal(decimal.NewFromInt(1000)), "daily rate = %s", p.DailyRate)
	assert.True(t, p.Deduction.Equal(decimal.NewFromInt(2000)), "deduction = %s", p.Deduction)
}

func TestComputePenalty_NoLateDays(t *testing.T) {
	basic := decimal.NewFromInt(50000)
	period := salary.Period{Month: 1, Year: 2025}

	p := ComputePenalty(basic, 0, period, StepLatePolicy(3))

	assert.Equal(t, 0, p.DeductibleDays)
	assert.True(t, p.Deduction.IsZero())
}

func TestComputePenalty_RoundsToWholeRupees(t *testing.T) {
	// 50000 over February 2025 (28 days) is 1785.71.. per day.
	basic := decimal.NewFromInt(50000)
	period := salary.Period{Month: 2, Year: 2025}

	p := ComputePenalty(basic, 3, period, StepLatePolicy(3))

	assert.True(t, p.Deduction.Equal(decimal.NewFromInt(1786)), "deduction = %s", p.Deduction)
}

func TestComputePenalty_LeapFebruary(t *testing.T) {
	basic := decimal.NewFromInt(29000)

	feb24 := ComputePenalty(basic, 3, salary.Period{Month: 2, Year: 2024}, StepLatePolicy(3))
	feb25 := ComputePenalty(basic, 3, salary.Period{Month: 2, Year: 2025}, StepLatePolicy(3))

	// 29 days in 2024, 28 in 2025. Same lateness costs less in the leap year.
	assert.True(t, feb24.Deduction.LessThan(feb25.Deduction))
	assert.True(t, feb24.Deduction.Equal(decimal.NewFromInt(1000)), "deduction = %s", feb24.Deduction)
}
