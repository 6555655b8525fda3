package expense

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hunarmand-punjab/erp-backend-go/internal/domain/expense"
)

func TestPeriodRange(t *testing.T) {
	tests := []struct {
		name     string
		period   string
		date     string
		wantFrom string
		wantTo   string
	}{
		{"daily", "daily", "2025-03-15", "2025-03-15", "2025-03-16"},
		{"monthly mid-month", "monthly", "2025-03-15", "2025-03-01", "2025-04-01"},
		{"monthly december rolls year", "monthly", "2025-12-31", "2025-12-01", "2026-01-01"},
		{"yearly", "yearly", "2025-06-10", "2025-01-01", "2026-01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to, err := periodRange(tt.period, tt.date)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFrom, from.Format("2006-01-02"))
			assert.Equal(t, tt.wantTo, to.Format("2006-01-02"))
		})
	}
}

func TestPeriodRange_Invalid(t *testing.T) {
	_, _, err := periodRange("weekly", "2025-03-15")
	assert.ErrorIs(t, err, expense.ErrInvalidPeriod)

	_, _, err = periodRange("daily", "15-03-2025")
	assert.ErrorIs(t, err, expense.ErrInvalidPeriod)
}

func TestPeriodRange_HalfOpenBoundary(t *testing.T) {
	from, to, err := periodRange("monthly", "2025-02-10")
	require.NoError(t, err)

	lastOfFebruary := time.Date(2025, 2, 28, 23, 59, 59, 0, time.UTC)
	firstOfMarch := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	assert.True(t, lastOfFebruary.After(from) && lastOfFebruary.Before(to))
	assert.False(t, firstOfMarch.Before(to))
}
