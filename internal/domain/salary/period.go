package salary

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Period is a (month, year) pair scoping attendance and salary queries.
type Period struct {
	Month int // 1-12
	Year  int
}

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// ParseMonth accepts a numeric month ("3") or a full English month name
// ("March", case-insensitive). The admin frontend historically sent names;
// storage and new clients use 1-12.
func ParseMonth(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: month is required", ErrInvalidPeriod)
	}

	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > 12 {
			return 0, fmt.Errorf("%w: month %d out of range", ErrInvalidPeriod, n)
		}
		return n, nil
	}

	for i, name := range monthNames {
		if strings.EqualFold(s, name) {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown month %q", ErrInvalidPeriod, s)
}

// MonthName returns the full English name for a 1-12 month, or "" if out of
// range.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month-1]
}

// ParsePeriod resolves a month string and year into a validated Period.
func ParsePeriod(monthStr string, year int) (Period, error) {
	month, err := ParseMonth(monthStr)
	if err != nil {
		return Period{}, err
	}
	if year < 2000 || year > 2100 {
		return Period{}, fmt.Errorf("%w: year %d out of range", ErrInvalidPeriod, year)
	}
	return Period{Month: month, Year: year}, nil
}

// Days returns the number of calendar days in the period's month.
func (p Period) Days() int {
	return time.Date(p.Year, time.Month(p.Month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (p Period) String() string {
	return fmt.Sprintf("%s %d", MonthName(p.Month), p.Year)
}
