package salary

import "testing"

func TestParseMonth(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"3", 3, false},
		{"12", 12, false},
		{"March", 3, false},
		{"march", 3, false},
		{" December ", 12, false},
		{"0", 0, true},
		{"13", 0, true},
		{"Mar", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseMonth(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMonth(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMonth(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestPeriodDays(t *testing.T) {
	tests := []struct {
		month, year int
		want        int
	}{
		{1, 2025, 31},
		{2, 2025, 28},
		{2, 2024, 29},
		{4, 2025, 30},
		{12, 2025, 31},
	}

	for _, tt := range tests {
		p := Period{Month: tt.month, Year: tt.year}
		if got := p.Days(); got != tt.want {
			t.Errorf("Period{%d, %d}.Days() = %d, want %d", tt.month, tt.year, got, tt.want)
		}
	}
}

func TestMonthName(t *testing.T) {
	if got := MonthName(3); got != "March" {
		t.Errorf("MonthName(3) = %q, want March", got)
	}
	if got := MonthName(0); got != "" {
		t.Errorf("MonthName(0) = %q, want empty", got)
	}
}
