package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// UUIDv7 regex: version 7 (the 15th character must be '7'), all lowercase hex digits.
var uuidv7Regex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-7[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// UUIDv7 validation
func IsValidUUID(uuid string) bool {
	return uuidv7Regex.MatchString(strings.ToLower(uuid))
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// CNIC validation (Pakistani national ID): 13 digits, dashed "#####-#######-#"
// or bare.
var cnicRegex = regexp.MustCompile(`^\d{5}-\d{7}-\d$`)

func IsValidCNIC(cnic string) bool {
	if cnicRegex.MatchString(cnic) {
		return true
	}
	return len(cnic) == 13 && IsNumeric(cnic)
}

// Phone number validation (Pakistani mobile numbers)
func IsValidPhoneNumber(phone string) bool {
	// Remove spaces and dashes
	phone = strings.ReplaceAll(phone, " ", "")
	phone = strings.ReplaceAll(phone, "-", "")

	if len(phone) < 10 || len(phone) > 13 {
		return false
	}

	// Must start with 03, 92, or +92
	if strings.HasPrefix(phone, "03") ||
		strings.HasPrefix(phone, "92") ||
		strings.HasPrefix(phone, "+92") {
		cleanPhone := strings.TrimPrefix(strings.TrimPrefix(phone, "+"), "92")
		return IsNumeric(cleanPhone)
	}

	return false
}

// ERP ID validation: "HP-" followed by digits, e.g. "HP-1023".
var erpIDRegex = regexp.MustCompile(`^HP-\d{1,6}$`)

func IsValidERPID(id string) bool {
	return erpIDRegex.MatchString(id)
}

// Shift validation and parsing: "HH:MM - HH:MM".
var shiftRegex = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)\s*-\s*([01]\d|2[0-3]):([0-5]\d)$`)

func IsValidShift(shift string) bool {
	return shiftRegex.MatchString(shift)
}

/// ParseShiftStart returns the start-of-shift clock time for a "HH:MM - HH:MM"
// shift string.
func ParseShiftStart(shift string) (hour, minute int, ok bool) {
	m := shiftRegex.FindStringSubmatch(shift)
	if m == nil {
		return 0, 0, false
	}
	// Regex guarantees two-digit numeric groups.
	hour = int(m[1][0]-'0')*10 + int(m[1][1]-'0')
	minute = int(m[2][0]-'0')*10 + int(m[2][1]-'0')
	return hour, minute, true
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

// IsValidDateTime checks if a string is a valid ISO8601 timestamp.
// Accepts formats like: "2024-01-15T10:30:00Z" or "2024-01-15T10:30:00+05:00"
func IsValidDateTime(dateTimeStr string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, dateTimeStr)
	if err == nil {
		return t, true
	}

	t, err = time.Parse(time.RFC3339Nano, dateTimeStr)
	if err == nil {
		return t, true
	}

	return time.Time{}, false
}
