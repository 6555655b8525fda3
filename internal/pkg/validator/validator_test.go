package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidCNIC(t *testing.T) {
	valid := []string{"35202-1234567-1", "3520212345671"}
	invalid := []string{"35202-123456-1", "35202-1234567-12", "35202123456", "abcde-1234567-1", ""}
	for _, cnic := range valid {
		if !IsValidCNIC(cnic) {
			t.Errorf("IsValidCNIC(%q) = false, want true", cnic)
		}
	}
	for _, cnic := range invalid {
		if IsValidCNIC(cnic) {
			t.Errorf("IsValidCNIC(%q) = true, want false", cnic)
		}
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	valid := []string{"03001234567", "0300-1234567", "+923001234567", "923001234567"}
	invalid := []string{"0400123", "12345", "04001234567", ""}
	for _, phone := range valid {
		if !IsValidPhoneNumber(phone) {
			t.Errorf("IsValidPhoneNumber(%q) = false, want true", phone)
		}
	}
	for _, phone := range invalid {
		if IsValidPhoneNumber(phone) {
			t.Errorf("IsValidPhoneNumber(%q) = true, want false", phone)
		}
	}
}

func TestIsValidERPID(t *testing.T) {
	if !IsValidERPID("HP-1023") {
		t.Error("IsValidERPID(HP-1023) = false, want true")
	}
	for _, id := range []string{"HP-", "hp-1023", "1023", "HP-1234567", ""} {
		if IsValidERPID(id) {
			t.Errorf("IsValidERPID(%q) = true, want false", id)
		}
	}
}

func TestParseShiftStart(t *testing.T) {
	cases := []struct {
		shift     string
		hour, min int
		ok        bool
	}{
		{"09:00 - 17:00", 9, 0, true},
		{"21:30-05:30", 21, 30, true},
		{"9:00 - 17:00", 0, 0, false},
		{"09:00", 0, 0, false},
		{"", 0, 0, false},
	}
	for _, c := range cases {
		h, m, ok := ParseShiftStart(c.shift)
		if ok != c.ok || h != c.hour || m != c.min {
			t.Errorf("ParseShiftStart(%q) = (%d, %d, %v), want (%d, %d, %v)", c.shift, h, m, ok, c.hour, c.min, c.ok)
		}
	}
}
