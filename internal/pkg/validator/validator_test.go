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

func TestIsNumeric(t *testing.T) {
	valid := []string{"123", "0", "9876543210"}
	invalid := []string{"abc", "123a", "", "-123"}
	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsValidBankAccount(t *testing.T) {
	valid := []string{
		"01-0001-0123456-00",
		"12-3456-7890123-000",
		"38-9000-0123456-01",
	}
	invalid := []string{
		"",
		"01-0001-0123456",        // missing suffix
		"1-0001-0123456-00",      // short bank code
		"01-001-0123456-00",      // short branch
		"01-0001-012345-00",      // short account body
		"01-0001-0123456-0",      // short suffix
		"01-0001-0123456-0000",   // long suffix
		"0100010123456700",       // no dashes
		"aa-0001-0123456-00",     // non-numeric
	}
	for _, s := range valid {
		if !IsValidBankAccount(s) {
			t.Errorf("IsValidBankAccount(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidBankAccount(s) {
			t.Errorf("IsValidBankAccount(%q) = true, want false", s)
		}
	}
}

func TestIsValidIRDNumber(t *testing.T) {
	// 49091850 and 35901981 are the worked examples from the IR
	// payroll calculation specification.
	valid := []string{"49091850", "49-091-850", "35901981", "136410132"}
	invalid := []string{
		"",
		"49091851",  // wrong check digit
		"1234567",   // too short
		"9125568",   // below issued range
		"1234567890", // too long
		"49A91850",  // non-numeric
	}
	for _, s := range valid {
		if !IsValidIRDNumber(s) {
			t.Errorf("IsValidIRDNumber(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidIRDNumber(s) {
			t.Errorf("IsValidIRDNumber(%q) = true, want false", s)
		}
	}
}

func TestIsValidEmployeeCode(t *testing.T) {
	if !IsValidEmployeeCode("2024-0001") {
		t.Error("expected 2024-0001 to be valid")
	}
	for _, s := range []string{"20240001", "2024-001", "abcd-0001", ""} {
		if IsValidEmployeeCode(s) {
			t.Errorf("IsValidEmployeeCode(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "01-01-2023", "2023/01/01", ""}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}
