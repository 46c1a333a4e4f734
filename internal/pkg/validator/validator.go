package validator

import (
	"regexp"
	"strconv"
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

// Messages flattens the errors into human-readable strings.
func (v ValidationErrors) Messages() []string {
	msgs := make([]string, 0, len(v))
	for _, err := range v {
		msgs = append(msgs, err.Field+" "+err.Message)
	}
	return msgs
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
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

// Bank account validation: the structured 4-part format
// BB-bbbb-AAAAAAA-SS with an optional third suffix digit.
var bankAccountRegex = regexp.MustCompile(`^\d{2}-\d{4}-\d{7}-\d{2,3}$`)

func IsValidBankAccount(account string) bool {
	return bankAccountRegex.MatchString(account)
}

// IRD number check digit weightings, per the IR specification.
var (
	irdPrimaryWeights   = []int{3, 2, 7, 6, 5, 4, 3, 2}
	irdSecondaryWeights = []int{7, 4, 3, 2, 5, 2, 7, 6}
)

// IsValidIRDNumber validates a tax identifier against the mod-11 checksum.
// Dashes are ignored; the number must be 8 or 9 digits and inside the
// issued range.
func IsValidIRDNumber(ird string) bool {
	digits := strings.ReplaceAll(ird, "-", "")
	if !IsNumeric(digits) || len(digits) < 8 || len(digits) > 9 {
		return false
	}

	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil || n < 10_000_000 || n > 150_000_000 {
		return false
	}

	base := digits[:len(digits)-1]
	for len(base) < 8 {
		base = "0" + base
	}
	checkDigit := int(digits[len(digits)-1] - '0')

	check := irdCheckDigit(base, irdPrimaryWeights)
	if check == 10 {
		check = irdCheckDigit(base, irdSecondaryWeights)
		if check == 10 {
			return false
		}
	}
	return check == checkDigit
}

func irdCheckDigit(base string, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += int(base[i]-'0') * w
	}
	remainder := sum % 11
	if remainder == 0 {
		return 0
	}
	return 11 - remainder
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

var employeeCodeRegex = regexp.MustCompile(`^\d{4}-\d{4}$`)

func IsValidEmployeeCode(code string) bool {
	return employeeCodeRegex.MatchString(code)
}

// IsValidDateTime checks if a string is a valid ISO8601 timestamp.
// Accepts formats like: "2024-01-15T10:30:00Z" or "2024-01-15T10:30:00+07:00"
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
