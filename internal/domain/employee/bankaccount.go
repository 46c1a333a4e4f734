package employee

import (
	"fmt"
	"regexp"
)

// BankAccount is a structured NZ bank account number: bank, branch, account
// body and suffix, written BB-bbbb-AAAAAAA-SS (two or three digit suffix).
type BankAccount struct {
	Bank    string
	Branch  string
	Account string
	Suffix  string
}

var bankAccountRegex = regexp.MustCompile(`^(\d{2})-(\d{4})-(\d{7})-(\d{2,3})$`)

// ParseBankAccount parses the 4-part dashed format. The parts are kept as
// zero-padded strings because downstream bank files are fixed-width.
func ParseBankAccount(s string) (BankAccount, error) {
	m := bankAccountRegex.FindStringSubmatch(s)
	if m == nil {
		return BankAccount{}, fmt.Errorf("%w: %q", ErrInvalidBankAccount, s)
	}
	return BankAccount{Bank: m[1], Branch: m[2], Account: m[3], Suffix: m[4]}, nil
}

// String renders the account back into the dashed form.
func (a BankAccount) String() string {
	return fmt.Sprintf("%s-%s-%s-%s", a.Bank, a.Branch, a.Account, a.Suffix)
}

// IsZero reports whether no account has been recorded.
func (a BankAccount) IsZero() bool {
	return a == BankAccount{}
}
