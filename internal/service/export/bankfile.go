package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kauri-hr/payroll-backend-go/internal/domain/payroll"
)

// Record-type markers for the bank payment batch file. The layout is a
// compatibility contract with the downstream banking import: field order
// and widths must not change.
const (
	bankRecordHeader      = "1"
	bankRecordTransaction = "2"
	bankRecordFooter      = "3"

	// bankParticulars is the fixed particulars code stamped on every
	// payment record.
	bankParticulars = "SALARY"

	payeeNameMaxLen = 12
	bankDateLayout  = "020106" // ddMMyy
)

// BankFileWriter serialises a set of payroll entries into the
// comma-delimited bank payment batch format.
type BankFileWriter struct {
	// OriginatorCode is the routing code of the paying organisation,
	// assigned by the bank.
	OriginatorCode string
}

// Write emits one header record, one record per payment and a footer whose
// totals must match the payment records exactly.
func (w BankFileWriter) Write(out io.Writer, entries []payroll.Entry, batchDate time.Time, sequence int, description string) error {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Net)
	}

	header := strings.Join([]string{
		bankRecordHeader,
		w.OriginatorCode,
		batchDate.Format(bankDateLayout),
		fmt.Sprintf("%d", sequence),
		description,
		total.StringFixed(2),
		fmt.Sprintf("%06d", len(entries)),
	}, ",")
	if _, err := fmt.Fprintln(out, header); err != nil {
		return err
	}

	for _, e := range entries {
		name := e.EmployeeID
		if e.EmployeeName != nil {
			name = *e.EmployeeName
		}
		record := strings.Join([]string{
			bankRecordTransaction,
			e.Payment.Account.Bank,
			e.Payment.Account.Branch,
			e.Payment.Account.Account,
			e.Payment.Account.Suffix,
			e.Net.StringFixed(2),
			e.Payment.Reference,
			bankParticulars,
			truncate(name, payeeNameMaxLen),
		}, ",")
		if _, err := fmt.Fprintln(out, record); err != nil {
			return err
		}
	}

	footer := strings.Join([]string{
		bankRecordFooter,
		w.OriginatorCode,
		total.StringFixed(2),
		fmt.Sprintf("%d", len(entries)),
	}, ",")
	_, err := fmt.Fprintln(out, footer)
	return err
}

// truncate cuts to max characters, not bytes, so names with macrons are
// never split mid-rune.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
