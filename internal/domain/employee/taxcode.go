package employee

import "strings"

// TaxCode is the withholding category declared by the employee. Codes with
// an " SL" suffix carry a student loan obligation.
type TaxCode string

const (
	TaxCodeM    TaxCode = "M"  // main employment
	TaxCodeME   TaxCode = "ME" // main employment, tax credit eligible
	TaxCodeSB   TaxCode = "SB" // secondary, lowest band
	TaxCodeS    TaxCode = "S"  // secondary
	TaxCodeSH   TaxCode = "SH" // secondary, higher band
	TaxCodeST   TaxCode = "ST" // secondary, top band
	TaxCodeMSL  TaxCode = "M SL"
	TaxCodeMESL TaxCode = "ME SL"
	TaxCodeSBSL TaxCode = "SB SL"
	TaxCodeSSL  TaxCode = "S SL"
	TaxCodeSHSL TaxCode = "SH SL"
	TaxCodeSTSL TaxCode = "ST SL"
)

var validTaxCodes = map[TaxCode]bool{
	TaxCodeM: true, TaxCodeME: true, TaxCodeSB: true,
	TaxCodeS: true, TaxCodeSH: true, TaxCodeST: true,
	TaxCodeMSL: true, TaxCodeMESL: true, TaxCodeSBSL: true,
	TaxCodeSSL: true, TaxCodeSHSL: true, TaxCodeSTSL: true,
}

// IsValid reports whether the code is a recognised tax code.
func (c TaxCode) IsValid() bool {
	return validTaxCodes[c]
}

// HasLoan reports whether the code marks a student loan obligation.
func (c TaxCode) HasLoan() bool {
	return strings.HasSuffix(string(c), " SL")
}
