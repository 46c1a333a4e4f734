package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/kauri-hr/payroll-backend-go/internal/domain/employee"
	"github.com/kauri-hr/payroll-backend-go/internal/domain/payroll"
)

// PayslipData is the structured payslip record. Rendering beyond the
// standard PDF (email templates, print runs) is an external concern.
type PayslipData struct {
	EmployeeName string
	EmployeeCode string
	IRDNumber    string
	TaxCode      string
	Period       string

	// Earnings
	RegularPay decimal.Decimal
	Overtime   decimal.Decimal
	Allowances decimal.Decimal
	Gross      decimal.Decimal

	// Deductions
	PAYE              decimal.Decimal
	ACCLevy           decimal.Decimal
	KiwiSaverEmployee decimal.Decimal
	KiwiSaverEmployer decimal.Decimal
	StudentLoan       decimal.Decimal
	OtherDeductions   decimal.Decimal

	Net decimal.Decimal

	// Leave balances
	AnnualLeaveHours decimal.Decimal
	SickLeaveDays    decimal.Decimal

	BankAccount      string
	PaymentReference string
}

// BuildPayslipData assembles the payslip record for one entry.
func BuildPayslipData(entry payroll.Entry, emp employee.Employee) PayslipData {
	regular := entry.Gross.Sub(entry.Additions.Overtime).Sub(entry.Additions.Allowances)
	return PayslipData{
		EmployeeName:      emp.FullName,
		EmployeeCode:      emp.EmployeeCode,
		IRDNumber:         emp.IRDNumber,
		TaxCode:           string(emp.TaxCode),
		Period:            entry.Period.String(),
		RegularPay:        regular,
		Overtime:          entry.Additions.Overtime,
		Allowances:        entry.Additions.Allowances,
		Gross:             entry.Gross,
		PAYE:              entry.Deductions.PAYE,
		ACCLevy:           entry.Deductions.ACCLevy,
		KiwiSaverEmployee: entry.Deductions.KiwiSaverEmployee,
		KiwiSaverEmployer: entry.Deductions.KiwiSaverEmployer,
		StudentLoan:       entry.Deductions.StudentLoan,
		OtherDeductions:   entry.Deductions.Other,
		Net:               entry.Net,
		AnnualLeaveHours:  emp.AnnualLeaveHours,
		SickLeaveDays:     emp.SickLeaveDays,
		BankAccount:       entry.Payment.Account.String(),
		PaymentReference:  entry.Payment.Reference,
	}
}

// RenderPayslipPDF renders the payslip as an A4 PDF document.
func RenderPayslipPDF(data PayslipData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s (%s)", data.EmployeeName, data.EmployeeCode))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("IRD number: %s    Tax code: %s", data.IRDNumber, data.TaxCode))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s", data.Period))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Earnings")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	payslipLine(pdf, "Regular pay", data.RegularPay)
	payslipLine(pdf, "Overtime", data.Overtime)
	payslipLine(pdf, "Allowances", data.Allowances)
	payslipLine(pdf, "Gross pay", data.Gross)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Deductions")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	payslipLine(pdf, "PAYE", data.PAYE)
	payslipLine(pdf, "ACC earner levy", data.ACCLevy)
	payslipLine(pdf, "KiwiSaver (employee)", data.KiwiSaverEmployee)
	payslipLine(pdf, "Student loan", data.StudentLoan)
	payslipLine(pdf, "Other", data.OtherDeductions)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	payslipLine(pdf, "Net pay", data.Net)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Ln(4)

	pdf.Cell(0, 8, fmt.Sprintf("KiwiSaver employer contribution: %s", data.KiwiSaverEmployer.StringFixed(2)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Annual leave: %s hours    Sick leave: %s days", data.AnnualLeaveHours, data.SickLeaveDays))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Paid to %s ref %s", data.BankAccount, data.PaymentReference))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func payslipLine(pdf *gofpdf.Fpdf, label string, amount decimal.Decimal) {
	pdf.Cell(90, 7, label)
	pdf.CellFormat(40, 7, amount.StringFixed(2), "", 0, "R", false, 0, "")
	pdf.Ln(7)
}
