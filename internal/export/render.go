package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var amountPrinter = message.NewPrinter(language.English)

func formatAmount(v float64) string {
	return amountPrinter.Sprintf("%.2f", v)
}

// BuildStatementPDF renders an account statement as PDF.
func BuildStatementPDF(stmt *Statement) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, "Account Statement")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Customer: %s", stmt.Customer.Name))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", stmt.GeneratedAt.Format(time.RFC3339)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Total Billed: %s", formatAmount(stmt.TotalBilled)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Total Paid: %s", formatAmount(stmt.TotalPaid)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Outstanding: %s", formatAmount(stmt.TotalOutstanding)))
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(30, 6, "Invoice", "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 6, "Issued", "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 6, "Due", "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 6, "Status", "1", 0, "C", false, 0, "")
	pdf.CellFormat(28, 6, "Total", "1", 0, "C", false, 0, "")
	pdf.CellFormat(28, 6, "Paid", "1", 0, "C", false, 0, "")
	pdf.CellFormat(28, 6, "Outstanding", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, line := range stmt.Lines {
		pdf.CellFormat(30, 6, line.Number, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 6, line.IssuedAt.Format("2006-01-02"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(25, 6, line.DueAt.Format("2006-01-02"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(25, 6, line.Status, "1", 0, "C", false, 0, "")
		pdf.CellFormat(28, 6, formatAmount(line.Total), "1", 0, "R", false, 0, "")
		pdf.CellFormat(28, 6, formatAmount(line.Paid), "1", 0, "R", false, 0, "")
		pdf.CellFormat(28, 6, formatAmount(line.Outstanding), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildStatementXLSX renders an account statement as XLSX with a summary
// sheet and an invoices sheet.
func BuildStatementXLSX(stmt *Statement) ([]byte, error) {
	f := excelize.NewFile()
	summarySheet := "summary"
	invoicesSheet := "invoices"
	f.SetSheetName("Sheet1", summarySheet)
	f.NewSheet(invoicesSheet)

	_ = f.SetCellValue(summarySheet, "A1", "Account Statement")
	_ = f.SetCellValue(summarySheet, "A3", "Customer")
	_ = f.SetCellValue(summarySheet, "B3", stmt.Customer.Name)
	_ = f.SetCellValue(summarySheet, "A4", "Email")
	_ = f.SetCellValue(summarySheet, "B4", stmt.Customer.Email)
	_ = f.SetCellValue(summarySheet, "A5", "Generated")
	_ = f.SetCellValue(summarySheet, "B5", stmt.GeneratedAt.Format(time.RFC3339))
	_ = f.SetCellValue(summarySheet, "A6", "Total Billed")
	_ = f.SetCellValue(summarySheet, "B6", stmt.TotalBilled)
	_ = f.SetCellValue(summarySheet, "A7", "Total Paid")
	_ = f.SetCellValue(summarySheet, "B7", stmt.TotalPaid)
	_ = f.SetCellValue(summarySheet, "A8", "Outstanding")
	_ = f.SetCellValue(summarySheet, "B8", stmt.TotalOutstanding)

	_ = f.SetCellValue(invoicesSheet, "A1", "Invoice")
	_ = f.SetCellValue(invoicesSheet, "B1", "Issued")
	_ = f.SetCellValue(invoicesSheet, "C1", "Due")
	_ = f.SetCellValue(invoicesSheet, "D1", "Status")
	_ = f.SetCellValue(invoicesSheet, "E1", "Currency")
	_ = f.SetCellValue(invoicesSheet, "F1", "Total")
	_ = f.SetCellValue(invoicesSheet, "G1", "Paid")
	_ = f.SetCellValue(invoicesSheet, "H1", "Outstanding")
	for i, line := range stmt.Lines {
		row := i + 2
		_ = f.SetCellValue(invoicesSheet, fmt.Sprintf("A%d", row), line.Number)
		_ = f.SetCellValue(invoicesSheet, fmt.Sprintf("B%d", row), line.IssuedAt.Format("2006-01-02"))
		_ = f.SetCellValue(invoicesSheet, fmt.Sprintf("C%d", row), line.DueAt.Format("2006-01-02"))
		_ = f.SetCellValue(invoicesSheet, fmt.Sprintf("D%d", row), line.Status)
		_ = f.SetCellValue(invoicesSheet, fmt.Sprintf("E%d", row), line.Currency)
		_ = f.SetCellValue(invoicesSheet, fmt.Sprintf("F%d", row), line.Total)
		_ = f.SetCellValue(invoicesSheet, fmt.Sprintf("G%d", row), line.Paid)
		_ = f.SetCellValue(invoicesSheet, fmt.Sprintf("H%d", row), line.Outstanding)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
