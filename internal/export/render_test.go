package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleStatement() *Statement {
	return &Statement{
		Customer:    Customer{ID: 7, Name: "Acme Trading", Email: "billing@acme.example"},
		GeneratedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Lines: []StatementLine{
			{InvoiceID: 1, Number: "INV-001", IssuedAt: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
				DueAt: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), Status: "PAID", Currency: "USD",
				Total: 1200, Paid: 1200},
			{InvoiceID: 2, Number: "INV-002", IssuedAt: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
				DueAt: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), Status: "SENT", Currency: "USD",
				Total: 800, Paid: 300, Outstanding: 500},
		},
		TotalBilled:      2000,
		TotalPaid:        1500,
		TotalOutstanding: 500,
	}
}

func TestBuildStatementXLSX(t *testing.T) {
	data, err := BuildStatementXLSX(sampleStatement())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	name, err := f.GetCellValue("summary", "B3")
	require.NoError(t, err)
	require.Equal(t, "Acme Trading", name)

	number, err := f.GetCellValue("invoices", "A3")
	require.NoError(t, err)
	require.Equal(t, "INV-002", number)

	rows, err := f.GetRows("invoices")
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + two invoices
}

func TestBuildStatementPDF(t *testing.T) {
	data, err := BuildStatementPDF(sampleStatement())
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	require.Greater(t, len(data), 500)
}

func TestFormatAmountGroupsThousands(t *testing.T) {
	require.Equal(t, "1,234.50", formatAmount(1234.5))
	require.Equal(t, "0.00", formatAmount(0))
}
