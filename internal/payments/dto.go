package payments

import "time"

// CreateReceiptRequest records one payment against an invoice.
type CreateReceiptRequest struct {
	InvoiceID   int64     `json:"invoice_id" validate:"required,gt=0"`
	Amount      float64   `json:"amount" validate:"required,gt=0"`
	Method      string    `json:"method" validate:"required,max=30"`
	ReceiptDate time.Time `json:"receipt_date" validate:"required"`
}

// InvoiceSummaryView pairs an invoice with its derived payment summary.
type InvoiceSummaryView struct {
	Invoice  Invoice   `json:"invoice"`
	Receipts []Receipt `json:"receipts"`
	Summary  Summary   `json:"summary"`
}
