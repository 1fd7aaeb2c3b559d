package payments

import (
	"strings"
	"time"
)

// ReceiptStatus enumerates receipt statuses.
type ReceiptStatus string

const (
	ReceiptStatusIssued    ReceiptStatus = "ISSUED"
	ReceiptStatusCompleted ReceiptStatus = "COMPLETED"
	ReceiptStatusCancelled ReceiptStatus = "CANCELLED"
)

// Receipt model.
type Receipt struct {
	ID          int64         `json:"id"`
	Number      string        `json:"number"`
	InvoiceID   int64         `json:"invoice_id"`
	Amount      float64       `json:"amount"`
	Status      ReceiptStatus `json:"status"`
	Method      string        `json:"method"`
	ReceiptDate time.Time     `json:"receipt_date"`
	CreatedAt   time.Time     `json:"created_at"`
}

// Cancelled reports whether the receipt no longer counts towards payment.
func (r Receipt) Cancelled() bool {
	return strings.EqualFold(strings.TrimSpace(string(r.Status)), string(ReceiptStatusCancelled))
}

// InvoiceStatus enumerates invoice statuses the payments side cares about.
type InvoiceStatus string

const (
	InvoiceStatusSent    InvoiceStatus = "SENT"
	InvoiceStatusPaid    InvoiceStatus = "PAID"
	InvoiceStatusOverdue InvoiceStatus = "OVERDUE"
)

// Invoice model.
type Invoice struct {
	ID         int64         `json:"id"`
	Number     string        `json:"number"`
	CustomerID int64         `json:"customer_id"`
	Currency   string        `json:"currency"`
	Total      float64       `json:"total"`
	Status     InvoiceStatus `json:"status"`
	DueAt      time.Time     `json:"due_at"`
}

// Summary is the derived payment state of one invoice.
type Summary struct {
	Total       float64 `json:"total"`
	Paid        float64 `json:"paid"`
	Outstanding float64 `json:"outstanding"`
	Settled     bool    `json:"settled"`
}
