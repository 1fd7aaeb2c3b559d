package export

import "time"

// Customer identifies the account a statement is rendered for.
type Customer struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// StatementLine is one invoice row on the account statement, with the paid
// amount already reconciled against non-cancelled receipts.
type StatementLine struct {
	InvoiceID   int64     `json:"invoice_id"`
	Number      string    `json:"number"`
	IssuedAt    time.Time `json:"issued_at"`
	DueAt       time.Time `json:"due_at"`
	Status      string    `json:"status"`
	Currency    string    `json:"currency"`
	Total       float64   `json:"total"`
	Paid        float64   `json:"paid"`
	Outstanding float64   `json:"outstanding"`
}

// Statement aggregates a customer's invoices for rendering.
type Statement struct {
	Customer         Customer        `json:"customer"`
	GeneratedAt      time.Time       `json:"generated_at"`
	Lines            []StatementLine `json:"lines"`
	TotalBilled      float64         `json:"total_billed"`
	TotalPaid        float64         `json:"total_paid"`
	TotalOutstanding float64         `json:"total_outstanding"`
}
