package payments

import (
	"context"
	"time"
)

// RepositoryPort defines data access for invoices and receipts.
type RepositoryPort interface {
	GetInvoice(ctx context.Context, id int64) (*Invoice, error)
	ListReceipts(ctx context.Context, invoiceID int64) ([]Receipt, error)
	// ListOverdueOpen returns non-paid invoices past due as of the date.
	ListOverdueOpen(ctx context.Context, asOf time.Time) ([]Invoice, error)
	GenerateNumber(ctx context.Context, date time.Time) (string, error)
	WithTx(ctx context.Context, fn func(context.Context, TxRepository) error) error
}

// TxRepository exposes transactional operations.
type TxRepository interface {
	CreateReceipt(ctx context.Context, receipt Receipt) (int64, error)
	UpdateInvoiceStatus(ctx context.Context, invoiceID int64, status InvoiceStatus) error
}
