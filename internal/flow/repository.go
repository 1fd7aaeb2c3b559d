package flow

import "context"

// RepositoryPort defines data access for the documents of a commercial
// flow, all keyed on the anchoring quotation id. A missing document is
// returned as nil, not as an error; a dangling chain reference resolves to
// absent the same way.
type RepositoryPort interface {
	GetQuotation(ctx context.Context, quotationID int64) (*DocumentRef, error)
	GetPurchaseOrder(ctx context.Context, quotationID int64) (*DocumentRef, error)
	GetInvoice(ctx context.Context, quotationID int64) (*DocumentRef, error)
	ListReceipts(ctx context.Context, quotationID int64) ([]DocumentRef, error)
}
