package export

import "context"

// RepositoryPort abstracts statement reads for the export service.
type RepositoryPort interface {
	// GetCustomer returns nil when the customer does not exist.
	GetCustomer(ctx context.Context, id int64) (*Customer, error)
	// ListStatementLines returns the customer's invoices ordered by issue
	// date, each with its paid amount already summed from non-cancelled
	// receipts.
	ListStatementLines(ctx context.Context, customerID int64) ([]StatementLine, error)
}
