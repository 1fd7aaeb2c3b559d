package flow

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository provides PostgreSQL backed persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// GetQuotation loads the quotation snapshot for a flow.
func (r *Repository) GetQuotation(ctx context.Context, quotationID int64) (*DocumentRef, error) {
	const query = `SELECT id, number, quote_date, status FROM quotations WHERE id = $1`
	return r.scanDocument(ctx, query, quotationID)
}

// GetPurchaseOrder loads the purchase order chained to a quotation.
func (r *Repository) GetPurchaseOrder(ctx context.Context, quotationID int64) (*DocumentRef, error) {
	const query = `SELECT id, number, order_date, status FROM purchase_orders WHERE quotation_id = $1 ORDER BY id DESC LIMIT 1`
	return r.scanDocument(ctx, query, quotationID)
}

// GetInvoice loads the invoice chained through the purchase order.
func (r *Repository) GetInvoice(ctx context.Context, quotationID int64) (*DocumentRef, error) {
	const query = `
		SELECT i.id, i.number, i.invoice_date, i.status
		FROM invoices i
		JOIN purchase_orders po ON po.id = i.purchase_order_id
		WHERE po.quotation_id = $1
		ORDER BY i.id DESC LIMIT 1`
	return r.scanDocument(ctx, query, quotationID)
}

// ListReceipts loads all receipts recorded against the flow's invoice.
func (r *Repository) ListReceipts(ctx context.Context, quotationID int64) ([]DocumentRef, error) {
	const query = `
		SELECT rc.id, rc.number, rc.receipt_date, rc.status, rc.amount
		FROM receipts rc
		JOIN invoices i ON i.id = rc.invoice_id
		JOIN purchase_orders po ON po.id = i.purchase_order_id
		WHERE po.quotation_id = $1
		ORDER BY rc.receipt_date, rc.id`
	rows, err := r.pool.Query(ctx, query, quotationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var receipts []DocumentRef
	for rows.Next() {
		var doc DocumentRef
		var amount float64
		if err := rows.Scan(&doc.ID, &doc.Number, &doc.Date, &doc.Status, &amount); err != nil {
			return nil, err
		}
		doc.Amount = &amount
		receipts = append(receipts, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return receipts, nil
}

func (r *Repository) scanDocument(ctx context.Context, query string, quotationID int64) (*DocumentRef, error) {
	var doc DocumentRef
	err := r.pool.QueryRow(ctx, query, quotationID).Scan(&doc.ID, &doc.Number, &doc.Date, &doc.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}
