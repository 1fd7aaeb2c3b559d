package payments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/meridian-crm/meridian/internal/platform/db"
	"github.com/meridian-crm/meridian/internal/platform/httpx"
)

// Repository provides PostgreSQL backed persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// GetInvoice loads one invoice, nil when unknown.
func (r *Repository) GetInvoice(ctx context.Context, id int64) (*Invoice, error) {
	const query = `SELECT id, number, customer_id, currency, total, status, due_at FROM invoices WHERE id = $1`
	var inv Invoice
	err := r.pool.QueryRow(ctx, query, id).Scan(&inv.ID, &inv.Number, &inv.CustomerID, &inv.Currency, &inv.Total, &inv.Status, &inv.DueAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// ListReceipts returns every receipt recorded against an invoice.
func (r *Repository) ListReceipts(ctx context.Context, invoiceID int64) ([]Receipt, error) {
	const query = `
		SELECT id, number, invoice_id, amount, status, method, receipt_date, created_at
		FROM receipts WHERE invoice_id = $1
		ORDER BY receipt_date, id`
	rows, err := r.pool.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var receipts []Receipt
	for rows.Next() {
		var rc Receipt
		if err := rows.Scan(&rc.ID, &rc.Number, &rc.InvoiceID, &rc.Amount, &rc.Status, &rc.Method, &rc.ReceiptDate, &rc.CreatedAt); err != nil {
			return nil, err
		}
		receipts = append(receipts, rc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return receipts, nil
}

// ListOverdueOpen returns non-paid invoices past due as of the date.
func (r *Repository) ListOverdueOpen(ctx context.Context, asOf time.Time) ([]Invoice, error) {
	const query = `
		SELECT id, number, customer_id, currency, total, status, due_at
		FROM invoices
		WHERE status NOT IN ('PAID', 'CANCELLED', 'DRAFT') AND due_at < $1
		ORDER BY due_at, id`
	rows, err := r.pool.Query(ctx, query, asOf)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var invoices []Invoice
	for rows.Next() {
		var inv Invoice
		if err := rows.Scan(&inv.ID, &inv.Number, &inv.CustomerID, &inv.Currency, &inv.Total, &inv.Status, &inv.DueAt); err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return invoices, nil
}

// GenerateNumber produces the next receipt number for the month.
func (r *Repository) GenerateNumber(ctx context.Context, date time.Time) (string, error) {
	const query = `
		SELECT COUNT(*) + 1 FROM receipts
		WHERE date_trunc('month', receipt_date) = date_trunc('month', $1::date)`
	var seq int64
	if err := r.pool.QueryRow(ctx, query, date).Scan(&seq); err != nil {
		return "", err
	}
	return fmt.Sprintf("RC-%s-%04d", date.Format("200601"), seq), nil
}

type txRepo struct {
	tx pgx.Tx
}

// WithTx wraps a callback in a repeatable-read transaction.
func (r *Repository) WithTx(ctx context.Context, fn func(context.Context, TxRepository) error) error {
	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		return fn(ctx, &txRepo{tx: tx})
	})
}

func (r *txRepo) CreateReceipt(ctx context.Context, receipt Receipt) (int64, error) {
	const query = `
		INSERT INTO receipts (number, invoice_id, amount, status, method, receipt_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	var id int64
	err := r.tx.QueryRow(ctx, query,
		receipt.Number, receipt.InvoiceID, receipt.Amount, receipt.Status, receipt.Method, receipt.ReceiptDate, receipt.CreatedAt,
	).Scan(&id)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			return 0, fmt.Errorf("receipt %s: %w", receipt.Number, httpx.ErrDuplicate)
		}
		return 0, err
	}
	return id, nil
}

func (r *txRepo) UpdateInvoiceStatus(ctx context.Context, invoiceID int64, status InvoiceStatus) error {
	_, err := r.tx.Exec(ctx, `UPDATE invoices SET status = $2, updated_at = now() WHERE id = $1`, invoiceID, status)
	return err
}
