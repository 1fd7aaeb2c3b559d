package export

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

// GetCustomer loads one customer.
func (r *Repository) GetCustomer(ctx context.Context, id int64) (*Customer, error) {
	const query = `SELECT id, name, COALESCE(email, '') FROM customers WHERE id = $1`
	var c Customer
	err := r.pool.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.Email)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListStatementLines loads the customer's invoices with the paid amount
// summed from non-cancelled receipts.
func (r *Repository) ListStatementLines(ctx context.Context, customerID int64) ([]StatementLine, error) {
	const query = `
		SELECT i.id, i.number, i.invoice_date, i.due_at, i.status, i.currency, i.total,
		       COALESCE(SUM(rc.amount) FILTER (WHERE UPPER(rc.status) <> 'CANCELLED'), 0) AS paid
		FROM invoices i
		LEFT JOIN receipts rc ON rc.invoice_id = i.id
		WHERE i.customer_id = $1
		GROUP BY i.id
		ORDER BY i.invoice_date, i.id`
	rows, err := r.pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var lines []StatementLine
	for rows.Next() {
		var line StatementLine
		if err := rows.Scan(&line.InvoiceID, &line.Number, &line.IssuedAt, &line.DueAt,
			&line.Status, &line.Currency, &line.Total, &line.Paid); err != nil {
			return nil, err
		}
		line.Outstanding = line.Total - line.Paid
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
