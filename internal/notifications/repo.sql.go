package notifications

import (
	"context"

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

// Upsert inserts or refreshes a notification keyed by (kind, ref_id).
func (r *Repository) Upsert(ctx context.Context, n Notification) error {
	const query = `
		INSERT INTO notifications (id, kind, ref_id, title, severity, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (kind, ref_id)
		DO UPDATE SET title = EXCLUDED.title, severity = EXCLUDED.severity`
	_, err := r.pool.Exec(ctx, query, n.ID, n.Kind, n.RefID, n.Title, n.Severity, n.CreatedAt)
	return err
}

// List returns the newest notifications first.
func (r *Repository) List(ctx context.Context, limit int) ([]Notification, error) {
	const query = `
		SELECT id, kind, ref_id, title, severity, created_at
		FROM notifications
		ORDER BY created_at DESC, id
		LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Notification
	for rows.Next() {
		var n Notification
		if err := rows.Scan(&n.ID, &n.Kind, &n.RefID, &n.Title, &n.Severity, &n.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Exists reports whether a notification id is known.
func (r *Repository) Exists(ctx context.Context, id string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM notifications WHERE id = $1)`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
