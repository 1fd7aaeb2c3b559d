package expiry

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

// ListExpiringWithin returns permits expiring on or before the cutoff date.
func (r *Repository) ListExpiringWithin(ctx context.Context, cutoff string) ([]ResidencePermit, error) {
	const query = `
		SELECT rp.id, rp.employee_id, e.full_name, rp.number, rp.expires_on
		FROM residence_permits rp
		JOIN employees e ON e.id = rp.employee_id
		WHERE rp.expires_on <= $1::date
		ORDER BY rp.expires_on, rp.id`
	rows, err := r.pool.Query(ctx, query, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var permits []ResidencePermit
	for rows.Next() {
		var p ResidencePermit
		if err := rows.Scan(&p.ID, &p.EmployeeID, &p.EmployeeName, &p.Number, &p.ExpiresOn); err != nil {
			return nil, err
		}
		permits = append(permits, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return permits, nil
}
