package expiry

import "context"

// RepositoryPort defines data access for residence permits.
type RepositoryPort interface {
	// ListExpiringWithin returns permits whose expiry date falls on or
	// before the cutoff, already-expired ones included, ordered by expiry.
	ListExpiringWithin(ctx context.Context, cutoff string) ([]ResidencePermit, error)
}
