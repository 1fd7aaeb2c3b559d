package notifications

import "context"

// RepositoryPort defines persistence for notifications.
type RepositoryPort interface {
	// Upsert inserts a notification, or refreshes title and severity when
	// one already exists for the same kind and reference.
	Upsert(ctx context.Context, n Notification) error
	// List returns the newest notifications first.
	List(ctx context.Context, limit int) ([]Notification, error)
	// Exists reports whether a notification id is known.
	Exists(ctx context.Context, id string) (bool, error)
}
