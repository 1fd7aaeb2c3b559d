package notifications

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/meridian-crm/meridian/internal/expiry"
	"github.com/meridian-crm/meridian/internal/platform/httpx"
)

const defaultListLimit = 100

// Service handles notification listing, acknowledgement and publication.
type Service struct {
	repo  RepositoryPort
	store ReadStateStore
	clock func() time.Time
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort, store ReadStateStore) *Service {
	return &Service{
		repo:  repo,
		store: store,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// List returns notifications annotated with the owner's read state.
func (s *Service) List(ctx context.Context, owner string) ([]View, error) {
	items, err := s.repo.List(ctx, defaultListLimit)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	state, err := s.store.Load(ctx, owner)
	if err != nil {
		return nil, err
	}
	return Annotate(items, state), nil
}

// Unread returns the owner's unread notification count.
func (s *Service) Unread(ctx context.Context, owner string) (int, error) {
	items, err := s.repo.List(ctx, defaultListLimit)
	if err != nil {
		return 0, fmt.Errorf("list notifications: %w", err)
	}
	state, err := s.store.Load(ctx, owner)
	if err != nil {
		return 0, err
	}
	return UnreadCount(items, state), nil
}

// Acknowledge marks one notification read for the owner.
func (s *Service) Acknowledge(ctx context.Context, owner, id string) error {
	known, err := s.repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check notification: %w", err)
	}
	if !known {
		return fmt.Errorf("notification %s: %w", id, httpx.ErrNotFound)
	}
	return s.store.MarkRead(ctx, owner, id)
}

// AcknowledgeAll marks every current notification read for the owner.
func (s *Service) AcknowledgeAll(ctx context.Context, owner string) (int, error) {
	items, err := s.repo.List(ctx, defaultListLimit)
	if err != nil {
		return 0, fmt.Errorf("list notifications: %w", err)
	}
	state, err := s.store.Load(ctx, owner)
	if err != nil {
		return 0, err
	}
	var unread []string
	for _, n := range items {
		if !state.Contains(n.ID) {
			unread = append(unread, n.ID)
		}
	}
	if len(unread) == 0 {
		return 0, nil
	}
	if err := s.store.MarkRead(ctx, owner, unread...); err != nil {
		return 0, err
	}
	return len(unread), nil
}

// PublishExpiryAlert upserts a residence-expiry notification. Satisfies the
// expiry scan job's Notifier port.
func (s *Service) PublishExpiryAlert(ctx context.Context, permit expiry.ResidencePermit, alert expiry.Alert) error {
	title := fmt.Sprintf("Residence permit %s for %s expires in %d days", permit.Number, permit.EmployeeName, alert.DaysRemaining)
	if alert.Severity == expiry.SeverityExpired {
		title = fmt.Sprintf("Residence permit %s for %s expired %d days ago", permit.Number, permit.EmployeeName, -alert.DaysRemaining)
	}
	return s.repo.Upsert(ctx, Notification{
		ID:        uuid.NewString(),
		Kind:      KindResidenceExpiry,
		RefID:     permit.ID,
		Title:     title,
		Severity:  string(alert.Severity),
		CreatedAt: s.clock(),
	})
}

// PublishOutstandingInvoice upserts an outstanding-invoice notification.
func (s *Service) PublishOutstandingInvoice(ctx context.Context, invoiceID int64, number string, outstanding float64) error {
	return s.repo.Upsert(ctx, Notification{
		ID:        uuid.NewString(),
		Kind:      KindInvoiceOutstanding,
		RefID:     invoiceID,
		Title:     fmt.Sprintf("Invoice %s has %.2f outstanding", number, outstanding),
		Severity:  "warning",
		CreatedAt: s.clock(),
	})
}
