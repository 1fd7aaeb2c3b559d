package expiry

import (
	"context"
	"fmt"
	"time"
)

// DefaultWindowDays is the look-ahead window for expiring-permit listings.
// One window everywhere; the scan job and the API both use it unless the
// caller overrides.
const DefaultWindowDays = warningWindowDays

// Service derives expiry alerts for residence permits.
type Service struct {
	repo RepositoryPort
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// ListExpiring returns alerts for permits expiring within the window,
// expired permits included, ordered by expiry date.
func (s *Service) ListExpiring(ctx context.Context, today time.Time, windowDays int) ([]PermitAlert, error) {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	cutoff := today.AddDate(0, 0, windowDays).Format("2006-01-02")
	permits, err := s.repo.ListExpiringWithin(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("list expiring permits: %w", err)
	}
	alerts := make([]PermitAlert, 0, len(permits))
	for _, p := range permits {
		alerts = append(alerts, PermitAlert{Permit: p, Alert: NewAlert(p.ExpiresOn, today)})
	}
	return alerts, nil
}
