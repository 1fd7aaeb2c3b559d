package export

import (
	"context"
	"fmt"
	"time"

	"github.com/meridian-crm/meridian/internal/platform/httpx"
)

// Service assembles account statements.
type Service struct {
	repo  RepositoryPort
	clock func() time.Time
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{
		repo: repo,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Statement loads a customer and aggregates their invoice lines into a
// renderable statement.
func (s *Service) Statement(ctx context.Context, customerID int64) (*Statement, error) {
	customer, err := s.repo.GetCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("load customer: %w", err)
	}
	if customer == nil {
		return nil, fmt.Errorf("customer %d: %w", customerID, httpx.ErrNotFound)
	}
	lines, err := s.repo.ListStatementLines(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("load statement lines: %w", err)
	}

	stmt := &Statement{
		Customer:    *customer,
		GeneratedAt: s.clock(),
		Lines:       lines,
	}
	for _, line := range lines {
		stmt.TotalBilled += line.Total
		stmt.TotalPaid += line.Paid
		stmt.TotalOutstanding += line.Outstanding
	}
	return stmt, nil
}
