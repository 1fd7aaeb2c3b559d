package flow

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/meridian-crm/meridian/internal/platform/httpx"
)

// Service derives flow timelines and next actions from stored documents.
type Service struct {
	repo RepositoryPort
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// Snapshot loads the four documents of a flow concurrently. The queries are
// independent, all keyed on the quotation id.
func (s *Service) Snapshot(ctx context.Context, quotationID int64) (Snapshot, error) {
	var snap Snapshot
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		doc, err := s.repo.GetQuotation(ctx, quotationID)
		if err != nil {
			return fmt.Errorf("load quotation: %w", err)
		}
		snap.Quotation = doc
		return nil
	})
	g.Go(func() error {
		doc, err := s.repo.GetPurchaseOrder(ctx, quotationID)
		if err != nil {
			return fmt.Errorf("load purchase order: %w", err)
		}
		snap.PurchaseOrder = doc
		return nil
	})
	g.Go(func() error {
		doc, err := s.repo.GetInvoice(ctx, quotationID)
		if err != nil {
			return fmt.Errorf("load invoice: %w", err)
		}
		snap.Invoice = doc
		return nil
	})
	g.Go(func() error {
		receipts, err := s.repo.ListReceipts(ctx, quotationID)
		if err != nil {
			return fmt.Errorf("load receipts: %w", err)
		}
		snap.Receipts = receipts
		return nil
	})
	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// Timeline derives the full flow view: four stage states plus the advised
// next action. current names the stage the caller is viewing from; nil means
// a context-free listing.
func (s *Service) Timeline(ctx context.Context, quotationID int64, current *Stage) (*TimelineView, error) {
	snap, err := s.Snapshot(ctx, quotationID)
	if err != nil {
		return nil, err
	}
	if snap.Empty() {
		return nil, fmt.Errorf("flow %d: %w", quotationID, httpx.ErrNotFound)
	}
	return newTimelineView(snap, current), nil
}
