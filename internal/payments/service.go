package payments

import (
	"context"
	"fmt"
	"time"

	"github.com/meridian-crm/meridian/internal/platform/httpx"
)

// Service handles payment recording and reconciliation.
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

// InvoiceSummary loads an invoice with its receipts and derives the payment
// summary.
func (s *Service) InvoiceSummary(ctx context.Context, invoiceID int64) (*InvoiceSummaryView, error) {
	invoice, err := s.repo.GetInvoice(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("load invoice: %w", err)
	}
	if invoice == nil {
		return nil, fmt.Errorf("invoice %d: %w", invoiceID, httpx.ErrNotFound)
	}
	receipts, err := s.repo.ListReceipts(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("load receipts: %w", err)
	}
	return &InvoiceSummaryView{
		Invoice:  *invoice,
		Receipts: receipts,
		Summary:  Reconcile(invoice.Total, receipts),
	}, nil
}

// RecordReceipt records a payment against an invoice. When the payment
// settles the invoice, its status flips to PAID in the same transaction.
func (s *Service) RecordReceipt(ctx context.Context, req CreateReceiptRequest) (*Receipt, error) {
	invoice, err := s.repo.GetInvoice(ctx, req.InvoiceID)
	if err != nil {
		return nil, fmt.Errorf("verify invoice: %w", err)
	}
	if invoice == nil {
		return nil, fmt.Errorf("invoice %d: %w", req.InvoiceID, httpx.ErrNotFound)
	}
	if invoice.Status == InvoiceStatusPaid {
		return nil, fmt.Errorf("invoice %s is already paid: %w", invoice.Number, httpx.ErrValidation)
	}

	existing, err := s.repo.ListReceipts(ctx, req.InvoiceID)
	if err != nil {
		return nil, fmt.Errorf("load receipts: %w", err)
	}

	number, err := s.repo.GenerateNumber(ctx, req.ReceiptDate)
	if err != nil {
		return nil, fmt.Errorf("generate receipt number: %w", err)
	}

	receipt := Receipt{
		Number:      number,
		InvoiceID:   req.InvoiceID,
		Amount:      req.Amount,
		Status:      ReceiptStatusIssued,
		Method:      req.Method,
		ReceiptDate: req.ReceiptDate,
		CreatedAt:   s.clock(),
	}

	err = s.repo.WithTx(ctx, func(ctx context.Context, tx TxRepository) error {
		id, err := tx.CreateReceipt(ctx, receipt)
		if err != nil {
			return fmt.Errorf("create receipt: %w", err)
		}
		receipt.ID = id

		summary := Reconcile(invoice.Total, append(existing, receipt))
		if summary.Settled {
			if err := tx.UpdateInvoiceStatus(ctx, invoice.ID, InvoiceStatusPaid); err != nil {
				return fmt.Errorf("mark invoice paid: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &receipt, nil
}

// ListOverdueOpen exposes overdue unpaid invoices for the notification scan.
func (s *Service) ListOverdueOpen(ctx context.Context, asOf time.Time) ([]Invoice, error) {
	return s.repo.ListOverdueOpen(ctx, asOf)
}

// OutstandingFor computes the outstanding amount for one invoice as of its
// stored receipts.
func (s *Service) OutstandingFor(ctx context.Context, invoice Invoice) (float64, error) {
	receipts, err := s.repo.ListReceipts(ctx, invoice.ID)
	if err != nil {
		return 0, fmt.Errorf("load receipts: %w", err)
	}
	return Reconcile(invoice.Total, receipts).Outstanding, nil
}
