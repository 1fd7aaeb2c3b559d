package payments

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/meridian-crm/meridian/internal/platform/httpx"
)

type memoryPaymentsRepo struct {
	invoices      map[int64]*Invoice
	receipts      map[int64][]Receipt
	nextReceiptID int64
	numberSeq     int
}

func newMemoryPaymentsRepo() *memoryPaymentsRepo {
	return &memoryPaymentsRepo{
		invoices: make(map[int64]*Invoice),
		receipts: make(map[int64][]Receipt),
	}
}

func (r *memoryPaymentsRepo) GetInvoice(ctx context.Context, id int64) (*Invoice, error) {
	inv, ok := r.invoices[id]
	if !ok {
		return nil, nil
	}
	copied := *inv
	return &copied, nil
}

func (r *memoryPaymentsRepo) ListReceipts(ctx context.Context, invoiceID int64) ([]Receipt, error) {
	return r.receipts[invoiceID], nil
}

func (r *memoryPaymentsRepo) ListOverdueOpen(ctx context.Context, asOf time.Time) ([]Invoice, error) {
	var out []Invoice
	for _, inv := range r.invoices {
		if inv.Status != InvoiceStatusPaid && inv.DueAt.Before(asOf) {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (r *memoryPaymentsRepo) GenerateNumber(ctx context.Context, date time.Time) (string, error) {
	r.numberSeq++
	return fmt.Sprintf("RC-%s-%04d", date.Format("200601"), r.numberSeq), nil
}

func (r *memoryPaymentsRepo) WithTx(ctx context.Context, fn func(context.Context, TxRepository) error) error {
	return fn(ctx, &memoryTxRepo{repo: r})
}

type memoryTxRepo struct {
	repo *memoryPaymentsRepo
}

func (t *memoryTxRepo) CreateReceipt(ctx context.Context, receipt Receipt) (int64, error) {
	t.repo.nextReceiptID++
	receipt.ID = t.repo.nextReceiptID
	t.repo.receipts[receipt.InvoiceID] = append(t.repo.receipts[receipt.InvoiceID], receipt)
	return receipt.ID, nil
}

func (t *memoryTxRepo) UpdateInvoiceStatus(ctx context.Context, invoiceID int64, status InvoiceStatus) error {
	if inv, ok := t.repo.invoices[invoiceID]; ok {
		inv.Status = status
	}
	return nil
}

func seedInvoice(repo *memoryPaymentsRepo, id int64, total float64, status InvoiceStatus) {
	repo.invoices[id] = &Invoice{
		ID:         id,
		Number:     fmt.Sprintf("INV-%03d", id),
		CustomerID: 1,
		Currency:   "USD",
		Total:      total,
		Status:     status,
		DueAt:      time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestInvoiceSummaryReconciles(t *testing.T) {
	repo := newMemoryPaymentsRepo()
	seedInvoice(repo, 1, 130, InvoiceStatusSent)
	repo.receipts[1] = []Receipt{
		{ID: 1, InvoiceID: 1, Amount: 100, Status: ReceiptStatusIssued},
		{ID: 2, InvoiceID: 1, Amount: 50, Status: ReceiptStatusCancelled},
	}
	svc := NewService(repo)

	view, err := svc.InvoiceSummary(context.Background(), 1)

	require.NoError(t, err)
	require.InDelta(t, 100, view.Summary.Paid, 1e-9)
	require.InDelta(t, 30, view.Summary.Outstanding, 1e-9)
	require.False(t, view.Summary.Settled)
	require.Len(t, view.Receipts, 2)
}

func TestInvoiceSummaryUnknownInvoice(t *testing.T) {
	svc := NewService(newMemoryPaymentsRepo())

	_, err := svc.InvoiceSummary(context.Background(), 42)

	require.ErrorIs(t, err, httpx.ErrNotFound)
}

func TestRecordReceiptPartialKeepsInvoiceOpen(t *testing.T) {
	repo := newMemoryPaymentsRepo()
	seedInvoice(repo, 1, 200, InvoiceStatusSent)
	svc := NewService(repo)

	receipt, err := svc.RecordReceipt(context.Background(), CreateReceiptRequest{
		InvoiceID:   1,
		Amount:      80,
		Method:      "bank_transfer",
		ReceiptDate: time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	require.NotZero(t, receipt.ID)
	require.Equal(t, "RC-202606-0001", receipt.Number)
	require.Equal(t, InvoiceStatusSent, repo.invoices[1].Status)
}

func TestRecordReceiptSettlingPaymentMarksInvoicePaid(t *testing.T) {
	repo := newMemoryPaymentsRepo()
	seedInvoice(repo, 1, 200, InvoiceStatusSent)
	repo.receipts[1] = []Receipt{{ID: 1, InvoiceID: 1, Amount: 120, Status: ReceiptStatusIssued}}
	svc := NewService(repo)

	_, err := svc.RecordReceipt(context.Background(), CreateReceiptRequest{
		InvoiceID:   1,
		Amount:      80,
		Method:      "cash",
		ReceiptDate: time.Date(2026, 6, 11, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	require.Equal(t, InvoiceStatusPaid, repo.invoices[1].Status)
}

func TestRecordReceiptRejectsPaidInvoice(t *testing.T) {
	repo := newMemoryPaymentsRepo()
	seedInvoice(repo, 1, 100, InvoiceStatusPaid)
	svc := NewService(repo)

	_, err := svc.RecordReceipt(context.Background(), CreateReceiptRequest{
		InvoiceID:   1,
		Amount:      10,
		Method:      "cash",
		ReceiptDate: time.Now(),
	})

	require.ErrorIs(t, err, httpx.ErrValidation)
}

func TestRecordReceiptUnknownInvoice(t *testing.T) {
	svc := NewService(newMemoryPaymentsRepo())

	_, err := svc.RecordReceipt(context.Background(), CreateReceiptRequest{
		InvoiceID:   9,
		Amount:      10,
		Method:      "cash",
		ReceiptDate: time.Now(),
	})

	require.ErrorIs(t, err, httpx.ErrNotFound)
}
