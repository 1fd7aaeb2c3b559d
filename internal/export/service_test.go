package export

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/meridian-crm/meridian/internal/platform/httpx"
)

type memoryStatementRepo struct {
	customers map[int64]Customer
	lines     map[int64][]StatementLine
}

func newMemoryStatementRepo() *memoryStatementRepo {
	return &memoryStatementRepo{
		customers: make(map[int64]Customer),
		lines:     make(map[int64][]StatementLine),
	}
}

func (r *memoryStatementRepo) GetCustomer(ctx context.Context, id int64) (*Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *memoryStatementRepo) ListStatementLines(ctx context.Context, customerID int64) ([]StatementLine, error) {
	return r.lines[customerID], nil
}

func seedStatement(repo *memoryStatementRepo) {
	repo.customers[7] = Customer{ID: 7, Name: "Acme Trading", Email: "billing@acme.example"}
	repo.lines[7] = []StatementLine{
		{
			InvoiceID: 1, Number: "INV-001",
			IssuedAt: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
			DueAt:    time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
			Status:   "PAID", Currency: "USD",
			Total: 1200, Paid: 1200, Outstanding: 0,
		},
		{
			InvoiceID: 2, Number: "INV-002",
			IssuedAt: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
			DueAt:    time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
			Status:   "SENT", Currency: "USD",
			Total: 800, Paid: 300, Outstanding: 500,
		},
	}
}

func TestStatementAggregatesTotals(t *testing.T) {
	repo := newMemoryStatementRepo()
	seedStatement(repo)
	svc := NewService(repo)

	stmt, err := svc.Statement(context.Background(), 7)

	require.NoError(t, err)
	require.Equal(t, "Acme Trading", stmt.Customer.Name)
	require.Len(t, stmt.Lines, 2)
	require.InDelta(t, 2000, stmt.TotalBilled, 1e-9)
	require.InDelta(t, 1500, stmt.TotalPaid, 1e-9)
	require.InDelta(t, 500, stmt.TotalOutstanding, 1e-9)
}

func TestStatementUnknownCustomer(t *testing.T) {
	svc := NewService(newMemoryStatementRepo())

	_, err := svc.Statement(context.Background(), 99)

	require.ErrorIs(t, err, httpx.ErrNotFound)
}

func TestStatementNoInvoices(t *testing.T) {
	repo := newMemoryStatementRepo()
	repo.customers[1] = Customer{ID: 1, Name: "Empty Ltd"}
	svc := NewService(repo)

	stmt, err := svc.Statement(context.Background(), 1)

	require.NoError(t, err)
	require.Empty(t, stmt.Lines)
	require.Zero(t, stmt.TotalBilled)
}
