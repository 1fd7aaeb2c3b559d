package notifications

import (
	"context"
	"sort"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meridian-crm/meridian/internal/expiry"
	"github.com/meridian-crm/meridian/internal/platform/httpx"
)

type memoryNotificationRepo struct {
	byKey map[string]Notification
}

func newMemoryNotificationRepo() *memoryNotificationRepo {
	return &memoryNotificationRepo{byKey: make(map[string]Notification)}
}

func (r *memoryNotificationRepo) Upsert(ctx context.Context, n Notification) error {
	key := string(n.Kind) + "/" + strconv.FormatInt(n.RefID, 10)
	if existing, ok := r.byKey[key]; ok {
		existing.Title = n.Title
		existing.Severity = n.Severity
		r.byKey[key] = existing
		return nil
	}
	r.byKey[key] = n
	return nil
}

func (r *memoryNotificationRepo) List(ctx context.Context, limit int) ([]Notification, error) {
	items := make([]Notification, 0, len(r.byKey))
	for _, n := range r.byKey {
		items = append(items, n)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (r *memoryNotificationRepo) Exists(ctx context.Context, id string) (bool, error) {
	for _, n := range r.byKey {
		if n.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func newTestService(t *testing.T) (*Service, *memoryNotificationRepo) {
	t.Helper()
	repo := newMemoryNotificationRepo()
	return NewService(repo, newTestStore(t)), repo
}

func TestPublishExpiryAlertUpsertsOncePerPermit(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	permit := expiry.ResidencePermit{ID: 5, EmployeeName: "Dana", Number: "RP-5"}

	require.NoError(t, svc.PublishExpiryAlert(ctx, permit, expiry.Alert{DaysRemaining: 6, Severity: expiry.SeverityCritical}))
	// The nightly rescan refreshes the same notification instead of piling
	// up duplicates.
	require.NoError(t, svc.PublishExpiryAlert(ctx, permit, expiry.Alert{DaysRemaining: -1, Severity: expiry.SeverityExpired}))

	items, err := repo.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, string(expiry.SeverityExpired), items[0].Severity)
	require.Contains(t, items[0].Title, "expired 1 days ago")
}

func TestListAndAcknowledgeFlow(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.PublishOutstandingInvoice(ctx, 9, "INV-009", 250))
	require.NoError(t, svc.PublishExpiryAlert(ctx, expiry.ResidencePermit{ID: 5, EmployeeName: "Dana", Number: "RP-5"},
		expiry.Alert{DaysRemaining: 3, Severity: expiry.SeverityCritical}))

	views, err := svc.List(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, views, 2)
	for _, v := range views {
		require.False(t, v.Read)
	}

	unread, err := svc.Unread(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, 2, unread)

	require.NoError(t, svc.Acknowledge(ctx, "alice", views[0].ID))

	unread, err = svc.Unread(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, 1, unread)

	// Bob's read state is independent.
	unread, err = svc.Unread(ctx, "bob")
	require.NoError(t, err)
	require.Equal(t, 2, unread)
}

func TestAcknowledgeUnknownNotification(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.Acknowledge(context.Background(), "alice", "no-such-id")

	require.ErrorIs(t, err, httpx.ErrNotFound)
}

func TestAcknowledgeAll(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.PublishOutstandingInvoice(ctx, 1, "INV-001", 10))
	require.NoError(t, svc.PublishOutstandingInvoice(ctx, 2, "INV-002", 20))

	count, err := svc.AcknowledgeAll(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, 2, count)

	count, err = svc.AcknowledgeAll(ctx, "alice")
	require.NoError(t, err)
	require.Zero(t, count)
}
