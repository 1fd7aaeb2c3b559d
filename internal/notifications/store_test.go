package notifications

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *RedisReadStateStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisReadStateStore(client)
}

func TestReadStateStoreRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	state, err := store.Load(ctx, "alice")
	require.NoError(t, err)
	require.Zero(t, state.Len())

	require.NoError(t, store.MarkRead(ctx, "alice", "n1", "n2"))

	state, err = store.Load(ctx, "alice")
	require.NoError(t, err)
	require.True(t, state.Contains("n1"))
	require.True(t, state.Contains("n2"))
	require.False(t, state.Contains("n3"))
}

func TestReadStateStoreIsPerOwner(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.MarkRead(ctx, "alice", "n1"))

	state, err := store.Load(ctx, "bob")
	require.NoError(t, err)
	require.False(t, state.Contains("n1"))
}

func TestMarkReadIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.MarkRead(ctx, "alice", "n1"))
	require.NoError(t, store.MarkRead(ctx, "alice", "n1"))

	state, err := store.Load(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, 1, state.Len())
}

func TestMarkReadWithNoIDsIsNoop(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.MarkRead(context.Background(), "alice"))
}
