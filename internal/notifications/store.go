package notifications

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// ReadStateStore persists acknowledged notification ids per owner. The
// derivation itself never touches the store; services load a ReadState
// value, derive, and mark acknowledgements explicitly.
type ReadStateStore interface {
	Load(ctx context.Context, owner string) (ReadState, error)
	MarkRead(ctx context.Context, owner string, ids ...string) error
}

// RedisReadStateStore keeps read state in a redis set per owner.
type RedisReadStateStore struct {
	client *redis.Client
	prefix string
}

// NewRedisReadStateStore constructs a redis-backed store.
func NewRedisReadStateStore(client *redis.Client) *RedisReadStateStore {
	return &RedisReadStateStore{client: client, prefix: "notifications:read:"}
}

// Load returns the owner's acknowledged ids.
func (s *RedisReadStateStore) Load(ctx context.Context, owner string) (ReadState, error) {
	ids, err := s.client.SMembers(ctx, s.key(owner)).Result()
	if err != nil {
		return ReadState{}, fmt.Errorf("notifications: load read state: %w", err)
	}
	return NewReadState(ids...), nil
}

// MarkRead adds ids to the owner's acknowledged set.
func (s *RedisReadStateStore) MarkRead(ctx context.Context, owner string, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	members := make([]any, 0, len(ids))
	for _, id := range ids {
		members = append(members, id)
	}
	if err := s.client.SAdd(ctx, s.key(owner), members...).Err(); err != nil {
		return fmt.Errorf("notifications: mark read: %w", err)
	}
	return nil
}

func (s *RedisReadStateStore) key(owner string) string {
	return s.prefix + owner
}
