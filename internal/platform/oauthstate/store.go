package oauthstate

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store tracks issued OAuth state values so each can be consumed at most
// once. The state cookie remains the primary CSRF check; this store adds a
// replay guard on top when Redis is available.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// New builds a Store. A nil client disables the replay guard.
func New(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

func (s *Store) key(state string) string {
	return "oauth_state:" + state
}

// Save records a freshly issued state with a TTL.
func (s *Store) Save(ctx context.Context, state string) error {
	if s.client == nil {
		return nil
	}
	return s.client.Set(ctx, s.key(state), "1", s.ttl).Err()
}

// Consume reports whether the state was issued by us and removes it, so a
// replayed callback with the same state is rejected. Without Redis it
// degrades to accepting, deferring to the cookie comparison.
func (s *Store) Consume(ctx context.Context, state string) bool {
	if s.client == nil {
		return true
	}
	val, err := s.client.GetDel(ctx, s.key(state)).Result()
	if err != nil {
		return false
	}
	return val != ""
}
