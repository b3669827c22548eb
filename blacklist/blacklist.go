package blacklist

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store is the token revocation set. A token added here must be rejected on
// every later request for as long as the deployment's session horizon, even
// if its embedded expiry is still in the future. Add is idempotent.
type Store interface {
	Add(ctx context.Context, token string) error
	Has(ctx context.Context, token string) (bool, error)
}

// MemoryStore keeps revoked tokens for the lifetime of the process. Fits a
// single-instance deployment; restart clears it, which is acceptable because
// restart also rotates nothing and tokens age out on their own.
type MemoryStore struct {
	mu     sync.RWMutex
	tokens map[string]struct{}
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{tokens: make(map[string]struct{})}
}

func (s *MemoryStore) Add(_ context.Context, token string) error {
	s.mu.Lock()
	s.tokens[token] = struct{}{}
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Has(_ context.Context, token string) (bool, error) {
	s.mu.RLock()
	_, ok := s.tokens[token]
	s.mu.RUnlock()
	return ok, nil
}

// RedisEntryTTL is how long a revoked token is remembered. Matching the
// longest session lifetime keeps the set bounded: an entry that old refers
// to a token that has expired on its own anyway.
const RedisEntryTTL = 3 * time.Hour

// RedisStore shares the revocation set across instances. Entries expire
// after the longest token lifetime so the set cannot grow without bound.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(addr string, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
	}
}

func (s *RedisStore) Add(ctx context.Context, token string) error {
	return s.client.Set(ctx, key(token), "1", s.ttl).Err()
}

func (s *RedisStore) Has(ctx context.Context, token string) (bool, error) {
	n, err := s.client.Exists(ctx, key(token)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func key(token string) string {
	return "blacklist:" + token
}
