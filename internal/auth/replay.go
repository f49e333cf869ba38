// internal/auth/replay.go
package auth

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// ReplayStore tracks consumed refresh-token ids so each refresh token
// is single-use. Consume returns false when the jti was already spent.
type ReplayStore interface {
	Consume(ctx context.Context, jti string, ttl time.Duration) (bool, error)
}

type redisReplayStore struct {
	rdb *redis.Client
}

// NewRedisReplayStore marks jtis in redis with a TTL equal to the
// remaining token lifetime, after which the entry is useless anyway.
func NewRedisReplayStore(rdb *redis.Client) ReplayStore {
	return &redisReplayStore{rdb: rdb}
}

func (s *redisReplayStore) Consume(ctx context.Context, jti string, ttl time.Duration) (bool, error) {
	if ttl <= 0 {
		return false, nil
	}
	return s.rdb.SetNX(ctx, "refresh:jti:"+jti, 1, ttl).Result()
}

// memReplayStore is the in-process fallback when redis is not
// configured. Expired entries are purged lazily on each call.
type memReplayStore struct {
	mu    sync.Mutex
	spent map[string]time.Time
}

func NewMemoryReplayStore() ReplayStore {
	return &memReplayStore{spent: map[string]time.Time{}}
}

func (s *memReplayStore) Consume(ctx context.Context, jti string, ttl time.Duration) (bool, error) {
	if ttl <= 0 {
		return false, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for k, exp := range s.spent {
		if now.After(exp) {
			delete(s.spent, k)
		}
	}
	if _, ok := s.spent[jti]; ok {
		return false, nil
	}
	s.spent[jti] = now.Add(ttl)
	return true, nil
}
