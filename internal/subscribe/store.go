package subscribe

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// SeenStore remembers recently subscribed emails so retries and double
// submits do not hit the provider twice. MarkSeen reports whether the email
// was already present inside the ttl window.
type SeenStore interface {
	MarkSeen(ctx context.Context, email string, ttl time.Duration) (seen bool, err error)
	Close() error
}

// MemorySeenStore is the default single-process store.
type MemorySeenStore struct {
	mu  sync.Mutex
	m   map[string]time.Time
	now func() time.Time
}

func NewMemorySeenStore() *MemorySeenStore {
	return &MemorySeenStore{m: make(map[string]time.Time), now: time.Now}
}

func (s *MemorySeenStore) MarkSeen(_ context.Context, email string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for k, exp := range s.m {
		if now.After(exp) {
			delete(s.m, k)
		}
	}

	key := strings.ToLower(email)
	if exp, ok := s.m[key]; ok && now.Before(exp) {
		return true, nil
	}
	s.m[key] = now.Add(ttl)
	return false, nil
}

func (s *MemorySeenStore) Close() error { return nil }

// RedisSeenStore shares duplicate suppression across replicas.
type RedisSeenStore struct {
	rdb *redis.Client
}

func NewRedisSeenStore(redisURL string) (*RedisSeenStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("subscribe redis url: %w", err)
	}
	rdb := redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("subscribe redis ping: %w", err)
	}
	return &RedisSeenStore{rdb: rdb}, nil
}

func (s *RedisSeenStore) MarkSeen(ctx context.Context, email string, ttl time.Duration) (bool, error) {
	key := "bordful:seen:" + strings.ToLower(email)
	set, err := s.rdb.SetNX(ctx, key, 1, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("subscribe redis setnx: %w", err)
	}
	return !set, nil
}

func (s *RedisSeenStore) Close() error {
	if s == nil || s.rdb == nil {
		return nil
	}
	return s.rdb.Close()
}
