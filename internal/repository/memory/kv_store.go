package memory

import (
	"context"
	"time"

	"vibe-notes-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// KVStore keeps entries in process memory. Used when Redis is not
// reachable at startup and in tests.
type KVStore struct {
	cache *cache.Cache
}

func NewKVStore() *KVStore {
	// Entries default to 1 hour and expired items are purged every 10 minutes.
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &KVStore{
		cache: c,
	}
}

func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	if x, found := s.cache.Get(key); found {
		return x.([]byte), nil
	}
	return nil, store.ErrMiss
}

func (s *KVStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = cache.DefaultExpiration
	}
	s.cache.Set(key, value, ttl)
	return nil
}

func (s *KVStore) Delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		s.cache.Delete(key)
	}
	return nil
}
