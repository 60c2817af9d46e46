package repository

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

// MemoryCache keeps entries in process. Used when no Redis is configured and
// in tests.
type MemoryCache struct {
	store *cache.Cache
}

func NewMemoryCache(defaultTTL, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{
		store: cache.New(defaultTTL, cleanupInterval),
	}
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, bool, error) {
	val, ok := m.store.Get(key)
	if !ok {
		return "", false, nil
	}
	s, ok := val.(string)
	return s, ok, nil
}

func (m *MemoryCache) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	m.store.Set(key, value, ttl)
	return nil
}

func (m *MemoryCache) Delete(_ context.Context, key string) error {
	m.store.Delete(key)
	return nil
}
