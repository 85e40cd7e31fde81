package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// DefaultCleanupInterval is how often expired keys are purged.
const DefaultCleanupInterval = time.Minute

// MemoryStore is a process-local Store. Contents are lost on restart.
type MemoryStore struct {
	items *gocache.Cache
}

func NewMemoryStore() *MemoryStore {
	return NewMemoryStoreWithCleanup(DefaultCleanupInterval)
}

// NewMemoryStoreWithCleanup purges expired keys every interval, so keys that
// are written once and never read again do not accumulate.
func NewMemoryStoreWithCleanup(interval time.Duration) *MemoryStore {
	return &MemoryStore{items: gocache.New(gocache.NoExpiration, interval)}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, error) {
	v, ok := s.items.Get(key)
	if !ok {
		return "", ErrMiss
	}
	return v.(string), nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string, ttl time.Duration) error {
	s.items.Set(key, value, expiration(ttl))
	return nil
}

func (s *MemoryStore) SetNX(_ context.Context, key, value string, ttl time.Duration) (bool, error) {
	if err := s.items.Add(key, value, expiration(ttl)); err != nil {
		return false, nil
	}
	return true, nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.items.Delete(key)
	return nil
}

// Len counts stored keys, including expired ones not yet purged.
func (s *MemoryStore) Len() int {
	return s.items.ItemCount()
}

func expiration(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return gocache.NoExpiration
	}
	return ttl
}

var _ Store = (*MemoryStore)(nil)
