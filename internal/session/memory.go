package session

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

// MemoryStore keeps sessions in-process.
type MemoryStore struct {
	cache *cache.Cache
	ttl   time.Duration
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &MemoryStore{
		cache: cache.New(ttl, 10*time.Minute),
		ttl:   ttl,
	}
}

func (s *MemoryStore) Put(_ context.Context, data Data) error {
	s.cache.Set(data.ID, data, time.Until(data.ExpiresAt))
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*Data, error) {
	val, found := s.cache.Get(id)
	if !found {
		return nil, ErrNotFound
	}
	data, ok := val.(Data)
	if !ok {
		return nil, ErrNotFound
	}
	return &data, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.cache.Delete(id)
	return nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}
