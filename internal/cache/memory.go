package cache

import (
	"context"
	"sync"
	"time"
)

// entry pairs a value with its insertion time.
type entry struct {
	value      string
	insertedAt time.Time
}

// memoryStore is the in-process driver. Expired entries are evicted
// lazily by the read that discovers them; there is no background sweep.
type memoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]entry
	now     func() time.Time
}

func newMemoryStore(ttl time.Duration) *memoryStore {
	return &memoryStore{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

func (s *memoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return "", false, nil
	}
	if s.now().Sub(e.insertedAt) >= s.ttl {
		delete(s.entries, key)
		return "", false, nil
	}
	return e.value, true, nil
}

func (s *memoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = entry{value: value, insertedAt: s.now()}
	return nil
}

func (s *memoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]entry)
	return nil
}
