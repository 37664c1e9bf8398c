package cache

import (
	"context"
	"testing"
	"time"
)

func newTestMemoryStore(ttl time.Duration) (*memoryStore, *time.Time) {
	s := newMemoryStore(ttl)
	now := time.Unix(1700000000, 0)
	s.now = func() time.Time { return now }
	return s, &now
}

func TestMemoryGetSet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, _ := newTestMemoryStore(time.Hour)

	if _, ok, _ := s.Get(ctx, "k"); ok {
		t.Fatal("empty cache should miss")
	}

	if err := s.Set(ctx, "k", "v"); err != nil {
		t.Fatal(err)
	}

	val, ok, err := s.Get(ctx, "k")
	if err != nil || !ok || val != "v" {
		t.Errorf("Get = (%q, %v, %v), want (v, true, nil)", val, ok, err)
	}
}

func TestMemoryExpiry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, now := newTestMemoryStore(time.Hour)

	if err := s.Set(ctx, "k", "v"); err != nil {
		t.Fatal(err)
	}

	*now = now.Add(time.Hour + time.Second)

	if _, ok, _ := s.Get(ctx, "k"); ok {
		t.Error("expired entry should miss")
	}

	// Lazy eviction: the read that discovered the expiry removed it.
	s.mu.Lock()
	_, present := s.entries["k"]
	s.mu.Unlock()
	if present {
		t.Error("expired entry should be evicted on read")
	}
}

func TestMemoryClear(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, _ := newTestMemoryStore(time.Hour)

	_ = s.Set(ctx, "a", "1")
	_ = s.Set(ctx, "b", "2")
	if err := s.Clear(ctx); err != nil {
		t.Fatal(err)
	}

	if _, ok, _ := s.Get(ctx, "a"); ok {
		t.Error("cleared cache should miss")
	}
}

func TestMemoryOverwriteRefreshesTTL(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, now := newTestMemoryStore(time.Hour)

	_ = s.Set(ctx, "k", "old")
	*now = now.Add(50 * time.Minute)
	_ = s.Set(ctx, "k", "new")
	*now = now.Add(30 * time.Minute) // 80m after first set, 30m after second

	val, ok, _ := s.Get(ctx, "k")
	if !ok || val != "new" {
		t.Errorf("overwritten entry should be fresh, got (%q, %v)", val, ok)
	}
}

func TestFactory(t *testing.T) {
	t.Parallel()

	if _, err := New(DriverMemory); err != nil {
		t.Errorf("memory driver should construct: %v", err)
	}
	if _, err := New(DriverRedis); err != ErrMissingRedisClient {
		t.Errorf("redis driver without client: err = %v, want ErrMissingRedisClient", err)
	}
	if _, err := New(Driver("bogus")); err != ErrInvalidDriver {
		t.Errorf("unknown driver: err = %v, want ErrInvalidDriver", err)
	}
}
