package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is an in-process fixed-window counter. Suitable for a
// single instance; use RedisStore when running more than one replica.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry

	// Now is the clock used for window arithmetic. Overridable in tests.
	Now func() time.Time
}

type memoryEntry struct {
	count int64
	reset time.Time
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*memoryEntry),
		Now:     time.Now,
	}
}

// Incr implements Store.
func (s *MemoryStore) Incr(_ context.Context, key string, window time.Duration) (int64, time.Time, error) {
	now := s.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok || !now.Before(e.reset) {
		e = &memoryEntry{reset: now.Add(window)}
		s.entries[key] = e
	}
	e.count++

	return e.count, e.reset, nil
}

// Sweep implements Sweeper. It removes entries whose window expired
// before now.
func (s *MemoryStore) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, e := range s.entries {
		if !now.Before(e.reset) {
			delete(s.entries, key)
			removed++
		}
	}
	return removed
}

// Len reports the number of live entries. Used by housekeeping logs.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
