package ratelimit

import (
	"context"
	"sync"
	"time"
)

// memoryEntry tracks request count for a key
type memoryEntry struct {
	mu      sync.Mutex
	count   int
	resetAt time.Time
}

// MemoryStore is a best-effort per-process store. It is a soft abuse
// deterrent, not a security boundary: counts are lost on restart and are not
// shared across instances.
type MemoryStore struct {
	entries sync.Map
	sweep   sync.Once
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Increment(_ context.Context, key string, window time.Duration) (int, time.Time, error) {
	s.sweep.Do(func() { go s.sweepExpired() })

	now := time.Now()
	entryI, _ := s.entries.LoadOrStore(key, &memoryEntry{
		resetAt: now.Add(window),
	})
	entry := entryI.(*memoryEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if now.After(entry.resetAt) {
		entry.count = 0
		entry.resetAt = now.Add(window)
	}
	entry.count++

	return entry.count, entry.resetAt, nil
}

// sweepExpired drops entries whose window has long elapsed so the map does
// not grow without bound.
func (s *MemoryStore) sweepExpired() {
	ticker := time.NewTicker(5 * time.Minute)
	for range ticker.C {
		now := time.Now()
		s.entries.Range(func(key, value interface{}) bool {
			entry := value.(*memoryEntry)
			entry.mu.Lock()
			expired := now.After(entry.resetAt)
			entry.mu.Unlock()
			if expired {
				s.entries.Delete(key)
			}
			return true
		})
	}
}
