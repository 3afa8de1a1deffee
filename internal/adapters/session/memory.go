package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"eventplanner/internal/clock"
	"eventplanner/internal/domain"
)

type entry struct {
	value   string
	touched time.Time
}

// MemoryStore is an in-process SessionStore. Entries remember when they were
// last written so idle ones can be swept.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]entry
	clock   clock.Clock
}

// NewMemoryStore returns an empty store that timestamps writes with clk.
func NewMemoryStore(clk clock.Clock) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]entry),
		clock:   clk,
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	if !ok {
		return "", domain.ErrNotFound
	}
	return e.value, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry{value: value, touched: s.clock.Now()}
	return nil
}

func (s *MemoryStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

// Sweep removes entries under prefix that were not written for longer than
// idle and returns how many were removed.
func (s *MemoryStore) Sweep(prefix string, idle time.Duration) int {
	cutoff := s.clock.Now().Add(-idle)
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for key, e := range s.entries {
		if strings.HasPrefix(key, prefix) && e.touched.Before(cutoff) {
			delete(s.entries, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of stored entries.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
