package cart

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store used by tests and guest sessions.
type MemoryStore struct {
	mu    sync.Mutex
	slots map[string][]Line
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[string][]Line)}
}

func (s *MemoryStore) Load(ctx context.Context, ownerID string) []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := s.slots[ownerID]
	out := make([]Line, len(stored))
	copy(out, stored)
	return out
}

func (s *MemoryStore) Save(ctx context.Context, ownerID string, lines []Line) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := make([]Line, len(lines))
	copy(snapshot, lines)
	s.slots[ownerID] = snapshot
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context, ownerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.slots, ownerID)
	return nil
}
