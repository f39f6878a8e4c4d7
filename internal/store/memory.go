package store

import (
	"context"
	"sync"
)

// MemoryStore is a process-local backend with the same semantics as the redis
// one. It backs tests and standalone runs without a redis instance.
type MemoryStore struct {
	mu    sync.RWMutex
	slots map[Slot][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[Slot][]byte)}
}

func (s *MemoryStore) Get(_ context.Context, slot Slot) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.slots[slot]
	if !ok {
		return nil, ErrSlotEmpty
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (s *MemoryStore) Set(_ context.Context, slot Slot, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]byte, len(value))
	copy(stored, value)
	s.slots[slot] = stored
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, slot Slot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.slots, slot)
	return nil
}

func (s *MemoryStore) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots = make(map[Slot][]byte)
	return nil
}

func (s *MemoryStore) Ping(_ context.Context) error { return nil }

func (s *MemoryStore) Close() error { return nil }
