package session

import (
	"context"
	"sync"
)

type MemoryStore struct {
	mu       sync.RWMutex
	selected map[string]uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{selected: make(map[string]uint)}
}

func (s *MemoryStore) Get(_ context.Context, sid string) (uint, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.selected[sid]
	return id, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, sid string, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selected[sid] = id
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.selected, sid)
	return nil
}

var _ Store = (*MemoryStore)(nil)
