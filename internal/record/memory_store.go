package record

import (
	"context"
	"sync"
)

type memoryStore struct {
	mu      sync.RWMutex
	records map[string]UserRecord
}

// NewMemoryStore constructs an in-memory store for tests and the dev fallback.
func NewMemoryStore() Store {
	return &memoryStore{records: make(map[string]UserRecord)}
}

func (s *memoryStore) Load(_ context.Context, address string) (UserRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[address]
	if !ok {
		return New(address), nil
	}
	return rec.Clone(), nil
}

func (s *memoryStore) Save(_ context.Context, rec UserRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.Address] = rec.Clone()
	return nil
}
