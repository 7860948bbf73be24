package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Store keeps each collection as an encoded JSON document, so callers never
// share memory with what is stored.
type Store struct {
	mu        sync.RWMutex
	documents map[string][]byte
}

func NewStore() *Store {
	return &Store{
		documents: make(map[string][]byte),
	}
}

func (s *Store) Load(ctx context.Context, key string, dst any) (bool, error) {
	_ = ctx

	s.mu.RLock()
	raw, ok := s.documents[key]
	s.mu.RUnlock()

	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("memory store: decode %s: %w", key, err)
	}
	return true, nil
}

func (s *Store) Save(ctx context.Context, key string, value any) error {
	_ = ctx

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("memory store: encode %s: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.documents[key] = raw
	return nil
}
