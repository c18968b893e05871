// Package memory provides an in-process ports.OutcomeStore.
package memory

import (
	"context"
	"sync"

	"github.com/aretw0/spindle/pkg/machine"
	"github.com/aretw0/spindle/pkg/ports"
)

// Store implements ports.OutcomeStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]machine.Outcome
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]machine.Outcome),
	}
}

// Save persists the outcome in memory. The record is copied so the caller
// cannot mutate the stored value through its pointer.
func (s *Store) Save(ctx context.Context, key string, outcome *machine.Outcome) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = *outcome
	return nil
}

// Load retrieves the outcome from memory.
func (s *Store) Load(ctx context.Context, key string) (*machine.Outcome, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	outcome, ok := s.data[key]
	if !ok {
		return nil, ports.ErrOutcomeNotFound
	}

	// Copy on read so the caller can't mutate store state.
	ret := outcome
	return &ret, nil
}

// Delete removes the outcome.
func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// List returns the cached keys.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	return keys, nil
}
