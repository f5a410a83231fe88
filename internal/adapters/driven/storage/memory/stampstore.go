package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/headergen/internal/core/domain"
	"github.com/custodia-labs/headergen/internal/core/ports/driven"
)

// Ensure StampStore implements the interface.
var _ driven.StampStore = (*StampStore)(nil)

// StampStore is an in-memory implementation of driven.StampStore.
// Stamps live for the process, which is enough for watch mode.
type StampStore struct {
	mu     sync.RWMutex
	stamps map[string]domain.Stamp
}

// NewStampStore creates a new in-memory stamp store.
func NewStampStore() *StampStore {
	return &StampStore{
		stamps: make(map[string]domain.Stamp),
	}
}

// Save stores or updates a stamp.
func (s *StampStore) Save(_ context.Context, stamp domain.Stamp) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stamps[stamp.Target] = stamp
	return nil
}

// Get retrieves the stamp for a target.
func (s *StampStore) Get(_ context.Context, target string) (*domain.Stamp, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stamp, ok := s.stamps[target]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &stamp, nil
}

// Delete removes the stamp for a target.
func (s *StampStore) Delete(_ context.Context, target string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.stamps, target)
	return nil
}

// List returns all stamps ordered by target.
func (s *StampStore) List(_ context.Context) ([]domain.Stamp, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Stamp, 0, len(s.stamps))
	for _, stamp := range s.stamps {
		result = append(result, stamp)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Target < result[j].Target })
	return result, nil
}
