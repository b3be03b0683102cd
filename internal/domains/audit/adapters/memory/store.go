package memory

import (
	"context"
	"sync"

	"github.com/Apurer/go-storefront-api/internal/domains/audit/domain"
	"github.com/Apurer/go-storefront-api/internal/domains/audit/ports"
)

var _ ports.Store = (*Store)(nil)

// Store is an in-memory audit log used for tests and local runs.
type Store struct {
	mu      sync.RWMutex
	entries []domain.Entry
	nextID  int64
}

func NewStore() *Store {
	return &Store{nextID: 1}
}

func (s *Store) Append(_ context.Context, entry domain.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry.ID = s.nextID
	s.nextID++
	s.entries = append(s.entries, entry)
	return nil
}

func (s *Store) List(_ context.Context) ([]domain.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := make([]domain.Entry, len(s.entries))
	copy(entries, s.entries)
	return entries, nil
}

func (s *Store) ListByReference(_ context.Context, reference string) ([]domain.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := make([]domain.Entry, 0)
	for _, entry := range s.entries {
		if entry.Reference == reference {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}
