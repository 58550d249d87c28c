package ratecache

import (
	"context"
	"sync"

	"github.com/SscSPs/visa_portal_backend/internal/apperrors"
	"github.com/SscSPs/visa_portal_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/visa_portal_backend/internal/core/ports/repositories"
)

// MemoryStore keeps one entry per base currency in process memory.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]domain.ExchangeRateSet
}

var _ portsrepo.RateCacheStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]domain.ExchangeRateSet)}
}

func (s *MemoryStore) Get(_ context.Context, base string) (*domain.ExchangeRateSet, error) {
	s.mu.RLock()
	set, ok := s.entries[base]
	s.mu.RUnlock()
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	set.Rates = cloneRates(set.Rates)
	return &set, nil
}

func (s *MemoryStore) Put(_ context.Context, set domain.ExchangeRateSet) error {
	set.Rates = cloneRates(set.Rates)
	s.mu.Lock()
	s.entries[set.Base] = set
	s.mu.Unlock()
	return nil
}
