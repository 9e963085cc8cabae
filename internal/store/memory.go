package store

import (
	"context"
	"sort"
	"sync"

	"github.com/abinbabu/url-shortener/internal/shortener"
)

// MemoryStore is an in-memory implementation of shortener.Store, used by
// unit tests and the "memory" backend for local development.
type MemoryStore struct {
	mu       sync.RWMutex
	mappings []shortener.Mapping // insertion order
	byShort  map[string]int      // short URL -> index into mappings
}

// NewMemoryStore creates a new in-memory mapping store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byShort: make(map[string]int),
	}
}

func (m *MemoryStore) FindByOriginalURL(_ context.Context, originalURL string) (*shortener.Mapping, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.mappings {
		if m.mappings[i].OriginalURL == originalURL {
			mapping := m.mappings[i]

			return &mapping, nil
		}
	}

	return nil, shortener.ErrNotFound
}

func (m *MemoryStore) FindByShortURL(_ context.Context, shortURL string) (*shortener.Mapping, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i, ok := m.byShort[shortURL]
	if !ok {
		return nil, shortener.ErrNotFound
	}

	mapping := m.mappings[i]

	return &mapping, nil
}

func (m *MemoryStore) Insert(_ context.Context, mapping *shortener.Mapping) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byShort[mapping.ShortURL]; ok {
		return shortener.ErrConflict
	}

	m.byShort[mapping.ShortURL] = len(m.mappings)
	m.mappings = append(m.mappings, *mapping)

	return nil
}

func (m *MemoryStore) ListByOwner(_ context.Context, ownerID string, skip, limit int) ([]shortener.Mapping, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Walk insertion order backwards so the stable sort keeps the newest
	// insert first on equal timestamps.
	var owned []shortener.Mapping

	for i := len(m.mappings) - 1; i >= 0; i-- {
		if m.mappings[i].OwnerID == ownerID {
			owned = append(owned, m.mappings[i])
		}
	}

	sort.SliceStable(owned, func(i, j int) bool {
		return owned[i].CreatedAt.After(owned[j].CreatedAt)
	})

	if skip >= len(owned) {
		return nil, nil
	}

	owned = owned[skip:]
	if limit < len(owned) {
		owned = owned[:limit]
	}

	return owned, nil
}

func (m *MemoryStore) CountAll(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.mappings), nil
}

// Compile-time check.
var _ shortener.Store = (*MemoryStore)(nil)
