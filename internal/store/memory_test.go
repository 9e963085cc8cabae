package store_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/abinbabu/url-shortener/internal/shortener"
	"github.com/abinbabu/url-shortener/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMapping(originalURL, shortURL, ownerID string, createdAt time.Time) *shortener.Mapping {
	return &shortener.Mapping{
		OriginalURL: originalURL,
		ShortURL:    shortURL,
		OwnerID:     ownerID,
		CreatedAt:   createdAt,
	}
}

func TestMemoryStore_Insert(t *testing.T) {
	t.Run("inserts a mapping", func(t *testing.T) {
		s := store.NewMemoryStore()

		err := s.Insert(context.Background(), newMapping("https://example.com", "abc123", "u1", time.Now()))

		require.NoError(t, err)
	})

	t.Run("returns ErrConflict on duplicate short url", func(t *testing.T) {
		s := store.NewMemoryStore()
		_ = s.Insert(context.Background(), newMapping("https://example.com", "abc123", "u1", time.Now()))

		err := s.Insert(context.Background(), newMapping("https://other.com", "abc123", "u2", time.Now()))

		assert.ErrorIs(t, err, shortener.ErrConflict)

		// First writer wins.
		got, findErr := s.FindByShortURL(context.Background(), "abc123")
		require.NoError(t, findErr)
		assert.Equal(t, "https://example.com", got.OriginalURL)
	})
}

func TestMemoryStore_Find(t *testing.T) {
	t.Run("finds by short url", func(t *testing.T) {
		s := store.NewMemoryStore()
		_ = s.Insert(context.Background(), newMapping("https://example.com", "abc123", "u1", time.Now()))

		got, err := s.FindByShortURL(context.Background(), "abc123")

		require.NoError(t, err)
		assert.Equal(t, "https://example.com", got.OriginalURL)
		assert.Equal(t, "u1", got.OwnerID)
	})

	t.Run("finds by original url", func(t *testing.T) {
		s := store.NewMemoryStore()
		_ = s.Insert(context.Background(), newMapping("https://example.com", "abc123", "u1", time.Now()))

		got, err := s.FindByOriginalURL(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, "abc123", got.ShortURL)
	})

	t.Run("matches original urls exactly", func(t *testing.T) {
		s := store.NewMemoryStore()
		_ = s.Insert(context.Background(), newMapping("https://example.com/path", "abc123", "u1", time.Now()))

		got, err := s.FindByOriginalURL(context.Background(), "https://example.com/path/")

		assert.Nil(t, got)
		assert.ErrorIs(t, err, shortener.ErrNotFound)
	})

	t.Run("returns ErrNotFound for unknown keys", func(t *testing.T) {
		s := store.NewMemoryStore()

		_, err := s.FindByShortURL(context.Background(), "missing")
		assert.ErrorIs(t, err, shortener.ErrNotFound)

		_, err = s.FindByOriginalURL(context.Background(), "https://missing.example.com")
		assert.ErrorIs(t, err, shortener.ErrNotFound)
	})
}

func TestMemoryStore_ListByOwner(t *testing.T) {
	seed := func(t *testing.T, s *store.MemoryStore, ownerID string, n int) {
		t.Helper()

		base := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
		for i := 0; i < n; i++ {
			m := newMapping(
				fmt.Sprintf("https://example.com/%s/%d", ownerID, i),
				fmt.Sprintf("%s-code-%d", ownerID, i),
				ownerID,
				base.Add(time.Duration(i)*time.Minute),
			)
			require.NoError(t, s.Insert(context.Background(), m))
		}
	}

	t.Run("orders newest first", func(t *testing.T) {
		s := store.NewMemoryStore()
		seed(t, s, "u1", 3)

		items, err := s.ListByOwner(context.Background(), "u1", 0, 10)

		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, "u1-code-2", items[0].ShortURL)
		assert.Equal(t, "u1-code-1", items[1].ShortURL)
		assert.Equal(t, "u1-code-0", items[2].ShortURL)
	})

	t.Run("applies skip and limit", func(t *testing.T) {
		s := store.NewMemoryStore()
		seed(t, s, "u1", 5)

		items, err := s.ListByOwner(context.Background(), "u1", 2, 2)

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "u1-code-2", items[0].ShortURL)
		assert.Equal(t, "u1-code-1", items[1].ShortURL)
	})

	t.Run("returns empty past the end", func(t *testing.T) {
		s := store.NewMemoryStore()
		seed(t, s, "u1", 2)

		items, err := s.ListByOwner(context.Background(), "u1", 5, 10)

		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("excludes other owners", func(t *testing.T) {
		s := store.NewMemoryStore()
		seed(t, s, "u1", 2)
		seed(t, s, "u2", 3)

		items, err := s.ListByOwner(context.Background(), "u1", 0, 10)

		require.NoError(t, err)
		require.Len(t, items, 2)
		for _, m := range items {
			assert.Equal(t, "u1", m.OwnerID)
		}
	})

	t.Run("breaks timestamp ties by newest insert", func(t *testing.T) {
		s := store.NewMemoryStore()
		created := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

		for i := 0; i < 3; i++ {
			m := newMapping(
				fmt.Sprintf("https://example.com/tie/%d", i),
				fmt.Sprintf("tie-code-%d", i),
				"u1",
				created,
			)
			require.NoError(t, s.Insert(context.Background(), m))
		}

		items, err := s.ListByOwner(context.Background(), "u1", 0, 10)

		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, "tie-code-2", items[0].ShortURL)
		assert.Equal(t, "tie-code-1", items[1].ShortURL)
		assert.Equal(t, "tie-code-0", items[2].ShortURL)
	})
}

func TestMemoryStore_CountAll(t *testing.T) {
	s := store.NewMemoryStore()

	total, err := s.CountAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, total)

	_ = s.Insert(context.Background(), newMapping("https://example.com/a", "a1", "u1", time.Now()))
	_ = s.Insert(context.Background(), newMapping("https://example.com/b", "b1", "u2", time.Now()))

	total, err = s.CountAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, total)
}
