package shortener

import "context"

// Store is the persistence surface for Mapping records. Every call is a
// store round-trip; there is no caching layer in front of it.
type Store interface {
	// FindByOriginalURL does an exact-match lookup. No normalization is
	// applied, so case and trailing-slash variants are distinct URLs.
	FindByOriginalURL(ctx context.Context, originalURL string) (*Mapping, error)

	// FindByShortURL does an exact-match lookup by short URL.
	FindByShortURL(ctx context.Context, shortURL string) (*Mapping, error)

	// Insert persists a new mapping. It returns ErrConflict when the short
	// URL already exists; that unique constraint is the only backstop
	// against concurrent creates racing on the same code.
	Insert(ctx context.Context, m *Mapping) error

	// ListByOwner returns the owner's mappings ordered by CreatedAt
	// descending. Equal timestamps break deterministically, newest insert
	// first.
	ListByOwner(ctx context.Context, ownerID string, skip, limit int) ([]Mapping, error)

	// CountAll returns the total number of stored mappings.
	CountAll(ctx context.Context) (int, error)
}
