package shortener

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Default pagination values, applied when a history request carries no
// usable page or page size.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// Minter produces a short URL for an original URL. Implementations live in
// internal/minter; the external provider and the local generator are
// interchangeable behind this seam.
type Minter interface {
	Mint(ctx context.Context, originalURL string) (string, error)
}

// HistoryPage is one reverse-chronological page of a user's mappings.
type HistoryPage struct {
	Items       []Mapping
	Total       int
	CurrentPage int
	TotalPages  int
	HasNextPage bool
	HasPrevPage bool
}

// Service orchestrates mapping creation, resolution, and history queries.
// It is stateless between requests; all state lives in the Store.
type Service struct {
	store Store
	mint  Minter
	now   func() time.Time
}

// NewService creates a shortening service over the given store and minter.
func NewService(store Store, mint Minter) *Service {
	return &Service{
		store: store,
		mint:  mint,
		now:   time.Now,
	}
}

// Create shortens originalURL on behalf of ownerID. A URL that was already
// shortened is returned as-is, regardless of which user created it first.
// Exactly one minting call is made per invocation; any failure, the dedup
// lookup included, surfaces as ErrShorteningFailed wrapping the cause.
func (s *Service) Create(ctx context.Context, originalURL, ownerID string) (*Mapping, error) {
	if strings.TrimSpace(originalURL) == "" {
		return nil, fmt.Errorf("%w: %w", ErrShorteningFailed, ErrOriginalURLRequired)
	}

	existing, err := s.store.FindByOriginalURL(ctx, originalURL)
	if err == nil {
		return existing, nil
	}

	if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("%w: %w", ErrShorteningFailed, err)
	}

	shortURL, err := s.mint.Mint(ctx, originalURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrShorteningFailed, err)
	}

	mapping := &Mapping{
		OriginalURL: originalURL,
		ShortURL:    shortURL,
		OwnerID:     ownerID,
		CreatedAt:   s.now(),
	}

	if err = s.store.Insert(ctx, mapping); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrShorteningFailed, err)
	}

	return mapping, nil
}

// Resolve returns the original URL for shortURL, or ErrNotFound. This is
// the redirect hot path: a single indexed lookup, no external calls.
func (s *Service) Resolve(ctx context.Context, shortURL string) (string, error) {
	mapping, err := s.store.FindByShortURL(ctx, shortURL)
	if err != nil {
		return "", err
	}

	return mapping.OriginalURL, nil
}

// History returns one page of the owner's mappings, newest first. Page and
// pageSize values below 1 fall back to the defaults.
func (s *Service) History(ctx context.Context, ownerID string, page, pageSize int) (*HistoryPage, error) {
	if page < 1 {
		page = DefaultPage
	}

	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	skip := (page - 1) * pageSize

	items, err := s.store.ListByOwner(ctx, ownerID, skip, pageSize)
	if err != nil {
		return nil, err
	}

	total, err := s.store.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	return &HistoryPage{
		Items:       items,
		Total:       total,
		CurrentPage: page,
		TotalPages:  (total + pageSize - 1) / pageSize,
		HasNextPage: page*pageSize < total,
		HasPrevPage: page > 1,
	}, nil
}
