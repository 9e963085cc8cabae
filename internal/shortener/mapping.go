package shortener

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when no mapping exists for a lookup key.
	ErrNotFound = errors.New("mapping not found")

	// ErrConflict is returned when an insert would duplicate a short URL.
	ErrConflict = errors.New("short url already exists")

	// ErrOriginalURLRequired is returned when a create request carries an
	// empty or blank original URL.
	ErrOriginalURLRequired = errors.New("original url is required")

	// ErrShorteningFailed wraps every failure inside Create. The service
	// never retries; callers re-invoke the whole operation.
	ErrShorteningFailed = errors.New("failed to shorten url")
)

// Mapping is the persisted association between an original URL, its short
// URL, and the owning user. A mapping is created exactly once and never
// updated; CreatedAt drives reverse-chronological history ordering.
type Mapping struct {
	OriginalURL string
	ShortURL    string
	OwnerID     string
	CreatedAt   time.Time
}
