package minter

import (
	"context"
	"errors"
	"fmt"

	"github.com/abinbabu/url-shortener/internal/shortener"
)

// maxAttempts bounds collision retries when generating codes locally.
const maxAttempts = 5

// CodeGenerator generates short codes.
type CodeGenerator func() string

// Local mints short URLs in-process instead of calling an external
// provider. Generated codes are collision-checked against the store before
// being handed out.
type Local struct {
	store        shortener.Store
	baseURL      string
	generateCode CodeGenerator
}

// NewLocal creates a self-hosted minter that joins generated codes onto
// baseURL.
func NewLocal(store shortener.Store, baseURL string, generator CodeGenerator) *Local {
	return &Local{
		store:        store,
		baseURL:      baseURL,
		generateCode: generator,
	}
}

func (l *Local) Mint(ctx context.Context, _ string) (string, error) {
	for i := 0; i < maxAttempts; i++ {
		shortURL := fmt.Sprintf("%s/%s", l.baseURL, l.generateCode())

		_, err := l.store.FindByShortURL(ctx, shortURL)
		if errors.Is(err, shortener.ErrNotFound) {
			return shortURL, nil
		}

		if err != nil {
			return "", err
		}
	}

	return "", fmt.Errorf("no unused short code after %d attempts", maxAttempts)
}

// Compile-time check.
var _ shortener.Minter = (*Local)(nil)
