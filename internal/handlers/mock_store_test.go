package handlers_test

import (
	"context"
	"errors"

	"github.com/abinbabu/url-shortener/internal/shortener"
)

var errMock = errors.New("mock error")

const testURL = "https://example.com/very/long/path"

// mockStore is a test double for shortener.Store that can be configured to
// return errors.
type mockStore struct {
	findByOriginalErr error
	findByShortErr    error
	insertErr         error
	listErr           error
	countErr          error
}

func (m *mockStore) FindByOriginalURL(_ context.Context, _ string) (*shortener.Mapping, error) {
	if m.findByOriginalErr != nil {
		return nil, m.findByOriginalErr
	}

	return nil, shortener.ErrNotFound
}

func (m *mockStore) FindByShortURL(_ context.Context, _ string) (*shortener.Mapping, error) {
	if m.findByShortErr != nil {
		return nil, m.findByShortErr
	}

	return nil, shortener.ErrNotFound
}

func (m *mockStore) Insert(_ context.Context, _ *shortener.Mapping) error {
	return m.insertErr
}

func (m *mockStore) ListByOwner(_ context.Context, _ string, _, _ int) ([]shortener.Mapping, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}

	return nil, nil
}

func (m *mockStore) CountAll(_ context.Context) (int, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}

	return 0, nil
}

// stubMinter mints predictable short URLs.
type stubMinter struct {
	err   error
	calls int
}

func (s *stubMinter) Mint(_ context.Context, _ string) (string, error) {
	s.calls++

	if s.err != nil {
		return "", s.err
	}

	return "https://tinyurl.com/abc123", nil
}
