package store

import (
	"context"
	"errors"

	"github.com/abinbabu/url-shortener/internal/shortener"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore is a PostgreSQL implementation of shortener.Store.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgreSQL-backed mapping store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// EnsureSchema creates the url_mappings table and its indexes if they do
// not exist. The unique constraint on short_url is the sole backstop
// against concurrent creates racing on the same code.
func (p *PostgresStore) EnsureSchema(ctx context.Context) error {
	ddl := `
		CREATE TABLE IF NOT EXISTS url_mappings (
			id BIGSERIAL PRIMARY KEY,
			short_url TEXT NOT NULL UNIQUE,
			original_url TEXT NOT NULL,
			owner_id TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_url_mappings_original_url
			ON url_mappings (original_url);
		CREATE INDEX IF NOT EXISTS idx_url_mappings_owner_created
			ON url_mappings (owner_id, created_at DESC);
	`

	_, err := p.pool.Exec(ctx, ddl)

	return err
}

func (p *PostgresStore) FindByOriginalURL(ctx context.Context, originalURL string) (*shortener.Mapping, error) {
	query := `
		SELECT original_url, short_url, owner_id, created_at
		FROM url_mappings
		WHERE original_url = $1
		ORDER BY id
		LIMIT 1
	`

	return p.queryOne(ctx, query, originalURL)
}

func (p *PostgresStore) FindByShortURL(ctx context.Context, shortURL string) (*shortener.Mapping, error) {
	query := `
		SELECT original_url, short_url, owner_id, created_at
		FROM url_mappings
		WHERE short_url = $1
	`

	return p.queryOne(ctx, query, shortURL)
}

func (p *PostgresStore) queryOne(ctx context.Context, query string, arg any) (*shortener.Mapping, error) {
	var m shortener.Mapping

	err := p.pool.QueryRow(ctx, query, arg).Scan(
		&m.OriginalURL,
		&m.ShortURL,
		&m.OwnerID,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shortener.ErrNotFound
		}

		return nil, err
	}

	return &m, nil
}

func (p *PostgresStore) Insert(ctx context.Context, m *shortener.Mapping) error {
	query := `
		INSERT INTO url_mappings (short_url, original_url, owner_id, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := p.pool.Exec(ctx, query, m.ShortURL, m.OriginalURL, m.OwnerID, m.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return shortener.ErrConflict
		}

		return err
	}

	return nil
}

func (p *PostgresStore) ListByOwner(ctx context.Context, ownerID string, skip, limit int) ([]shortener.Mapping, error) {
	query := `
		SELECT original_url, short_url, owner_id, created_at
		FROM url_mappings
		WHERE owner_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := p.pool.Query(ctx, query, ownerID, limit, skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []shortener.Mapping

	for rows.Next() {
		var m shortener.Mapping

		if err := rows.Scan(&m.OriginalURL, &m.ShortURL, &m.OwnerID, &m.CreatedAt); err != nil {
			return nil, err
		}

		items = append(items, m)
	}

	return items, rows.Err()
}

func (p *PostgresStore) CountAll(ctx context.Context) (int, error) {
	var count int

	err := p.pool.QueryRow(ctx, `SELECT COUNT(*) FROM url_mappings`).Scan(&count)

	return count, err
}

// Ping reports database connectivity for health checks.
func (p *PostgresStore) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// Compile-time check.
var _ shortener.Store = (*PostgresStore)(nil)
