package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/abinbabu/url-shortener/internal/shortener"
	"github.com/redis/go-redis/v9"
)

// RedisStore is a Redis implementation of shortener.Store. Each mapping is
// stored as JSON under its short URL; SETNX on that key enforces short-URL
// uniqueness. A hash indexes original URLs and a per-owner sorted set,
// scored by creation time, keeps history order. Equal scores fall back to
// Redis's lexicographic member order, which is deterministic across
// repeated queries.
type RedisStore struct {
	client      *redis.Client
	prefix      string // "mapping:" for shortURL -> record
	indexKey    string // "url_index" hash: originalURL -> shortURL
	ownerPrefix string // "owner:" for per-owner sorted sets
	countKey    string // "mapping_count" total record counter
}

// NewRedisStore creates a new Redis-backed mapping store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client:      client,
		prefix:      "mapping:",
		indexKey:    "url_index",
		ownerPrefix: "owner:",
		countKey:    "mapping_count",
	}
}

type redisMapping struct {
	OriginalURL string    `json:"original_url"`
	ShortURL    string    `json:"short_url"`
	OwnerID     string    `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func (r *RedisStore) FindByOriginalURL(ctx context.Context, originalURL string) (*shortener.Mapping, error) {
	shortURL, err := r.client.HGet(ctx, r.indexKey, originalURL).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, shortener.ErrNotFound
		}

		return nil, err
	}

	return r.FindByShortURL(ctx, shortURL)
}

func (r *RedisStore) FindByShortURL(ctx context.Context, shortURL string) (*shortener.Mapping, error) {
	raw, err := r.client.Get(ctx, r.prefix+shortURL).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, shortener.ErrNotFound
		}

		return nil, err
	}

	return decodeMapping(raw)
}

func (r *RedisStore) Insert(ctx context.Context, m *shortener.Mapping) error {
	raw, err := json.Marshal(redisMapping{
		OriginalURL: m.OriginalURL,
		ShortURL:    m.ShortURL,
		OwnerID:     m.OwnerID,
		CreatedAt:   m.CreatedAt,
	})
	if err != nil {
		return err
	}

	set, err := r.client.SetNX(ctx, r.prefix+m.ShortURL, raw, 0).Result()
	if err != nil {
		return err
	}

	if !set {
		return shortener.ErrConflict
	}

	// Secondary structures go through one pipeline. HSETNX keeps the first
	// writer's index entry, matching dedup-by-original-URL semantics.
	pipe := r.client.Pipeline()
	pipe.HSetNX(ctx, r.indexKey, m.OriginalURL, m.ShortURL)
	pipe.ZAdd(ctx, r.ownerPrefix+m.OwnerID, redis.Z{
		Score:  float64(m.CreatedAt.UnixNano()),
		Member: m.ShortURL,
	})
	pipe.Incr(ctx, r.countKey)
	_, err = pipe.Exec(ctx)

	return err
}

func (r *RedisStore) ListByOwner(ctx context.Context, ownerID string, skip, limit int) ([]shortener.Mapping, error) {
	stop := int64(skip + limit - 1)

	shortURLs, err := r.client.ZRevRange(ctx, r.ownerPrefix+ownerID, int64(skip), stop).Result()
	if err != nil {
		return nil, err
	}

	var items []shortener.Mapping

	for _, shortURL := range shortURLs {
		m, err := r.FindByShortURL(ctx, shortURL)
		if err != nil {
			return nil, fmt.Errorf("loading mapping %q: %w", shortURL, err)
		}

		items = append(items, *m)
	}

	return items, nil
}

func (r *RedisStore) CountAll(ctx context.Context) (int, error) {
	count, err := r.client.Get(ctx, r.countKey).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}

		return 0, err
	}

	return count, nil
}

// Ping reports Redis connectivity for health checks.
func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func decodeMapping(raw string) (*shortener.Mapping, error) {
	var rm redisMapping

	if err := json.Unmarshal([]byte(raw), &rm); err != nil {
		return nil, fmt.Errorf("decoding stored mapping: %w", err)
	}

	return &shortener.Mapping{
		OriginalURL: rm.OriginalURL,
		ShortURL:    rm.ShortURL,
		OwnerID:     rm.OwnerID,
		CreatedAt:   rm.CreatedAt,
	}, nil
}

// Compile-time check.
var _ shortener.Store = (*RedisStore)(nil)
