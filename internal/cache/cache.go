// Package cache reuses generated articles keyed by their parameter
// fingerprint.
package cache

//go:generate mockgen -source=cache.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"article_pipeline/internal/domain"
)

const keyPrefix = "article_cache_"

// KeyValueStore is the storage port behind the cache.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context, prefix string) ([]string, error)
}

// Store caches generated articles. It never returns errors: backend
// failures are logged and read as a miss.
type Store struct {
	kv     KeyValueStore
	ttl    time.Duration
	now    func() time.Time
	logger *slog.Logger
}

type Option func(*Store)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithTTL overrides domain.CacheTTL.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

func New(kv KeyValueStore, logger *slog.Logger, opts ...Option) *Store {
	s := &Store{
		kv:     kv,
		ttl:    domain.CacheTTL,
		now:    time.Now,
		logger: logger.With("component", "cache"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns a copy of the cached article for fingerprint. Expired entries
// are deleted and reported as absent.
func (s *Store) Get(ctx context.Context, fingerprint string) (*domain.GeneratedArticle, bool) {
	key := keyPrefix + fingerprint

	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		s.logger.Warn("cache read failed", "fingerprint", fingerprint, "error", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var entry domain.CacheEntry
	if err := json.Unmarshal(raw, &entry); err != nil || entry.Content == nil {
		s.logger.Warn("dropping unreadable cache entry", "fingerprint", fingerprint, "error", err)
		s.delete(ctx, key)
		return nil, false
	}

	if entry.Expired(s.now()) {
		s.logger.Debug("cache entry expired", "fingerprint", fingerprint, "expires_at", entry.ExpiresAt)
		s.delete(ctx, key)
		return nil, false
	}

	s.logger.Debug("cache hit", "fingerprint", fingerprint)
	return entry.Content.Clone(), true
}

// Put stores a copy of article, replacing any entry with the same
// fingerprint.
func (s *Store) Put(ctx context.Context, fingerprint string, article *domain.GeneratedArticle, params domain.GenerationParameters) {
	if article == nil {
		return
	}

	storedAt := s.now()
	entry := domain.CacheEntry{
		Fingerprint: fingerprint,
		Content:     article.Clone(),
		Parameters:  params.Clone(),
		StoredAt:    storedAt,
		ExpiresAt:   storedAt.Add(s.ttl),
	}

	raw, err := json.Marshal(entry)
	if err != nil {
		s.logger.Warn("cache encode failed", "fingerprint", fingerprint, "error", err)
		return
	}

	if err := s.kv.Put(ctx, keyPrefix+fingerprint, raw, s.ttl); err != nil {
		s.logger.Warn("cache write failed", "fingerprint", fingerprint, "error", err)
		return
	}
	s.logger.Debug("cache stored", "fingerprint", fingerprint, "expires_at", entry.ExpiresAt)
}

// PurgeExpired removes every expired or unreadable entry and returns how
// many were removed.
func (s *Store) PurgeExpired(ctx context.Context) int {
	keys, err := s.kv.Keys(ctx, keyPrefix)
	if err != nil {
		s.logger.Warn("cache list failed", "error", err)
		return 0
	}

	now := s.now()
	purged := 0
	for _, key := range keys {
		raw, ok, err := s.kv.Get(ctx, key)
		if err != nil || !ok {
			continue
		}

		var entry domain.CacheEntry
		if err := json.Unmarshal(raw, &entry); err == nil && entry.Content != nil && !entry.Expired(now) {
			continue
		}

		if s.delete(ctx, key) {
			purged++
		}
	}

	if purged > 0 {
		s.logger.Info("purged expired cache entries", "count", purged, "scanned", len(keys))
	}
	return purged
}

func (s *Store) delete(ctx context.Context, key string) bool {
	if err := s.kv.Delete(ctx, key); err != nil {
		s.logger.Warn("cache delete failed", "key", key, "error", err)
		return false
	}
	return true
}
