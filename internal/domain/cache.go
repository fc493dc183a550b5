package domain

import "time"

// CacheTTL is how long a generated article stays reusable.
const CacheTTL = 7 * 24 * time.Hour

// CacheEntry is the persisted form of a cached article.
type CacheEntry struct {
	Fingerprint string               `json:"fingerprint"`
	Content     *GeneratedArticle    `json:"content"`
	Parameters  GenerationParameters `json:"parameters"`
	StoredAt    time.Time            `json:"storedAt"`
	ExpiresAt   time.Time            `json:"expiresAt"`
}

// Expired reports whether the entry is past its expiry at now.
func (e *CacheEntry) Expired(now time.Time) bool {
	return now.After(e.ExpiresAt)
}
