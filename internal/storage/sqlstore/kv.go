package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"time"
	"unicode/utf8"

	"github.com/jmoiron/sqlx"
)

// KVStore implements cache.KeyValueStore on the cache_entries table.
type KVStore struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewKVStore(db *sqlx.DB) *KVStore {
	return &KVStore{db: db, now: time.Now}
}

func (s *KVStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	exec := GetExecutor(ctx, s.db)

	var value string
	err := sqlx.GetContext(ctx, exec, &value,
		exec.Rebind("SELECT value FROM cache_entries WHERE cache_key = ?"), key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(value), true, nil
}

func (s *KVStore) Put(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	exec := GetExecutor(ctx, s.db)
	now := s.now()

	query := `
		INSERT INTO cache_entries (cache_key, value, expires_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (cache_key) DO UPDATE SET
			value = excluded.value,
			expires_at = excluded.expires_at,
			updated_at = excluded.updated_at`

	_, err := exec.ExecContext(ctx, exec.Rebind(query),
		key, string(value), now.Add(ttl).Unix(), now.Unix())
	return err
}

func (s *KVStore) Delete(ctx context.Context, key string) error {
	exec := GetExecutor(ctx, s.db)
	_, err := exec.ExecContext(ctx, exec.Rebind("DELETE FROM cache_entries WHERE cache_key = ?"), key)
	return err
}

// Keys lists keys starting with prefix. substr avoids LIKE so that '_' in
// the prefix is matched literally.
func (s *KVStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	exec := GetExecutor(ctx, s.db)

	keys := []string{}
	err := sqlx.SelectContext(ctx, exec, &keys,
		exec.Rebind("SELECT cache_key FROM cache_entries WHERE substr(cache_key, 1, ?) = ? ORDER BY cache_key"),
		utf8.RuneCountInString(prefix), prefix)
	if err != nil {
		return nil, err
	}
	return keys, nil
}
