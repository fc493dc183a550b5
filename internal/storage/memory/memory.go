// Package memory is an in-process key/value store for the article cache.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// KVStore keeps values in a map. Expiry is enforced by the cache layer.
type KVStore struct {
	mu    sync.RWMutex
	items map[string][]byte
}

func NewKVStore() *KVStore {
	return &KVStore{items: make(map[string][]byte)}
}

func (s *KVStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.items[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (s *KVStore) Put(_ context.Context, key string, value []byte, _ time.Duration) error {
	v := make([]byte, len(value))
	copy(v, value)

	s.mu.Lock()
	s.items[key] = v
	s.mu.Unlock()
	return nil
}

func (s *KVStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.items, key)
	s.mu.Unlock()
	return nil
}

func (s *KVStore) Keys(_ context.Context, prefix string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.items))
	for k := range s.items {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

// Len returns the number of stored keys.
func (s *KVStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
