// Package cache is the client-side TTL cache. Entries expire lazily: an expired
// entry is removed when it is read, there is no background sweeper.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// TTL tiers.
const (
	Short  = 5 * time.Minute
	Medium = 30 * time.Minute
	Long   = 24 * time.Hour
	Week   = 7 * 24 * time.Hour
)

// ErrInvalidTTL is returned by Set for a non-positive ttl.
var ErrInvalidTTL = errors.New("cache: ttl must be positive")

// Store is a byte-oriented TTL cache.
type Store interface {
	// Get returns the stored bytes; ok is false on a miss or an expired entry.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	// Invalidate removes every key starting with prefix and reports how many were removed.
	Invalidate(ctx context.Context, prefix string) (int, error)
	Clear(ctx context.Context) error
	Close() error
}

// GetJSON reads and decodes a JSON value. A value that no longer decodes is treated as a miss.
func GetJSON[T any](ctx context.Context, s Store, key string) (T, bool, error) {
	var zero T
	b, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return zero, false, err
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		_ = s.Delete(ctx, key)
		return zero, false, nil
	}
	return v, true, nil
}

// SetJSON encodes v as JSON and stores it.
func SetJSON(ctx context.Context, s Store, key string, v any, ttl time.Duration) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, b, ttl)
}
