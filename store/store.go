// Package store holds the key-value persistence layer. Keys are opaque strings,
// values are JSON documents. Implementations never interpret key contents.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"RestoFinder/utils"

	"github.com/pkg/errors"
)

// DefaultTimeout bounds a single store call when the caller sets none.
const DefaultTimeout = 5 * time.Second

// KeyValueStore is a flat string-keyed document store.
//
// Get reports absence with ok=false and a nil error. Set is an upsert.
// Delete of an absent key is a no-op. GetByPrefix returns the values of every
// key starting with prefix in no particular order. Any I/O failure matches
// utils.ErrStorageUnavailable.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	GetByPrefix(ctx context.Context, prefix string) ([][]byte, error)
	Close() error
}

// StorageError describes a failed store operation.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("store %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func (e *StorageError) Is(target error) bool {
	return target == utils.ErrStorageUnavailable
}

func unavailable(op, key string, err error) error {
	return errors.WithStack(&StorageError{Op: op, Key: key, Err: err})
}

// GetJSON decodes the value at key into dst. ok is false when the key is absent.
func GetJSON(ctx context.Context, s KeyValueStore, key string, dst any) (bool, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, unavailable("decode", key, err)
	}
	return true, nil
}

// GetAllJSON decodes every value under prefix. Order is whatever the backend returns.
func GetAllJSON[T any](ctx context.Context, s KeyValueStore, prefix string) ([]T, error) {
	values, err := s.GetByPrefix(ctx, prefix)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(values))
	for _, raw := range values {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, unavailable("decode", prefix, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// SetJSON encodes v and stores it at key.
func SetJSON(ctx context.Context, s KeyValueStore, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "encode %q", key)
	}
	return s.Set(ctx, key, raw)
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return context.WithTimeout(ctx, timeout)
}
