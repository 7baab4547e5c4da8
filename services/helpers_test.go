package services

import (
	"RestoFinder/store"
	"context"
	"sync/atomic"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func testLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

// countingStore counts writes reaching the wrapped store.
type countingStore struct {
	*store.MemoryStore
	writes atomic.Int64
}

func newCountingStore() *countingStore {
	return &countingStore{MemoryStore: store.NewMemoryStore()}
}

func (c *countingStore) Set(ctx context.Context, key string, value []byte) error {
	c.writes.Add(1)
	return c.MemoryStore.Set(ctx, key, value)
}

func (c *countingStore) Delete(ctx context.Context, key string) error {
	c.writes.Add(1)
	return c.MemoryStore.Delete(ctx, key)
}

// failingStore fails every call the way a broken backend would.
type failingStore struct{}

var errBackendDown = &store.StorageError{Op: "dial", Err: errors.New("connection refused")}

func (failingStore) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errBackendDown
}
func (failingStore) Set(context.Context, string, []byte) error { return errBackendDown }
func (failingStore) Delete(context.Context, string) error      { return errBackendDown }
func (failingStore) GetByPrefix(context.Context, string) ([][]byte, error) {
	return nil, errBackendDown
}
func (failingStore) Close() error { return nil }
