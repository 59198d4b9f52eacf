// Package docstore defines the durable document store contract the ledger
// service persists institutions and certificates through.
package docstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a key does not exist in a collection.
var ErrNotFound = errors.New("not found")

// Store represents an opaque key/value document store organized by named
// collections. The store owns no transactional guarantees beyond per call
// success or failure.
type Store interface {
	Put(ctx context.Context, collection string, key string, record any) error
	Get(ctx context.Context, collection string, key string, record any) error
	ListAll(ctx context.Context, collection string) ([][]byte, error)
}
