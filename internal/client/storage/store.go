// Package storage is the device key-value store: a durable SQLite backend,
// an in-memory backend, and the Storage wrapper that falls back to memory
// whenever the durable backend is missing or failing.
package storage

import "context"

// Store is a string key-value backend.
//
// Get reports ok=false for a missing key. Remove of a missing key is not an
// error.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
