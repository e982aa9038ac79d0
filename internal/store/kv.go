package store

import "context"

// KV is the durable key-value storage the Store snapshots into.
//
//go:generate mockgen -source=kv.go -destination=mock_kv_test.go -package=store
type KV interface {
	// Get returns the value for key, with false when the key is absent.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set writes the value for key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
}
