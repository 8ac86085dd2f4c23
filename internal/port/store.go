package port

import "context"

// KVStore abstracts the key-value service holding the latest snapshot.
// Values are opaque JSON documents; a Set on an existing key overwrites
// the previous value wholesale.
type KVStore interface {
	// Get returns the JSON document stored under key, or
	// ErrSnapshotNotFound if the key has never been written.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores the JSON document under key, replacing any prior value.
	Set(ctx context.Context, key string, value []byte) error
}
