// Package port declares the boundaries the use cases talk to.
package port

import "context"

// StoreChange describes one key changed in the durable store.
// OldValue and NewValue hold the raw decoded values and are nil when the key
// was absent before or after the change.
type StoreChange struct {
	Key      string
	OldValue any
	NewValue any
}

// DurableStore is the long-term key/value preference store.
// Any writer, including another process, may change it; changes are observed
// through Subscribe.
type DurableStore interface {
	// Load decodes the value under key into dst. found is false when the key is
	// absent, in which case dst is left untouched.
	Load(ctx context.Context, key string, dst any) (found bool, err error)
	Save(ctx context.Context, key string, value any) error
	Clear(ctx context.Context, key string) error
	// Subscribe registers fn for change notifications and returns an unsubscribe func.
	Subscribe(fn func(ctx context.Context, change StoreChange)) (unsubscribe func())
}

// SessionStore holds flags scoped to the daemon's lifetime.
type SessionStore interface {
	LoadBool(ctx context.Context, key string, def bool) (bool, error)
	SaveBool(ctx context.Context, key string, value bool) error
}
