package port

import (
	"context"

	"github.com/bnema/stayup/internal/domain/entity"
)

// KeepAwake holds or releases the system sleep-prevention lock.
// Implementations keep a single grant: Acquire while already held replaces the
// grant, Release without a grant is a no-op.
type KeepAwake interface {
	Acquire(ctx context.Context, scope entity.KeepAwakeScope) error
	Release(ctx context.Context) error

	// Close releases any held grant and the underlying connection.
	Close() error
}
