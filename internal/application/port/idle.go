package port

import (
	"context"
	"time"

	"github.com/bnema/stayup/internal/domain/entity"
)

// IdleMonitor reports session idle and lock state changes.
type IdleMonitor interface {
	// SetDetectionInterval sets how long without input counts as idle.
	SetDetectionInterval(d time.Duration)
	OnStateChanged(fn func(ctx context.Context, state entity.IdleState)) (unsubscribe func())
}
