package repository

import (
	"context"

	"github.com/bnema/stayup/internal/domain/entity"
)

// TransitionRepository is the append-only activation journal.
type TransitionRepository interface {
	Append(ctx context.Context, t *entity.Transition) error
	// Recent returns up to limit transitions, newest first.
	Recent(ctx context.Context, limit int) ([]*entity.Transition, error)
	// Prune deletes all but the newest keep transitions.
	Prune(ctx context.Context, keep int) (int64, error)
}
