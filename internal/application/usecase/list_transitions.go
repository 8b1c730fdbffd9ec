package usecase

import (
	"context"

	"github.com/bnema/stayup/internal/domain/entity"
	"github.com/bnema/stayup/internal/domain/repository"
)

// DefaultJournalKeep is how many transitions survive a prune.
const DefaultJournalKeep = 500

// ListTransitionsUseCase reads and trims the activation journal.
type ListTransitionsUseCase struct {
	repo repository.TransitionRepository
}

// NewListTransitionsUseCase creates a new journal use case.
func NewListTransitionsUseCase(repo repository.TransitionRepository) *ListTransitionsUseCase {
	return &ListTransitionsUseCase{repo: repo}
}

// Execute returns the newest transitions first.
func (uc *ListTransitionsUseCase) Execute(ctx context.Context, limit int) ([]*entity.Transition, error) {
	if limit <= 0 {
		limit = 20
	}
	return uc.repo.Recent(ctx, limit)
}

// Prune keeps the newest keep transitions and returns how many were deleted.
func (uc *ListTransitionsUseCase) Prune(ctx context.Context, keep int) (int64, error) {
	if keep <= 0 {
		keep = DefaultJournalKeep
	}
	return uc.repo.Prune(ctx, keep)
}
