package sqlite

import (
	"context"
	"database/sql"
	"sync"

	"github.com/bnema/stayup/internal/application/port"
	"github.com/bnema/stayup/internal/domain/entity"
	"github.com/bnema/stayup/internal/domain/repository"
)

// lazyInit opens the database through provider once and builds a repository on it.
type lazyInit[R any] struct {
	provider port.DatabaseProvider
	build    func(db *sql.DB) R
	once     sync.Once
	repo     R
	err      error
}

func (l *lazyInit[R]) get(ctx context.Context) (R, error) {
	l.once.Do(func() {
		db, err := l.provider.DB(ctx)
		if err != nil {
			l.err = err
			return
		}
		l.repo = l.build(db)
	})
	return l.repo, l.err
}

// LazyPermissionRepository opens the database on first use.
type LazyPermissionRepository struct {
	lazy lazyInit[repository.PermissionRepository]
}

// NewLazyPermissionRepository creates a lazy-loading permission repository.
func NewLazyPermissionRepository(provider port.DatabaseProvider) repository.PermissionRepository {
	return &LazyPermissionRepository{lazy: lazyInit[repository.PermissionRepository]{
		provider: provider,
		build:    NewPermissionRepository,
	}}
}

func (r *LazyPermissionRepository) Get(ctx context.Context, permType entity.PermissionType) (*entity.PermissionRecord, error) {
	repo, err := r.lazy.get(ctx)
	if err != nil {
		return nil, err
	}
	return repo.Get(ctx, permType)
}

func (r *LazyPermissionRepository) Set(ctx context.Context, record *entity.PermissionRecord) error {
	repo, err := r.lazy.get(ctx)
	if err != nil {
		return err
	}
	return repo.Set(ctx, record)
}

func (r *LazyPermissionRepository) Delete(ctx context.Context, permType entity.PermissionType) error {
	repo, err := r.lazy.get(ctx)
	if err != nil {
		return err
	}
	return repo.Delete(ctx, permType)
}

func (r *LazyPermissionRepository) GetAll(ctx context.Context) ([]*entity.PermissionRecord, error) {
	repo, err := r.lazy.get(ctx)
	if err != nil {
		return nil, err
	}
	return repo.GetAll(ctx)
}

// LazyTransitionRepository opens the database on first use.
type LazyTransitionRepository struct {
	lazy lazyInit[repository.TransitionRepository]
}

// NewLazyTransitionRepository creates a lazy-loading journal repository.
func NewLazyTransitionRepository(provider port.DatabaseProvider) repository.TransitionRepository {
	return &LazyTransitionRepository{lazy: lazyInit[repository.TransitionRepository]{
		provider: provider,
		build:    NewTransitionRepository,
	}}
}

func (r *LazyTransitionRepository) Append(ctx context.Context, t *entity.Transition) error {
	repo, err := r.lazy.get(ctx)
	if err != nil {
		return err
	}
	return repo.Append(ctx, t)
}

func (r *LazyTransitionRepository) Recent(ctx context.Context, limit int) ([]*entity.Transition, error) {
	repo, err := r.lazy.get(ctx)
	if err != nil {
		return nil, err
	}
	return repo.Recent(ctx, limit)
}

func (r *LazyTransitionRepository) Prune(ctx context.Context, keep int) (int64, error) {
	repo, err := r.lazy.get(ctx)
	if err != nil {
		return 0, err
	}
	return repo.Prune(ctx, keep)
}
