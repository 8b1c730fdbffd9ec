package sqlite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/stayup/internal/domain/entity"
	"github.com/bnema/stayup/internal/infrastructure/persistence/sqlite"
)

func TestPermissionRepository_CRUD(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewPermissionRepository(openTestDB(t))

	got, err := repo.Get(ctx, entity.PermissionTypeDownloads)
	require.NoError(t, err)
	assert.Nil(t, got, "missing record reads as nil")
	assert.False(t, got.IsGranted())

	require.NoError(t, repo.Set(ctx, &entity.PermissionRecord{
		Type:     entity.PermissionTypeDownloads,
		Decision: entity.PermissionGranted,
	}))

	got, err = repo.Get(ctx, entity.PermissionTypeDownloads)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.IsGranted())
	assert.NotZero(t, got.UpdatedAt)

	require.NoError(t, repo.Set(ctx, &entity.PermissionRecord{
		Type:      entity.PermissionTypeDownloads,
		Decision:  entity.PermissionDenied,
		UpdatedAt: 1700000000,
	}))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, entity.PermissionDenied, all[0].Decision)
	assert.Equal(t, int64(1700000000), all[0].UpdatedAt)

	require.NoError(t, repo.Delete(ctx, entity.PermissionTypeDownloads))
	all, err = repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestPermissionRepository_SetNil(t *testing.T) {
	repo := sqlite.NewPermissionRepository(openTestDB(t))
	assert.Error(t, repo.Set(testCtx(), nil))
}
