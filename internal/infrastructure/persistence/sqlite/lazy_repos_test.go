package sqlite_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/stayup/internal/domain/entity"
	"github.com/bnema/stayup/internal/infrastructure/persistence/sqlite"
)

func TestLazyRepositories_OpenDatabaseOnFirstCall(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "state.db"))
	t.Cleanup(func() { _ = lazy.Close() })

	perms := sqlite.NewLazyPermissionRepository(lazy)
	journal := sqlite.NewLazyTransitionRepository(lazy)
	assert.False(t, lazy.IsInitialized())

	require.NoError(t, perms.Set(ctx, &entity.PermissionRecord{
		Type:      entity.PermissionTypeDownloads,
		Decision:  entity.PermissionGranted,
		UpdatedAt: time.Now().Unix(),
	}))
	assert.True(t, lazy.IsInitialized())

	record, err := perms.Get(ctx, entity.PermissionTypeDownloads)
	require.NoError(t, err)
	assert.True(t, record.IsGranted())

	require.NoError(t, journal.Append(ctx, &entity.Transition{
		From:    entity.ModeOff,
		To:      entity.ModeOn,
		Trigger: entity.TriggerUser,
		Scope:   entity.ScopeSystem,
		At:      time.Now(),
	}))
	recent, err := journal.Recent(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, recent, 1)
}

func TestLazyRepositories_PropagateOpenError(t *testing.T) {
	ctx := testCtx()
	// A directory cannot be opened as a database file.
	lazy := sqlite.NewLazyDB(t.TempDir())

	_, err := sqlite.NewLazyPermissionRepository(lazy).GetAll(ctx)
	assert.Error(t, err)

	_, err = sqlite.NewLazyTransitionRepository(lazy).Prune(ctx, 1)
	assert.Error(t, err)
}
