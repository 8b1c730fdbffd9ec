package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/stayup/internal/application/usecase"
	"github.com/bnema/stayup/internal/domain/entity"
	repomocks "github.com/bnema/stayup/internal/domain/repository/mocks"
)

func TestManagePermissionsUseCase_Contains(t *testing.T) {
	ctx := testContext()
	permRepo := repomocks.NewMockPermissionRepository(t)
	uc := usecase.NewManagePermissionsUseCase(permRepo, nil)

	permRepo.EXPECT().Get(mock.Anything, entity.PermissionTypeDownloads).Return(nil, nil).Once()
	granted, err := uc.Contains(ctx, entity.PermissionTypeDownloads)
	require.NoError(t, err)
	assert.False(t, granted, "missing record is not granted")

	permRepo.EXPECT().Get(mock.Anything, entity.PermissionTypeDownloads).
		Return(&entity.PermissionRecord{Type: entity.PermissionTypeDownloads, Decision: entity.PermissionGranted}, nil).Once()
	granted, err = uc.Contains(ctx, entity.PermissionTypeDownloads)
	require.NoError(t, err)
	assert.True(t, granted)
}

func TestManagePermissionsUseCase_ContainsWrapsError(t *testing.T) {
	ctx := testContext()
	permRepo := repomocks.NewMockPermissionRepository(t)
	uc := usecase.NewManagePermissionsUseCase(permRepo, nil)

	permRepo.EXPECT().Get(mock.Anything, entity.PermissionTypeDownloads).Return(nil, errors.New("db closed")).Once()

	_, err := uc.Contains(ctx, entity.PermissionTypeDownloads)

	var perr *entity.PersistenceError
	assert.ErrorAs(t, err, &perr)
}

func TestManagePermissionsUseCase_GrantNotifiesAdded(t *testing.T) {
	ctx := testContext()
	permRepo := repomocks.NewMockPermissionRepository(t)
	uc := usecase.NewManagePermissionsUseCase(permRepo, nil)

	var events []entity.PermissionEvent
	uc.OnAdded(func(_ context.Context, ev entity.PermissionEvent) { events = append(events, ev) })

	permRepo.EXPECT().Set(mock.Anything, mock.MatchedBy(func(r *entity.PermissionRecord) bool {
		return r.Type == entity.PermissionTypeDownloads && r.Decision == entity.PermissionGranted && r.UpdatedAt > 0
	})).Return(nil).Once()

	require.NoError(t, uc.Grant(ctx, entity.PermissionTypeDownloads))
	assert.Equal(t, []entity.PermissionEvent{{Type: entity.PermissionTypeDownloads, Granted: true}}, events)
}

func TestManagePermissionsUseCase_GrantUnknownType(t *testing.T) {
	ctx := testContext()
	permRepo := repomocks.NewMockPermissionRepository(t)
	uc := usecase.NewManagePermissionsUseCase(permRepo, nil)

	err := uc.Grant(ctx, entity.PermissionType("camera"))

	assert.ErrorIs(t, err, entity.ErrUnknownPermission)
	permRepo.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
}

func TestManagePermissionsUseCase_GrantFailureDoesNotNotify(t *testing.T) {
	ctx := testContext()
	permRepo := repomocks.NewMockPermissionRepository(t)
	uc := usecase.NewManagePermissionsUseCase(permRepo, nil)

	notified := false
	uc.OnAdded(func(context.Context, entity.PermissionEvent) { notified = true })
	permRepo.EXPECT().Set(mock.Anything, mock.Anything).Return(errors.New("readonly")).Once()

	require.Error(t, uc.Grant(ctx, entity.PermissionTypeDownloads))
	assert.False(t, notified)
}

func TestManagePermissionsUseCase_RevokeDisablesAutoDownloads(t *testing.T) {
	ctx := testContext()
	permRepo := repomocks.NewMockPermissionRepository(t)
	prefs := newMemDurable(prefsWith(func(p *entity.Preferences) { p.AutoDownloads.Status = true }))
	uc := usecase.NewManagePermissionsUseCase(permRepo, prefs)

	var removed []entity.PermissionEvent
	unsubscribe := uc.OnRemoved(func(_ context.Context, ev entity.PermissionEvent) {
		// Preferences are already updated when listeners run.
		assert.False(t, prefs.current().AutoDownloads.Status)
		removed = append(removed, ev)
	})
	defer unsubscribe()

	permRepo.EXPECT().Set(mock.Anything, mock.MatchedBy(func(r *entity.PermissionRecord) bool {
		return r.Decision == entity.PermissionDenied
	})).Return(nil).Once()

	require.NoError(t, uc.Revoke(ctx, entity.PermissionTypeDownloads))
	assert.Len(t, removed, 1)
	assert.True(t, prefs.current().Sounds.Status)
}

func TestManagePermissionsUseCase_RevokeLeavesDisabledPreferencesUntouched(t *testing.T) {
	ctx := testContext()
	permRepo := repomocks.NewMockPermissionRepository(t)
	prefs := newMemDurable(nil)
	uc := usecase.NewManagePermissionsUseCase(permRepo, prefs)

	permRepo.EXPECT().Set(mock.Anything, mock.Anything).Return(nil).Once()

	require.NoError(t, uc.Revoke(ctx, entity.PermissionTypeDownloads))
	assert.Equal(t, 0, prefs.saveCount())
}

func TestManagePermissionsUseCase_ListFillsMissingTypes(t *testing.T) {
	ctx := testContext()
	permRepo := repomocks.NewMockPermissionRepository(t)
	uc := usecase.NewManagePermissionsUseCase(permRepo, nil)

	permRepo.EXPECT().GetAll(mock.Anything).Return(nil, nil).Once()

	records, err := uc.List(ctx)

	require.NoError(t, err)
	require.Len(t, records, len(entity.KnownPermissionTypes()))
	assert.Equal(t, entity.PermissionTypeDownloads, records[0].Type)
	assert.False(t, records[0].IsGranted())
}
