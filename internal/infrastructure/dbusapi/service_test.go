package dbusapi

import (
	"context"
	"errors"
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/stayup/internal/domain/entity"
)

type mockController struct{ mock.Mock }

func (m *mockController) HandleIntent(ctx context.Context, intent entity.Intent) {
	m.Called(ctx, intent)
}

func (m *mockController) HandleCommand(ctx context.Context, command string) {
	m.Called(ctx, command)
}

func (m *mockController) Status(ctx context.Context) entity.ActivationStatus {
	return m.Called(ctx).Get(0).(entity.ActivationStatus)
}

type mockPermissions struct{ mock.Mock }

func (m *mockPermissions) Grant(ctx context.Context, permType entity.PermissionType) error {
	return m.Called(ctx, permType).Error(0)
}

func (m *mockPermissions) Revoke(ctx context.Context, permType entity.PermissionType) error {
	return m.Called(ctx, permType).Error(0)
}

func TestService_Methods(t *testing.T) {
	ctrl := &mockController{}
	perms := &mockPermissions{}
	s := NewService(context.Background(), nil, ctrl, perms)

	ctrl.On("HandleIntent", mock.Anything, entity.IntentActivate).Once()
	ctrl.On("HandleIntent", mock.Anything, entity.IntentDeactivate).Once()
	ctrl.On("HandleCommand", mock.Anything, entity.ToggleCommand).Once()
	ctrl.On("Status", mock.Anything).Return(entity.ActivationStatus{
		Active: true, DownloadActivated: true, Scope: entity.ScopeDisplay,
	}).Once()
	perms.On("Grant", mock.Anything, entity.PermissionTypeDownloads).Return(nil).Once()
	perms.On("Revoke", mock.Anything, entity.PermissionTypeDownloads).Return(errors.New("db locked")).Once()

	assert.Nil(t, s.activate())
	assert.Nil(t, s.deactivate())
	assert.Nil(t, s.command(entity.ToggleCommand))

	active, fromDownloads, scope, derr := s.status()
	assert.Nil(t, derr)
	assert.True(t, active)
	assert.True(t, fromDownloads)
	assert.Equal(t, "display", scope)

	assert.Nil(t, s.grantPermission("downloads"))
	derr = s.revokePermission("downloads")
	require.NotNil(t, derr)
	assert.Equal(t, errorPrefix+"Failed", derr.Name)

	ctrl.AssertExpectations(t)
	perms.AssertExpectations(t)
}

func TestService_RejectsUnknownInput(t *testing.T) {
	ctrl := &mockController{}
	s := NewService(context.Background(), nil, ctrl, &mockPermissions{})

	derr := s.command("selfDestruct")
	require.NotNil(t, derr)
	assert.Equal(t, errorPrefix+"UnknownCommand", derr.Name)

	derr = s.grantPermission("camera")
	require.NotNil(t, derr)
	assert.Equal(t, errorPrefix+"UnknownPermission", derr.Name)

	ctrl.AssertNotCalled(t, "HandleCommand", mock.Anything, mock.Anything)
}

func TestService_MethodTableCoversInterface(t *testing.T) {
	s := NewService(context.Background(), nil, &mockController{}, nil)
	for _, name := range []string{"Command", "Activate", "Deactivate", "Status", "GrantPermission", "RevokePermission"} {
		assert.Contains(t, s.methods(), name)
		assert.Contains(t, interfaceXML, `name="`+name+`"`)
	}
}

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate(nil))
	assert.ErrorIs(t, translate(dbus.Error{Name: "org.freedesktop.DBus.Error.ServiceUnknown"}), ErrNotRunning)

	err := translate(dbus.Error{Name: errorPrefix + "Failed", Body: []any{"db locked"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db locked")

	plain := errors.New("plain")
	assert.Equal(t, plain, translate(plain))
}
