package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/stayup/internal/application/port"
	"github.com/bnema/stayup/internal/application/port/mocks"
	"github.com/bnema/stayup/internal/application/usecase"
)

const unitPath = "/home/u/.config/systemd/user/stayup.service"

func TestInstallAutostartUseCase_WritesUnitOnly(t *testing.T) {
	ctx := testContext()
	autostart := mocks.NewMockAutostart(t)
	uc := usecase.NewInstallAutostartUseCase(autostart)

	autostart.EXPECT().GetStatus(mock.Anything).Return(&port.AutostartStatus{UnitPath: unitPath}, nil).Once()
	autostart.EXPECT().InstallUnit(mock.Anything).Return(unitPath, nil).Once()

	out, err := uc.Execute(ctx, usecase.InstallAutostartInput{})
	require.NoError(t, err)
	assert.Equal(t, unitPath, out.UnitPath)
	assert.False(t, out.WasUnitExisting)
	assert.False(t, out.Enabled)
	assert.False(t, out.Started)
}

func TestInstallAutostartUseCase_EnableAndStart(t *testing.T) {
	ctx := testContext()
	autostart := mocks.NewMockAutostart(t)
	uc := usecase.NewInstallAutostartUseCase(autostart)

	autostart.EXPECT().GetStatus(mock.Anything).Return(&port.AutostartStatus{UnitInstalled: true, UnitPath: unitPath}, nil).Once()
	autostart.EXPECT().InstallUnit(mock.Anything).Return(unitPath, nil).Once()
	autostart.EXPECT().Enable(mock.Anything, true).Return(nil).Once()

	out, err := uc.Execute(ctx, usecase.InstallAutostartInput{StartNow: true})
	require.NoError(t, err)
	assert.True(t, out.WasUnitExisting)
	assert.True(t, out.Enabled)
	assert.True(t, out.Started)
}

func TestInstallAutostartUseCase_EnableFailureKeepsUnitPath(t *testing.T) {
	ctx := testContext()
	autostart := mocks.NewMockAutostart(t)
	uc := usecase.NewInstallAutostartUseCase(autostart)

	autostart.EXPECT().GetStatus(mock.Anything).Return(&port.AutostartStatus{}, nil).Once()
	autostart.EXPECT().InstallUnit(mock.Anything).Return(unitPath, nil).Once()
	autostart.EXPECT().Enable(mock.Anything, false).Return(errors.New("no user manager")).Once()

	out, err := uc.Execute(ctx, usecase.InstallAutostartInput{Enable: true})
	require.Error(t, err)
	require.NotNil(t, out)
	assert.Equal(t, unitPath, out.UnitPath)
	assert.False(t, out.Enabled)
}

func TestRemoveAutostartUseCase(t *testing.T) {
	tests := []struct {
		name        string
		status      port.AutostartStatus
		wantDisable bool
		wantStop    bool
	}{
		{name: "not installed", status: port.AutostartStatus{UnitPath: unitPath}},
		{name: "installed, disabled", status: port.AutostartStatus{UnitInstalled: true, UnitPath: unitPath}},
		{name: "enabled, stopped", status: port.AutostartStatus{UnitInstalled: true, Enabled: true, UnitPath: unitPath}, wantDisable: true},
		{name: "enabled, running", status: port.AutostartStatus{UnitInstalled: true, Enabled: true, Active: true, UnitPath: unitPath}, wantDisable: true, wantStop: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext()
			autostart := mocks.NewMockAutostart(t)
			uc := usecase.NewRemoveAutostartUseCase(autostart)

			status := tt.status
			autostart.EXPECT().GetStatus(mock.Anything).Return(&status, nil).Once()
			if tt.wantDisable {
				autostart.EXPECT().Disable(mock.Anything, tt.wantStop).Return(nil).Once()
			}
			autostart.EXPECT().RemoveUnit(mock.Anything).Return(nil).Once()

			out, err := uc.Execute(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.status.UnitInstalled, out.WasUnitInstalled)
			assert.Equal(t, tt.status.Enabled, out.WasEnabled)
			assert.Equal(t, unitPath, out.RemovedUnitPath)
		})
	}
}
