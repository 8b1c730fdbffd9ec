package autostart

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	sdbus "github.com/coreos/go-systemd/v22/dbus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/stayup/internal/logging"
)

func testContext() context.Context {
	return logging.WithContext(context.Background(), logging.NewFromConfigValues("debug", "console"))
}

// offline returns an adapter whose user manager is never reachable.
func offline(t *testing.T) *SystemdUser {
	t.Helper()
	s := NewWithUnitDir(filepath.Join(t.TempDir(), "systemd", "user"), func() (string, error) {
		return "/usr/bin/stayup", nil
	})
	s.connect = func(context.Context) (*sdbus.Conn, error) {
		return nil, errors.New("no user bus")
	}
	return s
}

func TestSystemdUser_InstallWritesUnit(t *testing.T) {
	ctx := testContext()
	s := offline(t)

	path, err := s.InstallUnit(ctx)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(s.unitDir, UnitName), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "ExecStart=/usr/bin/stayup daemon")
	assert.Contains(t, string(content), "BusName=org.bnema.Stayup")
	assert.Contains(t, string(content), "WantedBy=graphical-session.target")

	// Idempotent
	_, err = s.InstallUnit(ctx)
	require.NoError(t, err)
}

func TestSystemdUser_StatusWithoutManager(t *testing.T) {
	ctx := testContext()
	s := offline(t)

	status, err := s.GetStatus(ctx)
	require.NoError(t, err)
	assert.False(t, status.UnitInstalled)
	assert.Equal(t, "/usr/bin/stayup", status.ExecutablePath)

	_, err = s.InstallUnit(ctx)
	require.NoError(t, err)

	status, err = s.GetStatus(ctx)
	require.NoError(t, err)
	assert.True(t, status.UnitInstalled)
	assert.False(t, status.Enabled)
	assert.False(t, status.Active)
}

func TestSystemdUser_RemoveIsIdempotent(t *testing.T) {
	ctx := testContext()
	s := offline(t)

	require.NoError(t, s.RemoveUnit(ctx))

	path, err := s.InstallUnit(ctx)
	require.NoError(t, err)
	require.NoError(t, s.RemoveUnit(ctx))
	_, err = os.Stat(path)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestSystemdUser_EnableNeedsManager(t *testing.T) {
	s := offline(t)
	err := s.Enable(testContext(), true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connect systemd user manager")
}

func TestWaitJob(t *testing.T) {
	ctx := testContext()

	err := waitJob(ctx, func(ch chan<- string) (int, error) {
		ch <- jobDone
		return 1, nil
	}, "start")
	require.NoError(t, err)

	err = waitJob(ctx, func(ch chan<- string) (int, error) {
		ch <- "failed"
		return 1, nil
	}, "start")
	require.ErrorContains(t, err, "job failed")

	err = waitJob(ctx, func(chan<- string) (int, error) {
		return 0, errors.New("unit not found")
	}, "stop")
	require.ErrorContains(t, err, "unit not found")
}

func TestUserUnitDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	dir, err := userUnitDir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/cfg/systemd/user", dir)
}
