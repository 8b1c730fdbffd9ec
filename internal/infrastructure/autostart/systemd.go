// Package autostart installs the daemon as a systemd user service.
package autostart

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	sdbus "github.com/coreos/go-systemd/v22/dbus"

	"github.com/bnema/stayup/internal/application/port"
	"github.com/bnema/stayup/internal/logging"
)

// UnitName is the installed systemd user unit.
const UnitName = "stayup.service"

const (
	appName  = "stayup"
	filePerm = 0o644
	dirPerm  = 0o755

	jobDone = "done"
)

// unitTemplate is the systemd user unit. %s is the executable path.
const unitTemplate = `[Unit]
Description=Stayup keep-awake daemon
Documentation=https://github.com/bnema/stayup
PartOf=graphical-session.target
After=graphical-session.target

[Service]
Type=dbus
BusName=org.bnema.Stayup
ExecStart=%s daemon
Restart=on-failure
RestartSec=2

[Install]
WantedBy=graphical-session.target
`

// Compile-time interface check.
var _ port.Autostart = (*SystemdUser)(nil)

// SystemdUser implements port.Autostart against the systemd user manager.
type SystemdUser struct {
	unitDir  string
	execPath func() (string, error)
	connect  func(ctx context.Context) (*sdbus.Conn, error)
}

// New creates an adapter writing to $XDG_CONFIG_HOME/systemd/user.
func New() (*SystemdUser, error) {
	dir, err := userUnitDir()
	if err != nil {
		return nil, err
	}
	return NewWithUnitDir(dir, executablePath), nil
}

// NewWithUnitDir creates an adapter for an explicit unit directory.
func NewWithUnitDir(unitDir string, execPath func() (string, error)) *SystemdUser {
	return &SystemdUser{
		unitDir:  unitDir,
		execPath: execPath,
		connect:  sdbus.NewUserConnectionContext,
	}
}

// userUnitDir returns the per-user systemd unit directory.
func userUnitDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("get home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "systemd", "user"), nil
}

// executablePath returns the path to the stayup executable.
func executablePath() (string, error) {
	execPath, err := os.Executable()
	if err == nil {
		if resolved, symlinkErr := filepath.EvalSymlinks(execPath); symlinkErr == nil {
			execPath = resolved
		}
		return execPath, nil
	}

	path, err := exec.LookPath(appName)
	if err != nil {
		return "", fmt.Errorf("cannot find %s executable: %w", appName, err)
	}
	return path, nil
}

func (s *SystemdUser) unitPath() string {
	return filepath.Join(s.unitDir, UnitName)
}

// GetStatus checks the unit file and asks the user manager about the unit.
func (s *SystemdUser) GetStatus(ctx context.Context) (*port.AutostartStatus, error) {
	log := logging.FromContext(ctx)
	status := &port.AutostartStatus{UnitPath: s.unitPath()}

	if _, err := os.Stat(status.UnitPath); err == nil {
		status.UnitInstalled = true
	}

	if execPath, err := s.execPath(); err == nil {
		status.ExecutablePath = execPath
	}

	conn, err := s.connect(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("systemd user manager unavailable")
		return status, nil
	}
	defer conn.Close()

	props, err := conn.GetUnitPropertiesContext(ctx, UnitName)
	if err != nil {
		log.Debug().Err(err).Msg("failed to read unit properties")
		return status, nil
	}
	status.Enabled = props["UnitFileState"] == "enabled"
	status.Active = props["ActiveState"] == "active"

	log.Debug().
		Bool("unit_installed", status.UnitInstalled).
		Bool("enabled", status.Enabled).
		Bool("active", status.Active).
		Msg("autostart status")
	return status, nil
}

// InstallUnit writes the unit file.
func (s *SystemdUser) InstallUnit(ctx context.Context) (string, error) {
	log := logging.FromContext(ctx)

	execPath, err := s.execPath()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.unitDir, dirPerm); err != nil {
		return "", fmt.Errorf("create unit dir: %w", err)
	}

	path := s.unitPath()
	content := fmt.Sprintf(unitTemplate, execPath)
	if err := os.WriteFile(path, []byte(content), filePerm); err != nil {
		return "", fmt.Errorf("write unit file: %w", err)
	}

	log.Info().Str("path", path).Str("exec", execPath).Msg("unit file installed")
	return path, nil
}

// RemoveUnit deletes the unit file.
func (s *SystemdUser) RemoveUnit(ctx context.Context) error {
	path := s.unitPath()
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove unit file: %w", err)
	}
	logging.FromContext(ctx).Info().Str("path", path).Msg("unit file removed")
	return nil
}

// Enable reloads the manager so it sees the unit, then enables it.
func (s *SystemdUser) Enable(ctx context.Context, startNow bool) error {
	conn, err := s.connect(ctx)
	if err != nil {
		return fmt.Errorf("connect systemd user manager: %w", err)
	}
	defer conn.Close()

	if err := conn.ReloadContext(ctx); err != nil {
		return fmt.Errorf("daemon-reload: %w", err)
	}
	if _, _, err := conn.EnableUnitFilesContext(ctx, []string{UnitName}, false, true); err != nil {
		return fmt.Errorf("enable %s: %w", UnitName, err)
	}
	if !startNow {
		return nil
	}
	return waitJob(ctx, func(ch chan<- string) (int, error) {
		return conn.StartUnitContext(ctx, UnitName, "replace", ch)
	}, "start")
}

// Disable stops the unit when asked, then disables it.
func (s *SystemdUser) Disable(ctx context.Context, stopNow bool) error {
	conn, err := s.connect(ctx)
	if err != nil {
		return fmt.Errorf("connect systemd user manager: %w", err)
	}
	defer conn.Close()

	if stopNow {
		err := waitJob(ctx, func(ch chan<- string) (int, error) {
			return conn.StopUnitContext(ctx, UnitName, "replace", ch)
		}, "stop")
		if err != nil {
			return err
		}
	}
	if _, err := conn.DisableUnitFilesContext(ctx, []string{UnitName}, false); err != nil {
		return fmt.Errorf("disable %s: %w", UnitName, err)
	}
	return conn.ReloadContext(ctx)
}

// waitJob queues a unit job and waits for systemd to report its result.
func waitJob(ctx context.Context, queue func(chan<- string) (int, error), verb string) error {
	ch := make(chan string, 1)
	if _, err := queue(ch); err != nil {
		return fmt.Errorf("%s %s: %w", verb, UnitName, err)
	}
	select {
	case result := <-ch:
		if result != jobDone {
			return fmt.Errorf("%s %s: job %s", verb, UnitName, result)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
