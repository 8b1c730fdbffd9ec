package port

import "context"

// AutostartStatus describes how the daemon is started with the session.
type AutostartStatus struct {
	UnitInstalled  bool
	UnitPath       string
	Enabled        bool
	Active         bool
	ExecutablePath string
}

// Autostart manages the systemd user unit that runs the daemon.
type Autostart interface {
	// GetStatus checks the unit file and, when the user manager is
	// reachable, whether the unit is enabled and running.
	GetStatus(ctx context.Context) (*AutostartStatus, error)

	// InstallUnit writes the unit file pointing at the current executable.
	// Idempotent: safe to call multiple times.
	InstallUnit(ctx context.Context) (string, error)

	// RemoveUnit deletes the unit file. Returns nil if it does not exist.
	RemoveUnit(ctx context.Context) error

	// Enable reloads the user manager and enables the unit, starting it
	// when startNow is set.
	Enable(ctx context.Context, startNow bool) error

	// Disable disables the unit, stopping it first when stopNow is set.
	Disable(ctx context.Context, stopNow bool) error
}
