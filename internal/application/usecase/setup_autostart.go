package usecase

import (
	"context"

	"github.com/bnema/stayup/internal/application/port"
	"github.com/bnema/stayup/internal/logging"
)

// InstallAutostartInput contains the input for the install operation.
type InstallAutostartInput struct {
	Enable   bool
	StartNow bool
}

// InstallAutostartOutput contains the result of the install operation.
type InstallAutostartOutput struct {
	UnitPath        string
	WasUnitExisting bool
	Enabled         bool
	Started         bool
}

// InstallAutostartUseCase installs the systemd user unit for the daemon.
type InstallAutostartUseCase struct {
	autostart port.Autostart
}

// NewInstallAutostartUseCase creates a new InstallAutostartUseCase.
func NewInstallAutostartUseCase(autostart port.Autostart) *InstallAutostartUseCase {
	return &InstallAutostartUseCase{autostart: autostart}
}

// Execute writes the unit and optionally enables and starts it.
func (uc *InstallAutostartUseCase) Execute(ctx context.Context, input InstallAutostartInput) (*InstallAutostartOutput, error) {
	log := logging.FromContext(ctx)

	status, err := uc.autostart.GetStatus(ctx)
	if err != nil {
		return nil, err
	}

	output := &InstallAutostartOutput{WasUnitExisting: status.UnitInstalled}

	unitPath, err := uc.autostart.InstallUnit(ctx)
	if err != nil {
		return nil, err
	}
	output.UnitPath = unitPath

	if input.Enable || input.StartNow {
		if err := uc.autostart.Enable(ctx, input.StartNow); err != nil {
			return output, err
		}
		output.Enabled = true
		output.Started = input.StartNow
	}

	log.Info().
		Str("unit_path", output.UnitPath).
		Bool("was_unit_existing", output.WasUnitExisting).
		Bool("enabled", output.Enabled).
		Bool("started", output.Started).
		Msg("autostart install complete")

	return output, nil
}

// RemoveAutostartOutput contains the result of the remove operation.
type RemoveAutostartOutput struct {
	WasUnitInstalled bool
	WasEnabled       bool
	RemovedUnitPath  string
}

// RemoveAutostartUseCase stops, disables and deletes the unit.
type RemoveAutostartUseCase struct {
	autostart port.Autostart
}

// NewRemoveAutostartUseCase creates a new RemoveAutostartUseCase.
func NewRemoveAutostartUseCase(autostart port.Autostart) *RemoveAutostartUseCase {
	return &RemoveAutostartUseCase{autostart: autostart}
}

// Execute removes the autostart integration.
func (uc *RemoveAutostartUseCase) Execute(ctx context.Context) (*RemoveAutostartOutput, error) {
	log := logging.FromContext(ctx)

	status, err := uc.autostart.GetStatus(ctx)
	if err != nil {
		return nil, err
	}

	output := &RemoveAutostartOutput{
		WasUnitInstalled: status.UnitInstalled,
		WasEnabled:       status.Enabled,
		RemovedUnitPath:  status.UnitPath,
	}

	if status.Enabled || status.Active {
		if err := uc.autostart.Disable(ctx, status.Active); err != nil {
			return nil, err
		}
	}

	if err := uc.autostart.RemoveUnit(ctx); err != nil {
		return nil, err
	}

	log.Info().
		Bool("was_unit_installed", output.WasUnitInstalled).
		Bool("was_enabled", output.WasEnabled).
		Msg("autostart removed")

	return output, nil
}
