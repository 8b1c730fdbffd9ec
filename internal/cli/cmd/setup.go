package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/stayup/internal/application/usecase"
	"github.com/bnema/stayup/internal/cli/styles"
	"github.com/bnema/stayup/internal/infrastructure/autostart"
)

var (
	setupEnable bool
	setupNow    bool
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Start the daemon with your session",
	Long: `Setup stayup's integration with the systemd user manager.

Subcommands:
  install  - Install the stayup.service user unit
  remove   - Stop, disable and delete the unit`,
}

var setupInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the systemd user unit",
	Long: `Install stayup.service to $XDG_CONFIG_HOME/systemd/user/ pointing at
this executable. The unit is bound to graphical-session.target.

With --enable it is enabled for future sessions; --now also starts it.

This command is idempotent - safe to run multiple times.`,
	Args: cobra.NoArgs,
	RunE: runSetupInstall,
}

var setupRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove the systemd user unit",
	Args:  cobra.NoArgs,
	RunE:  runSetupRemove,
}

func init() {
	rootCmd.AddCommand(setupCmd)
	setupCmd.AddCommand(setupInstallCmd)
	setupCmd.AddCommand(setupRemoveCmd)
	setupInstallCmd.Flags().BoolVar(&setupEnable, "enable", false, "enable the unit for future sessions")
	setupInstallCmd.Flags().BoolVar(&setupNow, "now", false, "enable and start the unit now")
}

func runSetupInstall(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	theme := app.Theme

	adapter, err := autostart.New()
	if err != nil {
		return report(fmt.Sprintf("%s %v", theme.ErrorStyle.Render(styles.IconX), err))
	}
	uc := usecase.NewInstallAutostartUseCase(adapter)

	result, err := uc.Execute(app.Ctx(), usecase.InstallAutostartInput{Enable: setupEnable, StartNow: setupNow})
	if result != nil && result.UnitPath != "" {
		verb := "installed to"
		if result.WasUnitExisting {
			verb = "updated at"
		}
		fmt.Printf("%s Unit %s %s\n", theme.SuccessStyle.Render(styles.IconCheck), verb, theme.Highlight.Render(result.UnitPath))
	}
	if err != nil {
		return report(fmt.Sprintf("%s %v", theme.ErrorStyle.Render(styles.IconX), err))
	}

	switch {
	case result.Started:
		fmt.Printf("%s Enabled and started %s\n", theme.SuccessStyle.Render(styles.IconCheck), autostart.UnitName)
	case result.Enabled:
		fmt.Printf("%s Enabled %s\n", theme.SuccessStyle.Render(styles.IconCheck), autostart.UnitName)
	default:
		fmt.Println()
		fmt.Println(theme.Subtle.Render("Run 'stayup setup install --now' to enable and start it"))
	}
	return nil
}

func runSetupRemove(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	theme := app.Theme

	adapter, err := autostart.New()
	if err != nil {
		return report(fmt.Sprintf("%s %v", theme.ErrorStyle.Render(styles.IconX), err))
	}
	uc := usecase.NewRemoveAutostartUseCase(adapter)

	result, err := uc.Execute(app.Ctx())
	if err != nil {
		return report(fmt.Sprintf("%s %v", theme.ErrorStyle.Render(styles.IconX), err))
	}

	if !result.WasUnitInstalled {
		fmt.Println(theme.Subtle.Render("No unit installed at " + result.RemovedUnitPath))
		return nil
	}
	fmt.Printf("%s Removed %s\n", theme.SuccessStyle.Render(styles.IconCheck), theme.Highlight.Render(result.RemovedUnitPath))
	return nil
}
