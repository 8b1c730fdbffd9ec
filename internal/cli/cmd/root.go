// Package cmd provides Cobra CLI commands for stayup.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/stayup/internal/cli"
	"github.com/bnema/stayup/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "stayup",
		Short: "Keep your Linux session awake on demand",
		Long: `Stayup - keeps the display or the whole system awake while you need it.

A small user-session daemon holds one on/off state and reacts to:
  - explicit commands (stayup toggle, or a window manager keybinding)
  - screen locking, which always turns it off
  - downloads in progress, when autoDownloads is enabled and granted
  - preference edits, which switch between display and system scope

Run 'stayup daemon' from your session autostart, then drive it with
activate, deactivate, toggle and status.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			// Set build info from main.go
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

// errReported marks a failure already rendered to stderr.
var errReported = errors.New("error reported")

// report prints a rendered failure and returns errReported so the process
// still exits non-zero.
func report(rendered string) error {
	fmt.Fprintln(os.Stderr, rendered)
	return errReported
}

// requireApp returns the app or an error when PersistentPreRunE was skipped.
func requireApp() (*cli.App, error) {
	if app == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return app, nil
}
