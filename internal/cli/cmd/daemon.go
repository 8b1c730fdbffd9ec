package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/stayup/internal/bootstrap"
	"github.com/bnema/stayup/internal/infrastructure/dbusapi"
	"github.com/bnema/stayup/internal/logging"
)

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Run the keep-awake daemon",
	Long: `Run the stayup daemon in the foreground until SIGINT or SIGTERM.

The daemon owns org.bnema.Stayup on the session bus. Only one instance can
run per user; a second one exits with an error.`,
	Args: cobra.NoArgs,
	RunE: runDaemon,
}

func init() {
	rootCmd.AddCommand(daemonCmd)
}

func runDaemon(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	if app.Manager == nil {
		return fmt.Errorf("load config: %w", app.ConfigErr)
	}

	logger, logCleanup, logErr := bootstrap.NewLogger(app.Config, true)
	defer logCleanup()
	if logErr != nil {
		logger.Warn().Err(logErr).Msg("file logging disabled")
	}
	logger.Info().
		Str("version", app.BuildInfo.Version).
		Str("commit", app.BuildInfo.Commit).
		Str("build_date", app.BuildInfo.BuildDate).
		Msg("starting stayup")

	ctx, stop := signal.NotifyContext(logging.WithContext(context.Background(), logger), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = bootstrap.RunDaemon(ctx, app.Manager)
	switch {
	case errors.Is(err, dbusapi.ErrAlreadyRunning):
		logger.Error().Msg("another stayup daemon is already running")
		return err
	case err != nil:
		logger.Error().Err(err).Msg("daemon stopped with error")
		return err
	}
	logger.Info().Msg("daemon stopped")
	return nil
}
