// Package cli holds the dependencies shared by the stayup subcommands.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/bnema/stayup/internal/application/usecase"
	"github.com/bnema/stayup/internal/cli/styles"
	"github.com/bnema/stayup/internal/domain/build"
	"github.com/bnema/stayup/internal/infrastructure/config"
	"github.com/bnema/stayup/internal/infrastructure/dbusapi"
	"github.com/bnema/stayup/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/stayup/internal/infrastructure/store"
	"github.com/bnema/stayup/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	ConfigErr error
	Theme     *styles.Theme
	BuildInfo build.Info

	// Use cases. They work without the daemon; the database is only opened
	// when a command touches permissions or the journal.
	Preferences *usecase.ManagePreferencesUseCase
	Permissions *usecase.ManagePermissionsUseCase
	Journal     *usecase.ListTransitionsUseCase

	lazyDB *sqlite.LazyDB
	client *dbusapi.Client

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp creates a new CLI application with all dependencies.
func NewApp() (*App, error) {
	manager, cfg, cfgErr := loadConfig()

	// Quiet unless STAYUP_LOG_LEVEL asks for output.
	logLevel := os.Getenv("STAYUP_LOG_LEVEL")
	logger, logCleanup, _ := logging.NewWithFile(
		logging.Config{Level: logging.ParseLevel(logLevel), Format: cfg.Logging.Format, TimeFormat: "15:04:05"},
		logging.FileConfig{Enabled: false, WriteToStderr: logLevel != ""},
	)
	ctx := logging.WithContext(context.Background(), logger)
	if cfgErr != nil {
		logger.Warn().Err(cfgErr).Msg("using default configuration")
	}

	prefsPath, err := config.GetPreferencesFile()
	if err != nil {
		logCleanup()
		return nil, fmt.Errorf("resolve preferences file: %w", err)
	}

	lazyDB := sqlite.NewLazyDB(cfg.Database.Path)
	durable := store.NewFileStore(prefsPath)
	permissions := usecase.NewManagePermissionsUseCase(sqlite.NewLazyPermissionRepository(lazyDB), durable)

	return &App{
		Config:      cfg,
		Manager:     manager,
		ConfigErr:   cfgErr,
		Theme:       styles.NewTheme(),
		Preferences: usecase.NewManagePreferencesUseCase(durable, permissions),
		Permissions: permissions,
		Journal:     usecase.NewListTransitionsUseCase(sqlite.NewLazyTransitionRepository(lazyDB)),
		lazyDB:      lazyDB,
		ctx:         ctx,
		logCleanup:  logCleanup,
	}, nil
}

// Daemon returns a client for the running daemon, dialing the session bus
// on first use.
func (a *App) Daemon() (*dbusapi.Client, error) {
	if a.client != nil {
		return a.client, nil
	}
	client, err := dbusapi.Dial()
	if err != nil {
		return nil, err
	}
	a.client = client
	return client, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.client != nil {
		_ = a.client.Close()
	}
	if a.logCleanup != nil {
		a.logCleanup()
	}
	if a.lazyDB != nil {
		return a.lazyDB.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// loadConfig loads configuration from standard locations, falling back to
// the defaults when the file cannot be read.
func loadConfig() (*config.Manager, *config.Config, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, config.ResolvedDefaultConfig(), err
	}

	if err := mgr.Load(); err != nil {
		return nil, config.ResolvedDefaultConfig(), err
	}

	return mgr, mgr.Get(), nil
}
