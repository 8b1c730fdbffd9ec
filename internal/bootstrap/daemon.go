package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/godbus/dbus/v5"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/stayup/internal/application/port"
	"github.com/bnema/stayup/internal/application/usecase"
	"github.com/bnema/stayup/internal/domain/download"
	"github.com/bnema/stayup/internal/infrastructure/config"
	"github.com/bnema/stayup/internal/infrastructure/dbusapi"
	"github.com/bnema/stayup/internal/infrastructure/downloads"
	"github.com/bnema/stayup/internal/infrastructure/idle"
	"github.com/bnema/stayup/internal/infrastructure/indicator"
	"github.com/bnema/stayup/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/stayup/internal/infrastructure/sound"
	"github.com/bnema/stayup/internal/infrastructure/store"
	"github.com/bnema/stayup/internal/logging"
)

// RunDaemon wires every adapter around the activation coordinator and
// blocks until ctx is cancelled.
func RunDaemon(ctx context.Context, manager *config.Manager) error {
	timer := NewStartupTimer()
	cfg := manager.Get()
	ctx = logging.WithComponent(ctx, "daemon")
	log := logging.FromContext(ctx)

	if err := config.EnsureDirectories(); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}

	stateDir, err := config.GetStateDir()
	if err != nil {
		return fmt.Errorf("resolve state directory: %w", err)
	}
	marker, prev, err := AcquireRunMarker(stateDir, time.Now())
	if err != nil {
		if errors.Is(err, ErrDaemonLocked) {
			return dbusapi.ErrAlreadyRunning
		}
		return fmt.Errorf("acquire run lock: %w", err)
	}
	defer func() {
		if err := marker.Release(time.Now()); err != nil {
			log.Warn().Err(err).Msg("failed to record clean shutdown")
		}
	}()
	if prev.Abrupt {
		// A portal or logind grant dies with the process that held it, so
		// nothing is left to release; the fresh session flags start off.
		log.Warn().
			Time("started_at", prev.StartedAt).
			Int("pid", prev.PID).
			Msg("previous daemon did not shut down cleanly, activation state starts off")
	}
	timer.Mark("lock")

	lazyDB := sqlite.NewLazyDB(cfg.Database.Path)
	defer func() { _ = lazyDB.Close() }()
	db, err := lazyDB.DB(ctx)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	permRepo := sqlite.NewPermissionRepository(db)
	journalRepo := sqlite.NewTransitionRepository(db)
	timer.Mark("database")

	prefsPath, err := config.GetPreferencesFile()
	if err != nil {
		return fmt.Errorf("resolve preferences file: %w", err)
	}
	durable := store.NewFileStore(prefsPath)
	session := store.NewSessionStore()
	permissions := usecase.NewManagePermissionsUseCase(permRepo, durable)

	sessionBus, err := dbus.ConnectSessionBus()
	if err != nil {
		return fmt.Errorf("connect session bus: %w", err)
	}
	defer func() { _ = sessionBus.Close() }()

	systemBus, err := dbus.ConnectSystemBus()
	if err != nil {
		log.Warn().Err(err).Msg("system bus unavailable, logind lock signals disabled")
		systemBus = nil
	} else {
		defer func() { _ = systemBus.Close() }()
	}
	timer.Mark("bus")

	keepAwake, err := idle.NewKeepAwake(ctx, string(cfg.KeepAwake.Backend), cfg.KeepAwake.Reason)
	if err != nil {
		return fmt.Errorf("keep-awake backend: %w", err)
	}
	defer func() { _ = keepAwake.Close() }()
	timer.Mark("keep_awake")

	monitor := idle.NewMonitor(sessionBus, systemBus)
	watcher := downloads.NewWatcher(
		cfg.Downloads.Dirs,
		download.NewClassifier(cfg.Downloads.PartialSuffixes, cfg.Downloads.StaleAfter.Std()),
		port.SystemClock{},
	)
	player := sound.NewPlayer(cfg.Sound.Player, map[port.Cue]string{
		port.CueOn:  cfg.Sound.OnSound,
		port.CueOff: cfg.Sound.OffSound,
	})
	defer func() { _ = player.Close() }()

	service := dbusapi.NewService(ctx, sessionBus, nil, permissions)
	coordinator := usecase.NewActivationCoordinator(usecase.CoordinatorDeps{
		Durable:       durable,
		Session:       session,
		KeepAwake:     keepAwake,
		Indicator:     indicator.Multi{indicator.NewStatusFile(cfg.Indicator.StatusFile), service},
		Cues:          usecase.NewCuePlayer(player, usecase.NewCueThrottle(cfg.Sound.Throttle.Std(), nil)),
		Downloads:     watcher,
		Permissions:   permissions,
		Idle:          monitor,
		Journal:       journalRepo,
		IdleDetection: cfg.Idle.DetectionInterval.Std(),
	})
	service.SetController(coordinator)
	if err := service.Export(); err != nil {
		return err
	}
	defer func() { _ = service.Close() }()
	timer.Mark("dbus")

	coordinator.Start(ctx)
	timer.Mark("coordinator")
	timer.Log(ctx)

	watchConfig(ctx, manager)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return durable.Watch(gctx) })
	g.Go(func() error { return monitor.Run(gctx) })
	g.Go(func() error { return watcher.Run(gctx) })

	log.Info().
		Str("preferences", prefsPath).
		Str("status_file", cfg.Indicator.StatusFile).
		Msg("stayup daemon running")
	runErr := g.Wait()

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	coordinator.Stop(shutdownCtx)

	pruned, err := usecase.NewListTransitionsUseCase(journalRepo).Prune(shutdownCtx, cfg.Journal.Keep)
	if err != nil {
		log.Warn().Err(err).Msg("failed to prune activation journal")
	} else if pruned > 0 {
		log.Debug().Int64("deleted", pruned).Msg("activation journal pruned")
	}

	log.Info().Msg("stayup daemon stopped")
	return runErr
}

// watchConfig hot-reloads the log level. Every other setting needs a restart.
func watchConfig(ctx context.Context, manager *config.Manager) {
	log := logging.FromContext(ctx)
	if err := manager.Watch(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to start config watcher")
		return
	}
	manager.OnConfigChange(func(cfg *config.Config) {
		ApplyLogLevel(cfg)
		log.Info().Str("level", cfg.Logging.Level).Msg("configuration reloaded")
	})
}
