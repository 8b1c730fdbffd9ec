// Package usecase contains application use cases that orchestrate domain logic.
package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/go-viper/mapstructure/v2"

	"github.com/bnema/stayup/internal/application/port"
	"github.com/bnema/stayup/internal/domain/entity"
	"github.com/bnema/stayup/internal/domain/repository"
	"github.com/bnema/stayup/internal/logging"
)

// CoordinatorDeps wires the activation coordinator.
// Downloads, Permissions, Idle and Journal are optional.
type CoordinatorDeps struct {
	Durable     port.DurableStore
	Session     port.SessionStore
	KeepAwake   port.KeepAwake
	Indicator   port.Indicator
	Cues        *CuePlayer
	Downloads   port.DownloadActivity
	Permissions port.PermissionGate
	Idle        port.IdleMonitor
	Journal     repository.TransitionRepository

	// IdleDetection is applied to the idle monitor once, in Start.
	IdleDetection time.Duration
}

// ActivationCoordinator owns the keep-awake activation state. It is the only
// writer of the status and download-activation flags.
//
// Every handler re-reads the stores, decides, and applies side effects while
// holding mu, so at most one transition is in flight at any time.
type ActivationCoordinator struct {
	deps CoordinatorDeps

	mu sync.Mutex

	listenMu          sync.Mutex
	unsubscribe       []func()
	downloadListeners []func()
}

// NewActivationCoordinator creates a coordinator. Call Start to attach listeners.
func NewActivationCoordinator(deps CoordinatorDeps) *ActivationCoordinator {
	if deps.IdleDetection <= 0 {
		deps.IdleDetection = entity.DefaultIdleDetection
	}
	return &ActivationCoordinator{deps: deps}
}

// Start configures idle detection, subscribes to every trigger source and
// registers the download listeners if the permission is already granted.
func (c *ActivationCoordinator) Start(ctx context.Context) {
	ctx = logging.WithComponent(ctx, "coordinator")
	log := logging.FromContext(ctx)

	c.listenMu.Lock()
	if c.deps.Idle != nil {
		c.deps.Idle.SetDetectionInterval(c.deps.IdleDetection)
		c.unsubscribe = append(c.unsubscribe, c.deps.Idle.OnStateChanged(c.HandleIdleState))
	}
	if c.deps.Durable != nil {
		c.unsubscribe = append(c.unsubscribe, c.deps.Durable.Subscribe(c.HandleStoreChange))
	}
	if c.deps.Permissions != nil {
		onPermission := func(ctx context.Context, _ entity.PermissionEvent) { c.SyncDownloadListeners(ctx) }
		c.unsubscribe = append(c.unsubscribe,
			c.deps.Permissions.OnAdded(onPermission),
			c.deps.Permissions.OnRemoved(onPermission),
		)
	}
	c.listenMu.Unlock()

	c.SyncDownloadListeners(ctx)

	// A restart resets the session flags; make the indicator agree with them.
	c.mu.Lock()
	active := c.loadFlag(ctx, entity.StatusKey)
	_ = attempt(ctx, "indicator sync", func() error {
		return portErr("indicator", "set", c.deps.Indicator.SetIndicator(ctx, active))
	})
	c.mu.Unlock()

	log.Info().
		Dur("idle_detection", c.deps.IdleDetection).
		Bool("active", active).
		Msg("activation coordinator started")
}

// Stop detaches every listener and releases a held grant. It does not touch
// the persisted flags: they die with the session store.
func (c *ActivationCoordinator) Stop(ctx context.Context) {
	c.listenMu.Lock()
	for _, unsub := range c.unsubscribe {
		unsub()
	}
	c.unsubscribe = nil
	for _, unsub := range c.downloadListeners {
		unsub()
	}
	c.downloadListeners = nil
	c.listenMu.Unlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.loadFlag(ctx, entity.StatusKey) {
		return
	}
	_ = attempt(ctx, "keep-awake release", func() error {
		return portErr("keep_awake", "release", c.deps.KeepAwake.Release(ctx))
	})
	_ = attempt(ctx, "indicator off", func() error {
		return portErr("indicator", "set", c.deps.Indicator.SetIndicator(ctx, false))
	})
}

// HandleIntent applies an explicit activate/deactivate request. Explicit
// intent is unconditional: activating while on re-applies the on effects.
func (c *ActivationCoordinator) HandleIntent(ctx context.Context, intent entity.Intent) {
	ctx = logging.WithTrigger(ctx, string(entity.TriggerUser))

	c.mu.Lock()
	defer c.mu.Unlock()

	prev := c.loadFlag(ctx, entity.StatusKey)
	switch intent {
	case entity.IntentActivate:
		c.turnOn(ctx, prev, entity.TriggerUser, false)
	case entity.IntentDeactivate:
		c.turnOff(ctx, prev, entity.TriggerUser)
	default:
		logging.FromContext(ctx).Debug().Str("intent", string(intent)).Msg("ignoring unknown intent")
	}
}

// HandleCommand handles a keyboard shortcut command.
func (c *ActivationCoordinator) HandleCommand(ctx context.Context, command string) {
	if command != entity.ToggleCommand {
		logging.FromContext(ctx).Debug().Str("command", command).Msg("ignoring unknown command")
		return
	}
	ctx = logging.WithTrigger(ctx, string(entity.TriggerShortcut))

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loadFlag(ctx, entity.StatusKey) {
		c.turnOff(ctx, true, entity.TriggerShortcut)
	} else {
		c.turnOn(ctx, false, entity.TriggerShortcut, false)
	}
}

// HandleIdleState turns keep-awake off when the session locks, whatever
// started the current on period.
func (c *ActivationCoordinator) HandleIdleState(ctx context.Context, state entity.IdleState) {
	if state != entity.IdleLocked {
		return
	}
	ctx = logging.WithTrigger(ctx, string(entity.TriggerIdleLock))

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.loadFlag(ctx, entity.StatusKey) {
		return
	}
	c.turnOff(ctx, true, entity.TriggerIdleLock)
}

// HandleDownloadCreated turns keep-awake on when downloads are running and
// auto-downloads is enabled and granted.
func (c *ActivationCoordinator) HandleDownloadCreated(ctx context.Context) {
	ctx = logging.WithTrigger(ctx, string(entity.TriggerDownloads))

	c.mu.Lock()
	defer c.mu.Unlock()

	inProgress, ok := c.downloadsInProgress(ctx)
	if !ok || !inProgress {
		return
	}
	if c.loadFlag(ctx, entity.StatusKey) {
		return
	}
	if !c.autoDownloadsActive(ctx, c.loadPreferences(ctx)) {
		return
	}

	c.turnOn(ctx, false, entity.TriggerDownloads, true)
}

// HandleDownloadsChanged turns keep-awake off once no download remains, but
// only if the current on period was started by downloads.
func (c *ActivationCoordinator) HandleDownloadsChanged(ctx context.Context) {
	ctx = logging.WithTrigger(ctx, string(entity.TriggerDownloads))

	c.mu.Lock()
	defer c.mu.Unlock()

	inProgress, ok := c.downloadsInProgress(ctx)
	if !ok || inProgress {
		return
	}
	if !c.loadFlag(ctx, entity.StatusKey) {
		return
	}
	if !c.loadFlag(ctx, entity.DownloadActivatedKey) {
		return
	}
	if !c.autoDownloadsActive(ctx, c.loadPreferences(ctx)) {
		return
	}

	c.turnOff(ctx, true, entity.TriggerDownloads)
}

// HandleStoreChange re-acquires the grant with the new scope when the
// displaySleep preference flips while keep-awake is on.
func (c *ActivationCoordinator) HandleStoreChange(ctx context.Context, change port.StoreChange) {
	if change.Key != entity.PreferencesKey || change.OldValue == nil || change.NewValue == nil {
		return
	}
	ctx = logging.WithTrigger(ctx, string(entity.TriggerPreference))
	log := logging.FromContext(ctx)

	oldPrefs, err := decodePreferences(change.OldValue)
	if err != nil {
		log.Warn().Err(err).Msg("cannot decode previous preferences")
		return
	}
	newPrefs, err := decodePreferences(change.NewValue)
	if err != nil {
		log.Warn().Err(err).Msg("cannot decode new preferences")
		return
	}
	if oldPrefs.DisplaySleep.Status == newPrefs.DisplaySleep.Status {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.loadFlag(ctx, entity.StatusKey) {
		return
	}

	scope := newPrefs.Scope()
	log.Info().Str("scope", string(scope)).Msg("keep-awake scope changed, re-acquiring")
	_ = attempt(ctx, "keep-awake release", func() error {
		return portErr("keep_awake", "release", c.deps.KeepAwake.Release(ctx))
	})
	_ = attempt(ctx, "keep-awake acquire", func() error {
		return portErr("keep_awake", "acquire", c.deps.KeepAwake.Acquire(ctx, scope))
	})
	c.journal(ctx, true, true, entity.TriggerPreference, scope)
}

// SyncDownloadListeners registers the download listeners when the downloads
// permission is granted and removes them when it is not.
func (c *ActivationCoordinator) SyncDownloadListeners(ctx context.Context) {
	if c.deps.Downloads == nil {
		return
	}
	log := logging.FromContext(ctx)

	// The grant is read under listenMu so a stale answer cannot be applied
	// after a newer one.
	c.listenMu.Lock()
	defer c.listenMu.Unlock()

	granted := c.downloadsGranted(ctx)
	registered := len(c.downloadListeners) > 0
	switch {
	case granted && !registered:
		c.downloadListeners = append(c.downloadListeners,
			c.deps.Downloads.OnCreated(c.HandleDownloadCreated),
			c.deps.Downloads.OnChanged(c.HandleDownloadsChanged),
		)
		log.Info().Msg("download listeners registered")
	case !granted && registered:
		for _, unsub := range c.downloadListeners {
			unsub()
		}
		c.downloadListeners = nil
		log.Info().Msg("download listeners removed")
	}
}

// Status returns the persisted activation state.
func (c *ActivationCoordinator) Status(ctx context.Context) entity.ActivationStatus {
	c.mu.Lock()
	defer c.mu.Unlock()

	return entity.ActivationStatus{
		Active:            c.loadFlag(ctx, entity.StatusKey),
		DownloadActivated: c.loadFlag(ctx, entity.DownloadActivatedKey),
		Scope:             c.loadPreferences(ctx).Scope(),
	}
}

// turnOn applies the on side effects. Must be called with mu held.
func (c *ActivationCoordinator) turnOn(ctx context.Context, prev bool, trigger entity.Trigger, fromDownloads bool) {
	prefs := c.loadPreferences(ctx)
	scope := prefs.Scope()

	if prefs.Sounds.Status {
		c.deps.Cues.Play(ctx, port.CueOn)
	}

	_ = attempt(ctx, "keep-awake acquire", func() error {
		return portErr("keep_awake", "acquire", c.deps.KeepAwake.Acquire(ctx, scope))
	})
	_ = attempt(ctx, "indicator on", func() error {
		return portErr("indicator", "set", c.deps.Indicator.SetIndicator(ctx, true))
	})
	_ = attempt(ctx, "save status", func() error {
		return c.saveFlag(ctx, entity.StatusKey, true)
	})
	if fromDownloads {
		_ = attempt(ctx, "save download activation", func() error {
			return c.saveFlag(ctx, entity.DownloadActivatedKey, true)
		})
	}

	logging.FromContext(ctx).Info().
		Str("scope", string(scope)).
		Bool("from_downloads", fromDownloads).
		Msg("keep-awake on")
	c.journal(ctx, prev, true, trigger, scope)
}

// turnOff applies the off side effects. Must be called with mu held.
func (c *ActivationCoordinator) turnOff(ctx context.Context, prev bool, trigger entity.Trigger) {
	prefs := c.loadPreferences(ctx)

	if prefs.Sounds.Status {
		c.deps.Cues.Play(ctx, port.CueOff)
	}

	_ = attempt(ctx, "keep-awake release", func() error {
		return portErr("keep_awake", "release", c.deps.KeepAwake.Release(ctx))
	})
	_ = attempt(ctx, "indicator off", func() error {
		return portErr("indicator", "set", c.deps.Indicator.SetIndicator(ctx, false))
	})
	_ = attempt(ctx, "save status", func() error {
		return c.saveFlag(ctx, entity.StatusKey, false)
	})
	_ = attempt(ctx, "clear download activation", func() error {
		return c.saveFlag(ctx, entity.DownloadActivatedKey, false)
	})

	logging.FromContext(ctx).Info().Msg("keep-awake off")
	c.journal(ctx, prev, false, trigger, prefs.Scope())
}

// loadFlag reads a session flag; a failed read counts as false.
func (c *ActivationCoordinator) loadFlag(ctx context.Context, key string) bool {
	value, err := c.deps.Session.LoadBool(ctx, key, false)
	if err != nil {
		_ = attempt(ctx, "load "+key, func() error { return persistenceErr("load_session", key, err) })
		return false
	}
	return value
}

func (c *ActivationCoordinator) saveFlag(ctx context.Context, key string, value bool) error {
	return persistenceErr("save_session", key, c.deps.Session.SaveBool(ctx, key, value))
}

// loadPreferences reads the preference record. A failed read falls back to
// the defaults for this decision only; nothing is written back.
func (c *ActivationCoordinator) loadPreferences(ctx context.Context) entity.Preferences {
	prefs := entity.DefaultPreferences()
	if c.deps.Durable == nil {
		return prefs
	}
	if _, err := c.deps.Durable.Load(ctx, entity.PreferencesKey, &prefs); err != nil {
		_ = attempt(ctx, "load preferences", func() error {
			return persistenceErr("load", entity.PreferencesKey, err)
		})
		return entity.DefaultPreferences()
	}
	return prefs
}

// autoDownloadsActive is true when the preference is on and the grant still
// exists. A revoked grant disables the feature even if the preference lags.
func (c *ActivationCoordinator) autoDownloadsActive(ctx context.Context, prefs entity.Preferences) bool {
	if !prefs.AutoDownloads.Status {
		return false
	}
	return c.downloadsGranted(ctx)
}

func (c *ActivationCoordinator) downloadsGranted(ctx context.Context) bool {
	if c.deps.Permissions == nil {
		return false
	}
	granted, err := c.deps.Permissions.Contains(ctx, entity.PermissionTypeDownloads)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("permission lookup failed, treating downloads as not granted")
		return false
	}
	return granted
}

// downloadsInProgress queries the download port. ok is false when the query failed.
func (c *ActivationCoordinator) downloadsInProgress(ctx context.Context) (inProgress, ok bool) {
	if c.deps.Downloads == nil {
		return false, false
	}
	items, err := c.deps.Downloads.Search(ctx, entity.DownloadInProgress)
	if err != nil {
		_ = attempt(ctx, "download search", func() error { return portErr("downloads", "search", err) })
		return false, false
	}
	return entity.AnyInProgress(items), true
}

func (c *ActivationCoordinator) journal(ctx context.Context, prev, next bool, trigger entity.Trigger, scope entity.KeepAwakeScope) {
	if c.deps.Journal == nil {
		return
	}
	_ = attempt(ctx, "journal append", func() error {
		return persistenceErr("append", "transitions", c.deps.Journal.Append(ctx, &entity.Transition{
			From:    entity.ModeFor(prev),
			To:      entity.ModeFor(next),
			Trigger: trigger,
			Scope:   scope,
			At:      time.Now(),
		}))
	})
}

// decodePreferences decodes a raw store value over the defaults, so missing
// toggles keep their default.
func decodePreferences(raw any) (entity.Preferences, error) {
	prefs := entity.DefaultPreferences()
	if err := mapstructure.Decode(raw, &prefs); err != nil {
		return entity.DefaultPreferences(), err
	}
	return prefs, nil
}
