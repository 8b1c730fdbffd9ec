package usecase_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/stayup/internal/application/port"
	portmocks "github.com/bnema/stayup/internal/application/port/mocks"
	"github.com/bnema/stayup/internal/application/usecase"
	"github.com/bnema/stayup/internal/domain/entity"
	repomocks "github.com/bnema/stayup/internal/domain/repository/mocks"
)

type coordinatorFixture struct {
	session   *memSession
	durable   *memDurable
	keepAwake *portmocks.MockKeepAwake
	indicator *portmocks.MockIndicator
	surface   *portmocks.MockCueSurface
	downloads *portmocks.MockDownloadActivity
	gate      *portmocks.MockPermissionGate
	coord     *usecase.ActivationCoordinator
}

func newCoordinatorFixture(t *testing.T, prefs *entity.Preferences, withDownloads bool) *coordinatorFixture {
	t.Helper()
	f := &coordinatorFixture{
		session:   newMemSession(),
		durable:   newMemDurable(prefs),
		keepAwake: portmocks.NewMockKeepAwake(t),
		indicator: portmocks.NewMockIndicator(t),
		surface:   portmocks.NewMockCueSurface(t),
	}
	deps := usecase.CoordinatorDeps{
		Durable:   f.durable,
		Session:   f.session,
		KeepAwake: f.keepAwake,
		Indicator: f.indicator,
		Cues:      usecase.NewCuePlayer(f.surface, usecase.NewCueThrottle(0, newFakeClock())),
	}
	if withDownloads {
		f.downloads = portmocks.NewMockDownloadActivity(t)
		f.gate = portmocks.NewMockPermissionGate(t)
		deps.Downloads = f.downloads
		deps.Permissions = f.gate
	}
	f.coord = usecase.NewActivationCoordinator(deps)
	return f
}

func (f *coordinatorFixture) expectOn(scope entity.KeepAwakeScope) {
	f.keepAwake.EXPECT().Acquire(mock.Anything, scope).Return(nil).Once()
	f.indicator.EXPECT().SetIndicator(mock.Anything, true).Return(nil).Once()
}

func (f *coordinatorFixture) expectOff() {
	f.keepAwake.EXPECT().Release(mock.Anything).Return(nil).Once()
	f.indicator.EXPECT().SetIndicator(mock.Anything, false).Return(nil).Once()
}

func (f *coordinatorFixture) expectCue(cue port.Cue) {
	f.surface.EXPECT().HasSurface(mock.Anything).Return(true, nil).Once()
	f.surface.EXPECT().Send(mock.Anything, port.CueMessage{Type: port.CueMessageType, Sound: cue}).Return(nil).Once()
}

func silent() *entity.Preferences {
	return prefsWith(func(p *entity.Preferences) { p.Sounds.Status = false })
}

func TestActivationCoordinator_ActivateFromOff(t *testing.T) {
	ctx := testContext()
	f := newCoordinatorFixture(t, nil, false)

	f.expectOn(entity.ScopeSystem)
	f.surface.EXPECT().HasSurface(mock.Anything).Return(false, nil).Once()
	f.surface.EXPECT().CreateSurface(mock.Anything).Return(nil).Once()
	f.surface.EXPECT().Send(mock.Anything, port.CueMessage{Type: port.CueMessageType, Sound: port.CueOn}).Return(nil).Once()

	f.coord.HandleIntent(ctx, entity.IntentActivate)

	assert.True(t, f.session.get(entity.StatusKey))
	assert.False(t, f.session.get(entity.DownloadActivatedKey))
}

func TestActivationCoordinator_ActivateWhenOnReappliesEffects(t *testing.T) {
	ctx := testContext()
	f := newCoordinatorFixture(t, prefsWith(func(p *entity.Preferences) {
		p.Sounds.Status = false
		p.DisplaySleep.Status = true
	}), false)
	f.session.set(entity.StatusKey, true)

	f.expectOn(entity.ScopeDisplay)

	f.coord.HandleIntent(ctx, entity.IntentActivate)

	assert.True(t, f.session.get(entity.StatusKey))
}

func TestActivationCoordinator_DeactivateClearsBothFlags(t *testing.T) {
	ctx := testContext()
	f := newCoordinatorFixture(t, nil, false)
	f.session.set(entity.StatusKey, true)
	f.session.set(entity.DownloadActivatedKey, true)

	f.expectOff()
	f.expectCue(port.CueOff)

	f.coord.HandleIntent(ctx, entity.IntentDeactivate)

	assert.False(t, f.session.get(entity.StatusKey))
	assert.False(t, f.session.get(entity.DownloadActivatedKey))
}

func TestActivationCoordinator_DeactivateWhenOffStillReleases(t *testing.T) {
	ctx := testContext()
	f := newCoordinatorFixture(t, silent(), false)

	f.expectOff()

	f.coord.HandleIntent(ctx, entity.IntentDeactivate)

	assert.False(t, f.session.get(entity.StatusKey))
}

func TestActivationCoordinator_UnknownIntentAndCommandIgnored(t *testing.T) {
	ctx := testContext()
	f := newCoordinatorFixture(t, nil, false)

	f.coord.HandleIntent(ctx, entity.Intent("explode"))
	f.coord.HandleCommand(ctx, "openSettings")

	assert.False(t, f.session.get(entity.StatusKey))
}

func TestActivationCoordinator_ToggleCommand(t *testing.T) {
	ctx := testContext()
	f := newCoordinatorFixture(t, silent(), false)

	f.expectOn(entity.ScopeSystem)
	f.coord.HandleCommand(ctx, entity.ToggleCommand)
	assert.True(t, f.session.get(entity.StatusKey))

	f.expectOff()
	f.coord.HandleCommand(ctx, entity.ToggleCommand)
	assert.False(t, f.session.get(entity.StatusKey))
}

func TestActivationCoordinator_ScopeFollowsPreference(t *testing.T) {
	ctx := testContext()
	f := newCoordinatorFixture(t, silent(), false)
	f.session.set(entity.StatusKey, true)

	f.keepAwake.EXPECT().Release(mock.Anything).Return(nil).Once()
	f.keepAwake.EXPECT().Acquire(mock.Anything, entity.ScopeDisplay).Return(nil).Once()

	f.coord.HandleStoreChange(ctx, port.StoreChange{
		Key:      entity.PreferencesKey,
		OldValue: rawPrefs(false),
		NewValue: rawPrefs(true),
	})

	assert.True(t, f.session.get(entity.StatusKey))
	f.keepAwake.AssertNumberOfCalls(t, "Release", 1)
	f.keepAwake.AssertNumberOfCalls(t, "Acquire", 1)
	f.indicator.AssertNotCalled(t, "SetIndicator", mock.Anything, mock.Anything)
}

func TestActivationCoordinator_StoreChangeIgnored(t *testing.T) {
	tests := []struct {
		name   string
		active bool
		change port.StoreChange
	}{
		{
			name:   "inactive",
			active: false,
			change: port.StoreChange{Key: entity.PreferencesKey, OldValue: rawPrefs(false), NewValue: rawPrefs(true)},
		},
		{
			name:   "display sleep unchanged",
			active: true,
			change: port.StoreChange{Key: entity.PreferencesKey, OldValue: rawPrefs(true), NewValue: rawPrefs(true)},
		},
		{
			name:   "first write",
			active: true,
			change: port.StoreChange{Key: entity.PreferencesKey, NewValue: rawPrefs(true)},
		},
		{
			name:   "cleared",
			active: true,
			change: port.StoreChange{Key: entity.PreferencesKey, OldValue: rawPrefs(true)},
		},
		{
			name:   "other key",
			active: true,
			change: port.StoreChange{Key: "window", OldValue: rawPrefs(false), NewValue: rawPrefs(true)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext()
			f := newCoordinatorFixture(t, silent(), false)
			f.session.set(entity.StatusKey, tt.active)

			f.coord.HandleStoreChange(ctx, tt.change)

			f.keepAwake.AssertNotCalled(t, "Release", mock.Anything)
			f.keepAwake.AssertNotCalled(t, "Acquire", mock.Anything, mock.Anything)
			assert.Equal(t, tt.active, f.session.get(entity.StatusKey))
		})
	}
}

func TestActivationCoordinator_DownloadCreatedActivates(t *testing.T) {
	ctx := testContext()
	f := newCoordinatorFixture(t, prefsWith(func(p *entity.Preferences) {
		p.Sounds.Status = false
		p.AutoDownloads.Status = true
	}), true)

	f.downloads.EXPECT().Search(mock.Anything, entity.DownloadInProgress).
		Return([]entity.DownloadItem{{Path: "/tmp/iso.part", State: entity.DownloadInProgress}}, nil).Once()
	f.gate.EXPECT().Contains(mock.Anything, entity.PermissionTypeDownloads).Return(true, nil).Once()
	f.expectOn(entity.ScopeSystem)

	f.coord.HandleDownloadCreated(ctx)

	assert.True(t, f.session.get(entity.StatusKey))
	assert.True(t, f.session.get(entity.DownloadActivatedKey))
}

func TestActivationCoordinator_DownloadCreatedIgnored(t *testing.T) {
	inProgress := []entity.DownloadItem{{Path: "/tmp/a.part", State: entity.DownloadInProgress}}

	tests := []struct {
		name          string
		autoDownloads bool
		active        bool
		items         []entity.DownloadItem
		searchErr     error
		granted       bool
	}{
		{name: "auto downloads off", autoDownloads: false, items: inProgress, granted: true},
		{name: "nothing in progress", autoDownloads: true, items: nil, granted: true},
		{name: "already active", autoDownloads: true, active: true, items: inProgress, granted: true},
		{name: "search failed", autoDownloads: true, searchErr: errors.New("boom"), granted: true},
		{name: "not granted", autoDownloads: true, items: inProgress, granted: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext()
			f := newCoordinatorFixture(t, prefsWith(func(p *entity.Preferences) {
				p.Sounds.Status = false
				p.AutoDownloads.Status = tt.autoDownloads
			}), true)
			f.session.set(entity.StatusKey, tt.active)

			f.downloads.EXPECT().Search(mock.Anything, entity.DownloadInProgress).Return(tt.items, tt.searchErr).Once()
			f.gate.EXPECT().Contains(mock.Anything, entity.PermissionTypeDownloads).Return(tt.granted, nil).Maybe()

			f.coord.HandleDownloadCreated(ctx)

			assert.Equal(t, tt.active, f.session.get(entity.StatusKey))
			assert.False(t, f.session.get(entity.DownloadActivatedKey))
			f.keepAwake.AssertNotCalled(t, "Acquire", mock.Anything, mock.Anything)
		})
	}
}

func TestActivationCoordinator_DownloadsFinishedEndsDownloadPeriod(t *testing.T) {
	ctx := testContext()
	f := newCoordinatorFixture(t, prefsWith(func(p *entity.Preferences) {
		p.Sounds.Status = false
		p.AutoDownloads.Status = true
	}), true)
	f.session.set(entity.StatusKey, true)
	f.session.set(entity.DownloadActivatedKey, true)

	f.downloads.EXPECT().Search(mock.Anything, entity.DownloadInProgress).Return(nil, nil).Once()
	f.gate.EXPECT().Contains(mock.Anything, entity.PermissionTypeDownloads).Return(true, nil).Once()
	f.expectOff()

	f.coord.HandleDownloadsChanged(ctx)

	assert.False(t, f.session.get(entity.StatusKey))
	assert.False(t, f.session.get(entity.DownloadActivatedKey))
}

func TestActivationCoordinator_DownloadsFinishedKeepsManualActivation(t *testing.T) {
	ctx := testContext()
	f := newCoordinatorFixture(t, prefsWith(func(p *entity.Preferences) {
		p.Sounds.Status = false
		p.AutoDownloads.Status = true
	}), true)
	f.session.set(entity.StatusKey, true)

	f.downloads.EXPECT().Search(mock.Anything, entity.DownloadInProgress).Return(nil, nil).Once()
	f.gate.EXPECT().Contains(mock.Anything, entity.PermissionTypeDownloads).Return(true, nil).Maybe()

	f.coord.HandleDownloadsChanged(ctx)

	assert.True(t, f.session.get(entity.StatusKey))
	f.keepAwake.AssertNotCalled(t, "Release", mock.Anything)
}

func TestActivationCoordinator_DownloadsStillRunningKeepsOn(t *testing.T) {
	ctx := testContext()
	f := newCoordinatorFixture(t, prefsWith(func(p *entity.Preferences) {
		p.Sounds.Status = false
		p.AutoDownloads.Status = true
	}), true)
	f.session.set(entity.StatusKey, true)
	f.session.set(entity.DownloadActivatedKey, true)

	f.downloads.EXPECT().Search(mock.Anything, entity.DownloadInProgress).
		Return([]entity.DownloadItem{{Path: "/tmp/b.crdownload", State: entity.DownloadInProgress}}, nil).Once()

	f.coord.HandleDownloadsChanged(ctx)

	assert.True(t, f.session.get(entity.StatusKey))
	assert.True(t, f.session.get(entity.DownloadActivatedKey))
}

func TestActivationCoordinator_IdleLockAlwaysDeactivates(t *testing.T) {
	for _, fromDownloads := range []bool{false, true} {
		ctx := testContext()
		f := newCoordinatorFixture(t, silent(), false)
		f.session.set(entity.StatusKey, true)
		f.session.set(entity.DownloadActivatedKey, fromDownloads)

		f.expectOff()

		f.coord.HandleIdleState(ctx, entity.IdleLocked)

		assert.False(t, f.session.get(entity.StatusKey))
		assert.False(t, f.session.get(entity.DownloadActivatedKey))
	}
}

func TestActivationCoordinator_IdleStatesOtherThanLockedIgnored(t *testing.T) {
	ctx := testContext()
	f := newCoordinatorFixture(t, silent(), false)
	f.session.set(entity.StatusKey, true)

	f.coord.HandleIdleState(ctx, entity.IdleIdle)
	f.coord.HandleIdleState(ctx, entity.IdleActive)

	assert.True(t, f.session.get(entity.StatusKey))
}

func TestActivationCoordinator_IdleLockWhenOffDoesNothing(t *testing.T) {
	ctx := testContext()
	f := newCoordinatorFixture(t, silent(), false)

	f.coord.HandleIdleState(ctx, entity.IdleLocked)

	f.keepAwake.AssertNotCalled(t, "Release", mock.Anything)
}

func TestActivationCoordinator_RevocationRemovesDownloadListeners(t *testing.T) {
	ctx := testContext()
	f := newCoordinatorFixture(t, prefsWith(func(p *entity.Preferences) {
		p.Sounds.Status = false
		p.AutoDownloads.Status = true
	}), true)

	var createdRemoved, changedRemoved atomic.Bool
	var onRemoved func(context.Context, entity.PermissionEvent)

	f.gate.EXPECT().OnAdded(mock.Anything).Return(func() {}).Once()
	f.gate.EXPECT().OnRemoved(mock.Anything).
		RunAndReturn(func(fn func(context.Context, entity.PermissionEvent)) func() {
			onRemoved = fn
			return func() {}
		}).Once()
	f.gate.EXPECT().Contains(mock.Anything, entity.PermissionTypeDownloads).Return(true, nil).Once()
	f.downloads.EXPECT().OnCreated(mock.Anything).Return(func() { createdRemoved.Store(true) }).Once()
	f.downloads.EXPECT().OnChanged(mock.Anything).Return(func() { changedRemoved.Store(true) }).Once()
	f.indicator.EXPECT().SetIndicator(mock.Anything, false).Return(nil).Once()

	f.coord.Start(ctx)
	require.NotNil(t, onRemoved)

	f.gate.EXPECT().Contains(mock.Anything, entity.PermissionTypeDownloads).Return(false, nil)
	onRemoved(ctx, entity.PermissionEvent{Type: entity.PermissionTypeDownloads})

	assert.True(t, createdRemoved.Load())
	assert.True(t, changedRemoved.Load())

	// A late event after revocation must not change state.
	f.downloads.EXPECT().Search(mock.Anything, entity.DownloadInProgress).
		Return([]entity.DownloadItem{{Path: "/tmp/c.part", State: entity.DownloadInProgress}}, nil).Maybe()
	f.coord.HandleDownloadCreated(ctx)

	assert.False(t, f.session.get(entity.StatusKey))
	assert.False(t, f.session.get(entity.DownloadActivatedKey))
	f.keepAwake.AssertNotCalled(t, "Acquire", mock.Anything, mock.Anything)
}

func TestActivationCoordinator_StartWithoutGrantSkipsDownloadListeners(t *testing.T) {
	ctx := testContext()
	f := newCoordinatorFixture(t, silent(), true)
	idle := portmocks.NewMockIdleMonitor(t)

	coord := usecase.NewActivationCoordinator(usecase.CoordinatorDeps{
		Durable:       f.durable,
		Session:       f.session,
		KeepAwake:     f.keepAwake,
		Indicator:     f.indicator,
		Downloads:     f.downloads,
		Permissions:   f.gate,
		Idle:          idle,
		IdleDetection: 5 * time.Minute,
	})

	idle.EXPECT().SetDetectionInterval(5 * time.Minute).Return().Once()
	idle.EXPECT().OnStateChanged(mock.Anything).Return(func() {}).Once()
	f.gate.EXPECT().OnAdded(mock.Anything).Return(func() {}).Once()
	f.gate.EXPECT().OnRemoved(mock.Anything).Return(func() {}).Once()
	f.gate.EXPECT().Contains(mock.Anything, entity.PermissionTypeDownloads).Return(false, nil).Once()
	f.indicator.EXPECT().SetIndicator(mock.Anything, false).Return(nil).Once()

	coord.Start(ctx)

	f.downloads.AssertNotCalled(t, "OnCreated", mock.Anything)
	f.downloads.AssertNotCalled(t, "OnChanged", mock.Anything)
}

func TestActivationCoordinator_GrantAddsDownloadListeners(t *testing.T) {
	ctx := testContext()
	f := newCoordinatorFixture(t, silent(), true)

	f.gate.EXPECT().Contains(mock.Anything, entity.PermissionTypeDownloads).Return(false, nil).Once()
	f.coord.SyncDownloadListeners(ctx)

	f.gate.EXPECT().Contains(mock.Anything, entity.PermissionTypeDownloads).Return(true, nil).Twice()
	f.downloads.EXPECT().OnCreated(mock.Anything).Return(func() {}).Once()
	f.downloads.EXPECT().OnChanged(mock.Anything).Return(func() {}).Once()

	f.coord.SyncDownloadListeners(ctx)
	// Already registered: no duplicate listeners.
	f.coord.SyncDownloadListeners(ctx)
}

func TestActivationCoordinator_RevocationDuringGrantLookupWins(t *testing.T) {
	ctx := testContext()
	f := newCoordinatorFixture(t, silent(), true)

	var calls atomic.Int32
	inLookup := make(chan struct{})
	release := make(chan struct{})
	f.gate.EXPECT().Contains(mock.Anything, entity.PermissionTypeDownloads).
		RunAndReturn(func(context.Context, entity.PermissionType) (bool, error) {
			if calls.Add(1) == 1 {
				close(inLookup)
				<-release
				return true, nil
			}
			return false, nil
		}).Twice()

	var removed atomic.Bool
	f.downloads.EXPECT().OnCreated(mock.Anything).Return(func() { removed.Store(true) }).Once()
	f.downloads.EXPECT().OnChanged(mock.Anything).Return(func() {}).Once()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		f.coord.SyncDownloadListeners(ctx)
	}()
	<-inLookup
	go func() {
		defer wg.Done()
		f.coord.SyncDownloadListeners(ctx)
	}()
	// let the revocation sync run ahead if it can
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	// The later answer (revoked) is what sticks.
	assert.Equal(t, int32(2), calls.Load())
	assert.True(t, removed.Load())
}

func TestActivationCoordinator_SideEffectFailuresAreIsolated(t *testing.T) {
	ctx := testContext()
	f := newCoordinatorFixture(t, nil, false)

	f.surface.EXPECT().HasSurface(mock.Anything).Return(false, errors.New("no bus")).Once()
	f.surface.EXPECT().CreateSurface(mock.Anything).Return(errors.New("no player")).Once()
	f.surface.EXPECT().Send(mock.Anything, mock.Anything).Return(errors.New("no surface")).Once()
	f.keepAwake.EXPECT().Acquire(mock.Anything, entity.ScopeSystem).Return(errors.New("portal gone")).Once()
	f.indicator.EXPECT().SetIndicator(mock.Anything, true).Return(errors.New("disk full")).Once()

	f.coord.HandleIntent(ctx, entity.IntentActivate)

	assert.True(t, f.session.get(entity.StatusKey), "status must be saved even when ports fail")
}

func TestActivationCoordinator_PreferenceReadFailureUsesDefaults(t *testing.T) {
	ctx := testContext()
	f := newCoordinatorFixture(t, prefsWith(func(p *entity.Preferences) {
		p.Sounds.Status = false
		p.DisplaySleep.Status = true
	}), false)
	f.durable.loadErr = errors.New("corrupt file")

	// Defaults: sounds on, system scope.
	f.expectOn(entity.ScopeSystem)
	f.expectCue(port.CueOn)

	f.coord.HandleIntent(ctx, entity.IntentActivate)

	assert.True(t, f.session.get(entity.StatusKey))
	assert.Equal(t, 0, f.durable.saveCount(), "defaults must never be written back")
}

func TestActivationCoordinator_StatusReadFailureCountsAsOff(t *testing.T) {
	ctx := testContext()
	f := newCoordinatorFixture(t, silent(), false)
	f.session.flags[entity.StatusKey] = true
	f.session.loadErr = errors.New("unavailable")

	f.expectOn(entity.ScopeSystem)

	f.coord.HandleCommand(ctx, entity.ToggleCommand)
}

func TestActivationCoordinator_JournalsTransitions(t *testing.T) {
	ctx := testContext()
	session := newMemSession()
	keepAwake := portmocks.NewMockKeepAwake(t)
	indicator := portmocks.NewMockIndicator(t)
	journal := repomocks.NewMockTransitionRepository(t)

	coord := usecase.NewActivationCoordinator(usecase.CoordinatorDeps{
		Durable:   newMemDurable(silent()),
		Session:   session,
		KeepAwake: keepAwake,
		Indicator: indicator,
		Journal:   journal,
	})

	keepAwake.EXPECT().Acquire(mock.Anything, entity.ScopeSystem).Return(nil).Once()
	indicator.EXPECT().SetIndicator(mock.Anything, true).Return(nil).Once()
	journal.EXPECT().Append(mock.Anything, mock.MatchedBy(func(tr *entity.Transition) bool {
		return tr.From == entity.ModeOff && tr.To == entity.ModeOn &&
			tr.Trigger == entity.TriggerShortcut && tr.Scope == entity.ScopeSystem
	})).Return(errors.New("db locked")).Once()

	coord.HandleCommand(ctx, entity.ToggleCommand)

	assert.True(t, session.get(entity.StatusKey), "journal failures never block a transition")
}

func TestActivationCoordinator_SerializesTransitions(t *testing.T) {
	ctx := testContext()
	f := newCoordinatorFixture(t, silent(), false)

	var acquires, releases atomic.Int32
	f.keepAwake.EXPECT().Acquire(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, entity.KeepAwakeScope) error {
			acquires.Add(1)
			return nil
		})
	f.keepAwake.EXPECT().Release(mock.Anything).
		RunAndReturn(func(context.Context) error {
			releases.Add(1)
			return nil
		})
	f.indicator.EXPECT().SetIndicator(mock.Anything, mock.Anything).Return(nil)

	const toggles = 50
	var wg sync.WaitGroup
	for range toggles {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f.coord.HandleCommand(ctx, entity.ToggleCommand)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(toggles/2), acquires.Load())
	assert.Equal(t, int32(toggles/2), releases.Load())
	assert.False(t, f.session.get(entity.StatusKey))
}

func TestActivationCoordinator_StopReleasesHeldGrant(t *testing.T) {
	ctx := testContext()
	f := newCoordinatorFixture(t, silent(), false)
	f.session.set(entity.StatusKey, true)

	f.expectOff()

	f.coord.Stop(ctx)

	assert.True(t, f.session.get(entity.StatusKey), "stop leaves session flags alone")
}

func TestActivationCoordinator_Status(t *testing.T) {
	ctx := testContext()
	f := newCoordinatorFixture(t, prefsWith(func(p *entity.Preferences) { p.DisplaySleep.Status = true }), false)
	f.session.set(entity.StatusKey, true)
	f.session.set(entity.DownloadActivatedKey, true)

	status := f.coord.Status(ctx)

	assert.Equal(t, entity.ActivationStatus{
		Active:            true,
		DownloadActivated: true,
		Scope:             entity.ScopeDisplay,
	}, status)
}
