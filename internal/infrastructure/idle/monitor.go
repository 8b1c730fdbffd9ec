package idle

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/godbus/dbus/v5"

	"github.com/bnema/stayup/internal/application/listener"
	"github.com/bnema/stayup/internal/application/port"
	"github.com/bnema/stayup/internal/domain/entity"
	"github.com/bnema/stayup/internal/logging"
)

const (
	screenSaverDest  = "org.freedesktop.ScreenSaver"
	screenSaverPath  = "/org/freedesktop/ScreenSaver"
	screenSaverIface = "org.freedesktop.ScreenSaver"

	logindDest         = "org.freedesktop.login1"
	logindPath         = "/org/freedesktop/login1"
	logindManagerIface = "org.freedesktop.login1.Manager"
	logindSessionIface = "org.freedesktop.login1.Session"
)

// Compile-time interface check.
var _ port.IdleMonitor = (*Monitor)(nil)

// Monitor reports session idle and lock transitions. Lock comes from the
// ScreenSaver ActiveChanged signal and the Lock and Unlock signals of our own
// logind session; idle is derived by polling the session idle time against
// the detection interval.
type Monitor struct {
	session *dbus.Conn
	system  *dbus.Conn

	ownSession dbus.ObjectPath

	mu        sync.Mutex
	interval  time.Duration
	state     entity.IdleState
	listeners listener.Registry[entity.IdleState]
}

// NewMonitor creates a monitor. Either connection may be nil; the matching
// source is then skipped.
func NewMonitor(session, system *dbus.Conn) *Monitor {
	return &Monitor{
		session:  session,
		system:   system,
		interval: entity.DefaultIdleDetection,
		state:    entity.IdleActive,
	}
}

// SetDetectionInterval sets how long the session must be inactive before it
// is reported idle.
func (m *Monitor) SetDetectionInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	m.mu.Lock()
	m.interval = d
	m.mu.Unlock()
}

// OnStateChanged registers fn for state transitions.
func (m *Monitor) OnStateChanged(fn func(ctx context.Context, state entity.IdleState)) func() {
	return m.listeners.Add(fn)
}

// Run watches until ctx is cancelled.
func (m *Monitor) Run(ctx context.Context) error {
	ctx = logging.WithComponent(ctx, "idle-monitor")
	log := logging.FromContext(ctx)

	signals := make(chan *dbus.Signal, 8)
	if m.session != nil {
		if err := m.session.AddMatchSignal(
			dbus.WithMatchInterface(screenSaverIface),
			dbus.WithMatchMember("ActiveChanged"),
		); err != nil {
			log.Warn().Err(err).Msg("cannot subscribe to ScreenSaver.ActiveChanged")
		} else {
			m.session.Signal(signals)
			defer m.session.RemoveSignal(signals)
		}
	}
	if m.system != nil {
		own, err := m.resolveOwnSession(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("cannot resolve own logind session, lock signals ignored")
		} else if err := m.subscribeSession(own); err != nil {
			log.Warn().Err(err).Msg("cannot subscribe to logind session Lock/Unlock")
		} else {
			m.ownSession = own
			m.system.Signal(signals)
			defer m.system.RemoveSignal(signals)
			log.Debug().Str("session", string(own)).Msg("following logind session lock")
		}
	}

	ticker := time.NewTicker(m.pollEvery())
	defer ticker.Stop()

	log.Info().Msg("idle monitor started")
	for {
		select {
		case <-ctx.Done():
			log.Debug().Msg("idle monitor stopped")
			return nil
		case sig := <-signals:
			if sig == nil || !fromSession(sig, m.ownSession) {
				continue
			}
			if state, ok := classifySignal(sig); ok {
				m.transition(ctx, state)
			}
		case <-ticker.C:
			ticker.Reset(m.pollEvery())
			m.poll(ctx)
		}
	}
}

// resolveOwnSession finds the logind session this process belongs to. A
// process started outside any session, such as a user service, falls back to
// XDG_SESSION_ID and then to the user's display session.
func (m *Monitor) resolveOwnSession(ctx context.Context) (dbus.ObjectPath, error) {
	manager := m.system.Object(logindDest, logindPath)

	var path dbus.ObjectPath
	err := manager.CallWithContext(ctx, logindManagerIface+".GetSessionByPID", 0, uint32(os.Getpid())).Store(&path)
	if err == nil {
		return path, nil
	}

	ids := []string{"auto"}
	if id := os.Getenv("XDG_SESSION_ID"); id != "" {
		ids = []string{id, "auto"}
	}
	for _, id := range ids {
		if serr := manager.CallWithContext(ctx, logindManagerIface+".GetSession", 0, id).Store(&path); serr == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("get session by pid: %w", err)
}

func (m *Monitor) subscribeSession(own dbus.ObjectPath) error {
	for _, member := range []string{"Lock", "Unlock"} {
		if err := m.system.AddMatchSignal(
			dbus.WithMatchObjectPath(own),
			dbus.WithMatchInterface(logindSessionIface),
			dbus.WithMatchMember(member),
		); err != nil {
			return err
		}
	}
	return nil
}

// fromSession reports whether sig should be handled. logind session signals
// count only when emitted by own; everything else passes.
func fromSession(sig *dbus.Signal, own dbus.ObjectPath) bool {
	switch sig.Name {
	case logindSessionIface + ".Lock", logindSessionIface + ".Unlock":
		return own != "" && sig.Path == own
	}
	return true
}

// classifySignal maps a bus signal to an idle state.
func classifySignal(sig *dbus.Signal) (entity.IdleState, bool) {
	switch sig.Name {
	case screenSaverIface + ".ActiveChanged":
		if len(sig.Body) < 1 {
			return "", false
		}
		locked, ok := sig.Body[0].(bool)
		if !ok {
			return "", false
		}
		if locked {
			return entity.IdleLocked, true
		}
		return entity.IdleActive, true
	case logindSessionIface + ".Lock":
		return entity.IdleLocked, true
	case logindSessionIface + ".Unlock":
		return entity.IdleActive, true
	}
	return "", false
}

// classifyIdle maps an idle duration to active or idle. A locked session
// stays locked until a signal unlocks it.
func classifyIdle(current entity.IdleState, idleFor, threshold time.Duration) entity.IdleState {
	if current == entity.IdleLocked {
		return current
	}
	if idleFor >= threshold {
		return entity.IdleIdle
	}
	return entity.IdleActive
}

func (m *Monitor) pollEvery() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	every := m.interval / 4
	if every < time.Second {
		every = time.Second
	}
	return every
}

func (m *Monitor) poll(ctx context.Context) {
	if m.session == nil {
		return
	}
	var seconds uint32
	err := m.session.Object(screenSaverDest, screenSaverPath).
		CallWithContext(ctx, screenSaverIface+".GetSessionIdleTime", 0).
		Store(&seconds)
	if err != nil {
		logging.FromContext(ctx).Trace().Err(err).Msg("GetSessionIdleTime failed")
		return
	}

	m.mu.Lock()
	next := classifyIdle(m.state, time.Duration(seconds)*time.Second, m.interval)
	m.mu.Unlock()
	m.transition(ctx, next)
}

// transition notifies listeners when the state changes.
func (m *Monitor) transition(ctx context.Context, next entity.IdleState) {
	m.mu.Lock()
	changed := next != m.state
	m.state = next
	m.mu.Unlock()

	if !changed {
		return
	}
	logging.FromContext(ctx).Debug().Str("state", string(next)).Msg("idle state changed")
	m.listeners.Notify(ctx, next)
}
