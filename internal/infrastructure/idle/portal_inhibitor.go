// Package idle talks to the session's idle machinery: keep-awake grants via
// the XDG Desktop Portal or logind, and idle/lock notifications.
package idle

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/godbus/dbus/v5"

	"github.com/bnema/stayup/internal/application/port"
	"github.com/bnema/stayup/internal/domain/entity"
	"github.com/bnema/stayup/internal/logging"
)

const (
	portalDest      = "org.freedesktop.portal.Desktop"
	portalPath      = "/org/freedesktop/portal/desktop"
	portalInterface = "org.freedesktop.portal.Inhibit"
	requestIface    = "org.freedesktop.portal.Request"

	// Inhibit flags from the portal interface
	flagSuspend = 4
	flagIdle    = 8
)

// ErrPortalUnavailable is returned when the session has no inhibit portal.
var ErrPortalUnavailable = errors.New("inhibit portal not available")

// Compile-time interface check.
var _ port.KeepAwake = (*PortalInhibitor)(nil)

// PortalInhibitor holds at most one keep-awake grant through the XDG Desktop
// Portal. It works on Wayland with any compositor that ships a portal backend.
type PortalInhibitor struct {
	conn            *dbus.Conn
	reason          string
	requestPath     dbus.ObjectPath // active inhibit request handle
	scope           entity.KeepAwakeScope
	supported       bool
	requestComplete bool // portal already sent Response; the request object is gone
	stopWatch       context.CancelFunc
	mu              sync.Mutex
}

// NewPortalInhibitor creates a portal-based inhibitor. It returns a usable
// value even if D-Bus is unavailable; Available reports the outcome.
func NewPortalInhibitor(ctx context.Context, reason string) *PortalInhibitor {
	log := logging.FromContext(ctx)

	inhibitor := &PortalInhibitor{reason: reason}

	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		log.Debug().Err(err).Msg("portal inhibitor: cannot connect to D-Bus session bus")
		return inhibitor
	}
	inhibitor.conn = conn

	obj := conn.Object(portalDest, portalPath)
	var version uint32
	err = obj.Call("org.freedesktop.DBus.Properties.Get", 0,
		portalInterface, "version").Store(&version)
	if err != nil {
		log.Debug().Err(err).Msg("portal inhibitor: portal not available")
		return inhibitor
	}

	inhibitor.supported = true
	log.Debug().Uint32("version", version).Msg("portal inhibitor: portal available")

	return inhibitor
}

// Available reports whether the portal answered at construction time.
func (p *PortalInhibitor) Available() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.supported && p.conn != nil
}

// portalFlags maps a scope to portal inhibit flags.
func portalFlags(scope entity.KeepAwakeScope) uint32 {
	if scope == entity.ScopeDisplay {
		return flagIdle | flagSuspend
	}
	return flagSuspend
}

// Acquire takes a grant for scope. A held grant is replaced.
func (p *PortalInhibitor) Acquire(ctx context.Context, scope entity.KeepAwakeScope) error {
	log := logging.FromContext(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.supported || p.conn == nil {
		return ErrPortalUnavailable
	}
	if p.requestPath != "" {
		p.releaseLocked()
	}

	// Inhibit(window: s, flags: u, options: a{sv}) -> handle: o
	obj := p.conn.Object(portalDest, portalPath)
	options := map[string]dbus.Variant{
		"reason": dbus.MakeVariant(p.reason),
	}

	var handlePath dbus.ObjectPath
	err := obj.Call(portalInterface+".Inhibit", 0,
		"", // window identifier, empty for non-sandboxed callers
		portalFlags(scope),
		options,
	).Store(&handlePath)
	if err != nil {
		return fmt.Errorf("portal inhibit: %w", err)
	}

	p.requestPath = handlePath
	p.requestComplete = false
	p.scope = scope

	watchCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	p.stopWatch = cancel
	go p.watchForResponse(watchCtx, handlePath)

	log.Info().
		Str("handle", string(handlePath)).
		Str("scope", string(scope)).
		Msg("portal inhibitor: grant acquired")

	return nil
}

// watchForResponse records the portal's Response signal. Some portals
// (GNOME in particular) answer immediately, which removes the Request
// object; closing it afterwards would fail.
func (p *PortalInhibitor) watchForResponse(ctx context.Context, handlePath dbus.ObjectPath) {
	log := logging.FromContext(ctx)

	matchRule := fmt.Sprintf(
		"type='signal',interface='%s',member='Response',path='%s'",
		requestIface, handlePath,
	)

	if err := p.conn.BusObject().Call("org.freedesktop.DBus.AddMatch", 0, matchRule).Err; err != nil {
		log.Debug().Err(err).Msg("portal inhibitor: failed to add signal match")
		return
	}

	signals := make(chan *dbus.Signal, 1)
	p.conn.Signal(signals)

	defer func() {
		p.conn.RemoveSignal(signals)
		_ = p.conn.BusObject().Call("org.freedesktop.DBus.RemoveMatch", 0, matchRule).Err
	}()

	for {
		select {
		case sig := <-signals:
			if sig == nil {
				return
			}
			if sig.Path == handlePath && sig.Name == requestIface+".Response" {
				p.mu.Lock()
				if p.requestPath == handlePath {
					p.requestComplete = true
				}
				p.mu.Unlock()
				log.Debug().
					Str("handle", string(handlePath)).
					Msg("portal inhibitor: request completed by portal")
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

// Release drops the held grant. Releasing with no grant is a no-op.
func (p *PortalInhibitor) Release(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.requestPath == "" {
		return nil
	}
	p.releaseLocked()
	logging.FromContext(ctx).Info().Msg("portal inhibitor: grant released")
	return nil
}

func (p *PortalInhibitor) releaseLocked() {
	if p.stopWatch != nil {
		p.stopWatch()
		p.stopWatch = nil
	}
	if p.conn != nil && !p.requestComplete {
		_ = p.conn.Object(portalDest, p.requestPath).Call(requestIface+".Close", 0).Err
	}
	p.requestPath = ""
	p.requestComplete = false
	p.scope = ""
}

// Held returns the scope of the held grant, or "" when none is held.
func (p *PortalInhibitor) Held() entity.KeepAwakeScope {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.scope
}

// Close releases any grant and the bus connection.
func (p *PortalInhibitor) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.requestPath != "" {
		p.releaseLocked()
	}
	if p.conn != nil {
		err := p.conn.Close()
		p.conn = nil
		return err
	}
	return nil
}
