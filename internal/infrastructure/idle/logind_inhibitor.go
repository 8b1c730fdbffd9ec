package idle

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/coreos/go-systemd/v22/login1"

	"github.com/bnema/stayup/internal/application/port"
	"github.com/bnema/stayup/internal/domain/entity"
	"github.com/bnema/stayup/internal/logging"
)

const logindWho = "stayup"

// Compile-time interface check.
var _ port.KeepAwake = (*LogindInhibitor)(nil)

// logindConn is the subset of *login1.Conn the inhibitor needs.
type logindConn interface {
	Inhibit(what, who, why, mode string) (*os.File, error)
	Close()
}

// LogindInhibitor holds a systemd-logind inhibitor lock. The lock lives as
// long as its file descriptor stays open.
type LogindInhibitor struct {
	conn   logindConn
	reason string

	mu    sync.Mutex
	lock  *os.File
	scope entity.KeepAwakeScope
}

// NewLogindInhibitor connects to logind on the system bus.
func NewLogindInhibitor(reason string) (*LogindInhibitor, error) {
	conn, err := login1.New()
	if err != nil {
		return nil, fmt.Errorf("connect to logind: %w", err)
	}
	return &LogindInhibitor{conn: conn, reason: reason}, nil
}

// logindWhat maps a scope to the colon separated lock types.
func logindWhat(scope entity.KeepAwakeScope) string {
	if scope == entity.ScopeDisplay {
		return "idle:sleep"
	}
	return "sleep"
}

// Acquire takes a blocking lock for scope. A held lock is replaced.
func (l *LogindInhibitor) Acquire(ctx context.Context, scope entity.KeepAwakeScope) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.lock != nil {
		l.releaseLocked(ctx)
	}

	what := logindWhat(scope)
	lock, err := l.conn.Inhibit(what, logindWho, l.reason, "block")
	if err != nil {
		return fmt.Errorf("logind inhibit %s: %w", what, err)
	}
	l.lock = lock
	l.scope = scope

	logging.FromContext(ctx).Info().
		Str("what", what).
		Msg("logind inhibitor: lock acquired")
	return nil
}

// Release closes the lock descriptor. Releasing with no lock is a no-op.
func (l *LogindInhibitor) Release(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.lock == nil {
		return nil
	}
	l.releaseLocked(ctx)
	logging.FromContext(ctx).Info().Msg("logind inhibitor: lock released")
	return nil
}

func (l *LogindInhibitor) releaseLocked(ctx context.Context) {
	if err := l.lock.Close(); err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("logind inhibitor: close lock fd")
	}
	l.lock = nil
	l.scope = ""
}

// Held returns the scope of the held lock, or "" when none is held.
func (l *LogindInhibitor) Held() entity.KeepAwakeScope {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.scope
}

// Close releases the lock and the bus connection.
func (l *LogindInhibitor) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var err error
	if l.lock != nil {
		err = l.lock.Close()
		l.lock = nil
		l.scope = ""
	}
	if l.conn != nil {
		l.conn.Close()
		l.conn = nil
	}
	return err
}
