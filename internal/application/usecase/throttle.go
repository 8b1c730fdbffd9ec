package usecase

import (
	"sync"
	"time"

	"github.com/bnema/stayup/internal/application/port"
)

// DefaultCueThrottle is the minimum spacing between two audio cues.
const DefaultCueThrottle = 100 * time.Millisecond

// CueThrottle is a global cooldown: at most one Allow per window, whatever
// the cue or trigger.
type CueThrottle struct {
	mu     sync.Mutex
	window time.Duration
	clock  port.Clock
	last   time.Time
	fired  bool
}

// NewCueThrottle creates a throttle. A nil clock uses the wall clock.
func NewCueThrottle(window time.Duration, clock port.Clock) *CueThrottle {
	if clock == nil {
		clock = port.SystemClock{}
	}
	return &CueThrottle{window: window, clock: clock}
}

// Allow reports whether a cue may play now and, if so, starts a new window.
func (t *CueThrottle) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.clock.Now()
	if t.fired && now.Sub(t.last) < t.window {
		return false
	}
	t.last = now
	t.fired = true
	return true
}
