package usecase

import (
	"context"

	"github.com/bnema/stayup/internal/application/port"
	"github.com/bnema/stayup/internal/logging"
)

// CuePlayer plays on/off audio cues through a lazily created surface.
type CuePlayer struct {
	surface  port.CueSurface
	throttle *CueThrottle
}

// NewCuePlayer creates a cue player. surface may be nil to disable sounds.
func NewCuePlayer(surface port.CueSurface, throttle *CueThrottle) *CuePlayer {
	if throttle == nil {
		throttle = NewCueThrottle(DefaultCueThrottle, nil)
	}
	return &CuePlayer{surface: surface, throttle: throttle}
}

// Play dispatches cue unless the throttle window is still open.
// Every step is best effort: failures are logged and swallowed.
func (p *CuePlayer) Play(ctx context.Context, cue port.Cue) {
	if p == nil || p.surface == nil {
		return
	}
	log := logging.FromContext(ctx)

	if !p.throttle.Allow() {
		log.Debug().Str("cue", string(cue)).Msg("cue throttled")
		return
	}

	exists, err := p.surface.HasSurface(ctx)
	if err != nil {
		_ = attempt(ctx, "cue surface lookup", func() error { return portErr("sound", "has_surface", err) })
	}
	if !exists {
		_ = attempt(ctx, "cue surface create", func() error {
			return portErr("sound", "create_surface", p.surface.CreateSurface(ctx))
		})
	}

	_ = attempt(ctx, "cue send", func() error {
		return portErr("sound", "send", p.surface.Send(ctx, port.CueMessage{Type: port.CueMessageType, Sound: cue}))
	})
}
