// Package sound plays the on/off audio cues.
package sound

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"sync"
	"time"

	"github.com/bnema/stayup/internal/application/port"
	"github.com/bnema/stayup/internal/logging"
)

const (
	queueSize   = 4
	playTimeout = 10 * time.Second
)

var (
	// ErrNoSurface is returned by Send before CreateSurface.
	ErrNoSurface = errors.New("playback surface not created")
	// ErrQueueFull is returned when cues arrive faster than they play.
	ErrQueueFull = errors.New("playback queue full")
)

// Compile-time interface check.
var _ port.CueSurface = (*Player)(nil)

// RunFunc plays one sound file.
type RunFunc func(ctx context.Context, player, file string) error

// Player is a playback surface: a worker goroutine that plays queued cues
// one at a time through an external command such as paplay.
type Player struct {
	command  string
	files    map[port.Cue]string
	run      RunFunc
	lookPath func(string) (string, error)

	mu     sync.Mutex
	queue  chan port.CueMessage
	cancel context.CancelFunc
	done   chan struct{}
}

// NewPlayer creates a player. files maps each cue to a sound file path.
func NewPlayer(command string, files map[port.Cue]string) *Player {
	return &Player{command: command, files: files, run: runCommand, lookPath: exec.LookPath}
}

// WithRunner replaces the command runner. The player command is then not
// looked up in PATH.
func (p *Player) WithRunner(run RunFunc) *Player {
	p.run = run
	p.lookPath = nil
	return p
}

// HasSurface reports whether the worker is running.
func (p *Player) HasSurface(_ context.Context) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.queue != nil, nil
}

// CreateSurface starts the worker. Creating twice is a no-op.
func (p *Player) CreateSurface(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.queue != nil {
		return nil
	}
	if p.command == "" {
		return errors.New("no sound player configured")
	}
	if p.lookPath != nil {
		if _, err := p.lookPath(p.command); err != nil {
			return fmt.Errorf("sound player %q: %w", p.command, err)
		}
	}

	workerCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	p.queue = make(chan port.CueMessage, queueSize)
	p.cancel = cancel
	p.done = make(chan struct{})
	go p.work(workerCtx, p.queue, p.done)

	logging.FromContext(ctx).Debug().Str("player", p.command).Msg("playback surface created")
	return nil
}

// Send queues a message for the worker.
func (p *Player) Send(_ context.Context, msg port.CueMessage) error {
	if msg.Type != port.CueMessageType {
		return fmt.Errorf("unsupported message type %q", msg.Type)
	}
	if _, ok := p.files[msg.Sound]; !ok {
		return fmt.Errorf("unknown sound %q", msg.Sound)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.queue == nil {
		return ErrNoSurface
	}
	select {
	case p.queue <- msg:
		return nil
	default:
		return ErrQueueFull
	}
}

// Close stops the worker and waits for it to exit.
func (p *Player) Close() error {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	if p.queue != nil {
		close(p.queue)
	}
	p.queue, p.cancel, p.done = nil, nil, nil
	p.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()
	<-done
	return nil
}

func (p *Player) work(ctx context.Context, queue <-chan port.CueMessage, done chan<- struct{}) {
	defer close(done)
	log := logging.FromContext(ctx)

	for msg := range queue {
		playCtx, cancel := context.WithTimeout(ctx, playTimeout)
		err := p.run(playCtx, p.command, p.files[msg.Sound])
		cancel()
		if err != nil && ctx.Err() == nil {
			log.Warn().Err(err).Str("sound", string(msg.Sound)).Msg("cue playback failed")
		}
	}
}

func runCommand(ctx context.Context, player, file string) error {
	return exec.CommandContext(ctx, player, file).Run()
}
