package sound_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/stayup/internal/application/port"
	"github.com/bnema/stayup/internal/infrastructure/sound"
)

type playedLog struct {
	mu    sync.Mutex
	files []string
}

func (l *playedLog) run(_ context.Context, _ string, file string) error {
	l.mu.Lock()
	l.files = append(l.files, file)
	l.mu.Unlock()
	return nil
}

func (l *playedLog) snapshot() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.files...)
}

func newTestPlayer(log *playedLog) *sound.Player {
	return sound.NewPlayer("paplay", map[port.Cue]string{
		port.CueOn:  "/sounds/on.oga",
		port.CueOff: "/sounds/off.oga",
	}).WithRunner(log.run)
}

func TestPlayer_LazySurface(t *testing.T) {
	ctx := context.Background()
	played := &playedLog{}
	p := newTestPlayer(played)
	t.Cleanup(func() { _ = p.Close() })

	has, err := p.HasSurface(ctx)
	require.NoError(t, err)
	assert.False(t, has)

	err = p.Send(ctx, port.CueMessage{Type: port.CueMessageType, Sound: port.CueOn})
	assert.ErrorIs(t, err, sound.ErrNoSurface)

	require.NoError(t, p.CreateSurface(ctx))
	require.NoError(t, p.CreateSurface(ctx))
	has, err = p.HasSurface(ctx)
	require.NoError(t, err)
	assert.True(t, has)

	require.NoError(t, p.Send(ctx, port.CueMessage{Type: port.CueMessageType, Sound: port.CueOn}))
	require.NoError(t, p.Send(ctx, port.CueMessage{Type: port.CueMessageType, Sound: port.CueOff}))

	require.Eventually(t, func() bool { return len(played.snapshot()) == 2 }, time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"/sounds/on.oga", "/sounds/off.oga"}, played.snapshot())
}

func TestPlayer_RejectsUnknownMessages(t *testing.T) {
	ctx := context.Background()
	p := newTestPlayer(&playedLog{})
	require.NoError(t, p.CreateSurface(ctx))
	t.Cleanup(func() { _ = p.Close() })

	assert.Error(t, p.Send(ctx, port.CueMessage{Type: "stop", Sound: port.CueOn}))
	assert.Error(t, p.Send(ctx, port.CueMessage{Type: port.CueMessageType, Sound: "beep"}))
}

func TestPlayer_CloseStopsWorker(t *testing.T) {
	ctx := context.Background()
	p := newTestPlayer(&playedLog{})
	require.NoError(t, p.CreateSurface(ctx))
	require.NoError(t, p.Close())

	has, err := p.HasSurface(ctx)
	require.NoError(t, err)
	assert.False(t, has)
	require.NoError(t, p.Close())
}
