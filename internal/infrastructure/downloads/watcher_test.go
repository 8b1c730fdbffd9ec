package downloads

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/stayup/internal/domain/download"
	"github.com/bnema/stayup/internal/domain/entity"
	"github.com/bnema/stayup/internal/logging"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type manualClock struct{ now atomic.Int64 }

func (c *manualClock) Now() time.Time { return time.Unix(0, c.now.Load()) }

func (c *manualClock) Set(t time.Time) { c.now.Store(t.UnixNano()) }

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func TestWatcher_Search(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "done.iso"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "running.iso.part"), nil, 0o644))
	stale := filepath.Join(dir, "stale.zip.crdownload")
	require.NoError(t, os.WriteFile(stale, nil, 0o644))
	require.NoError(t, os.Chtimes(stale, now.Add(-time.Hour), now.Add(-time.Hour)))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.part"), 0o755))

	w := NewWatcher(
		[]string{dir, filepath.Join(dir, "missing")},
		download.NewClassifier(nil, 10*time.Minute),
		fixedClock{now: now},
	)

	inProgress, err := w.Search(testContext(), entity.DownloadInProgress)
	require.NoError(t, err)
	require.Len(t, inProgress, 1)
	assert.Equal(t, filepath.Join(dir, "running.iso.part"), inProgress[0].Path)

	interrupted, err := w.Search(testContext(), entity.DownloadInterrupted)
	require.NoError(t, err)
	require.Len(t, interrupted, 1)
	assert.Equal(t, stale, interrupted[0].Path)

	all, err := w.Search(testContext(), "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestWatcher_Dispatch(t *testing.T) {
	w := NewWatcher(nil, download.NewClassifier(nil, 0), nil)
	var created, changed atomic.Int32
	w.OnCreated(func(context.Context) { created.Add(1) })
	unsubChanged := w.OnChanged(func(context.Context) { changed.Add(1) })

	ctx := testContext()
	w.dispatch(ctx, fsnotify.Event{Name: "/d/a.iso.part", Op: fsnotify.Create})
	w.dispatch(ctx, fsnotify.Event{Name: "/d/a.iso.part", Op: fsnotify.Write})
	w.dispatch(ctx, fsnotify.Event{Name: "/d/a.iso.part", Op: fsnotify.Rename})
	w.dispatch(ctx, fsnotify.Event{Name: "/d/a.iso", Op: fsnotify.Create})
	w.dispatch(ctx, fsnotify.Event{Name: "/d/b.iso.part", Op: fsnotify.Remove})
	w.dispatch(ctx, fsnotify.Event{Name: "/d/notes.txt", Op: fsnotify.Remove})

	assert.Equal(t, int32(1), created.Load())
	assert.Equal(t, int32(2), changed.Load())

	unsubChanged()
	w.dispatch(ctx, fsnotify.Event{Name: "/d/c.iso.part", Op: fsnotify.Remove})
	assert.Equal(t, int32(2), changed.Load())
}

func TestWatcher_RunReportsFilesystemActivity(t *testing.T) {
	dir := t.TempDir()
	w := NewWatcher([]string{dir}, download.NewClassifier(nil, 0), nil)

	var created, changed atomic.Int32
	w.OnCreated(func(context.Context) { created.Add(1) })
	w.OnChanged(func(context.Context) { changed.Add(1) })

	ctx, cancel := context.WithCancel(testContext())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	time.Sleep(100 * time.Millisecond)

	partial := filepath.Join(dir, "movie.mkv.part")
	require.NoError(t, os.WriteFile(partial, []byte("x"), 0o644))
	require.Eventually(t, func() bool { return created.Load() == 1 }, 2*time.Second, 20*time.Millisecond)

	require.NoError(t, os.Rename(partial, filepath.Join(dir, "movie.mkv")))
	require.Eventually(t, func() bool { return changed.Load() >= 1 }, 2*time.Second, 20*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestWatcher_StalledPartialNotifiesChanged(t *testing.T) {
	ctx := testContext()
	dir := t.TempDir()
	start := time.Now()
	path := filepath.Join(dir, "big.iso.part")
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	require.NoError(t, os.Chtimes(path, start, start))

	clock := &manualClock{}
	clock.Set(start)
	w := NewWatcher([]string{dir}, download.NewClassifier(nil, 10*time.Minute), clock)

	var changed atomic.Int32
	w.OnChanged(func(context.Context) { changed.Add(1) })

	w.checkStale(ctx)
	clock.Set(start.Add(5 * time.Minute))
	w.checkStale(ctx)
	assert.Equal(t, int32(0), changed.Load(), "still within the stale threshold")

	clock.Set(start.Add(time.Hour))
	w.checkStale(ctx)
	assert.Equal(t, int32(1), changed.Load())

	w.checkStale(ctx)
	assert.Equal(t, int32(1), changed.Load(), "an interrupted download is reported once")
}

func TestStaleSweepInterval(t *testing.T) {
	assert.Equal(t, time.Duration(0), staleSweepInterval(0))
	assert.Equal(t, time.Second, staleSweepInterval(time.Second))
	assert.Equal(t, 5*time.Minute, staleSweepInterval(10*time.Minute))
}
