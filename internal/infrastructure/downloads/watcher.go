// Package downloads observes download directories for partial files.
package downloads

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/stayup/internal/application/listener"
	"github.com/bnema/stayup/internal/application/port"
	"github.com/bnema/stayup/internal/domain/download"
	"github.com/bnema/stayup/internal/domain/entity"
	"github.com/bnema/stayup/internal/logging"
)

// Compile-time interface check.
var _ port.DownloadActivity = (*Watcher)(nil)

// Watcher reports download activity in a set of directories. A file with a
// partial suffix is a download in progress; it completes when renamed to its
// final name or removed.
type Watcher struct {
	dirs       []string
	classifier download.Classifier
	clock      port.Clock

	mu      sync.Mutex
	tracked map[string]struct{}

	created listener.Registry[struct{}]
	changed listener.Registry[struct{}]
}

// NewWatcher creates a watcher over dirs. Missing directories are skipped.
func NewWatcher(dirs []string, classifier download.Classifier, clock port.Clock) *Watcher {
	if clock == nil {
		clock = port.SystemClock{}
	}
	return &Watcher{dirs: dirs, classifier: classifier, clock: clock}
}

// OnCreated registers fn for new downloads.
func (w *Watcher) OnCreated(fn port.DownloadListener) func() {
	return w.created.Add(func(ctx context.Context, _ struct{}) { fn(ctx) })
}

// OnChanged registers fn for downloads that finished, vanished or were renamed.
func (w *Watcher) OnChanged(fn port.DownloadListener) func() {
	return w.changed.Add(func(ctx context.Context, _ struct{}) { fn(ctx) })
}

// Search lists the files in the watched directories that are in state.
func (w *Watcher) Search(_ context.Context, state entity.DownloadState) ([]entity.DownloadItem, error) {
	now := w.clock.Now()
	var items []entity.DownloadItem

	for _, dir := range w.dirs {
		entries, err := os.ReadDir(dir)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", dir, err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			info, err := entry.Info()
			if err != nil {
				// removed between ReadDir and Info
				continue
			}
			path := filepath.Join(dir, entry.Name())
			itemState := w.classifier.State(path, info.ModTime(), now)
			if state != "" && itemState != state {
				continue
			}
			items = append(items, entity.DownloadItem{Path: path, State: itemState})
		}
	}

	sort.Slice(items, func(i, j int) bool { return items[i].Path < items[j].Path })
	return items, nil
}

// Run watches until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	ctx = logging.WithComponent(ctx, "downloads")
	log := logging.FromContext(ctx)

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = fsw.Close() }()

	watched := 0
	for _, dir := range w.dirs {
		if err := fsw.Add(dir); err != nil {
			log.Warn().Err(err).Str("dir", dir).Msg("cannot watch download directory")
			continue
		}
		watched++
	}
	if watched == 0 {
		log.Warn().Strs("dirs", w.dirs).Msg("no download directory could be watched")
		<-ctx.Done()
		return nil
	}

	w.checkStale(ctx)
	var sweep <-chan time.Time
	if interval := staleSweepInterval(w.classifier.StaleAfter()); interval > 0 {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		sweep = ticker.C
	}

	log.Info().Int("dirs", watched).Msg("download watcher started")
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-sweep:
			w.checkStale(ctx)
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			w.dispatch(ctx, event)
		case werr, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(werr).Msg("download watcher error")
		}
	}
}

// dispatch maps one filesystem event to a created or changed notification.
// Writes to a growing file are not reported.
func (w *Watcher) dispatch(ctx context.Context, event fsnotify.Event) {
	switch {
	case event.Has(fsnotify.Create):
		if w.classifier.IsPartial(event.Name) {
			logging.FromContext(ctx).Debug().Str("path", event.Name).Msg("download started")
			w.created.Notify(ctx, struct{}{})
		}
	case event.Has(fsnotify.Rename), event.Has(fsnotify.Remove):
		if w.classifier.IsPartial(event.Name) {
			logging.FromContext(ctx).Debug().Str("path", event.Name).Msg("download finished or cancelled")
			w.changed.Notify(ctx, struct{}{})
		}
	}
}

// staleSweepInterval is how often partial files are checked for going stale.
// Zero disables the sweep.
func staleSweepInterval(staleAfter time.Duration) time.Duration {
	if staleAfter <= 0 {
		return 0
	}
	return max(staleAfter/2, time.Second)
}

// checkStale notifies changed listeners when a partial file seen in progress
// on the previous sweep is no longer in progress. A partial that stops
// growing never produces a filesystem event, so this is the only way an
// interrupted download is reported.
func (w *Watcher) checkStale(ctx context.Context) {
	items, err := w.Search(ctx, entity.DownloadInProgress)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("stale download sweep failed")
		return
	}

	current := make(map[string]struct{}, len(items))
	for _, item := range items {
		current[item.Path] = struct{}{}
	}

	w.mu.Lock()
	previous := w.tracked
	w.tracked = current
	w.mu.Unlock()

	for path := range previous {
		if _, ok := current[path]; !ok {
			logging.FromContext(ctx).Debug().Str("path", path).Msg("download stalled or gone")
			w.changed.Notify(ctx, struct{}{})
			return
		}
	}
}
