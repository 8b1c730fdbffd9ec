// Package store implements the durable preference store and the
// process-lifetime session store.
package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-viper/mapstructure/v2"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/sys/unix"

	"github.com/bnema/stayup/internal/application/listener"
	"github.com/bnema/stayup/internal/application/port"
	"github.com/bnema/stayup/internal/logging"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644

	// reloadDebounce coalesces the burst of events a single save produces.
	reloadDebounce = 100 * time.Millisecond
)

// Compile-time interface check.
var _ port.DurableStore = (*FileStore)(nil)

// FileStore keeps top-level keys in a TOML file. Every writer, in this
// process or another, goes through the same file; Watch turns external
// edits into change notifications.
type FileStore struct {
	path string

	mu       sync.Mutex
	snapshot map[string]any

	changes listener.Registry[port.StoreChange]
}

// NewFileStore creates a store backed by path. The file is created on first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load decodes key into dst. Fields absent from the file keep whatever dst
// already held, so callers pre-fill dst with defaults.
func (s *FileStore) Load(_ context.Context, key string, dst any) (bool, error) {
	data, err := s.readAll()
	if err != nil {
		return false, err
	}
	raw, ok := data[key]
	if !ok {
		return false, nil
	}
	if err := mapstructure.Decode(raw, dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// Save replaces key with value and publishes the change.
func (s *FileStore) Save(ctx context.Context, key string, value any) error {
	var normalized map[string]any
	if err := remarshal(map[string]any{key: value}, &normalized); err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	newValue := normalized[key]

	return s.update(ctx, key, func(data map[string]any) { data[key] = newValue })
}

// Clear removes key and publishes the change with a nil NewValue.
func (s *FileStore) Clear(ctx context.Context, key string) error {
	return s.update(ctx, key, func(data map[string]any) { delete(data, key) })
}

// Subscribe registers fn for every key change.
func (s *FileStore) Subscribe(fn func(ctx context.Context, change port.StoreChange)) func() {
	return s.changes.Add(fn)
}

func (s *FileStore) update(ctx context.Context, key string, mutate func(map[string]any)) error {
	unlock, err := s.lockFile()
	if err != nil {
		return err
	}
	defer unlock()

	s.mu.Lock()
	data, err := s.readAll()
	if err != nil {
		s.mu.Unlock()
		return err
	}
	oldValue := data[key]
	mutate(data)

	if err := s.writeAll(data); err != nil {
		s.mu.Unlock()
		return err
	}
	s.snapshot = data
	s.mu.Unlock()

	if !reflect.DeepEqual(oldValue, data[key]) {
		s.changes.Notify(ctx, port.StoreChange{Key: key, OldValue: oldValue, NewValue: data[key]})
	}
	return nil
}

// Watch follows external edits until ctx is cancelled. The directory is
// watched, not the file, so editors that replace the file are seen.
func (s *FileStore) Watch(ctx context.Context) error {
	ctx = logging.WithComponent(ctx, "durable-store")
	log := logging.FromContext(ctx)

	if err := os.MkdirAll(filepath.Dir(s.path), dirPerm); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(s.path), err)
	}

	s.mu.Lock()
	if s.snapshot == nil {
		if data, err := s.readAll(); err == nil {
			s.snapshot = data
		}
	}
	s.mu.Unlock()

	var (
		pending *time.Timer
		fire    <-chan time.Time
	)
	defer func() {
		if pending != nil {
			pending.Stop()
		}
	}()

	log.Debug().Str("path", s.path).Msg("watching preference file")
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-fire:
			fire = nil
			s.Reload(ctx)
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(s.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if pending == nil {
				pending = time.NewTimer(reloadDebounce)
			} else {
				pending.Reset(reloadDebounce)
			}
			fire = pending.C
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(werr).Msg("preference watcher error")
		}
	}
}

// Reload re-reads the file and publishes a change for every key that differs
// from the last known contents. A file that exists but is blank is taken to
// be mid-write and leaves the snapshot alone; a missing file clears it.
func (s *FileStore) Reload(ctx context.Context) {
	s.mu.Lock()
	data, blank, err := s.readFile()
	if err != nil {
		s.mu.Unlock()
		logging.FromContext(ctx).Warn().Err(err).Msg("cannot reload preference file")
		return
	}
	if blank {
		s.mu.Unlock()
		logging.FromContext(ctx).Debug().Str("path", s.path).Msg("preference file is blank, keeping last contents")
		return
	}
	previous := s.snapshot
	s.snapshot = data
	s.mu.Unlock()

	for _, change := range diff(previous, data) {
		s.changes.Notify(ctx, change)
	}
}

// diff returns one change per key whose value differs.
func diff(old, updated map[string]any) []port.StoreChange {
	var changes []port.StoreChange
	for key, newValue := range updated {
		if oldValue, ok := old[key]; !ok || !reflect.DeepEqual(oldValue, newValue) {
			changes = append(changes, port.StoreChange{Key: key, OldValue: old[key], NewValue: newValue})
		}
	}
	for key, oldValue := range old {
		if _, ok := updated[key]; !ok {
			changes = append(changes, port.StoreChange{Key: key, OldValue: oldValue})
		}
	}
	return changes
}

func (s *FileStore) readAll() (map[string]any, error) {
	data, _, err := s.readFile()
	return data, err
}

// readFile parses the file. blank reports a file that exists with no content.
func (s *FileStore) readFile() (data map[string]any, blank bool, err error) {
	data = map[string]any{}
	content, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return data, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", s.path, err)
	}
	if len(bytes.TrimSpace(content)) == 0 {
		return data, true, nil
	}
	if err := toml.Unmarshal(content, &data); err != nil {
		return nil, false, fmt.Errorf("parse %s: %w", s.path, err)
	}
	return data, false, nil
}

// writeAll replaces the file atomically.
func (s *FileStore) writeAll(data map[string]any) error {
	content, err := toml.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	return os.Rename(tmp.Name(), s.path)
}

// lockFile takes an exclusive advisory lock shared with other stayup
// processes writing the same store.
func (s *FileStore) lockFile() (func(), error) {
	if err := os.MkdirAll(filepath.Dir(s.path), dirPerm); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}
	f, err := os.OpenFile(s.path+".lock", os.O_CREATE|os.O_RDWR, filePerm)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}
	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("lock store: %w", err)
	}
	return func() {
		_ = unix.Flock(int(f.Fd()), unix.LOCK_UN)
		_ = f.Close()
	}, nil
}

// remarshal normalizes a Go value to the form it takes after a trip through the file.
func remarshal(in, out any) error {
	content, err := toml.Marshal(in)
	if err != nil {
		return err
	}
	return toml.Unmarshal(content, out)
}
