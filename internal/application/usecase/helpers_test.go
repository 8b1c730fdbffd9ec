package usecase_test

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/stayup/internal/application/port"
	"github.com/bnema/stayup/internal/domain/entity"
	"github.com/bnema/stayup/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// memSession is an in-memory session store with optional failures.
type memSession struct {
	mu      sync.Mutex
	flags   map[string]bool
	loadErr error
	saveErr error
}

func newMemSession() *memSession {
	return &memSession{flags: make(map[string]bool)}
}

func (s *memSession) LoadBool(_ context.Context, key string, def bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadErr != nil {
		return false, s.loadErr
	}
	v, ok := s.flags[key]
	if !ok {
		return def, nil
	}
	return v, nil
}

func (s *memSession) SaveBool(_ context.Context, key string, value bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.flags[key] = value
	return nil
}

func (s *memSession) get(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flags[key]
}

func (s *memSession) set(key string, value bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flags[key] = value
}

// memDurable holds the preferences record in memory and counts writes.
type memDurable struct {
	mu      sync.Mutex
	prefs   *entity.Preferences
	loadErr error
	saves   int
	subs    []func(context.Context, port.StoreChange)
}

func newMemDurable(prefs *entity.Preferences) *memDurable {
	return &memDurable{prefs: prefs}
}

func (s *memDurable) Load(_ context.Context, key string, dst any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadErr != nil {
		return false, s.loadErr
	}
	if key != entity.PreferencesKey || s.prefs == nil {
		return false, nil
	}
	*dst.(*entity.Preferences) = *s.prefs
	return true, nil
}

func (s *memDurable) Save(_ context.Context, key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if key == entity.PreferencesKey {
		prefs := value.(entity.Preferences)
		s.prefs = &prefs
	}
	s.saves++
	return nil
}

func (s *memDurable) Clear(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if key == entity.PreferencesKey {
		s.prefs = nil
	}
	s.saves++
	return nil
}

func (s *memDurable) Subscribe(fn func(context.Context, port.StoreChange)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
	return func() {}
}

func (s *memDurable) current() *entity.Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs
}

func (s *memDurable) saveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

// fakeClock is a manually advanced clock.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func prefsWith(mutate func(p *entity.Preferences)) *entity.Preferences {
	p := entity.DefaultPreferences()
	mutate(&p)
	return &p
}

// rawPrefs mirrors what the durable store publishes for a preferences change.
func rawPrefs(displaySleep bool) map[string]any {
	return map[string]any{
		"sounds":        map[string]any{"status": true},
		"displaySleep":  map[string]any{"status": displaySleep},
		"autoDownloads": map[string]any{"status": false, "permissions": []any{"downloads"}},
	}
}
