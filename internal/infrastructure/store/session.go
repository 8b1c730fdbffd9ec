package store

import (
	"context"
	"sync"

	"github.com/bnema/stayup/internal/application/port"
)

// Compile-time interface check.
var _ port.SessionStore = (*SessionStore)(nil)

// SessionStore holds flags for the lifetime of the daemon process.
type SessionStore struct {
	mu     sync.RWMutex
	values map[string]bool
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{values: make(map[string]bool)}
}

// LoadBool returns the stored flag, or def when it was never written.
func (s *SessionStore) LoadBool(_ context.Context, key string, def bool) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.values[key]; ok {
		return v, nil
	}
	return def, nil
}

// SaveBool stores a flag.
func (s *SessionStore) SaveBool(_ context.Context, key string, value bool) error {
	s.mu.Lock()
	s.values[key] = value
	s.mu.Unlock()
	return nil
}

// Reset forgets every flag.
func (s *SessionStore) Reset() {
	s.mu.Lock()
	s.values = make(map[string]bool)
	s.mu.Unlock()
}
