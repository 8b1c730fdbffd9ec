package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/bnema/stayup/internal/application/port"
	"github.com/bnema/stayup/internal/logging"
)

// LazyDB opens the state database on first use. CLI commands that only talk
// to the daemon over D-Bus never open it. A failed open is retried on the
// next call rather than cached.
type LazyDB struct {
	dbPath string

	mu sync.Mutex
	db *sql.DB
}

// Compile-time interface check.
var _ port.DatabaseProvider = (*LazyDB)(nil)

// NewLazyDB creates a lazy provider for the database at dbPath.
func NewLazyDB(dbPath string) *LazyDB {
	return &LazyDB{dbPath: dbPath}
}

// DB returns the shared connection, opening it if needed.
func (l *LazyDB) DB(ctx context.Context) (*sql.DB, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.db != nil {
		return l.db, nil
	}

	db, err := NewConnection(ctx, l.dbPath)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("path", l.dbPath).Msg("state database unavailable")
		return nil, fmt.Errorf("state database: %w", err)
	}
	l.db = db
	return db, nil
}

// Close closes the connection if one was opened. The provider can be reused.
func (l *LazyDB) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.db == nil {
		return nil
	}
	err := l.db.Close()
	l.db = nil
	return err
}

// IsInitialized reports whether a connection is open.
func (l *LazyDB) IsInitialized() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.db != nil
}
