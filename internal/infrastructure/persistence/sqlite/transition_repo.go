package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bnema/stayup/internal/domain/entity"
	"github.com/bnema/stayup/internal/domain/repository"
	"github.com/bnema/stayup/internal/logging"
)

const (
	appendTransitionSQL = `INSERT INTO transitions (from_mode, to_mode, trigger, scope, at)
VALUES (?, ?, ?, ?, ?)`
	recentTransitionsSQL = `SELECT id, from_mode, to_mode, trigger, scope, at FROM transitions
ORDER BY id DESC LIMIT ?`
	pruneTransitionsSQL = `DELETE FROM transitions WHERE id NOT IN (
    SELECT id FROM transitions ORDER BY id DESC LIMIT ?
)`
)

type transitionRepo struct {
	db *sql.DB
}

// NewTransitionRepository creates a new SQLite-backed activation journal.
func NewTransitionRepository(db *sql.DB) repository.TransitionRepository {
	return &transitionRepo{db: db}
}

func (r *transitionRepo) Append(ctx context.Context, t *entity.Transition) error {
	if t == nil {
		return errors.New("cannot append nil transition")
	}
	at := t.At
	if at.IsZero() {
		at = time.Now()
	}

	res, err := r.db.ExecContext(ctx, appendTransitionSQL,
		string(t.From), string(t.To), string(t.Trigger), string(t.Scope), at.UnixMilli())
	if err != nil {
		return err
	}
	if id, err := res.LastInsertId(); err == nil {
		t.ID = id
	}

	logging.FromContext(ctx).Trace().
		Int64("id", t.ID).
		Str("to", string(t.To)).
		Msg("transition journaled")
	return nil
}

func (r *transitionRepo) Recent(ctx context.Context, limit int) ([]*entity.Transition, error) {
	rows, err := r.db.QueryContext(ctx, recentTransitionsSQL, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.Transition
	for rows.Next() {
		var (
			t                        entity.Transition
			from, to, trigger, scope string
			atMillis                 int64
		)
		if err := rows.Scan(&t.ID, &from, &to, &trigger, &scope, &atMillis); err != nil {
			return nil, err
		}
		t.From = entity.Mode(from)
		t.To = entity.Mode(to)
		t.Trigger = entity.Trigger(trigger)
		t.Scope = entity.KeepAwakeScope(scope)
		t.At = time.UnixMilli(atMillis)
		out = append(out, &t)
	}
	return out, rows.Err()
}

func (r *transitionRepo) Prune(ctx context.Context, keep int) (int64, error) {
	res, err := r.db.ExecContext(ctx, pruneTransitionsSQL, keep)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if n > 0 {
		logging.FromContext(ctx).Debug().Int64("deleted", n).Msg("journal pruned")
	}
	return n, nil
}
