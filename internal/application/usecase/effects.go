package usecase

import (
	"context"

	"github.com/bnema/stayup/internal/domain/entity"
	"github.com/bnema/stayup/internal/logging"
)

// attempt runs one independent side effect. A failure is logged and returned
// so callers can react, but it never prevents the next effect from running.
func attempt(ctx context.Context, effect string, fn func() error) error {
	err := fn()
	if err == nil {
		return nil
	}
	logging.FromContext(ctx).Warn().Err(err).Str("effect", effect).Msg("side effect failed, continuing")
	return err
}

func persistenceErr(op, key string, err error) error {
	if err == nil {
		return nil
	}
	return &entity.PersistenceError{Op: op, Key: key, Err: err}
}

func portErr(port, op string, err error) error {
	if err == nil {
		return nil
	}
	return &entity.PortError{Port: port, Op: op, Err: err}
}
