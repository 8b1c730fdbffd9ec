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
	getPermissionSQL = `SELECT permission_type, decision, updated_at FROM permissions
WHERE permission_type = ?`
	setPermissionSQL = `INSERT INTO permissions (permission_type, decision, updated_at)
VALUES (?, ?, ?)
ON CONFLICT(permission_type) DO UPDATE SET
    decision = excluded.decision,
    updated_at = excluded.updated_at`
	deletePermissionSQL = `DELETE FROM permissions WHERE permission_type = ?`
	listPermissionsSQL  = `SELECT permission_type, decision, updated_at FROM permissions
ORDER BY permission_type`
)

type permissionRepo struct {
	db *sql.DB
}

// NewPermissionRepository creates a new SQLite-backed permission repository.
func NewPermissionRepository(db *sql.DB) repository.PermissionRepository {
	return &permissionRepo{db: db}
}

func (r *permissionRepo) Get(ctx context.Context, permType entity.PermissionType) (*entity.PermissionRecord, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("type", string(permType)).Msg("getting permission")

	record, err := scanPermission(r.db.QueryRowContext(ctx, getPermissionSQL, string(permType)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return record, nil
}

func (r *permissionRepo) Set(ctx context.Context, record *entity.PermissionRecord) error {
	log := logging.FromContext(ctx)

	if record == nil {
		log.Error().Msg("cannot set nil permission record")
		return errors.New("cannot set nil permission record")
	}

	log.Debug().
		Str("type", string(record.Type)).
		Str("decision", string(record.Decision)).
		Msg("setting permission")

	updatedAt := record.UpdatedAt
	if updatedAt == 0 {
		updatedAt = time.Now().Unix()
	}
	_, err := r.db.ExecContext(ctx, setPermissionSQL,
		string(record.Type), string(record.Decision), updatedAt)
	return err
}

func (r *permissionRepo) Delete(ctx context.Context, permType entity.PermissionType) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("type", string(permType)).Msg("deleting permission")

	_, err := r.db.ExecContext(ctx, deletePermissionSQL, string(permType))
	return err
}

func (r *permissionRepo) GetAll(ctx context.Context) ([]*entity.PermissionRecord, error) {
	rows, err := r.db.QueryContext(ctx, listPermissionsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*entity.PermissionRecord
	for rows.Next() {
		record, err := scanPermission(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPermission(row rowScanner) (*entity.PermissionRecord, error) {
	var (
		permType, decision string
		updatedAt          sql.NullInt64
	)
	if err := row.Scan(&permType, &decision, &updatedAt); err != nil {
		return nil, err
	}
	record := &entity.PermissionRecord{
		Type:     entity.PermissionType(permType),
		Decision: entity.PermissionDecision(decision),
	}
	if updatedAt.Valid {
		record.UpdatedAt = updatedAt.Int64
	}
	return record, nil
}
