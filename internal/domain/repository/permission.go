// Package repository declares persistence boundaries for domain entities.
package repository

import (
	"context"

	"github.com/bnema/stayup/internal/domain/entity"
)

// PermissionRepository defines operations for permission persistence.
type PermissionRepository interface {
	// Get retrieves the record for a permission type.
	// Returns nil if no record exists (treat as not granted).
	Get(ctx context.Context, permType entity.PermissionType) (*entity.PermissionRecord, error)

	// Set saves or updates a permission record.
	Set(ctx context.Context, record *entity.PermissionRecord) error

	// Delete removes the record for a permission type.
	Delete(ctx context.Context, permType entity.PermissionType) error

	// GetAll retrieves every stored permission record.
	GetAll(ctx context.Context) ([]*entity.PermissionRecord, error)
}
