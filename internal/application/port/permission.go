package port

import (
	"context"

	"github.com/bnema/stayup/internal/domain/entity"
)

// PermissionGate answers and announces permission grants.
type PermissionGate interface {
	Contains(ctx context.Context, permType entity.PermissionType) (bool, error)
	OnAdded(fn func(ctx context.Context, ev entity.PermissionEvent)) (unsubscribe func())
	OnRemoved(fn func(ctx context.Context, ev entity.PermissionEvent)) (unsubscribe func())
}
