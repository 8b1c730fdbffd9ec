package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/stayup/internal/application/listener"
	"github.com/bnema/stayup/internal/application/port"
	"github.com/bnema/stayup/internal/domain/entity"
	"github.com/bnema/stayup/internal/domain/repository"
	"github.com/bnema/stayup/internal/logging"
)

// Compile-time interface check.
var _ port.PermissionGate = (*ManagePermissionsUseCase)(nil)

// ManagePermissionsUseCase grants and revokes optional permissions and
// announces each change. It is the permission gate the coordinator listens to.
type ManagePermissionsUseCase struct {
	permRepo repository.PermissionRepository
	prefs    port.DurableStore

	added   listener.Registry[entity.PermissionEvent]
	removed listener.Registry[entity.PermissionEvent]
}

// NewManagePermissionsUseCase creates a new permission use case. prefs may be
// nil; when set, revoking a permission also switches off the toggles that need it.
func NewManagePermissionsUseCase(permRepo repository.PermissionRepository, prefs port.DurableStore) *ManagePermissionsUseCase {
	return &ManagePermissionsUseCase{permRepo: permRepo, prefs: prefs}
}

// Contains reports whether permType is currently granted.
func (uc *ManagePermissionsUseCase) Contains(ctx context.Context, permType entity.PermissionType) (bool, error) {
	record, err := uc.permRepo.Get(ctx, permType)
	if err != nil {
		return false, persistenceErr("get_permission", string(permType), err)
	}
	return record.IsGranted(), nil
}

// OnAdded registers fn for grant events.
func (uc *ManagePermissionsUseCase) OnAdded(fn func(ctx context.Context, ev entity.PermissionEvent)) func() {
	return uc.added.Add(fn)
}

// OnRemoved registers fn for revocation events.
func (uc *ManagePermissionsUseCase) OnRemoved(fn func(ctx context.Context, ev entity.PermissionEvent)) func() {
	return uc.removed.Add(fn)
}

// Grant stores a granted decision and notifies listeners.
func (uc *ManagePermissionsUseCase) Grant(ctx context.Context, permType entity.PermissionType) error {
	if err := uc.set(ctx, permType, entity.PermissionGranted); err != nil {
		return err
	}
	uc.added.Notify(ctx, entity.PermissionEvent{Type: permType, Granted: true})
	return nil
}

// Revoke stores a denied decision, disables dependent preferences and
// notifies listeners.
func (uc *ManagePermissionsUseCase) Revoke(ctx context.Context, permType entity.PermissionType) error {
	if err := uc.set(ctx, permType, entity.PermissionDenied); err != nil {
		return err
	}
	uc.disableDependentPreferences(ctx, permType)
	uc.removed.Notify(ctx, entity.PermissionEvent{Type: permType, Granted: false})
	return nil
}

// List returns one record per known permission type, denied when never stored.
func (uc *ManagePermissionsUseCase) List(ctx context.Context) ([]*entity.PermissionRecord, error) {
	stored, err := uc.permRepo.GetAll(ctx)
	if err != nil {
		return nil, persistenceErr("list_permissions", "", err)
	}

	byType := make(map[entity.PermissionType]*entity.PermissionRecord, len(stored))
	for _, record := range stored {
		byType[record.Type] = record
	}

	records := make([]*entity.PermissionRecord, 0, len(entity.KnownPermissionTypes()))
	for _, pt := range entity.KnownPermissionTypes() {
		if record, ok := byType[pt]; ok {
			records = append(records, record)
			continue
		}
		records = append(records, &entity.PermissionRecord{Type: pt, Decision: entity.PermissionDenied})
	}
	return records, nil
}

func (uc *ManagePermissionsUseCase) set(ctx context.Context, permType entity.PermissionType, decision entity.PermissionDecision) error {
	log := logging.FromContext(ctx).With().
		Str("component", "permission").
		Str("type", string(permType)).
		Str("decision", string(decision)).
		Logger()

	if _, ok := entity.ParsePermissionType(string(permType)); !ok {
		return fmt.Errorf("%w: %s", entity.ErrUnknownPermission, permType)
	}

	record := &entity.PermissionRecord{
		Type:      permType,
		Decision:  decision,
		UpdatedAt: time.Now().Unix(),
	}
	if err := uc.permRepo.Set(ctx, record); err != nil {
		log.Warn().Err(err).Msg("failed to persist permission")
		return persistenceErr("set_permission", string(permType), err)
	}

	log.Info().Msg("permission updated")
	return nil
}

func (uc *ManagePermissionsUseCase) disableDependentPreferences(ctx context.Context, permType entity.PermissionType) {
	if uc.prefs == nil {
		return
	}
	log := logging.FromContext(ctx)

	prefs := entity.DefaultPreferences()
	if _, err := uc.prefs.Load(ctx, entity.PreferencesKey, &prefs); err != nil {
		log.Warn().Err(err).Msg("cannot load preferences after revocation")
		return
	}

	changed := false
	for _, name := range entity.PreferenceNames() {
		toggle, _ := prefs.Get(name)
		if !toggle.Status || !needs(toggle, permType) {
			continue
		}
		prefs, _ = prefs.WithStatus(name, false)
		changed = true
	}
	if !changed {
		return
	}

	if err := uc.prefs.Save(ctx, entity.PreferencesKey, prefs); err != nil {
		log.Warn().Err(err).Msg("cannot disable preferences after revocation")
	}
}

func needs(toggle entity.Toggle, permType entity.PermissionType) bool {
	for _, p := range toggle.Permissions {
		if p == string(permType) {
			return true
		}
	}
	return false
}
