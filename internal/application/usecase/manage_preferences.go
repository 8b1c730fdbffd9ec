package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/stayup/internal/application/port"
	"github.com/bnema/stayup/internal/domain/entity"
	"github.com/bnema/stayup/internal/logging"
)

// ManagePreferencesUseCase is the settings surface. It writes the durable
// store directly; the coordinator learns about edits through the store's
// change notifications.
type ManagePreferencesUseCase struct {
	store port.DurableStore
	gate  port.PermissionGate
}

// NewManagePreferencesUseCase creates a new preferences use case.
func NewManagePreferencesUseCase(store port.DurableStore, gate port.PermissionGate) *ManagePreferencesUseCase {
	return &ManagePreferencesUseCase{store: store, gate: gate}
}

// Get returns the stored preferences, with defaults for anything unset.
func (uc *ManagePreferencesUseCase) Get(ctx context.Context) (entity.Preferences, error) {
	prefs := entity.DefaultPreferences()
	if _, err := uc.store.Load(ctx, entity.PreferencesKey, &prefs); err != nil {
		return entity.DefaultPreferences(), persistenceErr("load", entity.PreferencesKey, err)
	}
	return prefs, nil
}

// Set changes one toggle. Enabling a permission-gated toggle requires the grant.
func (uc *ManagePreferencesUseCase) Set(ctx context.Context, name entity.PreferenceName, status bool) (entity.Preferences, error) {
	log := logging.FromContext(ctx).With().
		Str("component", "preferences").
		Str("preference", string(name)).
		Bool("status", status).
		Logger()

	prefs, err := uc.Get(ctx)
	if err != nil {
		return prefs, err
	}

	toggle, ok := prefs.Get(name)
	if !ok {
		return prefs, fmt.Errorf("%w: %s", entity.ErrUnknownPreference, name)
	}

	if status && toggle.RequiresPermission() {
		for _, perm := range toggle.Permissions {
			if err := uc.requireGrant(ctx, entity.PermissionType(perm), string(name)); err != nil {
				log.Warn().Err(err).Msg("refusing to enable preference")
				return prefs, err
			}
		}
	}

	updated, _ := prefs.WithStatus(name, status)
	if err := uc.store.Save(ctx, entity.PreferencesKey, updated); err != nil {
		return prefs, persistenceErr("save", entity.PreferencesKey, err)
	}

	log.Info().Msg("preference saved")
	return updated, nil
}

// Reset removes the stored record so every toggle reverts to its default.
func (uc *ManagePreferencesUseCase) Reset(ctx context.Context) error {
	if err := uc.store.Clear(ctx, entity.PreferencesKey); err != nil {
		return persistenceErr("clear", entity.PreferencesKey, err)
	}
	logging.FromContext(ctx).Info().Msg("preferences reset to defaults")
	return nil
}

func (uc *ManagePreferencesUseCase) requireGrant(ctx context.Context, perm entity.PermissionType, action string) error {
	if uc.gate == nil {
		return &entity.PermissionError{Permission: perm, Action: action}
	}
	granted, err := uc.gate.Contains(ctx, perm)
	if err != nil {
		return fmt.Errorf("check %s permission: %w", perm, err)
	}
	if !granted {
		return &entity.PermissionError{Permission: perm, Action: action}
	}
	return nil
}
