package idle

import (
	"context"
	"fmt"

	"github.com/bnema/stayup/internal/application/port"
	"github.com/bnema/stayup/internal/logging"
)

// Backend names accepted by NewKeepAwake.
const (
	BackendAuto   = "auto"
	BackendPortal = "portal"
	BackendLogind = "logind"
)

// NewKeepAwake builds the configured keep-awake backend. auto prefers the
// portal and falls back to logind.
func NewKeepAwake(ctx context.Context, backend, reason string) (port.KeepAwake, error) {
	log := logging.FromContext(ctx)

	switch backend {
	case BackendPortal:
		return NewPortalInhibitor(ctx, reason), nil
	case BackendLogind:
		return NewLogindInhibitor(reason)
	case BackendAuto, "":
		portal := NewPortalInhibitor(ctx, reason)
		if portal.Available() {
			log.Debug().Msg("keep-awake backend: portal")
			return portal, nil
		}
		_ = portal.Close()

		logind, err := NewLogindInhibitor(reason)
		if err != nil {
			return nil, fmt.Errorf("no keep-awake backend available: %w", err)
		}
		log.Debug().Msg("keep-awake backend: logind")
		return logind, nil
	default:
		return nil, fmt.Errorf("unknown keep-awake backend %q", backend)
	}
}
