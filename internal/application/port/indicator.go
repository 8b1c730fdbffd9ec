package port

import "context"

// Indicator shows whether keep-awake is on.
type Indicator interface {
	SetIndicator(ctx context.Context, active bool) error
}
