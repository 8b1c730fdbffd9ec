package styles

import (
	"time"

	"github.com/hako/durafmt"

	"github.com/bnema/stayup/internal/domain/entity"
)

// ScopeBadge renders the keep-awake scope.
func (t *Theme) ScopeBadge(scope entity.KeepAwakeScope) string {
	if scope == entity.ScopeDisplay {
		return t.Badge.Render(string(scope))
	}
	return t.BadgeMuted.Render(string(scope))
}

// TriggerBadge renders what caused a transition.
func (t *Theme) TriggerBadge(trigger entity.Trigger) string {
	return t.BadgeMuted.Render(string(trigger))
}

// ModeBadge renders an activation mode.
func (t *Theme) ModeBadge(mode entity.Mode) string {
	return t.OnOff(mode == entity.ModeOn)
}

// Age formats the time elapsed since tm, keeping the two largest units.
func Age(tm, now time.Time) string {
	d := now.Sub(tm)
	if d < time.Second {
		return "just now"
	}
	return durafmt.Parse(d.Truncate(time.Second)).LimitFirstN(2).String() + " ago"
}
