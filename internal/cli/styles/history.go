package styles

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/stayup/internal/domain/entity"
)

// HistoryRenderer renders the activation journal.
type HistoryRenderer struct {
	theme *Theme
}

// NewHistoryRenderer creates a new history renderer.
func NewHistoryRenderer(theme *Theme) *HistoryRenderer {
	return &HistoryRenderer{theme: theme}
}

// RenderEmpty renders an empty journal.
func (r *HistoryRenderer) RenderEmpty() string {
	return r.theme.Subtle.Render("No transitions recorded yet.")
}

// RenderList renders transitions newest first.
func (r *HistoryRenderer) RenderList(items []*entity.Transition, now time.Time) string {
	if len(items) == 0 {
		return r.RenderEmpty()
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s", r.theme.Highlight.Render(IconClock), r.theme.Title.Render("History")))
	b.WriteString(r.theme.Subtle.Render(fmt.Sprintf(" (%d)", len(items))))
	b.WriteString("\n\n")
	for _, tr := range items {
		b.WriteString(r.renderOne(tr, now))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *HistoryRenderer) renderOne(tr *entity.Transition, now time.Time) string {
	return fmt.Sprintf("%s %s %s  %s %s  %s",
		r.theme.ModeBadge(tr.From),
		r.theme.Subtle.Render(IconArrow),
		r.theme.ModeBadge(tr.To),
		r.theme.TriggerBadge(tr.Trigger),
		r.theme.ScopeBadge(tr.Scope),
		r.theme.Subtle.Render(Age(tr.At, now)),
	)
}

// RenderPruned confirms a prune.
func (r *HistoryRenderer) RenderPruned(removed int64, keep int) string {
	return fmt.Sprintf("%s Removed %d transitions, kept the last %d",
		r.theme.SuccessStyle.Render(IconCheck), removed, keep)
}

// RenderError renders a failure.
func (r *HistoryRenderer) RenderError(err error) string {
	return fmt.Sprintf("%s %v", r.theme.ErrorStyle.Render(IconX), err)
}
