package styles

import (
	"fmt"
	"strings"

	"github.com/bnema/stayup/internal/domain/entity"
)

// StatusRenderer renders activation state for activate, deactivate, toggle
// and status.
type StatusRenderer struct {
	theme *Theme
}

// NewStatusRenderer creates a new status renderer.
func NewStatusRenderer(theme *Theme) *StatusRenderer {
	return &StatusRenderer{theme: theme}
}

// RenderStatus renders the daemon's activation state.
func (r *StatusRenderer) RenderStatus(st entity.ActivationStatus) string {
	var b strings.Builder
	b.WriteString(r.headline(st.Active))
	b.WriteString("\n\n")
	b.WriteString(r.theme.Row(IconPower, "State", r.theme.ModeBadge(st.Mode())))
	b.WriteString("\n")
	b.WriteString(r.theme.Row(IconDisplay, "Scope", r.theme.ScopeBadge(st.Scope)))
	b.WriteString("\n")
	b.WriteString(r.theme.Row(IconDownload, "By downloads", r.theme.OnOff(st.DownloadActivated)))
	return b.String()
}

// RenderChanged renders the one-line result of a command.
func (r *StatusRenderer) RenderChanged(st entity.ActivationStatus) string {
	return fmt.Sprintf("%s %s", r.headline(st.Active), r.theme.ScopeBadge(st.Scope))
}

// RenderNotRunning renders the fallback when no daemon answers. lastKnown is
// the mode left in the status file, empty when there is none.
func (r *StatusRenderer) RenderNotRunning(lastKnown string) string {
	line := fmt.Sprintf("%s %s",
		r.theme.WarningStyle.Render(IconWarning),
		r.theme.Normal.Render("stayup daemon is not running"),
	)
	if lastKnown != "" {
		line += r.theme.Subtle.Render(fmt.Sprintf(" (last indicator: %s)", lastKnown))
	}
	return line + "\n" + r.theme.Subtle.Render("Start it with: stayup daemon")
}

// RenderError renders a command failure.
func (r *StatusRenderer) RenderError(err error) string {
	return fmt.Sprintf("%s %v", r.theme.ErrorStyle.Render(IconX), err)
}

func (r *StatusRenderer) headline(active bool) string {
	if active {
		return fmt.Sprintf("%s %s", r.theme.Highlight.Render(IconCoffee), r.theme.Title.Render("Keeping awake"))
	}
	return fmt.Sprintf("%s %s", r.theme.Subtle.Render(IconMoon), r.theme.Title.Render("Sleep allowed"))
}
