package styles

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/stayup/internal/domain/entity"
)

// PreferencesRenderer renders the prefs subcommands.
type PreferencesRenderer struct {
	theme *Theme
}

// NewPreferencesRenderer creates a new preferences renderer.
func NewPreferencesRenderer(theme *Theme) *PreferencesRenderer {
	return &PreferencesRenderer{theme: theme}
}

// RenderList renders every toggle.
func (r *PreferencesRenderer) RenderList(prefs entity.Preferences) string {
	var b strings.Builder
	b.WriteString(r.theme.Title.Render("Preferences"))
	b.WriteString("\n\n")
	for i, name := range entity.PreferenceNames() {
		if i > 0 {
			b.WriteString("\n")
		}
		toggle, _ := prefs.Get(name)
		b.WriteString(r.RenderToggle(name, toggle))
	}
	return b.String()
}

// RenderToggle renders a single toggle line.
func (r *PreferencesRenderer) RenderToggle(name entity.PreferenceName, toggle entity.Toggle) string {
	line := r.theme.Row(iconFor(name), string(name), r.theme.OnOff(toggle.Status))
	if toggle.RequiresPermission() {
		line += "  " + r.theme.Subtle.Render("needs "+strings.Join(toggle.Permissions, ", "))
	}
	return line
}

// RenderSaved confirms a change.
func (r *PreferencesRenderer) RenderSaved(name entity.PreferenceName, status bool) string {
	return fmt.Sprintf("%s %s %s",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Highlight.Render(string(name)),
		r.theme.OnOff(status),
	)
}

// RenderReset confirms a reset.
func (r *PreferencesRenderer) RenderReset() string {
	return fmt.Sprintf("%s %s", r.theme.SuccessStyle.Render(IconCheck), "Preferences reset to defaults")
}

// RenderError renders a failure, with a hint when a grant is missing.
func (r *PreferencesRenderer) RenderError(err error) string {
	out := fmt.Sprintf("%s %v", r.theme.ErrorStyle.Render(IconX), err)
	var permErr *entity.PermissionError
	if errors.As(err, &permErr) {
		out += "\n" + r.theme.Subtle.Render(fmt.Sprintf("Grant it with: stayup permissions grant %s", permErr.Permission))
	}
	return out
}

func iconFor(name entity.PreferenceName) string {
	switch name {
	case entity.PrefSounds:
		return IconVolume
	case entity.PrefDisplaySleep:
		return IconDisplay
	case entity.PrefAutoDownloads:
		return IconDownload
	default:
		return IconInfo
	}
}
