package styles

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/stayup/internal/domain/entity"
)

// PermissionsRenderer renders the permissions subcommands.
type PermissionsRenderer struct {
	theme *Theme
}

// NewPermissionsRenderer creates a new permissions renderer.
func NewPermissionsRenderer(theme *Theme) *PermissionsRenderer {
	return &PermissionsRenderer{theme: theme}
}

// RenderList renders one line per known permission type. Types without a
// record are shown as not granted.
func (r *PermissionsRenderer) RenderList(records []*entity.PermissionRecord, now time.Time) string {
	byType := make(map[entity.PermissionType]*entity.PermissionRecord, len(records))
	for _, rec := range records {
		byType[rec.Type] = rec
	}

	var b strings.Builder
	b.WriteString(r.theme.Title.Render("Permissions"))
	b.WriteString("\n\n")
	for i, pt := range entity.KnownPermissionTypes() {
		if i > 0 {
			b.WriteString("\n")
		}
		rec := byType[pt]
		line := r.theme.Row(IconKey, string(pt), r.decision(rec))
		if rec != nil && rec.UpdatedAt > 0 {
			line += "  " + r.theme.Subtle.Render(Age(time.Unix(rec.UpdatedAt, 0), now))
		}
		b.WriteString(line)
	}
	return b.String()
}

// RenderChanged confirms a grant or revoke. viaDaemon tells whether the
// running daemon applied it.
func (r *PermissionsRenderer) RenderChanged(permType entity.PermissionType, granted, viaDaemon bool) string {
	verb := "revoked"
	if granted {
		verb = "granted"
	}
	line := fmt.Sprintf("%s %s %s",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Highlight.Render(string(permType)),
		verb,
	)
	if !viaDaemon {
		line += r.theme.Subtle.Render(" (daemon not running, applies on next start)")
	}
	return line
}

// RenderError renders a failure.
func (r *PermissionsRenderer) RenderError(err error) string {
	return fmt.Sprintf("%s %v", r.theme.ErrorStyle.Render(IconX), err)
}

func (r *PermissionsRenderer) decision(rec *entity.PermissionRecord) string {
	if rec.IsGranted() {
		return r.theme.BadgeOn.Render(string(entity.PermissionGranted))
	}
	return r.theme.BadgeOff.Render(string(entity.PermissionDenied))
}
