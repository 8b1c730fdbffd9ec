package styles_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/stayup/internal/cli/styles"
	"github.com/bnema/stayup/internal/domain/build"
	"github.com/bnema/stayup/internal/domain/entity"
)

func TestAge(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "just now", styles.Age(now.Add(-300*time.Millisecond), now))
	assert.Contains(t, styles.Age(now.Add(-90*time.Minute), now), "1 hour")
	assert.Contains(t, styles.Age(now.Add(-90*time.Minute), now), "30 minutes")
	assert.Contains(t, styles.Age(now.Add(-90*time.Minute), now), "ago")
}

func TestStatusRenderer(t *testing.T) {
	r := styles.NewStatusRenderer(styles.NewTheme())

	out := r.RenderStatus(entity.ActivationStatus{Active: true, DownloadActivated: true, Scope: entity.ScopeDisplay})
	require.Contains(t, out, "Keeping awake")
	require.Contains(t, out, "display")
	require.Contains(t, out, "By downloads")

	out = r.RenderChanged(entity.ActivationStatus{Scope: entity.ScopeSystem})
	require.Contains(t, out, "Sleep allowed")
	require.Contains(t, out, "system")

	out = r.RenderNotRunning("on")
	require.Contains(t, out, "not running")
	require.Contains(t, out, "last indicator: on")
	require.NotContains(t, r.RenderNotRunning(""), "last indicator")
}

func TestPreferencesRenderer(t *testing.T) {
	r := styles.NewPreferencesRenderer(styles.NewTheme())

	out := r.RenderList(entity.DefaultPreferences())
	require.Contains(t, out, "sounds")
	require.Contains(t, out, "displaySleep")
	require.Contains(t, out, "autoDownloads")
	require.Contains(t, out, "needs downloads")

	errOut := r.RenderError(&entity.PermissionError{Permission: entity.PermissionTypeDownloads, Action: "autoDownloads"})
	require.Contains(t, errOut, "stayup permissions grant downloads")
	require.NotContains(t, r.RenderError(errors.New("boom")), "Grant it")
}

func TestPermissionsRenderer(t *testing.T) {
	r := styles.NewPermissionsRenderer(styles.NewTheme())
	now := time.Now()

	out := r.RenderList(nil, now)
	require.Contains(t, out, "downloads")
	require.Contains(t, out, "denied")

	out = r.RenderList([]*entity.PermissionRecord{
		{Type: entity.PermissionTypeDownloads, Decision: entity.PermissionGranted, UpdatedAt: now.Add(-2 * time.Hour).Unix()},
	}, now)
	require.Contains(t, out, "granted")
	require.Contains(t, out, "2 hours")

	require.Contains(t, r.RenderChanged(entity.PermissionTypeDownloads, false, false), "applies on next start")
	require.NotContains(t, r.RenderChanged(entity.PermissionTypeDownloads, true, true), "next start")
}

func TestHistoryRenderer(t *testing.T) {
	r := styles.NewHistoryRenderer(styles.NewTheme())
	now := time.Now()

	require.Contains(t, r.RenderList(nil, now), "No transitions")

	out := r.RenderList([]*entity.Transition{
		{From: entity.ModeOff, To: entity.ModeOn, Trigger: entity.TriggerDownloads, Scope: entity.ScopeSystem, At: now.Add(-5 * time.Minute)},
	}, now)
	require.Contains(t, out, "History")
	require.Contains(t, out, "downloads")
	require.Contains(t, out, "5 minutes ago")
}

func TestVersionRenderer(t *testing.T) {
	r := styles.NewVersionRenderer(styles.NewTheme())

	out := r.Render(build.Info{Version: "v0.3.0", Commit: "abc123", BuildDate: "2026-01-01", GoVersion: "go1.25.3"})
	require.Contains(t, out, "v0.3.0")
	require.Contains(t, out, "abc123")
	require.Contains(t, out, build.RepoURL())
}
