package model

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/stayup/internal/cli/styles"
	"github.com/bnema/stayup/internal/domain/entity"
)

type fakeEditor struct {
	prefs  entity.Preferences
	setErr error
	resets int
}

func (f *fakeEditor) Get(context.Context) (entity.Preferences, error) {
	return f.prefs, nil
}

func (f *fakeEditor) Set(_ context.Context, name entity.PreferenceName, status bool) (entity.Preferences, error) {
	if f.setErr != nil {
		return f.prefs, f.setErr
	}
	f.prefs, _ = f.prefs.WithStatus(name, status)
	return f.prefs, nil
}

func (f *fakeEditor) Reset(context.Context) error {
	f.resets++
	f.prefs = entity.DefaultPreferences()
	return nil
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends a key and runs the resulting command once, feeding its message back.
func press(t *testing.T, m PrefsModel, msg tea.KeyMsg) PrefsModel {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(PrefsModel)
	if cmd != nil {
		if out := cmd(); out != nil {
			next, _ = m.Update(out)
			m = next.(PrefsModel)
		}
	}
	return m
}

func loadedModel(t *testing.T, editor *fakeEditor) PrefsModel {
	t.Helper()
	m := NewPrefsModel(context.Background(), styles.NewTheme(), editor)
	next, _ := m.Update(m.load())
	return next.(PrefsModel)
}

func TestPrefsModel_NavigatesAndToggles(t *testing.T) {
	editor := &fakeEditor{prefs: entity.DefaultPreferences()}
	m := loadedModel(t, editor)
	require.Equal(t, entity.PrefSounds, m.Selected())

	m = press(t, m, runes("j"))
	require.Equal(t, entity.PrefDisplaySleep, m.Selected())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NoError(t, m.Err())
	assert.True(t, editor.prefs.DisplaySleep.Status)
	assert.Contains(t, m.View(), "displaySleep")

	m = press(t, m, runes("k"))
	m = press(t, m, runes("k"))
	assert.Equal(t, entity.PrefSounds, m.Selected())
}

func TestPrefsModel_ShowsPermissionHint(t *testing.T) {
	editor := &fakeEditor{
		prefs:  entity.DefaultPreferences(),
		setErr: &entity.PermissionError{Permission: entity.PermissionTypeDownloads, Action: string(entity.PrefAutoDownloads)},
	}
	m := loadedModel(t, editor)
	m = press(t, m, runes("j"))
	m = press(t, m, runes("j"))
	require.Equal(t, entity.PrefAutoDownloads, m.Selected())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	var permErr *entity.PermissionError
	require.True(t, errors.As(m.Err(), &permErr))
	assert.Contains(t, m.View(), "stayup permissions grant downloads")
	assert.False(t, editor.prefs.AutoDownloads.Status)
}

func TestPrefsModel_Reset(t *testing.T) {
	prefs, _ := entity.DefaultPreferences().WithStatus(entity.PrefSounds, false)
	editor := &fakeEditor{prefs: prefs}
	m := loadedModel(t, editor)

	m = press(t, m, runes("r"))
	assert.Equal(t, 1, editor.resets)
	assert.True(t, editor.prefs.Sounds.Status)
	assert.Contains(t, m.View(), "reset to defaults")
}

func TestPrefsModel_QuitAndIgnoreBeforeLoad(t *testing.T) {
	m := NewPrefsModel(context.Background(), styles.NewTheme(), &fakeEditor{prefs: entity.DefaultPreferences()})

	next, cmd := m.Update(runes("j"))
	assert.Nil(t, cmd)
	assert.Equal(t, entity.PrefSounds, next.(PrefsModel).Selected())

	_, cmd = m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
