// Package model holds the interactive bubbletea models behind the CLI.
package model

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/stayup/internal/cli/styles"
	"github.com/bnema/stayup/internal/domain/entity"
	"github.com/bnema/stayup/internal/logging"
)

// PreferencesEditor is what the editor needs from the preferences use case.
type PreferencesEditor interface {
	Get(ctx context.Context) (entity.Preferences, error)
	Set(ctx context.Context, name entity.PreferenceName, status bool) (entity.Preferences, error)
	Reset(ctx context.Context) error
}

// PrefsModel is an interactive toggle list over the preferences.
type PrefsModel struct {
	keys     styles.PrefsKeyMap
	help     help.Model
	spinner  spinner.Model
	renderer *styles.PreferencesRenderer

	names    []entity.PreferenceName
	prefs    entity.Preferences
	cursor   int
	loaded   bool
	saving   bool
	showHelp bool
	status   string
	err      error

	ctx    context.Context
	editor PreferencesEditor
	theme  *styles.Theme
}

// NewPrefsModel creates the preferences editor.
func NewPrefsModel(ctx context.Context, theme *styles.Theme, editor PreferencesEditor) PrefsModel {
	logging.FromContext(ctx).Debug().Msg("creating preferences model")

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Accent)

	return PrefsModel{
		keys:     styles.DefaultPrefsKeyMap(),
		help:     styles.NewStyledHelp(theme),
		spinner:  s,
		renderer: styles.NewPreferencesRenderer(theme),
		names:    entity.PreferenceNames(),
		prefs:    entity.DefaultPreferences(),
		ctx:      ctx,
		editor:   editor,
		theme:    theme,
	}
}

// prefsLoadedMsg carries the preferences after a load, save or reset.
type prefsLoadedMsg struct {
	prefs  entity.Preferences
	status string
	err    error
}

// Init implements tea.Model.
func (m PrefsModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.load)
}

func (m PrefsModel) load() tea.Msg {
	prefs, err := m.editor.Get(m.ctx)
	return prefsLoadedMsg{prefs: prefs, err: err}
}

func (m PrefsModel) toggle(name entity.PreferenceName, status bool) tea.Cmd {
	return func() tea.Msg {
		prefs, err := m.editor.Set(m.ctx, name, status)
		if err != nil {
			return prefsLoadedMsg{prefs: prefs, err: err}
		}
		return prefsLoadedMsg{prefs: prefs, status: m.renderer.RenderSaved(name, status)}
	}
}

func (m PrefsModel) reset() tea.Msg {
	if err := m.editor.Reset(m.ctx); err != nil {
		return prefsLoadedMsg{prefs: m.prefs, err: err}
	}
	prefs, err := m.editor.Get(m.ctx)
	return prefsLoadedMsg{prefs: prefs, status: m.renderer.RenderReset(), err: err}
}

// Update implements tea.Model.
func (m PrefsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case prefsLoadedMsg:
		m.loaded = true
		m.saving = false
		m.prefs = msg.prefs
		m.status = msg.status
		m.err = msg.err
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m PrefsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if m.saving || !m.loaded {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.names)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
	case key.Matches(msg, m.keys.Toggle):
		name := m.names[m.cursor]
		current, _ := m.prefs.Get(name)
		m.saving = true
		m.err = nil
		return m, m.toggle(name, !current.Status)
	case key.Matches(msg, m.keys.Reset):
		m.saving = true
		m.err = nil
		return m, m.reset
	}
	return m, nil
}

// View implements tea.Model.
func (m PrefsModel) View() string {
	t := m.theme

	if !m.loaded {
		return t.Box.Render(m.spinner.View() + " Loading preferences...")
	}

	var b strings.Builder
	b.WriteString(t.Title.Render("Preferences"))
	b.WriteString("\n\n")
	for i, name := range m.names {
		toggle, _ := m.prefs.Get(name)
		cursor := "  "
		if i == m.cursor {
			cursor = t.Highlight.Render(styles.IconArrow) + " "
		}
		b.WriteString(cursor + m.renderer.RenderToggle(name, toggle))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case m.saving:
		b.WriteString(m.spinner.View() + " Saving...")
	case m.err != nil:
		b.WriteString(m.renderer.RenderError(m.err))
	case m.status != "":
		b.WriteString(m.status)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		t.Box.Render(strings.TrimRight(b.String(), "\n")),
		m.help.View(m.keys),
	)
}

// Selected returns the preference under the cursor.
func (m PrefsModel) Selected() entity.PreferenceName {
	return m.names[m.cursor]
}

// Err returns the last error shown.
func (m PrefsModel) Err() error {
	return m.err
}
