package cmd

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/stayup/internal/cli/model"
	"github.com/bnema/stayup/internal/cli/styles"
	"github.com/bnema/stayup/internal/domain/entity"
)

var prefsCmd = &cobra.Command{
	Use:     "prefs",
	Aliases: []string{"preferences"},
	Short:   "View and change preferences",
	Long: `View and change the stayup preferences.

  sounds         play a cue when the state changes
  displaySleep   on: keep the display awake, off: only prevent system sleep
  autoDownloads  turn on while downloads are in progress (needs the
                 "downloads" permission)

A running daemon picks up changes immediately.`,
	Args: cobra.NoArgs,
	RunE: runPrefsGet,
}

var prefsGetCmd = &cobra.Command{
	Use:       "get [name]",
	Short:     "Show one or all preferences",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: preferenceArgs(),
	RunE:      runPrefsGet,
}

var prefsSetCmd = &cobra.Command{
	Use:   "set <name> <on|off>",
	Short: "Change a preference",
	Example: `  stayup prefs set displaySleep on
  stayup prefs set sounds off`,
	Args: cobra.ExactArgs(2),
	RunE: runPrefsSet,
}

var prefsEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Toggle preferences interactively",
	Args:  cobra.NoArgs,
	RunE:  runPrefsEdit,
}

var prefsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore every preference to its default",
	Args:  cobra.NoArgs,
	RunE:  runPrefsReset,
}

func init() {
	rootCmd.AddCommand(prefsCmd)
	prefsCmd.AddCommand(prefsGetCmd)
	prefsCmd.AddCommand(prefsSetCmd)
	prefsCmd.AddCommand(prefsEditCmd)
	prefsCmd.AddCommand(prefsResetCmd)
}

func runPrefsGet(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	renderer := styles.NewPreferencesRenderer(app.Theme)

	prefs, err := app.Preferences.Get(app.Ctx())
	if err != nil {
		return report(renderer.RenderError(err))
	}

	if len(args) == 0 {
		fmt.Println(renderer.RenderList(prefs))
		return nil
	}

	name := entity.PreferenceName(args[0])
	toggle, ok := prefs.Get(name)
	if !ok {
		return report(renderer.RenderError(fmt.Errorf("%w: %s", entity.ErrUnknownPreference, args[0])))
	}
	fmt.Println(renderer.RenderToggle(name, toggle))
	return nil
}

func runPrefsSet(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	renderer := styles.NewPreferencesRenderer(app.Theme)

	status, err := parseSwitch(args[1])
	if err != nil {
		return report(renderer.RenderError(err))
	}

	name := entity.PreferenceName(args[0])
	if _, err := app.Preferences.Set(app.Ctx(), name, status); err != nil {
		return report(renderer.RenderError(err))
	}
	fmt.Println(renderer.RenderSaved(name, status))
	return nil
}

func runPrefsEdit(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	m := model.NewPrefsModel(app.Ctx(), app.Theme, app.Preferences)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("run preferences editor: %w", err)
	}
	return nil
}

func runPrefsReset(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	renderer := styles.NewPreferencesRenderer(app.Theme)

	if err := app.Preferences.Reset(app.Ctx()); err != nil {
		return report(renderer.RenderError(err))
	}
	fmt.Println(renderer.RenderReset())
	return nil
}

// parseSwitch accepts on/off, yes/no and anything strconv.ParseBool does.
func parseSwitch(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "yes", "enable", "enabled":
		return true, nil
	case "off", "no", "disable", "disabled":
		return false, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid value %q, expected on or off", s)
	}
	return v, nil
}

func preferenceArgs() []string {
	names := entity.PreferenceNames()
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = string(n)
	}
	return out
}
