package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/bnema/stayup/internal/cli"
	"github.com/bnema/stayup/internal/cli/styles"
	"github.com/bnema/stayup/internal/domain/entity"
	"github.com/bnema/stayup/internal/infrastructure/dbusapi"
	"github.com/bnema/stayup/internal/infrastructure/indicator"
)

const controlTimeout = 5 * time.Second

var statusJSON bool

var activateCmd = &cobra.Command{
	Use:   "activate",
	Short: "Keep the session awake",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runControl((*dbusapi.Client).Activate)
	},
}

var deactivateCmd = &cobra.Command{
	Use:   "deactivate",
	Short: "Allow the session to sleep again",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runControl((*dbusapi.Client).Deactivate)
	},
}

var toggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Flip between awake and sleep allowed",
	Long: `Send the toggle shortcut command to the daemon.

Bind it in your window manager, e.g. for sway:
  bindsym $mod+Shift+c exec stayup toggle`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runControl((*dbusapi.Client).Toggle)
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current activation state",
	Long: `Show whether the session is being kept awake, in which scope, and
whether downloads turned it on.

With --json the state is printed as one JSON object, including
"running": false when no daemon answers.`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(activateCmd)
	rootCmd.AddCommand(deactivateCmd)
	rootCmd.AddCommand(toggleCmd)
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "print status as JSON")
}

// statusDocument is the --json output of status.
type statusDocument struct {
	Running           bool   `json:"running"`
	Active            bool   `json:"active"`
	DownloadActivated bool   `json:"download_activated"`
	Scope             string `json:"scope,omitempty"`
}

func runControl(send func(*dbusapi.Client, context.Context) error) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	renderer := styles.NewStatusRenderer(app.Theme)

	ctx, cancel := context.WithTimeout(app.Ctx(), controlTimeout)
	defer cancel()

	client, err := app.Daemon()
	if err != nil {
		return report(renderer.RenderError(err))
	}
	if err := send(client, ctx); err != nil {
		if errors.Is(err, dbusapi.ErrNotRunning) {
			return report(renderer.RenderNotRunning(""))
		}
		return report(renderer.RenderError(err))
	}

	st, err := client.Status(ctx)
	if err != nil {
		return report(renderer.RenderError(err))
	}
	fmt.Println(renderer.RenderChanged(st))
	return nil
}

func runStatus(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	renderer := styles.NewStatusRenderer(app.Theme)

	ctx, cancel := context.WithTimeout(app.Ctx(), controlTimeout)
	defer cancel()

	st, err := daemonStatus(ctx, app)
	if errors.Is(err, dbusapi.ErrNotRunning) {
		if statusJSON {
			return printJSON(statusDocument{Running: false})
		}
		fmt.Println(renderer.RenderNotRunning(lastIndicator(app)))
		return nil
	}
	if err != nil {
		return report(renderer.RenderError(err))
	}

	if statusJSON {
		return printJSON(statusDocument{
			Running:           true,
			Active:            st.Active,
			DownloadActivated: st.DownloadActivated,
			Scope:             string(st.Scope),
		})
	}
	fmt.Println(renderer.RenderStatus(st))
	return nil
}

// daemonStatus asks the daemon. A session bus that cannot be reached counts
// as no daemon.
func daemonStatus(ctx context.Context, app *cli.App) (entity.ActivationStatus, error) {
	client, err := app.Daemon()
	if err != nil {
		return entity.ActivationStatus{}, fmt.Errorf("%w: %v", dbusapi.ErrNotRunning, err)
	}
	return client.Status(ctx)
}

// lastIndicator reads what the daemon last wrote to the status file.
func lastIndicator(app *cli.App) string {
	st, err := indicator.NewStatusFile(app.Config.Indicator.StatusFile).Read()
	if err != nil {
		return ""
	}
	return st.Text
}

func printJSON(v any) error {
	out, err := sonic.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
