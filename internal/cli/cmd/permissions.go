package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/stayup/internal/cli"
	"github.com/bnema/stayup/internal/cli/styles"
	"github.com/bnema/stayup/internal/domain/entity"
	"github.com/bnema/stayup/internal/infrastructure/dbusapi"
	"github.com/bnema/stayup/internal/logging"
)

var permissionsCmd = &cobra.Command{
	Use:   "permissions",
	Short: "Manage optional capabilities",
	Long: `List, grant and revoke the permissions stayup asks for.

  downloads  watch the configured download directories

Grants go through the running daemon so it attaches or detaches its
listeners at once. Without a daemon they are written to the database and
take effect on the next start. Revoking downloads also turns autoDownloads
off.`,
	Args: cobra.NoArgs,
	RunE: runPermissionsList,
}

var permissionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show every permission and its decision",
	Args:  cobra.NoArgs,
	RunE:  runPermissionsList,
}

var permissionsGrantCmd = &cobra.Command{
	Use:       "grant <permission>",
	Short:     "Grant a permission",
	Args:      cobra.ExactArgs(1),
	ValidArgs: permissionArgs(),
	RunE: func(_ *cobra.Command, args []string) error {
		return runPermissionChange(args[0], true)
	},
}

var permissionsRevokeCmd = &cobra.Command{
	Use:       "revoke <permission>",
	Short:     "Revoke a permission",
	Args:      cobra.ExactArgs(1),
	ValidArgs: permissionArgs(),
	RunE: func(_ *cobra.Command, args []string) error {
		return runPermissionChange(args[0], false)
	},
}

func init() {
	rootCmd.AddCommand(permissionsCmd)
	permissionsCmd.AddCommand(permissionsListCmd)
	permissionsCmd.AddCommand(permissionsGrantCmd)
	permissionsCmd.AddCommand(permissionsRevokeCmd)
}

func runPermissionsList(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	renderer := styles.NewPermissionsRenderer(app.Theme)

	records, err := app.Permissions.List(app.Ctx())
	if err != nil {
		return report(renderer.RenderError(err))
	}
	fmt.Println(renderer.RenderList(records, time.Now()))
	return nil
}

func runPermissionChange(name string, grant bool) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	renderer := styles.NewPermissionsRenderer(app.Theme)

	permType, ok := entity.ParsePermissionType(name)
	if !ok {
		return report(renderer.RenderError(fmt.Errorf("%w: %s", entity.ErrUnknownPermission, name)))
	}

	ctx, cancel := context.WithTimeout(app.Ctx(), controlTimeout)
	defer cancel()

	viaDaemon, err := changePermission(ctx, app, permType, grant)
	if err != nil {
		return report(renderer.RenderError(err))
	}
	fmt.Println(renderer.RenderChanged(permType, grant, viaDaemon))
	return nil
}

// changePermission asks the daemon first and writes the database directly
// when none is running. It reports which path applied the change.
func changePermission(ctx context.Context, app *cli.App, permType entity.PermissionType, grant bool) (bool, error) {
	log := logging.FromContext(ctx)

	if client, err := app.Daemon(); err == nil {
		if grant {
			err = client.GrantPermission(ctx, permType)
		} else {
			err = client.RevokePermission(ctx, permType)
		}
		if err == nil {
			return true, nil
		}
		if !errors.Is(err, dbusapi.ErrNotRunning) {
			return false, err
		}
	} else {
		log.Debug().Err(err).Msg("session bus unavailable")
	}

	log.Debug().Str("permission", string(permType)).Msg("daemon not running, writing directly")
	if grant {
		return false, app.Permissions.Grant(ctx, permType)
	}
	return false, app.Permissions.Revoke(ctx, permType)
}

func permissionArgs() []string {
	types := entity.KnownPermissionTypes()
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = string(t)
	}
	return out
}
