package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/stayup/internal/cli/styles"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"about"},
	Short:   "Show version and build information",
	Long:    `Display version, build info, repository URL, and contributors.`,
	Args:    cobra.NoArgs,
	RunE:    runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	renderer := styles.NewVersionRenderer(app.Theme)
	fmt.Println(renderer.Render(app.BuildInfo))
	return nil
}
