package cmd

import (
	"rops/cmd/cli/app"
	"rops/internal/ports"

	"github.com/spf13/cobra"
)

var (
	updateVersion *string
	updateSet     *[]string
	updateWait    *bool
	updateDryRun  *bool
)

func init() {
	updateVersion = updateCmd.Flags().String("version", "", "Release version for images using the semver tag strategy")
	updateSet = updateCmd.Flags().StringArray("set", nil, "Extra helm values (key=value), may be repeated")
	updateWait = updateCmd.Flags().Bool("wait", false, "Wait for upgraded releases to become ready")
	updateDryRun = updateCmd.Flags().Bool("dry-run", false, "Render chart upgrades without applying them")
	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Runs the full release pipeline",
	Long: `Builds and pushes the Docker images of the target environment, then
upgrades its Helm releases. Independent targets run concurrently`,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectUpdateCommandHandler()
		if err != nil {
			return err
		}

		return handler.Handle(cmd.Context(), *environment, *updateVersion, ports.DeployOptions{
			Set:    *updateSet,
			Wait:   *updateWait,
			DryRun: *updateDryRun,
		})
	},
}
