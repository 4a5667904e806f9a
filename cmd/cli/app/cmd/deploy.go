package cmd

import (
	"rops/cmd/cli/app"
	"rops/internal/ports"

	"github.com/spf13/cobra"
)

var (
	deploySet    *[]string
	deployWait   *bool
	deployDryRun *bool
)

func init() {
	deploySet = deployCmd.Flags().StringArray("set", nil, "Extra helm values (key=value), may be repeated")
	deployWait = deployCmd.Flags().Bool("wait", false, "Wait for upgraded releases to become ready")
	deployDryRun = deployCmd.Flags().Bool("dry-run", false, "Render chart upgrades without applying them")
	rootCmd.AddCommand(deployCmd)
}

var deployCmd = &cobra.Command{
	Use:   "deploy [chart...]",
	Short: "Upgrades the environment's charts",
	Long: `Upgrades the Helm releases of the target environment using images that
were already pushed. Use 'rops update' to build and push first. Upgrades the
named charts only if arguments are supplied`,
	Args:              ChartArgsValidator,
	ValidArgsFunction: ChartArgsCompletion,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectDeployCommandHandler()
		if err != nil {
			return err
		}

		return handler.Handle(cmd.Context(), *environment, args, ports.DeployOptions{
			Set:    *deploySet,
			Wait:   *deployWait,
			DryRun: *deployDryRun,
		})
	},
}
