package cmd

import (
	"rops/cmd/cli/app"

	"github.com/spf13/cobra"
)

var planVersion *string

func init() {
	planVersion = planCmd.Flags().String("version", "", "Release version for images using the semver tag strategy")
	rootCmd.AddCommand(planCmd)
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Shows what a release would do",
	Long:  `Resolves the target environment and prints the ordered actions without executing any of them`,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectPlanCommandHandler()
		if err != nil {
			return err
		}

		return handler.Handle(cmd.Context(), *environment, *planVersion)
	},
}
