package cmd

import (
	"rops/cmd/cli/app"

	"github.com/spf13/cobra"
)

var buildVersion *string

func init() {
	buildVersion = buildCmd.Flags().String("version", "", "Release version for images using the semver tag strategy")
	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:               "build [image...]",
	Short:             "Builds the environment's images",
	Long:              `Builds the Docker images of the target environment without pushing or deploying anything. Builds the named images only if arguments are supplied`,
	Args:              ImageArgsValidator,
	ValidArgsFunction: ImageArgsCompletion,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectBuildCommandHandler()
		if err != nil {
			return err
		}

		return handler.Handle(cmd.Context(), *environment, *buildVersion, args)
	},
}
