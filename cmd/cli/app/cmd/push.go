package cmd

import (
	"rops/cmd/cli/app"

	"github.com/spf13/cobra"
)

var pushVersion *string

func init() {
	pushVersion = pushCmd.Flags().String("version", "", "Release version for images using the semver tag strategy")
	rootCmd.AddCommand(pushCmd)
}

var pushCmd = &cobra.Command{
	Use:               "push [image...]",
	Short:             "Builds and pushes the environment's images",
	Long:              `Builds the Docker images of the target environment and pushes them to the registry. Pushes the named images only if arguments are supplied`,
	Args:              ImageArgsValidator,
	ValidArgsFunction: ImageArgsCompletion,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectPushCommandHandler()
		if err != nil {
			return err
		}

		return handler.Handle(cmd.Context(), *environment, *pushVersion, args)
	},
}
