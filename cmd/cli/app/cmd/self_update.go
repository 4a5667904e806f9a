package cmd

import (
	"rops/cmd/cli/app"

	"github.com/spf13/cobra"
)

var (
	selfUpdateTag   *string
	selfUpdateCheck *bool
)

func init() {
	selfUpdateTag = selfUpdateCmd.Flags().String("tag", "", "Install this release tag instead of the latest")
	selfUpdateCheck = selfUpdateCmd.Flags().Bool("check", false, "Only report whether a newer release exists")
	rootCmd.AddCommand(selfUpdateCmd)
}

var selfUpdateCmd = &cobra.Command{
	Use:   "self-update",
	Short: "Updates rops itself",
	Long: `Downloads the matching release asset from GitHub and replaces the
installed binary. The new version takes effect on the next run. With --tag
any release can be installed, including older ones`,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectSelfUpdateCommandHandler()
		if err != nil {
			return err
		}

		if *selfUpdateCheck {
			return handler.HandleCheck(cmd.Context())
		}
		return handler.Handle(cmd.Context(), *selfUpdateTag)
	},
}
