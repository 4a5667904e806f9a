package cmd

import (
	"rops/cmd/cli/app"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(settingsCmd)
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Shows the effective settings",
	Long:  `Prints the parsed configuration with all defaults applied, as JSON`,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectSettingsCommandHandler()
		if err != nil {
			return err
		}

		return handler.Handle()
	},
}
