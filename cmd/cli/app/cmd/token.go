package cmd

import (
	"rops/cmd/cli/app"

	"github.com/spf13/cobra"
)

func init() {
	tokenCmd.AddCommand(tokenSetCmd)
	tokenCmd.AddCommand(tokenShowCmd)
	tokenCmd.AddCommand(tokenClearCmd)
	rootCmd.AddCommand(tokenCmd)
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manages the stored GitHub token",
	Long: `Stores a GitHub token in the system keyring. The token raises the API
rate limit and grants access to private release repositories. The GITHUB_TOKEN
environment variable takes precedence over the keyring`,
}

var tokenSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Prompts for a token and stores it",
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectTokenCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandleSet()
	},
}

var tokenShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Shows the stored token, masked",
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectTokenCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandleShow()
	},
}

var tokenClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Removes the stored token",
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectTokenCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandleClear()
	},
}
