package cmd

import (
	"fmt"
	"sort"

	"rops/cmd/cli/app"

	"github.com/spf13/cobra"
)

func EnvironmentCompletion(
	cmd *cobra.Command,
	args []string,
	toComplete string,
) ([]cobra.Completion, cobra.ShellCompDirective) {
	configRepo, err := app.InjectConfigRepo()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	settings, err := configRepo.LoadSettings()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	var names []string
	for name := range settings.Environments {
		names = append(names, name)
	}
	sort.Strings(names)

	return names, cobra.ShellCompDirectiveNoFileComp
}

func ImageArgsValidator(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	configRepo, err := app.InjectConfigRepo()
	if err != nil {
		return fmt.Errorf("error injecting config repo: %v", err)
	}
	settings, err := configRepo.LoadSettings()
	if err != nil {
		return fmt.Errorf("error loading settings: %v", err)
	}
	for _, image := range args {
		if _, ok := settings.ImageTarget(image); !ok {
			return fmt.Errorf("image %s not found", image)
		}
	}

	return nil
}

func ImageArgsCompletion(
	cmd *cobra.Command,
	args []string,
	toComplete string,
) ([]cobra.Completion, cobra.ShellCompDirective) {
	configRepo, err := app.InjectConfigRepo()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	settings, err := configRepo.LoadSettings()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	var names []string
	for _, image := range settings.Images {
		names = append(names, image.Name)
	}

	return names, cobra.ShellCompDirectiveNoFileComp
}

func ChartArgsValidator(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	configRepo, err := app.InjectConfigRepo()
	if err != nil {
		return fmt.Errorf("error injecting config repo: %v", err)
	}
	definitions, err := configRepo.LoadChartDefinitions()
	if err != nil {
		return fmt.Errorf("error loading chart definitions: %v", err)
	}
	for _, chart := range args {
		if _, ok := definitions[chart]; !ok {
			return fmt.Errorf("chart %s not found", chart)
		}
	}

	return nil
}

func ChartArgsCompletion(
	cmd *cobra.Command,
	args []string,
	toComplete string,
) ([]cobra.Completion, cobra.ShellCompDirective) {
	configRepo, err := app.InjectConfigRepo()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	definitions, err := configRepo.LoadChartDefinitions()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	var names []string
	for name := range definitions {
		names = append(names, name)
	}
	sort.Strings(names)

	return names, cobra.ShellCompDirectiveNoFileComp
}
