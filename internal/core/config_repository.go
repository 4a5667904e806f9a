package core

import (
	"fmt"
	"os"
	"sort"

	"rops/internal/core/domain"
	"rops/internal/ports"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// ConfigFileEnvVar overrides the settings file location when set.
const ConfigFileEnvVar = "ROPS_CONFIG"

const defaultConfigFile = "rops.toml"

type ConfigRepository interface {
	LoadSettings() (*domain.Settings, error)
	LoadChartDefinitions() (map[string]domain.ChartDefinition, error)
	BuildEnvironment(name string) (*domain.EnvironmentConfig, error)
}

// FileConfigRepository loads rops.toml and the chart-definitions file it
// points at. Both are parsed once and cached for the process lifetime.
type FileConfigRepository struct {
	fileSystem ports.FileSystem
	settings   *domain.Settings
	charts     map[string]domain.ChartDefinition
}

func ProvideFileConfigRepository(fileSystem ports.FileSystem) *FileConfigRepository {
	return &FileConfigRepository{fileSystem: fileSystem}
}

func configFilePath() string {
	if path := os.Getenv(ConfigFileEnvVar); path != "" {
		return path
	}
	return defaultConfigFile
}

func (c *FileConfigRepository) LoadSettings() (*domain.Settings, error) {
	if c.settings != nil {
		return c.settings, nil
	}

	path := configFilePath()
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	v.SetDefault("git.default_branch", "main")
	v.SetDefault("docker.git_sha_arg", "")
	v.SetDefault("charts.config", "charts.yaml")
	v.SetDefault("charts.default_namespace", "default")
	v.SetDefault("update.asset", "rops-{os}-{arch}")
	v.SetDefault("orchestrator.max_parallel", 4)
	v.SetDefault("orchestrator.action_timeout", "10m")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	var settings domain.Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("settings validation failed: %w", err)
	}

	c.settings = &settings
	return c.settings, nil
}

func (c *FileConfigRepository) LoadChartDefinitions() (map[string]domain.ChartDefinition, error) {
	if c.charts != nil {
		return c.charts, nil
	}

	settings, err := c.LoadSettings()
	if err != nil {
		return nil, err
	}

	exists, err := c.fileSystem.FileExists(settings.Charts.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to check chart definitions %s: %w", settings.Charts.Config, err)
	}
	if !exists {
		return nil, fmt.Errorf("chart definitions file %s does not exist; charts.config must point at it", settings.Charts.Config)
	}

	data, err := c.fileSystem.ReadFile(settings.Charts.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to read chart definitions %s: %w", settings.Charts.Config, err)
	}

	var charts map[string]domain.ChartDefinition
	if err := yaml.Unmarshal(data, &charts); err != nil {
		return nil, fmt.Errorf("failed to parse chart definitions %s: %w", settings.Charts.Config, err)
	}

	for name, chart := range charts {
		if chart.Chart == "" {
			return nil, fmt.Errorf("chart %q has no chart reference", name)
		}
	}

	c.charts = charts
	return c.charts, nil
}

// BuildEnvironment resolves an environment section into concrete build and
// deploy targets. Chart releases get the namespace appended unless the
// definition opts out.
func (c *FileConfigRepository) BuildEnvironment(name string) (*domain.EnvironmentConfig, error) {
	settings, err := c.LoadSettings()
	if err != nil {
		return nil, err
	}

	env, ok := settings.Environments[name]
	if !ok {
		return nil, fmt.Errorf("unknown environment %q, available: %v", name, environmentNames(settings))
	}

	config := &domain.EnvironmentConfig{
		Name:        name,
		KubeContext: env.KubeContext,
	}

	for _, imageName := range env.Images {
		image, ok := settings.ImageTarget(imageName)
		if !ok {
			return nil, fmt.Errorf("environment %q references unknown image %q", name, imageName)
		}
		config.Images = append(config.Images, image)
	}

	if len(env.Charts) == 0 {
		return config, nil
	}

	charts, err := c.LoadChartDefinitions()
	if err != nil {
		return nil, err
	}

	for _, chartName := range env.Charts {
		definition, ok := charts[chartName]
		if !ok {
			return nil, fmt.Errorf("environment %q references unknown chart %q", name, chartName)
		}
		config.Charts = append(config.Charts, resolveChart(settings, chartName, definition))
	}

	return config, nil
}

func resolveChart(settings *domain.Settings, name string, definition domain.ChartDefinition) domain.ChartTarget {
	namespace := definition.Namespace
	if namespace == "" {
		namespace = settings.Charts.DefaultNamespace
	}

	release := name
	if definition.AppendNamespace == nil || *definition.AppendNamespace {
		release = fmt.Sprintf("%s-%s", name, namespace)
	}

	return domain.ChartTarget{
		Name:      name,
		Release:   release,
		Chart:     definition.Chart,
		Namespace: namespace,
		Values:    definition.Values,
		Images:    definition.Images,
	}
}

func environmentNames(settings *domain.Settings) []string {
	names := make([]string, 0, len(settings.Environments))
	for name := range settings.Environments {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var _ ConfigRepository = (*FileConfigRepository)(nil)
