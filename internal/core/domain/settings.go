package domain

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// TagStrategy selects how an image tag is derived for a build/push.
type TagStrategy string

const (
	TagStrategyGitSha TagStrategy = "git-sha"
	TagStrategyBranch TagStrategy = "branch"
	TagStrategySemVer TagStrategy = "semver"
)

// NonDefaultEnvironmentNone disables deployments on non-default branches
// when set as git.non_default_environment.
const NonDefaultEnvironmentNone = "none"

// EnvironmentBranchDefault marks the environment the configured default
// branch maps to.
const EnvironmentBranchDefault = "default"

type GitSettings struct {
	DefaultBranch string `mapstructure:"default_branch"`
	// NonDefaultEnvironment names the environment non-default branches
	// deploy to, or "none" to deploy nothing. There is no implicit default:
	// leaving it unset is a configuration error on non-default branches.
	NonDefaultEnvironment string `mapstructure:"non_default_environment"`
}

type DockerSettings struct {
	ImageRepoURL string `mapstructure:"image_repo_url"`
	ImagePrefix  string `mapstructure:"image_prefix"`
	FilesPath    string `mapstructure:"files_path"`
	GitShaArg    string `mapstructure:"git_sha_arg"`
}

type ChartsSettings struct {
	Config           string `mapstructure:"config"`
	DefaultNamespace string `mapstructure:"default_namespace"`
}

type UpdateSettings struct {
	// Repo is the owner/name of the GitHub repository publishing rops
	// releases.
	Repo string `mapstructure:"repo"`
	// Asset is the release asset name pattern; {os} and {arch} are replaced
	// with the current platform.
	Asset string `mapstructure:"asset"`
}

type OrchestratorSettings struct {
	MaxParallel   int           `mapstructure:"max_parallel"`
	ActionTimeout time.Duration `mapstructure:"action_timeout"`
}

// ImageTarget is a buildable/pushable container image.
type ImageTarget struct {
	Name        string      `mapstructure:"name"`
	Repository  string      `mapstructure:"repository"`
	TagStrategy TagStrategy `mapstructure:"tag_strategy"`
	Dockerfile  string      `mapstructure:"dockerfile"`
}

// EnvironmentSettings is the raw per-environment section of rops.toml.
// Images and Charts reference [[images]] entries and chart-definition keys.
type EnvironmentSettings struct {
	Branch      string   `mapstructure:"branch"`
	KubeContext string   `mapstructure:"kube_context"`
	Images      []string `mapstructure:"images"`
	Charts      []string `mapstructure:"charts"`
}

// Settings is the resolved rops.toml model, constructed once at startup and
// passed into component constructors.
type Settings struct {
	Git          GitSettings                    `mapstructure:"git"`
	Docker       DockerSettings                 `mapstructure:"docker"`
	Charts       ChartsSettings                 `mapstructure:"charts"`
	Update       UpdateSettings                 `mapstructure:"update"`
	Orchestrator OrchestratorSettings           `mapstructure:"orchestrator"`
	Images       []ImageTarget                  `mapstructure:"images"`
	Environments map[string]EnvironmentSettings `mapstructure:"environments"`
}

// ChartDefinition is one entry of the chart-definitions YAML file.
type ChartDefinition struct {
	Chart           string   `yaml:"chart"`
	Namespace       string   `yaml:"namespace"`
	Values          []string `yaml:"values"`
	Images          []string `yaml:"images"`
	AppendNamespace *bool    `yaml:"append-namespace"`
}

// ChartTarget is a resolved helm release to upgrade.
type ChartTarget struct {
	Name      string
	Release   string
	Chart     string
	Namespace string
	Values    []string
	// Images names the image targets this chart depends on.
	Images []string
}

// EnvironmentConfig is the resolved set of build/deploy targets for one
// environment.
type EnvironmentConfig struct {
	Name        string
	KubeContext string
	Images      []ImageTarget
	Charts      []ChartTarget
}

// FilterImages narrows the environment to the named image targets, keeping
// the environment's order. An empty list keeps every image.
func (e *EnvironmentConfig) FilterImages(names []string) (*EnvironmentConfig, error) {
	if len(names) == 0 {
		return e, nil
	}

	requested := make(map[string]bool, len(names))
	for _, name := range names {
		requested[name] = true
	}

	filtered := &EnvironmentConfig{Name: e.Name, KubeContext: e.KubeContext, Charts: e.Charts}
	for _, image := range e.Images {
		if requested[image.Name] {
			filtered.Images = append(filtered.Images, image)
			delete(requested, image.Name)
		}
	}
	for _, name := range names {
		if requested[name] {
			return nil, fmt.Errorf("environment %q has no image %q", e.Name, name)
		}
	}
	return filtered, nil
}

// FilterCharts narrows the environment to the named charts, keeping the
// environment's order. An empty list keeps every chart.
func (e *EnvironmentConfig) FilterCharts(names []string) (*EnvironmentConfig, error) {
	if len(names) == 0 {
		return e, nil
	}

	requested := make(map[string]bool, len(names))
	for _, name := range names {
		requested[name] = true
	}

	filtered := &EnvironmentConfig{Name: e.Name, KubeContext: e.KubeContext, Images: e.Images}
	for _, chart := range e.Charts {
		if requested[chart.Name] {
			filtered.Charts = append(filtered.Charts, chart)
			delete(requested, chart.Name)
		}
	}
	for _, name := range names {
		if requested[name] {
			return nil, fmt.Errorf("environment %q has no chart %q", e.Name, name)
		}
	}
	return filtered, nil
}

// RepoName prefixes an image name with docker.image_prefix when configured.
func (s *Settings) RepoName(name string) string {
	if s.Docker.ImagePrefix == "" {
		return name
	}
	return fmt.Sprintf("%s-%s", s.Docker.ImagePrefix, name)
}

// RepoURL returns the full registry repository for an image name.
func (s *Settings) RepoURL(name string) string {
	return fmt.Sprintf("%s/%s", s.Docker.ImageRepoURL, s.RepoName(name))
}

// DockerfilePath resolves an image's dockerfile, defaulting to
// <files_path>/<name>.dockerfile.
func (s *Settings) DockerfilePath(image ImageTarget) string {
	if image.Dockerfile != "" {
		return image.Dockerfile
	}
	return filepath.Join(s.Docker.FilesPath, image.Name+".dockerfile")
}

// IsDefaultBranch reports whether a ref is on the configured default branch.
func (s *Settings) IsDefaultBranch(ref GitRef) bool {
	return ref.Branch == s.Git.DefaultBranch
}

// SelectEnvironment maps a git ref to an environment name. It is a pure
// function of the ref and the settings: environments are considered in
// sorted-name order so repeated calls always agree. An empty name with a nil
// error means the branch intentionally deploys nothing.
func (s *Settings) SelectEnvironment(ref GitRef) (string, error) {
	names := s.environmentNames()

	for _, name := range names {
		env := s.Environments[name]
		if env.Branch != "" && env.Branch != EnvironmentBranchDefault && env.Branch == ref.Branch {
			return name, nil
		}
	}

	if s.IsDefaultBranch(ref) {
		for _, name := range names {
			if s.Environments[name].Branch == EnvironmentBranchDefault {
				return name, nil
			}
		}
		return "", fmt.Errorf("no environment declares branch = %q for default branch %q", EnvironmentBranchDefault, s.Git.DefaultBranch)
	}

	switch s.Git.NonDefaultEnvironment {
	case "":
		return "", fmt.Errorf(
			"branch %q is not the default branch %q and git.non_default_environment is not set; set it to an environment name or %q",
			ref.Branch, s.Git.DefaultBranch, NonDefaultEnvironmentNone,
		)
	case NonDefaultEnvironmentNone:
		return "", nil
	default:
		if _, ok := s.Environments[s.Git.NonDefaultEnvironment]; !ok {
			return "", fmt.Errorf("git.non_default_environment references unknown environment %q", s.Git.NonDefaultEnvironment)
		}
		return s.Git.NonDefaultEnvironment, nil
	}
}

// environmentNames returns the environment names in sorted order.
func (s *Settings) environmentNames() []string {
	names := make([]string, 0, len(s.Environments))
	for name := range s.Environments {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ImageTarget looks up a [[images]] entry by name.
func (s *Settings) ImageTarget(name string) (ImageTarget, bool) {
	for _, image := range s.Images {
		if image.Name == name {
			return image, true
		}
	}
	return ImageTarget{}, false
}

func (s *Settings) Validate() error {
	if s.Git.DefaultBranch == "" {
		return fmt.Errorf("git.default_branch is empty")
	}

	seen := map[string]bool{}
	for i, image := range s.Images {
		if image.Name == "" {
			return fmt.Errorf("image at index %d has empty name", i)
		}
		if seen[image.Name] {
			return fmt.Errorf("duplicate image %q", image.Name)
		}
		seen[image.Name] = true

		switch image.TagStrategy {
		case TagStrategyGitSha, TagStrategyBranch, TagStrategySemVer:
		case "":
			return fmt.Errorf("image %q has empty tag_strategy", image.Name)
		default:
			return fmt.Errorf("image %q has unknown tag_strategy %q", image.Name, image.TagStrategy)
		}

		if image.Repository == "" && s.Docker.ImageRepoURL == "" {
			return fmt.Errorf("image %q has no repository and docker.image_repo_url is empty", image.Name)
		}
	}

	claimed := map[string]string{}
	for _, name := range s.environmentNames() {
		if name == "" {
			return fmt.Errorf("environment with empty name")
		}
		env := s.Environments[name]
		if env.Branch != "" {
			if other, ok := claimed[env.Branch]; ok {
				return fmt.Errorf("environments %q and %q both claim branch %q", other, name, env.Branch)
			}
			claimed[env.Branch] = name
		}
		for _, imageName := range env.Images {
			if _, ok := s.ImageTarget(imageName); !ok {
				return fmt.Errorf("environment %q references unknown image %q", name, imageName)
			}
		}
	}

	if s.Git.NonDefaultEnvironment != "" && s.Git.NonDefaultEnvironment != NonDefaultEnvironmentNone {
		if _, ok := s.Environments[s.Git.NonDefaultEnvironment]; !ok {
			return fmt.Errorf("git.non_default_environment references unknown environment %q", s.Git.NonDefaultEnvironment)
		}
	}

	return nil
}

// SanitizeTag turns a branch name into a valid image tag component.
func SanitizeTag(name string) string {
	sanitized := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, name)
	return strings.Trim(sanitized, "-.")
}
