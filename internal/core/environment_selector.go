package core

import (
	"context"
	"fmt"

	"rops/internal/core/domain"
	"rops/internal/ports"
)

// ProvideSettings exposes the loaded settings as an injectable dependency.
func ProvideSettings(configRepository ConfigRepository) (*domain.Settings, error) {
	return configRepository.LoadSettings()
}

// EnvironmentSelector decides which environment a run targets: an explicit
// override wins, otherwise the current git branch picks one through the
// settings. A nil environment with a nil error means the current branch
// intentionally deploys nothing.
type EnvironmentSelector struct {
	settings         *domain.Settings
	configRepository ConfigRepository
	scm              ports.Scm
}

func ProvideEnvironmentSelector(
	settings *domain.Settings,
	configRepository ConfigRepository,
	scm ports.Scm,
) EnvironmentSelector {
	return EnvironmentSelector{
		settings:         settings,
		configRepository: configRepository,
		scm:              scm,
	}
}

func (s *EnvironmentSelector) Resolve(ctx context.Context, override string) (*domain.EnvironmentConfig, domain.GitRef, error) {
	ref, err := s.scm.CurrentRef(ctx)
	if err != nil {
		return nil, domain.GitRef{}, fmt.Errorf("failed to read git state: %w", err)
	}

	name := override
	if name == "" {
		name, err = s.settings.SelectEnvironment(ref)
		if err != nil {
			return nil, ref, err
		}
		if name == "" {
			return nil, ref, nil
		}
	}

	env, err := s.configRepository.BuildEnvironment(name)
	if err != nil {
		return nil, ref, err
	}
	return env, ref, nil
}
