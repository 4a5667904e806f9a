package app

import (
	"fmt"
	"os"

	"rops/internal/core/domain"
	"rops/internal/version"
)

// ProvideInstalledVersion describes the running binary so the self-updater
// knows what to compare against and what to replace.
func ProvideInstalledVersion() (domain.InstalledVersion, error) {
	executable, err := os.Executable()
	if err != nil {
		return domain.InstalledVersion{}, fmt.Errorf("failed to locate own executable: %w", err)
	}

	return domain.InstalledVersion{
		Version:        version.Version,
		ExecutablePath: executable,
	}, nil
}
