package container_image_repository

import (
	"context"
	"fmt"

	"rops/internal/core/domain"
	"rops/internal/ports"
)

// buildKitEnv enables Docker BuildKit for all invocations.
var buildKitEnv = []string{"DOCKER_BUILDKIT=1"}

// DockerRepository builds and pushes images through the docker CLI.
type DockerRepository struct {
	settings      *domain.Settings
	commandRunner ports.CommandRunner
}

func ProvideDockerRepository(settings *domain.Settings, commandRunner ports.CommandRunner) *DockerRepository {
	return &DockerRepository{
		settings:      settings,
		commandRunner: commandRunner,
	}
}

func (d *DockerRepository) BuildImage(ctx context.Context, image domain.ImageTarget, tag string, ref domain.GitRef) error {
	args := []string{
		"build",
		"-f", d.settings.DockerfilePath(image),
		"--platform", domain.Platform(),
		"-t", fmt.Sprintf("%s:%s", d.repository(image), tag),
	}

	if d.settings.Docker.GitShaArg != "" {
		args = append(args, "--build-arg", fmt.Sprintf("%s=%s", d.settings.Docker.GitShaArg, ref.ShortSHA))
	}

	args = append(args, ".") // Build context

	output, err := d.commandRunner.RunWithEnv(ctx, buildKitEnv, "docker", args...)
	if err != nil {
		return fmt.Errorf("failed to build image %s: %w\n%s", image.Name, err, string(output))
	}

	return nil
}

func (d *DockerRepository) PushImage(ctx context.Context, image domain.ImageTarget, tag string) error {
	target := fmt.Sprintf("%s:%s", d.repository(image), tag)

	output, err := d.commandRunner.RunWithEnv(ctx, buildKitEnv, "docker", "push", target)
	if err != nil {
		return fmt.Errorf("failed to push %s: %w\n%s", target, err, string(output))
	}

	return nil
}

// repository resolves the full registry repository for an image target,
// falling back to the configured registry URL and prefix.
func (d *DockerRepository) repository(image domain.ImageTarget) string {
	if image.Repository != "" {
		return image.Repository
	}
	return d.settings.RepoURL(image.Name)
}

var _ ports.ContainerImageRepository = (*DockerRepository)(nil)
