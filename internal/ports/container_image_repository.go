package ports

import (
	"context"

	"rops/internal/core/domain"
)

// ContainerImageRepository builds and publishes container images.
type ContainerImageRepository interface {
	// BuildImage builds an image tagged <repository>:<tag>.
	BuildImage(ctx context.Context, image domain.ImageTarget, tag string, ref domain.GitRef) error
	// PushImage pushes <repository>:<tag> to the registry.
	PushImage(ctx context.Context, image domain.ImageTarget, tag string) error
}
