package ports

import (
	"context"
	"io"

	"rops/internal/core/domain"
)

// ReleaseSource resolves published releases of the tool itself from a remote
// registry. Implementations perform no retries; retry policy belongs to the
// caller. Failures are wrapped domain sentinels: ErrRateLimited, ErrNotFound,
// ErrUnreachable.
type ReleaseSource interface {
	// List returns all releases ordered descending by version.
	List(ctx context.Context) ([]domain.Release, error)
	// Latest returns the release with the maximum version.
	Latest(ctx context.Context) (domain.Release, error)
	// Get returns the release with the given tag.
	Get(ctx context.Context, tag string) (domain.Release, error)
	// DownloadAsset streams a release asset's content.
	DownloadAsset(ctx context.Context, asset domain.ReleaseAsset) (io.ReadCloser, error)
}
