package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"rops/internal/core/domain"
	"rops/internal/ports"

	"github.com/cenkalti/backoff/v5"
)

const updateMaxTries = 4

// SelfUpdater replaces the running executable with a published release
// binary. The swap is staged: the new binary takes effect on the next
// invocation, never mid-run. It is the only component that touches the
// running binary's path.
type SelfUpdater struct {
	settings  *domain.Settings
	source    ports.ReleaseSource
	installed domain.InstalledVersion
}

func ProvideSelfUpdater(settings *domain.Settings, source ports.ReleaseSource, installed domain.InstalledVersion) *SelfUpdater {
	return &SelfUpdater{settings: settings, source: source, installed: installed}
}

// Check returns the latest release and whether it is strictly newer than the
// installed version. An unparseable installed version (dev builds) is treated
// as older than any release.
func (u *SelfUpdater) Check(ctx context.Context) (domain.Release, bool, error) {
	latest, err := retryRelease(ctx, func() (domain.Release, error) {
		return u.source.Latest(ctx)
	})
	if err != nil {
		return domain.Release{}, false, err
	}

	latestVersion, err := latest.Version()
	if err != nil {
		return domain.Release{}, false, fmt.Errorf("latest release %q has no parseable version: %w", latest.Tag, err)
	}

	installedVersion, err := u.installed.SemVer()
	if err != nil {
		return latest, true, nil
	}

	return latest, latestVersion.GreaterThan(installedVersion), nil
}

// Update resolves the target release and applies it. An empty tag means
// "latest, only if newer"; an explicit tag is applied unconditionally, which
// permits downgrades.
func (u *SelfUpdater) Update(ctx context.Context, tag string) (domain.Release, bool, error) {
	if tag == "" {
		latest, newer, err := u.Check(ctx)
		if err != nil {
			return domain.Release{}, false, err
		}
		if !newer {
			return latest, false, nil
		}
		return latest, true, u.Apply(ctx, latest)
	}

	release, err := retryRelease(ctx, func() (domain.Release, error) {
		return u.source.Get(ctx, tag)
	})
	if err != nil {
		return domain.Release{}, false, err
	}
	return release, true, u.Apply(ctx, release)
}

// Apply downloads the release asset for the current platform and atomically
// replaces the installed executable. On any failure the original executable
// is left intact.
func (u *SelfUpdater) Apply(ctx context.Context, release domain.Release) error {
	assetName := domain.ExpandAssetPattern(u.settings.Update.Asset)
	asset, ok := release.Asset(assetName)
	if !ok {
		return fmt.Errorf("release %s has no asset %q: %w", release.Tag, assetName, domain.ErrAssetMissing)
	}

	executable := u.installed.ExecutablePath
	directory := filepath.Dir(executable)

	// The lock guards against two rops processes replacing the binary at
	// once. Stale locks from crashed runs must be removed manually.
	lockPath := filepath.Join(directory, ".rops-update.lock")
	lock, err := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("another update appears to be in progress (%s): %w", lockPath, domain.ErrReplaceFailed)
	}
	lock.Close()
	defer os.Remove(lockPath)

	staged, err := u.download(ctx, asset, directory)
	if err != nil {
		return err
	}

	if err := os.Rename(staged, executable); err != nil {
		os.Remove(staged)
		return fmt.Errorf("failed to replace %s: %v: %w", executable, err, domain.ErrReplaceFailed)
	}
	return nil
}

// download streams the asset into a temporary file in the executable's
// directory so the final rename never crosses filesystems.
func (u *SelfUpdater) download(ctx context.Context, asset domain.ReleaseAsset, directory string) (string, error) {
	body, err := backoff.Retry(ctx, func() (io.ReadCloser, error) {
		body, err := u.source.DownloadAsset(ctx, asset)
		if err != nil && !retryable(err) {
			return nil, backoff.Permanent(err)
		}
		return body, err
	}, backoff.WithBackOff(backoff.NewExponentialBackOff()), backoff.WithMaxTries(updateMaxTries))
	if err != nil {
		return "", err
	}
	defer body.Close()

	staged, err := os.CreateTemp(directory, ".rops-staged-*")
	if err != nil {
		return "", fmt.Errorf("failed to stage download: %v: %w", err, domain.ErrDownloadFailed)
	}

	written, err := io.Copy(staged, body)
	if closeErr := staged.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(staged.Name())
		return "", fmt.Errorf("failed to write %s: %v: %w", asset.Name, err, domain.ErrDownloadFailed)
	}
	if written == 0 {
		os.Remove(staged.Name())
		return "", fmt.Errorf("asset %s is empty: %w", asset.Name, domain.ErrDownloadFailed)
	}

	if err := os.Chmod(staged.Name(), 0o755); err != nil {
		os.Remove(staged.Name())
		return "", fmt.Errorf("failed to mark %s executable: %v: %w", staged.Name(), err, domain.ErrDownloadFailed)
	}
	return staged.Name(), nil
}

func retryRelease(ctx context.Context, fetch func() (domain.Release, error)) (domain.Release, error) {
	return backoff.Retry(ctx, func() (domain.Release, error) {
		release, err := fetch()
		if err != nil && !retryable(err) {
			return domain.Release{}, backoff.Permanent(err)
		}
		return release, err
	}, backoff.WithBackOff(backoff.NewExponentialBackOff()), backoff.WithMaxTries(updateMaxTries))
}

// retryable reports whether an error is worth retrying: transient transport
// failures and rate limits are, missing releases and assets are not.
func retryable(err error) bool {
	return errors.Is(err, domain.ErrUnreachable) || errors.Is(err, domain.ErrRateLimited)
}
