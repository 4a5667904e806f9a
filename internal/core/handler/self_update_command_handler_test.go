package handler

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"rops/internal/core"
	"rops/internal/core/domain"
	"rops/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func updaterFixture(t *testing.T, version string) (domain.InstalledVersion, *domain.Settings) {
	t.Helper()
	executable := filepath.Join(t.TempDir(), "rops")
	require.NoError(t, os.WriteFile(executable, []byte("old-binary"), 0o755))

	settings := &domain.Settings{
		Git:    domain.GitSettings{DefaultBranch: "main"},
		Update: domain.UpdateSettings{Repo: "acme/rops", Asset: "rops-{os}-{arch}"},
	}
	return domain.InstalledVersion{Version: version, ExecutablePath: executable}, settings
}

func platformRelease(tag string) domain.Release {
	return domain.Release{
		Tag:         tag,
		PublishedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Assets:      []domain.ReleaseAsset{{ID: 42, Name: domain.ExpandAssetPattern("rops-{os}-{arch}")}},
	}
}

func TestSelfUpdateCommandHandler_CheckOnly(t *testing.T) {
	installed, settings := updaterFixture(t, "1.2.0")
	source := new(testutil.MockReleaseSource)
	source.On("Latest").Return(platformRelease("v1.3.0"), nil)

	sut := ProvideSelfUpdateCommandHandler(core.ProvideSelfUpdater(settings, source, installed), installed)

	err := sut.HandleCheck(context.Background())

	assert.NoError(t, err)
	source.AssertNotCalled(t, "DownloadAsset", nil)
	content, readErr := os.ReadFile(installed.ExecutablePath)
	require.NoError(t, readErr)
	assert.Equal(t, "old-binary", string(content))
}

func TestSelfUpdateCommandHandler_AppliesNewerRelease(t *testing.T) {
	installed, settings := updaterFixture(t, "1.2.0")
	release := platformRelease("v1.3.0")
	source := new(testutil.MockReleaseSource)
	source.On("Latest").Return(release, nil)
	source.On("DownloadAsset", release.Assets[0]).
		Return(io.NopCloser(bytes.NewReader([]byte("new-binary"))), nil)

	sut := ProvideSelfUpdateCommandHandler(core.ProvideSelfUpdater(settings, source, installed), installed)

	err := sut.Handle(context.Background(), "")

	require.NoError(t, err)
	content, readErr := os.ReadFile(installed.ExecutablePath)
	require.NoError(t, readErr)
	assert.Equal(t, "new-binary", string(content))
}

func TestSelfUpdateCommandHandler_UpToDateLeavesBinaryAlone(t *testing.T) {
	installed, settings := updaterFixture(t, "1.3.0")
	source := new(testutil.MockReleaseSource)
	source.On("Latest").Return(platformRelease("v1.3.0"), nil)

	sut := ProvideSelfUpdateCommandHandler(core.ProvideSelfUpdater(settings, source, installed), installed)

	err := sut.Handle(context.Background(), "")

	require.NoError(t, err)
	content, readErr := os.ReadFile(installed.ExecutablePath)
	require.NoError(t, readErr)
	assert.Equal(t, "old-binary", string(content))
}
