package domain

import (
	"slices"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
)

// GitRef captures the local repository state at command invocation. It is
// re-read on every run, never cached.
type GitRef struct {
	Branch   string
	ShortSHA string
}

// ReleaseAsset is one downloadable artifact of a release.
type ReleaseAsset struct {
	ID   int64
	Name string
	URL  string
}

// Release is a published version of the tool itself. Immutable once fetched.
type Release struct {
	Tag         string
	PublishedAt time.Time
	Assets      []ReleaseAsset
}

// Version parses the release tag as semver (with or without a leading "v").
func (r Release) Version() (*semver.Version, error) {
	return semver.NewVersion(r.Tag)
}

// Asset returns the asset with the given name, case-insensitively matching
// the way GitHub release file names are conventionally compared.
func (r Release) Asset(name string) (ReleaseAsset, bool) {
	for _, asset := range r.Assets {
		if strings.EqualFold(asset.Name, name) {
			return asset, true
		}
	}
	return ReleaseAsset{}, false
}

// CompareReleases orders releases by semantic version, ties broken by publish
// timestamp. Releases with unparseable tags sort last.
func CompareReleases(a, b Release) int {
	va, errA := a.Version()
	vb, errB := b.Version()
	switch {
	case errA != nil && errB != nil:
		return 0
	case errA != nil:
		return -1
	case errB != nil:
		return 1
	}
	if c := va.Compare(vb); c != 0 {
		return c
	}
	return a.PublishedAt.Compare(b.PublishedAt)
}

// SortReleasesDescending orders a release list newest-first under the
// CompareReleases ordering.
func SortReleasesDescending(releases []Release) {
	slices.SortStableFunc(releases, func(a, b Release) int {
		return CompareReleases(b, a)
	})
}

// LatestRelease returns the maximum release under the version ordering.
func LatestRelease(releases []Release) (Release, bool) {
	var latest Release
	found := false
	for _, release := range releases {
		if _, err := release.Version(); err != nil {
			continue
		}
		if !found || CompareReleases(release, latest) > 0 {
			latest = release
			found = true
		}
	}
	return latest, found
}

// InstalledVersion is the ground truth of the binary currently on disk.
// Only the self-updater mutates it.
type InstalledVersion struct {
	Version        string
	ExecutablePath string
}

// SemVer parses the installed version string. Dev builds carry a
// non-semver version and fail the parse.
func (v InstalledVersion) SemVer() (*semver.Version, error) {
	return semver.NewVersion(v.Version)
}
