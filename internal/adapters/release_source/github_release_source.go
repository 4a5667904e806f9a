package release_source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"rops/internal/core"
	"rops/internal/core/domain"
	"rops/internal/ports"

	"github.com/google/go-github/v28/github"
	"golang.org/x/oauth2"
)

// GithubReleaseSource resolves releases from the GitHub releases API.
// It performs no retries; transient failures are surfaced as wrapped
// domain sentinels for the caller's retry policy.
type GithubReleaseSource struct {
	client     *github.Client
	httpClient *http.Client
	owner      string
	repo       string
}

func ProvideGithubReleaseSource(settings *domain.Settings, token core.GitHubToken) (*GithubReleaseSource, error) {
	owner, repo, err := splitRepo(settings.Update.Repo)
	if err != nil {
		return nil, err
	}

	httpClient := http.DefaultClient
	if token != "" {
		httpClient = oauth2.NewClient(
			context.Background(),
			oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(token)}),
		)
	}

	return &GithubReleaseSource{
		client:     github.NewClient(httpClient),
		httpClient: httpClient,
		owner:      owner,
		repo:       repo,
	}, nil
}

func splitRepo(repo string) (string, string, error) {
	parts := strings.Split(repo, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("update.repo %q is not in owner/name form", repo)
	}
	return parts[0], parts[1], nil
}

// List returns all releases with parseable versions, newest first.
func (s *GithubReleaseSource) List(ctx context.Context) ([]domain.Release, error) {
	var releases []domain.Release
	opts := &github.ListOptions{PerPage: 100}

	for {
		page, resp, err := s.client.Repositories.ListReleases(ctx, s.owner, s.repo, opts)
		if err != nil {
			return nil, mapGithubError(err)
		}
		for _, release := range page {
			releases = append(releases, convertRelease(release))
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	domain.SortReleasesDescending(releases)
	return releases, nil
}

// Latest returns the release with the maximum version under the semver
// ordering, not whatever GitHub marks as latest.
func (s *GithubReleaseSource) Latest(ctx context.Context) (domain.Release, error) {
	releases, err := s.List(ctx)
	if err != nil {
		return domain.Release{}, err
	}
	latest, ok := domain.LatestRelease(releases)
	if !ok {
		return domain.Release{}, fmt.Errorf("%s/%s has no versioned releases: %w", s.owner, s.repo, domain.ErrNotFound)
	}
	return latest, nil
}

func (s *GithubReleaseSource) Get(ctx context.Context, tag string) (domain.Release, error) {
	release, _, err := s.client.Repositories.GetReleaseByTag(ctx, s.owner, s.repo, tag)
	if err != nil {
		return domain.Release{}, mapGithubError(err)
	}
	return convertRelease(release), nil
}

func (s *GithubReleaseSource) DownloadAsset(ctx context.Context, asset domain.ReleaseAsset) (io.ReadCloser, error) {
	body, redirectURL, err := s.client.Repositories.DownloadReleaseAsset(ctx, s.owner, s.repo, asset.ID)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrDownloadFailed)
	}
	if body != nil {
		return body, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, redirectURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrDownloadFailed)
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrDownloadFailed)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("download of %s returned status %d: %w", asset.Name, resp.StatusCode, domain.ErrDownloadFailed)
	}
	return resp.Body, nil
}

func convertRelease(release *github.RepositoryRelease) domain.Release {
	converted := domain.Release{
		Tag:         release.GetTagName(),
		PublishedAt: release.GetPublishedAt().Time,
	}
	for _, asset := range release.Assets {
		converted.Assets = append(converted.Assets, domain.ReleaseAsset{
			ID:   asset.GetID(),
			Name: asset.GetName(),
			URL:  asset.GetBrowserDownloadURL(),
		})
	}
	return converted
}

func mapGithubError(err error) error {
	var rateLimitErr *github.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return fmt.Errorf("%v: %w", err, domain.ErrRateLimited)
	}

	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return fmt.Errorf("%v: %w", err, domain.ErrRateLimited)
	}

	var respErr *github.ErrorResponse
	if errors.As(err, &respErr) && respErr.Response != nil && respErr.Response.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%v: %w", err, domain.ErrNotFound)
	}

	return fmt.Errorf("%v: %w", err, domain.ErrUnreachable)
}

var _ ports.ReleaseSource = (*GithubReleaseSource)(nil)
