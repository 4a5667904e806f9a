package domain

import "errors"

// Sentinel errors for the failure classes the orchestrator has to tell apart.
// Adapters wrap these with context via fmt.Errorf("...: %w", ...).
var (
	// ErrRateLimited is returned when the release API signals rate-limit
	// exhaustion. Supplying a GITHUB_TOKEN raises the limit.
	ErrRateLimited = errors.New("release API rate limit exceeded")

	// ErrNotFound is returned when a requested release tag does not exist.
	ErrNotFound = errors.New("release not found")

	// ErrUnreachable is returned on network-level failures talking to the
	// release API.
	ErrUnreachable = errors.New("release API unreachable")

	// ErrNotARepository is returned when a command needing git metadata runs
	// outside a git working tree.
	ErrNotARepository = errors.New("not a git repository")

	// ErrVersionRequired is returned when an image target uses the semver tag
	// strategy and no version was supplied.
	ErrVersionRequired = errors.New("a version is required for semver-tagged images, pass --version")

	// ErrAssetMissing is returned when a release has no asset matching the
	// current platform.
	ErrAssetMissing = errors.New("no release asset matches this platform")

	// ErrDownloadFailed is returned when a release asset transfer fails.
	ErrDownloadFailed = errors.New("asset download failed")

	// ErrReplaceFailed is returned when the executable swap cannot complete.
	// The previous executable is left untouched.
	ErrReplaceFailed = errors.New("executable replace failed")

	// ErrTimedOut is returned when an external command exceeds its deadline.
	ErrTimedOut = errors.New("command timed out")
)

// Run outcomes surfaced as errors so the root command can map them to
// distinct exit codes.
var (
	ErrRunPartiallyFailed = errors.New("run partially failed")
	ErrRunAborted         = errors.New("run aborted")
)
