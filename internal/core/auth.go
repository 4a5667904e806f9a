package core

import (
	"os"

	"rops/internal/ports"
)

// GitHubToken authenticates release API calls. An empty token means
// anonymous access, which works for public repositories at a lower
// rate limit.
type GitHubToken string

const (
	// GitHubTokenEnvVar overrides any stored token when set.
	GitHubTokenEnvVar = "GITHUB_TOKEN"

	// GitHubTokenKeyName is the keyring entry the token command manages.
	GitHubTokenKeyName = "github-token"
)

// ProvideGitHubToken resolves the token from the environment first and
// the OS keyring second. Keyring failures are treated as absence: a
// missing keyring backend must not break anonymous usage.
func ProvideGitHubToken(keyring ports.Keyring) GitHubToken {
	if token := os.Getenv(GitHubTokenEnvVar); token != "" {
		return GitHubToken(token)
	}
	token, err := keyring.GetKey(GitHubTokenKeyName)
	if err != nil {
		return ""
	}
	return GitHubToken(token)
}
