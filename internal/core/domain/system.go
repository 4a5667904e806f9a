package domain

import (
	"runtime"
	"strings"
)

// Platform returns the docker-style platform identifier of the current host,
// e.g. "linux/amd64". Go's GOARCH already uses registry arch names.
func Platform() string {
	return runtime.GOOS + "/" + runtime.GOARCH
}

// ExpandAssetPattern substitutes {os} and {arch} placeholders in a release
// asset name pattern with the current host platform.
func ExpandAssetPattern(pattern string) string {
	expanded := strings.ReplaceAll(pattern, "{os}", runtime.GOOS)
	return strings.ReplaceAll(expanded, "{arch}", runtime.GOARCH)
}
