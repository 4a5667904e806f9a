// Package version carries the build-time version stamp.
package version

// Version is the released version, injected at build time via
// -ldflags "-X rops/internal/version.Version=...". Dev builds keep "dev".
var Version = "dev"
