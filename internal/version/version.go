// Package version provides version information for the ngforge CLI tool.
//
// Overview:
//   - Responsibility: CLI version metadata (version, commit, build time)
//   - Key Types: Version constants and functions
//   - Concurrency Model: Immutable constants, safe for concurrent use
//   - Error Semantics: No errors (all constants)
//   - Performance Notes: Zero-cost constants
//
// Usage:
//
//	import "github.com/ngforge/ngforge/internal/version"
//	version.GetVersionString()
package version

import (
	"fmt"
	"runtime"
)

// Version is the CLI version.
// This value is set by the release workflow during release builds.
var Version = "v0.2.0-dev"

// Commit is the git commit hash.
// This value is set by the release workflow during release builds.
var Commit = "unknown"

// BuildTime is the build timestamp in RFC3339 format.
// This value is set by the release workflow during release builds.
var BuildTime = "unknown"

// GetVersionString returns the full version string in the format:
// ngforge version v0.2.0 (commit 4a9b2c1, built 2026-08-01T12:10:00Z)
//
// Returns:
//   - string: Formatted version string
//
// Concurrency:
//   - Safe for concurrent use
//
// Performance:
//   - O(1) string concatenation
func GetVersionString() string {
	return fmt.Sprintf("ngforge version %s (commit %s, built %s)", Version, Commit, BuildTime)
}

// GetFullVersionInfo returns detailed version information including the Go
// toolchain that produced the binary.
//
// Returns:
//   - string: Multi-line version information
//
// Concurrency:
//   - Safe for concurrent use
//
// Performance:
//   - O(1) string concatenation
func GetFullVersionInfo() string {
	return fmt.Sprintf(`ngforge version %s (commit %s, built %s)
go version %s (%s/%s)`,
		Version, Commit, BuildTime,
		runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
