// Package version provides version information for the sango CLI tool.
//
// Overview:
//   - Responsibility: CLI version metadata (version, commit, build time)
//   - Key Types: Version variables and formatting functions
//   - Concurrency Model: Immutable values, safe for concurrent use
//   - Error Semantics: No errors
//   - Performance Notes: Zero-cost constants
package version

import (
	"fmt"
	"runtime"
)

// Version is the CLI version. Overridden by -ldflags during release builds.
var Version = "v0.1.0"

// Commit is the git commit hash. Overridden by -ldflags during release builds.
var Commit = "unknown"

// BuildTime is the build timestamp in RFC3339 format. Overridden by -ldflags
// during release builds.
var BuildTime = "unknown"

// GetVersionString returns the single-line version string.
func GetVersionString() string {
	return fmt.Sprintf("sango version %s (commit %s, built %s)", Version, Commit, BuildTime)
}

// GetFullVersionInfo returns detailed multi-line version information.
func GetFullVersionInfo() string {
	return fmt.Sprintf(`sango version %s (commit %s, built %s)
go version %s (%s/%s)`,
		Version, Commit, BuildTime,
		runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
