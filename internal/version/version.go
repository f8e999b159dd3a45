package version

import (
	"fmt"
	"runtime/debug"
)

// shortCommitLength is the number of revision characters kept.
const shortCommitLength = 8

//nolint:gochecknoglobals // Values are overridden via ldflags.
var (
	// Version is the semantic version of the build. It can be overridden via ldflags.
	Version = "dev"
	// Commit is the short git SHA embedded at build time (or "none").
	Commit = "none"
	// BuildTime is the UTC build timestamp embedded at build time.
	BuildTime = "unknown"
)

// Short returns only the semantic version string.
func Short() string {
	return Version
}

// Full returns a human-readable version string with commit and build time.
func Full() string {
	return fmt.Sprintf("docs-version %s, commit: %s, built at: %s", Version, commit(), BuildTime)
}

// commit returns Commit, or the revision from the embedded build info when
// Commit was not injected.
func commit() string {
	if Commit != "none" && Commit != "" {
		return Commit
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Commit
	}

	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" && setting.Value != "" {
			if len(setting.Value) > shortCommitLength {
				return setting.Value[:shortCommitLength]
			}

			return setting.Value
		}
	}

	return Commit
}
