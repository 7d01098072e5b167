package meta

import (
	"fmt"
)

// Name is the name of the application.
const Name = "dduwash"

var (
	// Version is the semantic version of the application.
	// This value is injected at build time via ldflags.
	Version = "HEAD"

	// Commit is the git commit hash.
	// This value is injected at build time via ldflags.
	Commit = "UNKNOWN"
)

// VersionString returns the version line for --version and the start log.
func VersionString() string {
	return fmt.Sprintf("%s (%s)", Version, Commit)
}
