package version

import (
	"fmt"
	"runtime"
)

// These variables are set via ldflags during build
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// GetVersion returns the version string
func GetVersion() string {
	return Version
}

// GetFullVersion returns a full version string with commit, date and Go runtime
func GetFullVersion() string {
	if Version == "dev" {
		return fmt.Sprintf("dev (%s)", runtime.Version())
	}
	return fmt.Sprintf("%s (commit %s, built %s, %s)", Version, GitCommit, BuildDate, runtime.Version())
}
