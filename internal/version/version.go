package version

import "fmt"

var (
	// Version is the current application version
	Version = "dev"
	// Commit is the git commit SHA
	Commit = "unknown"
	// BuildTime is the build timestamp
	BuildTime = "unknown"
)

// String returns the one-line version banner printed by --version
func String() string {
	return fmt.Sprintf("cfov %s (commit=%s, built=%s)", Version, Commit, BuildTime)
}
