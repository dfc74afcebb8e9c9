// internal/version/version.go
// Package version carries build metadata stamped in at link time via
// -ldflags "-X gazette/internal/version.Version=...".
package version

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String formats the build metadata for --version style output.
func String() string {
	return fmt.Sprintf("gazette %s (commit %s, built %s)", Version, Commit, Date)
}
