// Package version centralizes version information for colmatch
package version

// Version information for colmatch
const (
	// Version is the current semantic version
	Version = "0.2.0"

	// BuildDate is set during build time (use -ldflags)
	BuildDate = "development"

	// GitCommit is set during build time (use -ldflags)
	GitCommit = "unknown"
)

// Info returns version information as a string
func Info() string {
	return Version
}

// FullInfo returns detailed version information
func FullInfo() string {
	return "colmatch " + Version + " (commit: " + GitCommit + ", built: " + BuildDate + ")"
}
