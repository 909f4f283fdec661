// Package version carries the build identity of the binary.
package version

// Stamped by the release build through
// -ldflags "-X ashby-plotter/internal/version.Version=...".
var (
	Version   = "0.1.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)
