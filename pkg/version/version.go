// Package version exposes build-time version metadata.
package version

// Overridden at build time via -ldflags:
//
//	-X github.com/Sumatoshi-tech/distpatch/pkg/version.Version=v1.2.3
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
