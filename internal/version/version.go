// Package version holds the build version string, overridden at link time.
package version

// Version is set via -ldflags "-X .../internal/version.Version=vX.Y.Z".
var Version = "dev"
