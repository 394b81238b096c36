// Package version exposes build information set through -ldflags.
package version

// Set at build time:
//
//	go build -ldflags "-X github.com/rshade/selectlist/pkg/version.version=v1.2.3"
//
//nolint:gochecknoglobals // Overwritten by the linker.
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// GetVersion returns the release version.
func GetVersion() string {
	return version
}

// GetCommit returns the source commit.
func GetCommit() string {
	return commit
}

// GetBuildDate returns the build timestamp.
func GetBuildDate() string {
	return buildDate
}
