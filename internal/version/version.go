// Package version exposes build information set at link time:
//
//	go build -ldflags "-X github.com/information-sharing-networks/rightsignature-go/internal/version.version=v1.2.0"
package version

var (
	version   = "dev"
	buildDate = "unknown"
	gitCommit = "unknown"
)

// Info describes the running build.
type Info struct {
	Version   string
	BuildDate string
	GitCommit string
}

// Get returns the build information.
func Get() Info {
	return Info{
		Version:   version,
		BuildDate: buildDate,
		GitCommit: gitCommit,
	}
}
