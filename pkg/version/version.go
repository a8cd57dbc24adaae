package version

// Version is the semantic version of the build, overridden at build time via
// -ldflags "-X github.com/projectdiscovery/lansweep/pkg/version.Version=..."
var Version = "v0.1.0"

// GetVersion returns the version string
func GetVersion() string {
	return Version
}
