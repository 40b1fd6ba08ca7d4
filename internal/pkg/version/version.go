package version

import "runtime"

// Defined on build time:

var GitCommit = "-"      //nolint:gochecknoglobals
var BuildVersion = "dev" //nolint:gochecknoglobals
var BuildDate = "-"      //nolint:gochecknoglobals

// Version for --version flag.
func Version() string {
	return "Version:    " + BuildVersion + "\n" +
		"Git commit: " + GitCommit + "\n" +
		"Build date: " + BuildDate + "\n" +
		"Go version: " + runtime.Version() + "\n" +
		"Os/Arch:    " + runtime.GOOS + "/" + runtime.GOARCH + "\n"
}
