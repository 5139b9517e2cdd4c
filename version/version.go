// Package version holds the build information of the rdfstore binary.
package version

var (
	Version = "0.1.0"

	// git hash should be filled by:
	// 	go build -ldflags="-X github.com/cayleygraph/rdfstore/version.GitHash=xxxx"

	GitHash   = "dev snapshot"
	BuildDate string
)

// String describes the build in one line.
func String() string {
	s := "rdfstore " + Version + " (" + GitHash + ")"
	if BuildDate != "" {
		s += " built " + BuildDate
	}
	return s
}
