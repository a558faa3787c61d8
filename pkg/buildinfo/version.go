// Package buildinfo holds version information injected at build time:
//
//	go build -ldflags "-X github.com/matzehuels/changegraph/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/matzehuels/changegraph/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/changegraph/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/changegraph
package buildinfo

import "fmt"

var (
	Version = "dev"     // semantic version, e.g. "v1.2.3"
	Commit  = "none"    // git commit SHA
	Date    = "unknown" // build timestamp
)

// String returns the build information on a single line,
// e.g. "v1.2.3 (abc1234, 2026-01-02T15:04:05Z)".
func String() string {
	return fmt.Sprintf("%s (%s, %s)", Version, Commit, Date)
}

// Template returns the cobra version template.
func Template() string {
	return "{{.Name}} " + String() + "\n"
}
