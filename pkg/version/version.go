// Package version carries build-time metadata injected via -ldflags.
package version

// Populated at build time:
//
//	go build -ldflags "-X github.com/Sumatoshi-tech/diffloc/pkg/version.Version=v1.2.3"
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
