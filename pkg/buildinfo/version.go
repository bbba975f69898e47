// Package buildinfo provides build-time version information.
//
// Release builds set the variables via ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/stackbadge/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/matzehuels/stackbadge/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/matzehuels/stackbadge/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// A binary built with "go install ...@version" and no ldflags reports the
// module version recorded by the toolchain instead of "dev".
//
// The version also scopes the render cache, so badges rendered by one
// release are never served by another.
package buildinfo

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	// Version is the semantic version (e.g., "v1.2.3").
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// Fonts names the typefaces the built-in width tables are measured from.
// They stand in for Verdana and Helvetica, which cannot be redistributed.
const Fonts = "Go Regular, Go Bold (golang.org/x/image/font/gofont)"

func init() {
	if Version != "dev" {
		return
	}
	if v := moduleVersion(debug.ReadBuildInfo()); v != "" {
		Version = v
	}
}

// moduleVersion returns the main module version of a "go install" build.
func moduleVersion(info *debug.BuildInfo, ok bool) string {
	if !ok || info == nil {
		return ""
	}
	switch v := info.Main.Version; v {
	case "", "(devel)":
		return ""
	default:
		return v
	}
}

// String returns the formatted build information.
func String() string {
	return fmt.Sprintf("version %s\ncommit: %s\nbuilt: %s\nfonts: %s\ngo: %s",
		Version, Commit, Date, Fonts, runtime.Version())
}

// Template returns the version template string for cobra.
func Template() string {
	return "{{.Name}} " + String() + "\n"
}
