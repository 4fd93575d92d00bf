// Package version exposes the build identity of the runcheck binary.
package version

import "runtime/debug"

var (
	// Version is the module version recorded in the build info.
	Version = "devel"
	// Revision is the VCS revision the binary was built from.
	Revision = "unknown"
)

func init() {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	if bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		Version = bi.Main.Version
	}

	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			Revision = s.Value
		}
	}
}
