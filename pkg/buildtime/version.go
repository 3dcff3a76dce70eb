package buildtime

import (
	"runtime/debug"
)

// set by `-ldflags "-X github.com/docstokg/docstokg-web/pkg/buildtime.version=..."`
var version = ""

// VERSION is the version of this build.
//
// Without ldflags, it is the module version recorded by the go command, or "(devel)".
func VERSION() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(devel)"
}

// GIT_REVISION is the commit this build is made from, or "unknown".
func GIT_REVISION() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	rev, modified := "unknown", false
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}
	if modified {
		rev += "+dirty"
	}
	return rev
}

func VersionString() string {
	return VERSION() + " (commit: " + GIT_REVISION() + ")"
}
