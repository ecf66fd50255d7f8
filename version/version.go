package version

import (
	"runtime"
	"runtime/debug"
	"strings"
)

// ModulePath is the import path of this module.
const ModulePath = "github.com/kbukum/fidor"

// Version is set at build time using -ldflags.
var Version = "dev"

// Info describes the running library build.
type Info struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	IsRelease bool   `json:"is_release"`
}

// readBuildInfo is swapped in tests.
var readBuildInfo = debug.ReadBuildInfo

// GetVersionInfo returns the library version. An ldflags value wins over the
// version recorded for the module in the binary's build info.
func GetVersionInfo() *Info {
	info := &Info{Version: Version, GoVersion: runtime.Version()}

	if Version == "dev" {
		if bi, ok := readBuildInfo(); ok {
			if v := moduleVersion(bi); v != "" {
				info.Version = v
			}
		}
	}
	info.IsRelease = info.Version != "dev" && info.Version != "(devel)" &&
		!strings.Contains(info.Version, "dirty")
	return info
}

func moduleVersion(bi *debug.BuildInfo) string {
	if bi.Main.Path == ModulePath {
		return bi.Main.Version
	}
	for _, dep := range bi.Deps {
		if dep.Path == ModulePath {
			if dep.Replace != nil && dep.Replace.Version != "" {
				return dep.Replace.Version
			}
			return dep.Version
		}
	}
	return ""
}

// UserAgent returns the default User-Agent, e.g. "fidor-go/v1.2.0 (go1.25.0)".
func UserAgent() string {
	info := GetVersionInfo()
	return "fidor-go/" + info.Version + " (" + info.GoVersion + ")"
}
