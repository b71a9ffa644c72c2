package version

import (
	"runtime/debug"
	"strings"
	"sync"
)

// ModulePath is the import path used to find this module in build info.
const ModulePath = "github.com/kbukum/ndex-go"

// Set at build time with -ldflags "-X github.com/kbukum/ndex-go/version.Version=v1.2.3".
var (
	Version   = "dev"
	GitCommit = ""
)

// Info describes the running client build.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	GoVersion string `json:"go_version"`
	IsRelease bool   `json:"is_release"`
}

var (
	once   sync.Once
	cached *Info
)

// Get returns the build information, resolved once per process.
//
// When Version was not set by the linker, the module version recorded in
// the importing binary's build info is used, so applications depending on
// a tagged release report that tag.
func Get() *Info {
	once.Do(func() {
		cached = resolve(Version, GitCommit, readBuildInfo)
	})
	return cached
}

// UserAgent returns the User-Agent value sent with every request.
func UserAgent() string {
	return "ndex-go/" + Get().Version
}

func readBuildInfo() (*debug.BuildInfo, bool) {
	return debug.ReadBuildInfo()
}

func resolve(ver, commit string, read func() (*debug.BuildInfo, bool)) *Info {
	info := &Info{Version: ver, GitCommit: commit}

	if bi, ok := read(); ok {
		info.GoVersion = bi.GoVersion
		if info.Version == "dev" {
			if v := moduleVersion(bi); v != "" {
				info.Version = v
			}
		}
		if info.GitCommit == "" {
			for _, s := range bi.Settings {
				if s.Key == "vcs.revision" && len(s.Value) >= 7 {
					info.GitCommit = s.Value[:7]
				}
			}
		}
	}

	info.IsRelease = info.Version != "dev" && !strings.Contains(info.Version, "devel")
	return info
}

func moduleVersion(bi *debug.BuildInfo) string {
	if bi.Main.Path == ModulePath && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	for _, dep := range bi.Deps {
		if dep.Path == ModulePath {
			return dep.Version
		}
	}
	return ""
}
