// Package buildinfo contains build information.
//
// Some of the exported variables may be set during compilation by passing
// -ldflags "-X varcalc.dev/pkg/buildinfo.VarName=value" to "go build".
package buildinfo

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"varcalc.dev/pkg/must"
	"varcalc.dev/pkg/prog"
)

// VersionBase identifies the version of varcalc. On the development branch, it
// identifies the next release.
const VersionBase = "0.1.0"

// VCSOverride may be set during compilation to "time-commit" (like
// "20220320172241-5dc8c02a32cf") for identifying the version of development
// builds. It is ignored if the build has proper VCS information stamped by the
// Go toolchain.
var VCSOverride = ""

// BuildVariant may be set during compilation to identify a particular build
// variant, such as a build by a specific distribution. It is appended to the
// version string with a "+".
var BuildVariant = ""

// Type describes the type of [Value].
type Type struct {
	Version   string `json:"version"`
	GoVersion string `json:"goversion"`
}

// Value contains the build information of the current binary.
var Value = Type{
	Version:   addVariant(version(debug.ReadBuildInfo), BuildVariant),
	GoVersion: runtime.Version(),
}

func addVariant(version, variant string) string {
	if variant != "" {
		version += "+" + variant
	}
	return version
}

func version(f func() (*debug.BuildInfo, bool)) string {
	return devVersion(VersionBase, VCSOverride, f)
}

func devVersion(next, vcsOverride string, f func() (*debug.BuildInfo, bool)) string {
	fallback := next + "-dev.unknown"
	if vcsOverride != "" {
		return next + "-dev.0." + vcsOverride
	}
	bi, ok := f()
	if !ok {
		return fallback
	}
	// If the main module's version is known, use it.
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		return strings.TrimPrefix(v, "v")
	}
	// Otherwise stamp the version like a Go pseudo-version, using VCS
	// information if it is available.
	var revision, rtime, modified string
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.time":
			rtime = s.Value
		case "vcs.modified":
			modified = s.Value
		}
	}
	if revision == "" || rtime == "" {
		return fallback
	}
	t, err := time.Parse(time.RFC3339, rtime)
	if err != nil {
		return fallback
	}
	version := next + "-dev.0." + t.Format("20060102150405") + "-" + revision[:12]
	if modified == "true" {
		return version + "-dirty"
	}
	return version
}

// Program is the buildinfo subprogram.
type Program struct{}

func (Program) Run(fds [3]*os.File, f *prog.Flags, _ []string) error {
	switch {
	case f.BuildInfo:
		if f.JSON {
			fmt.Fprintln(fds[1], mustToJSON(Value))
		} else {
			fmt.Fprintln(fds[1], "Version:", Value.Version)
			fmt.Fprintln(fds[1], "Go version:", Value.GoVersion)
		}
	case f.Version:
		if f.JSON {
			fmt.Fprintln(fds[1], mustToJSON(Value.Version))
		} else {
			fmt.Fprintln(fds[1], Value.Version)
		}
	default:
		return prog.ErrNotSuitable
	}
	return nil
}

func mustToJSON(v any) string {
	return string(must.OK1(json.Marshal(v)))
}
