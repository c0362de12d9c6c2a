// Package version reports the build identity of tagwm binaries.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"time"
)

const defaultModule = "pkt.systems/tagwm"

// buildVersion is set via -ldflags "-X pkt.systems/tagwm/internal/version.buildVersion=...".
var buildVersion = ""

// Info describes the running build.
type Info struct {
	Module    string `json:"module" yaml:"module"`
	Version   string `json:"version" yaml:"version"`
	Revision  string `json:"revision,omitempty" yaml:"revision,omitempty"`
	Modified  bool   `json:"modified,omitempty" yaml:"modified,omitempty"`
	GoVersion string `json:"go_version" yaml:"go_version"`
}

// String renders the module and version on one line.
func (i Info) String() string {
	return fmt.Sprintf("%s %s", i.Module, i.Version)
}

// Read collects build identity from the linker flags and embedded build info.
func Read() Info {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		info = nil
	}
	return fromBuildInfo(info, buildVersion)
}

// Current returns the best available version string.
func Current() string {
	return Read().Version
}

func fromBuildInfo(info *debug.BuildInfo, override string) Info {
	out := Info{
		Module:    defaultModule,
		Version:   "v0.0.0-unknown",
		GoVersion: runtime.Version(),
	}
	vcs := readVCS(info)
	out.Revision = vcs.revision
	out.Modified = vcs.modified
	if info != nil {
		if path := strings.TrimSpace(info.Main.Path); path != "" {
			out.Module = path
		}
		if gv := strings.TrimSpace(info.GoVersion); gv != "" {
			out.GoVersion = gv
		}
	}
	switch {
	case strings.TrimSpace(override) != "":
		out.Version = strings.TrimSpace(override)
	case info != nil && info.Main.Version != "" && info.Main.Version != "(devel)":
		out.Version = strings.TrimSuffix(strings.TrimSpace(info.Main.Version), "+dirty")
	default:
		if pseudo := vcs.pseudo(); pseudo != "" {
			out.Version = pseudo
		}
	}
	return out
}

type vcsState struct {
	revision string
	when     time.Time
	modified bool
}

func readVCS(info *debug.BuildInfo) vcsState {
	var state vcsState
	if info == nil {
		return state
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			state.revision = setting.Value
		case "vcs.time":
			if parsed, err := time.Parse(time.RFC3339, setting.Value); err == nil {
				state.when = parsed
			}
		case "vcs.modified":
			state.modified = setting.Value == "true"
		}
	}
	return state
}

// pseudo renders a Go pseudo-version for the revision, or "" when unknown.
func (s vcsState) pseudo() string {
	if s.revision == "" || s.when.IsZero() {
		return ""
	}
	rev := s.revision
	if len(rev) > 12 {
		rev = rev[:12]
	}
	return "v0.0.0-" + s.when.UTC().Format("20060102150405") + "-" + rev
}
