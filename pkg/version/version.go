// Package version exposes the build metadata stamped into the repotome
// binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Stamped at build time, e.g.
//
//	go build -ldflags "-X repotome/pkg/version.Version=1.2.3 -X repotome/pkg/version.Commit=abcdefg"
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// Info is a snapshot of the build metadata.
type Info struct {
	Version   string
	Commit    string
	BuildTime string
	GoVersion string
	Platform  string
}

// Get assembles the build metadata. When the commit was not stamped via
// ldflags it falls back to the VCS revision embedded by the Go toolchain.
func Get() Info {
	commit := Commit
	if commit == "" {
		commit = vcsRevision()
	}
	return Info{
		Version:   Version,
		Commit:    commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String renders the metadata on one line, omitting fields that were never
// stamped: "repotome 1.2.3 (abcdefg) built 2025-04-27T15:04:05Z go1.23.1 linux/amd64".
func (i Info) String() string {
	s := "repotome " + i.Version
	if i.Commit != "" {
		s += fmt.Sprintf(" (%s)", i.Commit)
	}
	if i.BuildTime != "" {
		s += " built " + i.BuildTime
	}
	return s + " " + i.GoVersion + " " + i.Platform
}

func vcsRevision() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, setting := range bi.Settings {
		if setting.Key == "vcs.revision" {
			rev := setting.Value
			if len(rev) > 12 {
				rev = rev[:12]
			}
			return rev
		}
	}
	return ""
}
