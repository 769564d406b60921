package main

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Build-time variables set via -ldflags. Empty values are filled from the
// build info the Go toolchain embeds in the binary.
var (
	version   = ""
	commit    = ""
	buildDate = ""
)

const devVersion = "v0.1.0-dev"

// buildDetails identifies the binary and the zone database compiled into it.
// The tzdata package is embedded from the Go release that built the binary,
// so GoVersion also pins the IANA data in use.
type buildDetails struct {
	Version   string
	Commit    string
	Date      string
	GoVersion string
}

func readBuildDetails() buildDetails {
	d := buildDetails{Version: version, Commit: commit, Date: buildDate, GoVersion: runtime.Version()}
	if info, ok := debug.ReadBuildInfo(); ok {
		d = mergeBuildInfo(d, info)
	}
	if d.Version == "" {
		d.Version = devVersion
	}
	if d.Commit == "" {
		d.Commit = "unknown"
	}
	if d.Date == "" {
		d.Date = "unknown"
	}
	return d
}

// mergeBuildInfo copies module version and VCS stamps into fields that
// ldflags did not set.
func mergeBuildInfo(d buildDetails, info *debug.BuildInfo) buildDetails {
	if d.Version == "" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		d.Version = info.Main.Version
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if d.Commit == "" {
				d.Commit = s.Value
			}
		case "vcs.time":
			if d.Date == "" {
				d.Date = s.Value
			}
		}
	}
	return d
}

func (d buildDetails) String() string {
	c := d.Commit
	if len(c) > 12 {
		c = c[:12]
	}
	return fmt.Sprintf("tznow %s (commit %s, built %s; tzdata embedded from %s)", d.Version, c, d.Date, d.GoVersion)
}
