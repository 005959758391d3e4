package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"time"
)

// Overridden with -ldflags "-X .../pkg/version.Version=..." at release time.
var (
	Version   = "0.0.0-dev"
	Commit    = ""
	BuildTime = ""
)

const devVersion = "0.0.0-dev"

// populateFromBuildInfo fills Version, Commit and BuildTime from the VCS
// stamps embedded by the Go toolchain. Values set through ldflags win.
func populateFromBuildInfo() {
	if Version != "" && Version != devVersion {
		return
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok || bi == nil {
		return
	}

	settings := make(map[string]string, len(bi.Settings))
	for _, s := range bi.Settings {
		settings[s.Key] = s.Value
	}

	if Commit == "" {
		if rev := settings["vcs.revision"]; len(rev) >= 7 {
			Commit = rev[:7]
		}
	}

	if BuildTime == "" {
		if ts, err := time.Parse(time.RFC3339, settings["vcs.time"]); err == nil {
			BuildTime = ts.UTC().Format("2006-01-02T15:04:05Z")
		}
	}

	if tag := settings["vcs.tag"]; tag != "" {
		Version = strings.TrimPrefix(tag, "v")
		if strings.EqualFold(settings["vcs.modified"], "true") {
			Version += "-dirty"
		}
	}
}

func init() {
	populateFromBuildInfo()
}

// FormatVersion returns the version with its commit and build time,
// e.g. "1.2.3 (commit: abc1234, built at: 2026-01-02T10:20:30Z)".
func FormatVersion() string {
	ver := Version
	if ver == "" {
		ver = devVersion
	}

	commit := Commit
	if commit == "" {
		if BuildTime == "" {
			return fmt.Sprintf("%s (development)", ver)
		}
		commit = "development"
	}

	if BuildTime != "" {
		return fmt.Sprintf("%s (commit: %s, built at: %s)", ver, commit, BuildTime)
	}
	return fmt.Sprintf("%s (commit: %s)", ver, commit)
}

// UserAgent identifies the CLI in outgoing API requests.
func UserAgent() string {
	ver := Version
	if ver == "" {
		ver = devVersion
	}
	return fmt.Sprintf("twilio-cli-go/%s (%s %s) %s", ver, runtime.GOOS, runtime.GOARCH, runtime.Version())
}
