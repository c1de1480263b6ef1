package version

import (
	"runtime"
	"strings"
)

func New(version string, commit string) *Version {
	return &Version{
		Mirror: strings.TrimSpace(version),
		Commit: strings.TrimSpace(commit),
		Go:     runtime.Version(),
	}
}

func (v *Version) String() string {
	if v.Commit == "" {
		return v.Mirror
	}

	return v.Mirror + " (" + v.Commit + ")"
}
