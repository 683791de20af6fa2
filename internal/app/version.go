package app

import "runtime/debug"

// Version is the application version, overridable at build time:
//
//	go build -ldflags "-X github.com/agbru/fibmatrix/internal/app.Version=v1.2.3"
var Version = "dev"

// FullVersion returns the version string, enriched with the VCS revision
// from the build info when one is embedded.
func FullVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Version
	}
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" && len(setting.Value) >= 7 {
			return Version + " (" + setting.Value[:7] + ")"
		}
	}
	return Version
}
