// Package misc carries build metadata helpers.
package misc

import "runtime/debug"

var appName = "stylec"

// GetAppName returns the program name used in help output and log files.
func GetAppName() string {
	return appName
}

// GetVersion returns the module version recorded by the build.
func GetVersion() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" {
		return bi.Main.Version
	}
	return "(devel)"
}

// GetGitHash returns the vcs revision recorded by the build, abbreviated.
func GetGitHash() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			if len(s.Value) > 12 {
				return s.Value[:12]
			}
			return s.Value
		}
	}
	return "unknown"
}
