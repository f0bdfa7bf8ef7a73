// Package buildinfo holds version strings injected with -ldflags, e.g.
//
//	go build -ldflags "-X softcube/internal/buildinfo.Version=v0.1.0"
package buildinfo

import "log/slog"

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Date is set at build time via -ldflags.
var Date = "unknown"

// Short returns a compact build identifier for the window title.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// String returns version, commit and date on one line for -version.
func String() string {
	return Version + " (" + Commit + ", " + Date + ")"
}

// Attr groups the build identifiers for structured logs.
func Attr() slog.Attr {
	return slog.Group("build",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("date", Date))
}
