// Package main is the entry point for the rpi-model CLI.
//
// This binary identifies the Raspberry Pi board it runs on from the revision
// code in /proc/cpuinfo. It delegates all functionality to the internal/cli
// package, which defines the cobra commands.
//
// Build-time variables (version, commit, date) are injected via ldflags
// during the release process. During development, they default to "dev",
// "none", and "unknown" respectively.
package main

import (
	"github.com/shinji-kodama/rpi-model/internal/cli"
)

// version, commit, and date are set at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	cli.Execute(cli.NewRootCommand())
}
