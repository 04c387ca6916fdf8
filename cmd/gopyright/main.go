// Package main is the entry point for the gopyright CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/gopyright/internal/cli"
	"github.com/yaklabco/gopyright/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		// ErrFailuresReported only selects the exit code; the report already says why.
		if !errors.Is(err, cli.ErrFailuresReported) {
			logging.Default().Error("command failed", logging.FieldError, err)
		}
		return cli.ExitCode(err)
	}

	return cli.ExitSuccess
}
