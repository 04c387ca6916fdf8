package pyright

import (
	"context"

	"github.com/yaklabco/gopyright/internal/logging"
	"github.com/yaklabco/gopyright/internal/process"
)

// DefaultInstallCommand installs the analyzer globally through npm.
func DefaultInstallCommand() []string {
	return []string{"npm", "install", "-g", "pyright"}
}

// InstallOptions controls EnsureInstalled.
type InstallOptions struct {
	// Executable is looked up on PATH. Defaults to DefaultExecutable.
	Executable string

	// AutoInstall enables running Command when the executable is missing.
	AutoInstall bool

	// Command is the install command line. Defaults to DefaultInstallCommand.
	Command []string
}

// EnsureInstalled makes a best-effort attempt to have the analyzer
// available. It reports whether the executable was already on PATH.
//
// Install failures are logged and swallowed. The install result is not
// verified; a still-missing analyzer surfaces later when Invoke runs it.
func EnsureInstalled(ctx context.Context, mgr process.Manager, opts InstallOptions) bool {
	logger := logging.FromContext(ctx)

	exe := opts.Executable
	if exe == "" {
		exe = DefaultExecutable
	}

	path, err := mgr.LookPath(exe)
	if err == nil && path != "" {
		logger.Debug("analyzer found", logging.FieldExecutable, path)
		return true
	}

	if !opts.AutoInstall {
		logger.Warn("analyzer not found and auto-install disabled", logging.FieldExecutable, exe)
		return false
	}

	command := opts.Command
	if len(command) == 0 {
		command = DefaultInstallCommand()
	}

	logger.Info("installing analyzer", logging.FieldCommand, CommandLine(command[0], command[1:]))

	if _, err := mgr.Run(ctx, command[0], command[1:]...); err != nil {
		logger.Warn("analyzer install failed",
			logging.FieldCommand, CommandLine(command[0], command[1:]),
			logging.FieldError, err)
	}

	return false
}
