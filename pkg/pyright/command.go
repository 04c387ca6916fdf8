// Package pyright invokes the Pyright type checker and turns its report
// into normalized diagnostics.
package pyright

import (
	"context"
	"fmt"
	"strings"

	"github.com/yaklabco/gopyright/internal/logging"
	"github.com/yaklabco/gopyright/internal/process"
)

// DefaultExecutable is the analyzer binary looked up on PATH.
const DefaultExecutable = "pyright"

// DefaultBaseDir is analyzed when no base directory is configured.
const DefaultBaseDir = "."

// Flags understood by the analyzer.
const (
	flagOutputJSON = "--outputjson"
	flagProject    = "--project"
)

// InvokeOptions describes one analyzer run.
type InvokeOptions struct {
	// Executable is the analyzer binary. Defaults to DefaultExecutable.
	Executable string

	// BaseDir is the directory to analyze. Defaults to DefaultBaseDir.
	BaseDir string

	// ConfigFile optionally points the analyzer at a project file.
	ConfigFile string
}

func (o InvokeOptions) executable() string {
	if o.Executable == "" {
		return DefaultExecutable
	}
	return o.Executable
}

func (o InvokeOptions) baseDir() string {
	if o.BaseDir == "" {
		return DefaultBaseDir
	}
	return o.BaseDir
}

// Args builds the analyzer argument list: the base directory, the JSON
// output flag and, when configFile is set, the project flag.
func Args(baseDir, configFile string) []string {
	if baseDir == "" {
		baseDir = DefaultBaseDir
	}
	args := []string{baseDir, flagOutputJSON}
	if configFile != "" {
		args = append(args, flagProject, configFile)
	}
	return args
}

// CommandLine renders an executable and its arguments as a single
// space-separated string for logs and messages. It is never executed.
func CommandLine(executable string, args []string) string {
	return strings.Join(append([]string{executable}, args...), " ")
}

// Invoke runs the analyzer and returns its raw stdout.
//
// The exit status is not inspected: Pyright exits non-zero whenever it
// reports errors, and only the output content matters. An error is
// returned only when the process could not be run at all.
func Invoke(ctx context.Context, mgr process.Manager, opts InvokeOptions) (string, error) {
	logger := logging.FromContext(ctx)

	exe := opts.executable()
	args := Args(opts.baseDir(), opts.ConfigFile)

	logger.Debug("running analyzer", logging.FieldCommand, CommandLine(exe, args))

	out, err := mgr.Run(ctx, exe, args...)
	if err != nil && !process.IsExitError(err) {
		return "", fmt.Errorf("run %s: %w", exe, err)
	}
	if err != nil {
		logger.Debug("analyzer exited with non-zero status", logging.FieldError, err)
	}

	logger.Debug("analyzer finished", logging.FieldOutputSize, len(out))

	return string(out), nil
}
