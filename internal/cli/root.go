// Package cli provides the Cobra command structure for gopyright.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gopyright/internal/logging"
	"github.com/yaklabco/gopyright/internal/process"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// Option customizes the root command.
type Option func(*options)

type options struct {
	manager process.Manager
	getenv  func(string) string
}

// WithProcessManager runs the analyzer through mgr instead of the OS.
func WithProcessManager(mgr process.Manager) Option {
	return func(o *options) {
		o.manager = mgr
	}
}

// WithGetenv replaces os.Getenv for CI detection.
func WithGetenv(getenv func(string) string) Option {
	return func(o *options) {
		o.getenv = getenv
	}
}

// globalFlags holds the persistent flags shared by lint and count.
type globalFlags struct {
	debug       bool
	configPath  string
	color       string
	format      string
	scmProvider string
	executable  string
	project     string
	threshold   int
	noInstall   bool
}

// NewRootCommand creates the root gopyright command with all subcommands.
func NewRootCommand(info BuildInfo, opts ...Option) *cobra.Command {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "gopyright",
		Short: "Report Pyright type checking issues into code review",
		Long: `gopyright runs the Pyright static type checker over a Python project and
reports what it finds into a code review: as one markdown table, as inline
comments on each offending line, or as a single summary count.

Reports are only written when the number of issues exceeds the configured
threshold. The review provider (GitHub, GitLab, Bitbucket) is detected from
the CI environment or the local git repository, and GitHub reports link each
issue to its line in the reviewed commit.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if flags.debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	})

	// Global flags.
	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&flags.debug, "debug", false, "enable debug logging")
	pf.StringVar(&flags.configPath, "config", "", "path to config file")
	pf.StringVar(&flags.color, "color", "auto", "colorize output: auto, always, never")
	pf.StringVar(&flags.format, "format", "text", "status report format: text, json, markdown")
	pf.StringVar(&flags.scmProvider, "scm-provider", "", "override SCM provider detection: github, gitlab, bitbucket_cloud")
	pf.BoolVar(&flags.noInstall, "no-install", false, "do not install the analyzer when it is missing")
	pf.StringVar(&flags.executable, "executable", "", "analyzer executable (default \"pyright\")")
	pf.IntVar(&flags.threshold, "threshold", 0, "number of issues tolerated before reporting")
	pf.StringVar(&flags.project, "project", "", "analyzer project file passed as --project")

	// Add subcommands.
	rootCmd.AddCommand(newLintCommand(flags, o))
	rootCmd.AddCommand(newCountCommand(flags, o))
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}

// baseDirArgs accepts at most one base directory argument.
func baseDirArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	return nil
}
