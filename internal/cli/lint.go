package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/gopyright/internal/configloader"
)

type lintFlags struct {
	inline bool
}

func newLintCommand(global *globalFlags, o *options) *cobra.Command {
	flags := &lintFlags{}

	cmd := &cobra.Command{
		Use:   "lint [base-dir]",
		Short: "Report every type checking issue",
		Long:  lintLongDescription,
		Args:  baseDirArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, global, flags, o)
		},
	}

	cmd.Flags().BoolVar(&flags.inline, "inline", false, "comment on each offending line instead of posting one table")

	return cmd
}

const lintLongDescription = `Run the analyzer and report every issue it finds.

Issues are reported only when there are more of them than the threshold.
By default they are collected into one markdown table; with --inline each
issue becomes a comment on its file and line.

Examples:
  gopyright lint                        # Check the current directory
  gopyright lint src                    # Check src/
  gopyright lint --inline               # Inline comments instead of a table
  gopyright lint --project pyrightconfig.json
  gopyright lint --format markdown      # Print the report as markdown`

func runLint(cmd *cobra.Command, args []string, global *globalFlags, flags *lintFlags, o *options) error {
	run, err := prepareReview(cmd, args, global, o, func(overrides *configloader.Overrides) {
		if cmd.Flags().Changed("inline") {
			overrides.InlineComments = &flags.inline
		}
	})
	if err != nil {
		return err
	}

	if err := run.plugin.Lint(run.ctx, run.cfg.InlineComments); err != nil {
		return err
	}

	return run.finish(cmd, global)
}
