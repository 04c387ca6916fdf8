package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/gopyright/internal/configloader"
)

type countFlags struct {
	fail bool
}

func newCountCommand(global *globalFlags, o *options) *cobra.Command {
	flags := &countFlags{}

	cmd := &cobra.Command{
		Use:   "count [base-dir]",
		Short: "Report the number of type checking issues",
		Long: `Run the analyzer and record one summary when the number of issues
exceeds the threshold. The summary is a warning, or a failure with --fail.
A failure makes gopyright exit with status 1.

Examples:
  gopyright count                  # Warn when any issue is found
  gopyright count --threshold 10   # Tolerate up to 10 issues
  gopyright count --fail           # Fail the review instead of warning`,
		Args: baseDirArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCount(cmd, args, global, flags, o)
		},
	}

	cmd.Flags().BoolVar(&flags.fail, "fail", false, "record a failure instead of a warning")

	return cmd
}

func runCount(cmd *cobra.Command, args []string, global *globalFlags, flags *countFlags, o *options) error {
	run, err := prepareReview(cmd, args, global, o, func(overrides *configloader.Overrides) {
		if cmd.Flags().Changed("fail") {
			overrides.ShouldFail = &flags.fail
		}
	})
	if err != nil {
		return err
	}

	if err := run.plugin.CountErrors(run.ctx, run.cfg.ShouldFail); err != nil {
		return err
	}

	return run.finish(cmd, global)
}
