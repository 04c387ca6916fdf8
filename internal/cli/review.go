package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gopyright/internal/configloader"
	"github.com/yaklabco/gopyright/internal/logging"
	"github.com/yaklabco/gopyright/pkg/config"
	"github.com/yaklabco/gopyright/pkg/plugin"
	"github.com/yaklabco/gopyright/pkg/review"
)

// reviewRun is a loaded configuration bound to a fresh review session.
type reviewRun struct {
	ctx     context.Context
	cfg     *config.Config
	session *review.Session
	plugin  *plugin.Plugin
}

// prepareReview loads configuration, detects the review environment and
// builds the plugin. local applies subcommand flags on top of the
// global ones.
func prepareReview(
	cmd *cobra.Command,
	args []string,
	flags *globalFlags,
	o *options,
	local func(*configloader.Overrides),
) (*reviewRun, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger := logging.Default()
	ctx = logging.WithLogger(ctx, logger)

	overrides, err := globalOverrides(cmd, flags)
	if err != nil {
		return nil, err
	}
	if len(args) > 0 {
		overrides.BaseDir = &args[0]
	}
	if local != nil {
		local(overrides)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: flags.configPath,
		CLIOverrides: overrides,
	})
	if err != nil {
		return nil, errors.Join(ErrConfig, err)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	cfg := loadResult.Config

	getenv := o.getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	env, err := review.Detect(workDir, getenv)
	if err != nil {
		logger.Warn("review environment detection failed", logging.FieldError, err)
		env = review.Environment{}
	}
	if cfg.SCMProvider != "" {
		env.Provider = cfg.SCMProvider
	}

	logger.Debug("configuration loaded",
		logging.FieldBaseDir, cfg.BaseDir,
		logging.FieldProject, cfg.ConfigFile,
		logging.FieldThreshold, cfg.Threshold,
		logging.FieldSCMProvider, env.Provider,
	)

	session := review.NewSession(env)

	return &reviewRun{
		ctx:     ctx,
		cfg:     cfg,
		session: session,
		plugin:  plugin.New(cfg, session, o.manager),
	}, nil
}

// globalOverrides turns explicitly set persistent flags into overrides.
// Flags left at their defaults do not mask config files.
func globalOverrides(cmd *cobra.Command, flags *globalFlags) (*configloader.Overrides, error) {
	overrides := &configloader.Overrides{}
	changed := cmd.Flags().Changed

	if changed("format") {
		format, err := review.ParseFormat(flags.format)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUsage, err)
		}
		canonical := format.String()
		overrides.Format = &canonical
	}
	if changed("color") {
		switch flags.color {
		case "auto", "always", "never":
		default:
			return nil, fmt.Errorf("%w: invalid color mode %q; must be auto, always, or never", ErrUsage, flags.color)
		}
	}
	if changed("executable") {
		overrides.Executable = &flags.executable
	}
	if changed("threshold") {
		overrides.Threshold = &flags.threshold
	}
	if changed("project") {
		overrides.ConfigFile = &flags.project
	}
	if changed("scm-provider") {
		overrides.SCMProvider = &flags.scmProvider
	}
	if changed("no-install") {
		autoInstall := !flags.noInstall
		overrides.AutoInstall = &autoInstall
	}

	return overrides, nil
}

// finish prints the session status report and converts recorded
// failures into ErrFailuresReported.
func (r *reviewRun) finish(cmd *cobra.Command, flags *globalFlags) error {
	report := r.session.StatusReport()

	format, err := review.ParseFormat(string(r.cfg.Format))
	if err != nil {
		return errors.Join(ErrConfig, err)
	}

	if err := review.WriteReport(cmd.OutOrStdout(), report, review.OutputOptions{
		Format: format,
		Color:  flags.color,
	}); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if report.HasFailures() {
		return ErrFailuresReported
	}
	return nil
}
