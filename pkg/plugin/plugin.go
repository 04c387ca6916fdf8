// Package plugin runs the analyzer against a working tree and reports the
// result into a review host.
//
// Each call is a fresh, sequential pass: ensure the analyzer is available,
// run it, parse its output, apply the threshold, and only then write to the
// host.
package plugin

import (
	"context"
	"errors"

	"github.com/yaklabco/gopyright/internal/logging"
	"github.com/yaklabco/gopyright/internal/process"
	"github.com/yaklabco/gopyright/pkg/config"
	"github.com/yaklabco/gopyright/pkg/diagnostic"
	"github.com/yaklabco/gopyright/pkg/policy"
	"github.com/yaklabco/gopyright/pkg/pyright"
	"github.com/yaklabco/gopyright/pkg/reporter"
	"github.com/yaklabco/gopyright/pkg/review"
)

// ErrNoHost is returned when a Plugin has no review host to report into.
var ErrNoHost = errors.New("plugin: review host is required")

// Plugin binds a configuration to a process manager and a review host.
type Plugin struct {
	// Config holds the analyzer settings. Nil means defaults.
	Config *config.Config

	// Manager runs the analyzer. Nil means the real OS.
	Manager process.Manager

	// Host receives warnings, failures and rendered reports.
	Host review.Host
}

// New creates a Plugin.
func New(cfg *config.Config, host review.Host, mgr process.Manager) *Plugin {
	return &Plugin{Config: cfg, Manager: mgr, Host: host}
}

func (p *Plugin) config() *config.Config {
	if p.Config == nil {
		return config.NewConfig()
	}
	return p.Config
}

func (p *Plugin) manager() process.Manager {
	if p.Manager == nil {
		return process.NewDefaultManager()
	}
	return p.Manager
}

// Diagnostics runs the analyzer once and returns what it reported.
// The host is not touched.
func (p *Plugin) Diagnostics(ctx context.Context) (diagnostic.Set, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := p.config()
	mgr := p.manager()
	logger := logging.FromContext(ctx)

	pyright.EnsureInstalled(ctx, mgr, pyright.InstallOptions{
		Executable:  cfg.Executable,
		AutoInstall: cfg.AutoInstallEnabled(),
		Command:     cfg.InstallCommand,
	})

	output, err := pyright.Invoke(ctx, mgr, pyright.InvokeOptions{
		Executable: cfg.Executable,
		BaseDir:    cfg.BaseDir,
		ConfigFile: cfg.ConfigFile,
	})
	if err != nil {
		return nil, err
	}

	set, source := pyright.ParseWithSource(output)

	counts := set.CountBySeverity()
	logger.Debug("analyzer output parsed",
		logging.FieldParser, source,
		logging.FieldDiagnosticsTotal, set.Len(),
		logging.FieldErrors, counts[diagnostic.SeverityError],
		logging.FieldWarnings, counts[diagnostic.SeverityWarning],
	)

	return set, nil
}

// Lint reports every diagnostic when the count is positive and above the
// threshold, either as one markdown table or as inline comments. Nothing
// reaches the host otherwise.
func (p *Plugin) Lint(ctx context.Context, useInline bool) error {
	if p.Host == nil {
		return ErrNoHost
	}

	set, err := p.Diagnostics(ctx)
	if err != nil {
		return err
	}

	cfg := p.config()
	mode := reporter.ModeFor(useInline)
	logger := logging.FromContext(ctx)

	if !policy.ShouldRender(set.Len(), cfg.Threshold) {
		logger.Debug("below threshold, nothing to report",
			logging.FieldDiagnosticsTotal, set.Len(),
			logging.FieldThreshold, cfg.Threshold,
		)
		return nil
	}

	renderer, err := reporter.New(reporter.Options{Mode: mode, Host: p.Host})
	if err != nil {
		return err
	}

	logger.Debug("rendering report", logging.FieldMode, mode, logging.FieldDiagnosticsTotal, set.Len())

	return renderer.Render(ctx, set)
}

// CountErrors records a single summary when the count exceeds the
// threshold: a failure when shouldFail is set, a warning otherwise.
func (p *Plugin) CountErrors(ctx context.Context, shouldFail bool) error {
	if p.Host == nil {
		return ErrNoHost
	}

	set, err := p.Diagnostics(ctx)
	if err != nil {
		return err
	}

	cfg := p.config()
	outcome := policy.Decide(set.Len(), cfg.Threshold, shouldFail)

	logging.FromContext(ctx).Debug("count evaluated",
		logging.FieldDiagnosticsTotal, set.Len(),
		logging.FieldThreshold, cfg.Threshold,
		logging.FieldShouldFail, shouldFail,
		logging.FieldOutcome, outcome,
	)

	switch outcome {
	case policy.OutcomeFail:
		p.Host.Fail(policy.Summary(set.Len()))
	case policy.OutcomeWarn:
		p.Host.Warn(policy.Summary(set.Len()))
	case policy.OutcomeNone:
	}

	return nil
}
