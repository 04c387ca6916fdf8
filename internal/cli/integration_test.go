package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gopyright/internal/cli"
	"github.com/yaklabco/gopyright/internal/process"
	"github.com/yaklabco/gopyright/pkg/review"
)

// twoIssues is analyzer output with one error and one warning.
const twoIssues = `{
  "version": "1.1.380",
  "generalDiagnostics": [
    {"file": "src/app.py", "severity": "error", "message": "\"foo\" is not defined",
     "range": {"start": {"line": 12, "character": 4}, "end": {"line": 12, "character": 7}}},
    {"file": "src/util.py", "severity": "warning", "message": "Import \"os\" is not accessed",
     "range": {"start": {"line": 1, "character": 7}}}
  ],
  "summary": {"errorCount": 1, "warningCount": 1}
}`

func githubActions(key string) string {
	return map[string]string{
		"GITHUB_ACTIONS":    "true",
		"GITHUB_REPOSITORY": "acme/app",
		"GITHUB_SHA":        "abc123",
	}[key]
}

func analyzerReturning(output string) *process.MockManager {
	return &process.MockManager{
		RunFunc: func(_ context.Context, _ string, _ ...string) ([]byte, error) {
			return []byte(output), nil
		},
	}
}

// runCLI executes args against a root command wired to mgr and returns
// stdout and the command error.
func runCLI(t *testing.T, mgr process.Manager, args ...string) (string, error) {
	t.Helper()

	cmd := cli.NewRootCommand(testInfo(), cli.WithProcessManager(mgr), cli.WithGetenv(githubActions))

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), err
}

func decodeReport(t *testing.T, out string) review.StatusReport {
	t.Helper()

	var report review.StatusReport
	require.NoError(t, json.Unmarshal([]byte(out), &report), "output: %s", out)
	return report
}

func TestIntegration_LintTable(t *testing.T) {
	t.Parallel()

	out, err := runCLI(t, analyzerReturning(twoIssues), "lint", "--format", "json")
	require.NoError(t, err)

	report := decodeReport(t, out)
	require.Len(t, report.Markdowns, 1)
	assert.Empty(t, report.Messages)

	body := report.Markdowns[0]
	assert.True(t, strings.HasPrefix(body, "## DangerPyright found issues"))
	assert.Contains(t, body,
		"| <a href='https://github.com/acme/app/blob/abc123/src/app.py#L12'>app.py#L12</a> | 12 | 4 | error | `foo` is not defined |")
	assert.Contains(t, body, "| warning | Import `os` is not accessed |")
}

func TestIntegration_LintInline(t *testing.T) {
	t.Parallel()

	out, err := runCLI(t, analyzerReturning(twoIssues), "lint", "--inline", "--format", "json")
	require.NoError(t, err)

	report := decodeReport(t, out)
	assert.Empty(t, report.Markdowns)
	assert.Equal(t, []review.Message{
		{Text: "error: `foo` is not defined", File: "src/app.py", Line: 12},
		{Text: "warning: Import `os` is not accessed", File: "src/util.py", Line: 1},
	}, report.Messages)
}

func TestIntegration_LintBelowThreshold(t *testing.T) {
	t.Parallel()

	out, err := runCLI(t, analyzerReturning(twoIssues), "lint", "--threshold", "2", "--format", "json")
	require.NoError(t, err)
	assert.True(t, decodeReport(t, out).Empty())
}

func TestIntegration_LintPlainTextFallback(t *testing.T) {
	t.Parallel()

	plain := "/work/a.py\n  /work/a.py:3:4 - warning: Unused import\n1 error, 0 warnings\n"
	out, err := runCLI(t, analyzerReturning(plain), "lint", "--inline", "--format", "json")
	require.NoError(t, err)

	assert.Equal(t, []review.Message{
		{Text: "warning: Unused import", File: "/work/a.py", Line: 3},
	}, decodeReport(t, out).Messages)
}

func TestIntegration_SCMProviderOverride(t *testing.T) {
	t.Parallel()

	out, err := runCLI(t, analyzerReturning(twoIssues), "lint", "--scm-provider", "gitlab", "--format", "json")
	require.NoError(t, err)

	report := decodeReport(t, out)
	require.Len(t, report.Markdowns, 1)
	assert.Contains(t, report.Markdowns[0], "| src/app.py | 12 | 4 | error |")
	assert.NotContains(t, report.Markdowns[0], "<a href=")
}

func TestIntegration_CountWarns(t *testing.T) {
	t.Parallel()

	out, err := runCLI(t, analyzerReturning(twoIssues), "count", "--format", "json")
	require.NoError(t, err)

	report := decodeReport(t, out)
	assert.Equal(t, []string{"2 Pyright type checking issues found"}, report.Warnings)
	assert.Empty(t, report.Failures)
}

func TestIntegration_CountFails(t *testing.T) {
	t.Parallel()

	out, err := runCLI(t, analyzerReturning(twoIssues), "count", "--fail", "--format", "json")
	require.ErrorIs(t, err, cli.ErrFailuresReported)
	assert.Equal(t, cli.ExitFailure, cli.ExitCode(err))

	report := decodeReport(t, out)
	assert.Equal(t, []string{"2 Pyright type checking issues found"}, report.Failures)
	assert.Empty(t, report.Warnings)
}

func TestIntegration_CountMarkdown(t *testing.T) {
	t.Parallel()

	out, err := runCLI(t, analyzerReturning(twoIssues), "count", "--fail", "--format", "md")
	require.ErrorIs(t, err, cli.ErrFailuresReported)
	assert.Contains(t, out, ":no_entry_sign:")
	assert.Contains(t, out, "2 Pyright type checking issues found")
}

func TestIntegration_TextReport(t *testing.T) {
	t.Parallel()

	out, err := runCLI(t, analyzerReturning(twoIssues), "count", "--color", "never")
	require.NoError(t, err)
	assert.Contains(t, out, "2 Pyright type checking issues found")
	assert.Contains(t, out, "1 warning")
}

func TestIntegration_CommandLine(t *testing.T) {
	t.Parallel()

	mgr := analyzerReturning("")
	_, err := runCLI(t, mgr, "lint", "src", "--project", "cfg.json", "--executable", "basedpyright", "--format", "json")
	require.NoError(t, err)

	runs := mgr.RunCalls()
	require.Len(t, runs, 1)
	assert.Equal(t, "basedpyright", runs[0].Name)
	assert.Equal(t, []string{"src", "--outputjson", "--project", "cfg.json"}, runs[0].Args)
}

func TestIntegration_NoInstall(t *testing.T) {
	t.Parallel()

	mgr := &process.MockManager{
		LookPathFunc: func(name string) (string, error) {
			return "", process.NotFound(name)
		},
		RunFunc: func(_ context.Context, _ string, _ ...string) ([]byte, error) {
			return nil, nil
		},
	}

	_, err := runCLI(t, mgr, "count", "--no-install", "--format", "json")
	require.NoError(t, err)

	runs := mgr.RunCalls()
	require.Len(t, runs, 1)
	assert.Equal(t, "pyright", runs[0].Name)
}

func TestIntegration_ExplicitConfig(t *testing.T) {
	t.Parallel()

	cfgFile := filepath.Join(t.TempDir(), "gopyright.yml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("threshold: 1\nshould_fail: true\n"), 0o644))

	out, err := runCLI(t, analyzerReturning(twoIssues), "count", "--config", cfgFile, "--format", "json")
	require.ErrorIs(t, err, cli.ErrFailuresReported)
	assert.Equal(t, []string{"2 Pyright type checking issues found"}, decodeReport(t, out).Failures)
}

func TestIntegration_InvalidConfig(t *testing.T) {
	t.Parallel()

	cfgFile := filepath.Join(t.TempDir(), "gopyright.yml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("threshold: -3\n"), 0o644))

	mgr := analyzerReturning(twoIssues)
	_, err := runCLI(t, mgr, "lint", "--config", cfgFile)
	require.Error(t, err)
	assert.Equal(t, cli.ExitConfigError, cli.ExitCode(err))
	assert.Empty(t, mgr.Calls())
}

func TestIntegration_UsageErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{name: "too many base dirs", args: []string{"lint", "a", "b"}},
		{name: "unknown flag", args: []string{"count", "--strict"}},
		{name: "bad format", args: []string{"lint", "--format", "sarif"}},
		{name: "bad color", args: []string{"lint", "--color", "sometimes"}},
		{name: "bad threshold", args: []string{"lint", "--threshold", "lots"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mgr := analyzerReturning(twoIssues)
			_, err := runCLI(t, mgr, tt.args...)
			require.Error(t, err)
			assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCode(err), "error: %v", err)
			assert.Empty(t, mgr.Calls())
		})
	}
}

func TestIntegration_AnalyzerStartFailure(t *testing.T) {
	t.Parallel()

	mgr := &process.MockManager{
		RunFunc: func(_ context.Context, name string, _ ...string) ([]byte, error) {
			return nil, process.NotFound(name)
		},
	}

	_, err := runCLI(t, mgr, "lint", "--format", "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "run pyright")
	assert.Equal(t, cli.ExitFailure, cli.ExitCode(err))
}

func TestIntegration_InitYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".gopyright.yml")

	_, err := runCLI(t, nil, "init", "--output", path)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "threshold")

	_, err = runCLI(t, nil, "init", "--output", path)
	require.Error(t, err, "existing file without a terminal needs --force")
	assert.Contains(t, err.Error(), "--force")

	_, err = runCLI(t, nil, "init", "--output", path, "--full", "--force")
	require.NoError(t, err)

	content, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "\nthreshold: 0")

	backup, err := os.ReadFile(path + ".bak")
	require.NoError(t, err)
	assert.Contains(t, string(backup), "# threshold: 0")
}

func TestIntegration_InitPyproject(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "pyproject.toml")
	require.NoError(t, os.WriteFile(path, []byte("[project]\nname = \"demo\""), 0o644))

	_, err := runCLI(t, nil, "init", "--template", "pyproject", "--output", path, "--full")
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "[project]\nname = \"demo\"\n\n"))
	assert.Contains(t, string(content), "[tool.gopyright]\n")
	assert.FileExists(t, path+".bak")

	_, err = runCLI(t, nil, "init", "--template", "pyproject", "--output", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already has")
}

func TestIntegration_InitInvalidTemplate(t *testing.T) {
	t.Parallel()

	_, err := runCLI(t, nil, "init", "--template", "json", "--output", filepath.Join(t.TempDir(), "x"))
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCode(err))
}
