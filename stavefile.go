//go:build stave

package main

import (
	"cmp"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/yaklabco/stave/pkg/sh"
	"github.com/yaklabco/stave/pkg/st"
	"github.com/yaklabco/stave/pkg/target"
)

// Default target runs build.
var Default = Build

// Aliases for common targets.
var Aliases = map[string]any{
	"b":   Build,
	"t":   Test.Default,
	"l":   Lint.Default,
	"c":   Check,
	"i":   Install,
	"fmt": Lint.Fmt,
	"s":   Smoke.Default,
}

// Namespace types group related targets.
type (
	Test  st.Namespace
	Lint  st.Namespace
	CI    st.Namespace
	Smoke st.Namespace
)

// Build compiles bin/gopyright with version info when sources changed.
func Build() error {
	rebuild, err := target.Dir("bin/gopyright", "cmd/", "pkg/", "internal/", "go.mod", "go.sum")
	if err != nil {
		return err
	}
	if !rebuild {
		fmt.Println("bin/gopyright is up to date")
		return nil
	}
	fmt.Println("Building gopyright...")
	return sh.RunV("go", "build", "-ldflags", ldflags(), "-o", "bin/gopyright", "./cmd/gopyright")
}

// Check runs format, lint, and test sequentially.
func Check() {
	st.SerialDeps(Lint.Fmt, Lint.Default, Test.Default)
}

// Clean removes build artifacts.
func Clean() error {
	fmt.Println("Cleaning build artifacts...")
	if err := sh.Rm("bin"); err != nil {
		return err
	}
	return sh.Rm("coverage.out")
}

// Install installs gopyright to $GOBIN or $GOPATH/bin.
func Install() error {
	fmt.Println("Installing gopyright...")
	return sh.RunV("go", "install", "-ldflags", ldflags(), "./cmd/gopyright")
}

// Default runs all tests using gotestsum with race detection and coverage.
func (Test) Default() error {
	fmt.Println("Running tests...")
	return gotestsum("./...", "-coverprofile=coverage.out", "-covermode=atomic")
}

// Parser runs the analyzer output parser and report renderer tests.
func (Test) Parser() error {
	fmt.Println("Running parser and reporter tests...")
	return gotestsum("./pkg/pyright/...", "./pkg/reporter/...", "./pkg/policy/...")
}

// Integration runs the end-to-end CLI tests against the mock analyzer.
func (Test) Integration() error {
	fmt.Println("Running CLI integration tests...")
	return gotestsum("./internal/cli/...", "-run", "^TestIntegration_")
}

// Default runs golangci-lint with auto-fix.
func (Lint) Default() error {
	fmt.Println("Running linters...")
	return sh.RunV("golangci-lint", "run", "--fix", "./...")
}

// CI runs golangci-lint without auto-fix.
func (Lint) CI() error {
	fmt.Println("Running linters (CI mode)...")
	return sh.RunV("golangci-lint", "run", "./...")
}

// Fmt formats all Go code.
func (Lint) Fmt() error {
	fmt.Println("Formatting code...")
	return sh.RunV("gofmt", "-w", ".")
}

// FmtCheck verifies code formatting without modifying files.
func (Lint) FmtCheck() error {
	out, err := sh.Output("gofmt", "-l", ".")
	if err != nil {
		return fmt.Errorf("gofmt check failed: %w", err)
	}
	if out != "" {
		return fmt.Errorf("unformatted files:\n%s\nRun 'stave lint:fmt' to fix", out)
	}
	fmt.Println("✓ Code formatting OK")
	return nil
}

// Vet runs go vet.
func (Lint) Vet() error {
	fmt.Println("Running go vet...")
	return sh.RunV("go", "vet", "./...")
}

// Gate runs every check CI requires before merge.
func (CI) Gate() error {
	fmt.Println("Running CI gate checks...")
	st.SerialDeps(
		Lint.FmtCheck,
		Lint.Vet,
		Lint.CI,
		Build,
		Test.Default,
		CI.ModTidy,
		CI.Cross,
		Smoke.Default,
	)
	fmt.Println("\n✓ All CI gate checks passed!")
	return nil
}

// ModTidy fails when go mod tidy would change go.mod or go.sum.
func (CI) ModTidy() error {
	fmt.Println("Checking go.mod/go.sum are tidy...")
	out, err := sh.Output("go", "mod", "tidy", "-diff")
	if err != nil {
		return fmt.Errorf("go.mod or go.sum is not tidy:\n%s", out)
	}
	fmt.Println("✓ go.mod/go.sum are tidy")
	return nil
}

// Cross builds the platforms CI runners review pull requests on.
func (CI) Cross() error {
	fmt.Println("Cross-compiling release platforms...")
	for _, goos := range []string{"linux", "darwin", "windows"} {
		for _, goarch := range []string{"amd64", "arm64"} {
			fmt.Printf("  Building %s/%s...\n", goos, goarch)
			env := map[string]string{"GOOS": goos, "GOARCH": goarch, "CGO_ENABLED": "0"}
			if err := sh.RunWith(env, "go", "build", "-o", os.DevNull, "./cmd/gopyright"); err != nil {
				return fmt.Errorf("build failed for %s/%s: %w", goos, goarch, err)
			}
		}
	}
	fmt.Println("✓ All platforms build successfully")
	return nil
}

// Default builds the binary and exercises the commands that need no analyzer.
func (Smoke) Default() error {
	st.Deps(Build)
	fmt.Println("Running smoke checks...")
	if err := sh.RunV("bin/gopyright", "version"); err != nil {
		return err
	}

	dir, err := os.MkdirTemp("", "gopyright-smoke")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	if err := sh.RunV("bin/gopyright", "init", "--full", "--output", filepath.Join(dir, ".gopyright.yml")); err != nil {
		return err
	}
	return sh.RunV("bin/gopyright", "init", "--template", "pyproject", "--output", filepath.Join(dir, "pyproject.toml"))
}

// Pyright runs count against a Python project using the real analyzer.
// Set GOPYRIGHT_SMOKE_DIR to the project directory (default ".").
func (Smoke) Pyright() error {
	st.Deps(Build)
	if _, err := exec.LookPath("pyright"); err != nil {
		return errors.New("pyright not found; install with: npm install -g pyright")
	}
	dir := cmp.Or(os.Getenv("GOPYRIGHT_SMOKE_DIR"), ".")
	return sh.RunV("bin/gopyright", "count", dir, "--no-install", "--format", "markdown")
}

// gotestsum runs go test through gotestsum with race detection.
// STAVE_NUM_PROCESSORS bounds package and test parallelism.
func gotestsum(args ...string) error {
	nCores := cmp.Or(os.Getenv("STAVE_NUM_PROCESSORS"), "4")
	cmdArgs := []string{
		"tool", "gotestsum",
		"-f", "pkgname-and-test-fails",
		"--",
		"-race",
		"-p", nCores,
		"-parallel", nCores,
	}
	return sh.RunV("go", append(cmdArgs, args...)...)
}

// gitOutput runs a git command and returns trimmed stdout, or empty on error.
func gitOutput(args ...string) string {
	out, err := sh.Output("git", args...)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}

// ldflags returns the linker flags for version injection.
func ldflags() string {
	version := cmp.Or(gitOutput("describe", "--tags", "--always", "--dirty"), "dev")
	commit := cmp.Or(gitOutput("rev-parse", "--short", "HEAD"), "none")
	date := time.Now().UTC().Format(time.RFC3339)
	return fmt.Sprintf(
		"-X main.version=%s -X main.commit=%s -X main.date=%s",
		version, commit, date,
	)
}
