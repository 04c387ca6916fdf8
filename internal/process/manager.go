package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Manager executes external programs.
type Manager interface {
	// Run executes name with args synchronously and returns everything the
	// process wrote to stdout. Output is buffered in full before returning.
	//
	// When the process starts but exits with a non-zero status, Run returns
	// the captured stdout together with an *exec.ExitError so callers can
	// decide whether the status matters.
	Run(ctx context.Context, name string, args ...string) ([]byte, error)

	// LookPath reports the resolved path of an executable on the search path.
	LookPath(name string) (string, error)
}

// DefaultManager implements Manager using os/exec.
// It holds no state and is safe for concurrent use.
type DefaultManager struct{}

// NewDefaultManager creates a Manager that runs real processes.
func NewDefaultManager() *DefaultManager {
	return &DefaultManager{}
}

// Run implements Manager.
func (m *DefaultManager) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return stdout.Bytes(), err
		}
		if stderr.Len() > 0 {
			return nil, fmt.Errorf("%w: %s", err, strings.TrimSpace(stderr.String()))
		}
		return nil, err
	}

	return stdout.Bytes(), nil
}

// LookPath implements Manager.
func (m *DefaultManager) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// IsExitError reports whether err only signals a non-zero exit status.
func IsExitError(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr)
}
