package cli

import (
	"errors"

	"github.com/yaklabco/gopyright/internal/configloader"
)

// Exit codes for gopyright.
const (
	// ExitSuccess indicates the review passed, possibly with warnings.
	ExitSuccess = 0

	// ExitFailure indicates the review recorded a failure or a command failed.
	ExitFailure = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65
)

var (
	// ErrFailuresReported is returned when the review session holds at
	// least one failure. It only signals the exit code.
	ErrFailuresReported = errors.New("review reported failures")

	// ErrUsage marks invalid command-line usage.
	ErrUsage = errors.New("invalid usage")

	// ErrConfig marks configuration that could not be loaded or validated.
	ErrConfig = errors.New("configuration error")
)

// ExitCode maps an error returned by a command onto a process exit code.
func ExitCode(err error) int {
	var validationErr *configloader.ValidationError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrUsage):
		return ExitInvalidUsage
	case errors.Is(err, ErrConfig), errors.As(err, &validationErr):
		return ExitConfigError
	default:
		return ExitFailure
	}
}
