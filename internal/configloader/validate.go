package configloader

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gopyright/pkg/config"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the name of the invalid field (e.g., "threshold").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}

	if e.Field != "" {
		parts = append(parts, e.Field)
	}

	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

// knownProviders lists SCM providers the review host understands.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownProviders = map[string]bool{
	"github":           true,
	"gitlab":           true,
	"bitbucket_cloud":  true,
	"bitbucket_server": true,
	"vsts":             true,
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.Threshold < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "threshold",
			Value:   cfg.Threshold,
			Message: "threshold must be >= 0",
		})
	}

	if strings.TrimSpace(cfg.BaseDir) == "" {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "base_dir",
			Value:   cfg.BaseDir,
			Message: "base_dir must not be empty",
		})
	}

	if strings.TrimSpace(cfg.Executable) == "" {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "executable",
			Value:   cfg.Executable,
			Message: "executable must not be empty",
		})
	}

	if cfg.Format != "" && !cfg.Format.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format",
			Value:   cfg.Format,
			Message: fmt.Sprintf("invalid format %q; must be one of: text, json, markdown", cfg.Format),
		})
	}

	if cfg.AutoInstallEnabled() && len(cfg.InstallCommand) == 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "install_command",
			Value:   cfg.InstallCommand,
			Message: "install_command must not be empty when auto_install is enabled",
		})
	}

	if cfg.SCMProvider != "" && !knownProviders[cfg.SCMProvider] {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "scm_provider",
			Value:   cfg.SCMProvider,
			Message: fmt.Sprintf("unknown scm provider %q; links will use plain file paths", cfg.SCMProvider),
		})
	}

	return result
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}

// IsValidFormat returns true if the format is valid.
func IsValidFormat(f config.OutputFormat) bool {
	return f.IsValid()
}
