package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldWorkingDir = "working_dir"
	FieldFiles      = "files"

	// Analyzer invocation fields.
	FieldCommand    = "command"
	FieldExecutable = "executable"
	FieldBaseDir    = "base_dir"
	FieldProject    = "project"
	FieldOutputSize = "output_bytes"
	FieldParser     = "parser"

	// Policy fields.
	FieldThreshold   = "threshold"
	FieldMode        = "mode"
	FieldShouldFail  = "should_fail"
	FieldOutcome     = "outcome"
	FieldSCMProvider = "scm_provider"

	// Statistics fields.
	FieldDiagnosticsTotal = "diagnostics_total"
	FieldErrors           = "errors"
	FieldWarnings         = "warnings"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
