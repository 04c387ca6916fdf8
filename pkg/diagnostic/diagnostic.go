// Package diagnostic defines the normalized issue model shared by the
// analyzer parser and the report renderers.
package diagnostic

import "strconv"

// Severity values emitted by Pyright. Any other string passes through verbatim.
const (
	SeverityError       = "error"
	SeverityWarning     = "warning"
	SeverityInformation = "information"
)

// Diagnostic is one issue reported by the analyzer.
//
// Line and Column are tool-native and passed through unchanged; Pyright's
// JSON output is 0-based. They are nil when the analyzer omitted them.
type Diagnostic struct {
	// File is the path as emitted by the analyzer. It is not normalized.
	File string `json:"file"`

	// Line is the start line of the issue.
	Line *int `json:"line,omitempty"`

	// Column is the start character offset of the issue.
	Column *int `json:"column,omitempty"`

	// Severity is usually error, warning or information.
	Severity string `json:"severity"`

	// Message is the free-text description. It may contain quotes.
	Message string `json:"message"`
}

// New builds a Diagnostic with both positions set.
func New(file string, line, column int, severity, message string) Diagnostic {
	return Diagnostic{
		File:     file,
		Line:     &line,
		Column:   &column,
		Severity: severity,
		Message:  message,
	}
}

// LineNumber returns the line, or 0 when it is absent.
func (d Diagnostic) LineNumber() int {
	if d.Line == nil {
		return 0
	}
	return *d.Line
}

// LineText returns the line as a decimal string, or "" when absent.
func (d Diagnostic) LineText() string {
	return optionalText(d.Line)
}

// ColumnText returns the column as a decimal string, or "" when absent.
func (d Diagnostic) ColumnText() string {
	return optionalText(d.Column)
}

func optionalText(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

// Set is the ordered collection of diagnostics from a single invocation.
type Set []Diagnostic

// Len returns the number of diagnostics.
func (s Set) Len() int {
	return len(s)
}

// Empty reports whether the set holds no diagnostics.
func (s Set) Empty() bool {
	return len(s) == 0
}

// CountBySeverity tallies diagnostics per severity string.
func (s Set) CountBySeverity() map[string]int {
	counts := make(map[string]int)
	for _, d := range s {
		counts[d.Severity]++
	}
	return counts
}
