package pyright

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/yaklabco/gopyright/pkg/diagnostic"
)

// ErrMalformedOutput is returned by ParseJSON when the payload does not
// conform to the analyzer's JSON report schema.
var ErrMalformedOutput = errors.New("malformed analyzer output")

// plainLinePattern matches "<file>:<line>:<column> - <severity>: <message>".
var plainLinePattern = regexp.MustCompile(`^(.+?):(\d+):(\d+)\s*-\s*(\w+):\s*(.+)$`)

// jsonReport mirrors the parts of `pyright --outputjson` we consume.
// Pointer fields distinguish absent values from zero values, and any type
// mismatch makes decoding fail.
type jsonReport struct {
	GeneralDiagnostics []*jsonDiagnostic `json:"generalDiagnostics"`
}

type jsonDiagnostic struct {
	File     *string    `json:"file"`
	Severity *string    `json:"severity"`
	Message  *string    `json:"message"`
	Range    *jsonRange `json:"range"`
}

type jsonRange struct {
	Start *jsonPosition `json:"start"`
}

type jsonPosition struct {
	Line      *int `json:"line"`
	Character *int `json:"character"`
}

// UnmarshalJSON rejects keys that differ from a field name only by case.
func (r *jsonReport) UnmarshalJSON(data []byte) error {
	if err := exactKeys(data, "generalDiagnostics"); err != nil {
		return err
	}
	type plain jsonReport
	return json.Unmarshal(data, (*plain)(r))
}

// UnmarshalJSON rejects keys that differ from a field name only by case.
func (d *jsonDiagnostic) UnmarshalJSON(data []byte) error {
	if err := exactKeys(data, "file", "severity", "message", "range"); err != nil {
		return err
	}
	type plain jsonDiagnostic
	return json.Unmarshal(data, (*plain)(d))
}

// UnmarshalJSON rejects keys that differ from a field name only by case.
func (r *jsonRange) UnmarshalJSON(data []byte) error {
	if err := exactKeys(data, "start"); err != nil {
		return err
	}
	type plain jsonRange
	return json.Unmarshal(data, (*plain)(r))
}

// UnmarshalJSON rejects keys that differ from a field name only by case.
func (p *jsonPosition) UnmarshalJSON(data []byte) error {
	if err := exactKeys(data, "line", "character"); err != nil {
		return err
	}
	type plain jsonPosition
	return json.Unmarshal(data, (*plain)(p))
}

// exactKeys fails when data is not an object or when one of its keys
// case-folds to a name without being equal to it. encoding/json would
// otherwise bind such keys to the field.
func exactKeys(data []byte, names ...string) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	for key := range fields {
		for _, name := range names {
			if key != name && strings.EqualFold(key, name) {
				return fmt.Errorf("key %q does not match field %q", key, name)
			}
		}
	}
	return nil
}

// Parse converts raw analyzer output into a diagnostic set.
//
// Blank output yields an empty set without attempting either parser.
// Otherwise the structured JSON parser is tried first; if the payload is
// malformed, the line-oriented parser is used instead.
func Parse(output string) diagnostic.Set {
	set, _ := ParseWithSource(output)
	return set
}

// Source identifies which parser produced a diagnostic set.
type Source string

// Parser sources.
const (
	SourceNone  Source = "none"
	SourceJSON  Source = "json"
	SourcePlain Source = "plain"
)

// ParseWithSource is Parse that also reports which parser was used.
func ParseWithSource(output string) (diagnostic.Set, Source) {
	if strings.TrimSpace(output) == "" {
		return diagnostic.Set{}, SourceNone
	}

	set, err := ParseJSON(output)
	if err == nil {
		return set, SourceJSON
	}

	return ParsePlain(output), SourcePlain
}

// ParseJSON strictly parses a JSON report.
//
// Any schema violation is reported as ErrMalformedOutput: invalid JSON,
// trailing data, a non-object top level, a non-array diagnostics list,
// non-object entries, fields of the wrong type, or known keys spelled with
// different case. Unknown keys are ignored. Absent fields are
// tolerated: severity defaults to "error", positions stay nil, and a
// missing diagnostics list yields an empty set.
func ParseJSON(output string) (diagnostic.Set, error) {
	var report *jsonReport
	if err := json.Unmarshal([]byte(output), &report); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedOutput, err)
	}
	if report == nil {
		return nil, fmt.Errorf("%w: top-level value is null", ErrMalformedOutput)
	}

	set := make(diagnostic.Set, 0, len(report.GeneralDiagnostics))
	for idx, entry := range report.GeneralDiagnostics {
		if entry == nil {
			return nil, fmt.Errorf("%w: diagnostic %d is null", ErrMalformedOutput, idx)
		}
		set = append(set, entry.normalize())
	}

	return set, nil
}

func (d *jsonDiagnostic) normalize() diagnostic.Diagnostic {
	out := diagnostic.Diagnostic{
		File:     deref(d.File),
		Severity: deref(d.Severity),
		Message:  deref(d.Message),
	}
	if d.Severity == nil {
		out.Severity = diagnostic.SeverityError
	}
	if d.Range != nil && d.Range.Start != nil {
		out.Line = d.Range.Start.Line
		out.Column = d.Range.Start.Character
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ParsePlain parses the analyzer's human-readable output line by line.
// Lines that do not match "<file>:<line>:<column> - <severity>: <message>"
// are skipped.
func ParsePlain(output string) diagnostic.Set {
	set := diagnostic.Set{}

	scanner := bufio.NewScanner(strings.NewReader(output))
	scanner.Buffer(make([]byte, 0, 64*1024), len(output)+1)

	for scanner.Scan() {
		if diag, ok := parsePlainLine(scanner.Text()); ok {
			set = append(set, diag)
		}
	}

	return set
}

func parsePlainLine(line string) (diagnostic.Diagnostic, bool) {
	match := plainLinePattern.FindStringSubmatch(line)
	if match == nil {
		return diagnostic.Diagnostic{}, false
	}

	lineNo, err := strconv.Atoi(match[2])
	if err != nil {
		return diagnostic.Diagnostic{}, false
	}
	column, err := strconv.Atoi(match[3])
	if err != nil {
		return diagnostic.Diagnostic{}, false
	}

	return diagnostic.New(
		strings.TrimSpace(match[1]),
		lineNo,
		column,
		strings.ToLower(match[4]),
		strings.TrimSpace(match[5]),
	), true
}
