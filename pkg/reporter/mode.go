package reporter

import "fmt"

// Mode selects how diagnostics are presented to the review host.
type Mode string

// Presentation modes.
const (
	// ModeTable aggregates all diagnostics into one markdown table.
	ModeTable Mode = "table"
	// ModeInline annotates each diagnostic at its file and line.
	ModeInline Mode = "inline"
)

// ParseMode parses a mode string, returning an error for unknown modes.
func ParseMode(modeStr string) (Mode, error) {
	switch modeStr {
	case "table", "":
		return ModeTable, nil
	case "inline":
		return ModeInline, nil
	default:
		return "", fmt.Errorf("unknown mode %q; valid modes: table, inline", modeStr)
	}
}

// ModeFor maps the lint inline flag onto a mode.
func ModeFor(useInline bool) Mode {
	if useInline {
		return ModeInline
	}
	return ModeTable
}

// String returns the string representation of the mode.
func (m Mode) String() string {
	return string(m)
}

// IsValid returns true if the mode is a known valid mode.
func (m Mode) IsValid() bool {
	switch m {
	case ModeTable, ModeInline:
		return true
	default:
		return false
	}
}
