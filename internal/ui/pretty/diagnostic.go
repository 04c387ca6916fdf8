package pretty

import (
	"strings"

	"github.com/yaklabco/gopyright/pkg/diagnostic"
)

// FormatSeverity returns a styled severity string. Unknown severities are
// returned unstyled.
func (s *Styles) FormatSeverity(sev string) string {
	switch sev {
	case diagnostic.SeverityError:
		return s.Error.Render(sev)
	case diagnostic.SeverityWarning:
		return s.Warning.Render(sev)
	case diagnostic.SeverityInformation:
		return s.Info.Render(sev)
	default:
		return sev
	}
}

// FormatLocation formats "file:line", omitting the line when empty.
func (s *Styles) FormatLocation(file, line string) string {
	if line == "" {
		return s.FilePath.Render(file)
	}
	return s.FilePath.Render(file) + s.Location.Render(":"+line)
}

// FormatFailure formats a failure entry with a leading marker.
func (s *Styles) FormatFailure(text string) string {
	return "  " + s.Failure.Render("✖") + " " + s.Message.Render(text) + "\n"
}

// FormatWarning formats a warning entry with a leading marker.
func (s *Styles) FormatWarning(text string) string {
	return "  " + s.Warning.Render("!") + " " + s.Message.Render(text) + "\n"
}

// FormatSection formats a titled block. Empty blocks render as "".
func (s *Styles) FormatSection(title, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return s.SummaryTitle.Render(title) + "\n" + body
}
