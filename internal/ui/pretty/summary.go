package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const summaryDividerWidth = 40

// Status counts the entries a review session collected.
type Status struct {
	Failures  int
	Warnings  int
	Markdowns int
	Messages  int
}

// Total returns the number of entries of every kind.
func (st Status) Total() int {
	return st.Failures + st.Warnings + st.Markdowns + st.Messages
}

// FormatStatusOneLine formats a status as a single line.
// Example: "1 failure, 2 warnings, 1 report".
func (s *Styles) FormatStatusOneLine(st Status) string {
	if st.Total() == 0 {
		return s.Success.Render("No issues reported") + "\n"
	}

	parts := make([]string, 0, 4)
	if st.Failures > 0 {
		parts = append(parts, s.Failure.Render(plural(st.Failures, "failure", "failures")))
	}
	if st.Warnings > 0 {
		parts = append(parts, s.Warning.Render(plural(st.Warnings, "warning", "warnings")))
	}
	if st.Markdowns > 0 {
		parts = append(parts, plural(st.Markdowns, "report", "reports"))
	}
	if st.Messages > 0 {
		parts = append(parts, plural(st.Messages, "inline comment", "inline comments"))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatStatus formats a status as a summary block.
func (s *Styles) FormatStatus(st Status) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Failures:          " + s.countStyle(st.Failures, s.Failure) + "\n")
	builder.WriteString("  Warnings:          " + s.countStyle(st.Warnings, s.Warning) + "\n")
	builder.WriteString("  Reports:           " + s.SummaryValue.Render(strconv.Itoa(st.Markdowns)) + "\n")
	builder.WriteString("  Inline comments:   " + s.SummaryValue.Render(strconv.Itoa(st.Messages)) + "\n")

	builder.WriteString("\n")

	switch {
	case st.Failures > 0:
		builder.WriteString(s.Failure.Render("Review failed"))
	case st.Warnings > 0:
		builder.WriteString(s.Warning.Render("Review passed with warnings"))
	default:
		builder.WriteString(s.Success.Render("Review passed"))
	}
	builder.WriteString("\n")

	return builder.String()
}

func (s *Styles) countStyle(n int, style lipgloss.Style) string {
	if n == 0 {
		return s.SummaryValue.Render("0")
	}
	return style.Render(strconv.Itoa(n))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
