package pretty

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/gopyright/pkg/diagnostic"
)

// Table formatting constants.
const (
	tablePadding     = 2
	tableColumnCount = 4 // FILE, LINE, SEVERITY, MESSAGE
	minFileWidth     = 20
	minLineWidth     = 4
	minSeverityWidth = 8
	minMessageWidth  = 30
	heavySeparator   = "="
)

// TableRow represents a single row in the comment table.
type TableRow struct {
	File     string
	Line     string
	Severity string
	Message  string
}

// TableFormatter formats inline comments as a styled table.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = DefaultTermWidth
	}
	return &TableFormatter{
		styles:    styles,
		termWidth: termWidth,
	}
}

type columnWidths struct {
	file     int
	line     int
	severity int
	message  int
}

// FormatTable formats rows as a table. No rows render as "".
func (t *TableFormatter) FormatTable(rows []TableRow) string {
	if len(rows) == 0 {
		return ""
	}

	widths := t.calculateColumnWidths(rows)

	var builder strings.Builder

	builder.WriteString(t.formatHeader(widths))
	builder.WriteString("\n")
	builder.WriteString(t.formatSeparator(widths))
	builder.WriteString("\n")

	for _, row := range rows {
		builder.WriteString(t.formatRow(row, widths))
		builder.WriteString("\n")
	}

	builder.WriteString(t.formatSeparator(widths))
	builder.WriteString("\n")

	return builder.String()
}

// calculateColumnWidths sizes columns to content, then shrinks message and
// file columns to fit the terminal.
func (t *TableFormatter) calculateColumnWidths(rows []TableRow) columnWidths {
	widths := columnWidths{
		file:     minFileWidth,
		line:     minLineWidth,
		severity: minSeverityWidth,
		message:  minMessageWidth,
	}

	for _, row := range rows {
		widths.file = max(widths.file, len(row.File))
		widths.line = max(widths.line, len(row.Line))
		widths.severity = max(widths.severity, len(row.Severity))
		widths.message = max(widths.message, len(row.Message))
	}

	if total := widths.total(); total > t.termWidth {
		widths.message = max(minMessageWidth, widths.message-(total-t.termWidth))
		if total = widths.total(); total > t.termWidth {
			widths.file = max(minFileWidth, widths.file-(total-t.termWidth))
		}
	}

	return widths
}

func (w columnWidths) total() int {
	return w.file + w.line + w.severity + w.message + tablePadding*tableColumnCount
}

func (t *TableFormatter) formatHeader(widths columnWidths) string {
	header := fmt.Sprintf(" %-*s  %-*s  %-*s  %-*s ",
		widths.file, "FILE",
		widths.line, "LINE",
		widths.severity, "SEVERITY",
		widths.message, "MESSAGE",
	)
	return t.styles.TableHeader.Render(header)
}

func (t *TableFormatter) formatSeparator(widths columnWidths) string {
	return t.styles.TableSeparator.Render(strings.Repeat(heavySeparator, widths.total()))
}

func (t *TableFormatter) formatRow(row TableRow, widths columnWidths) string {
	content := fmt.Sprintf(" %-*s  %-*s  %-*s  %-*s",
		widths.file, truncateFilePath(row.File, widths.file),
		widths.line, truncateString(row.Line, widths.line),
		widths.severity, truncateString(row.Severity, widths.severity),
		widths.message, truncateString(row.Message, widths.message),
	)
	return t.rowStyle(row.Severity).Render(content)
}

func (t *TableFormatter) rowStyle(severity string) lipgloss.Style {
	switch severity {
	case diagnostic.SeverityError:
		return t.styles.TableErrorRow
	case diagnostic.SeverityWarning:
		return t.styles.TableWarnRow
	case diagnostic.SeverityInformation:
		return t.styles.TableInfoRow
	default:
		return lipgloss.NewStyle()
	}
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(str string, maxLen int) string {
	if len(str) <= maxLen {
		return str
	}
	if maxLen <= 3 {
		return str[:maxLen]
	}
	return str[:maxLen-3] + "..."
}

// truncateFilePath truncates a file path, preserving the end (filename) rather than beginning.
func truncateFilePath(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}
	if maxLen <= 3 {
		return path[len(path)-maxLen:]
	}
	return "..." + path[len(path)-maxLen+3:]
}
