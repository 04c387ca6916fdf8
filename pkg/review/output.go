package review

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/yaklabco/gopyright/internal/ui/pretty"
)

const bufWriterSize = 32 * 1024

// OutputOptions controls WriteReport.
type OutputOptions struct {
	// Format selects the output format. Defaults to FormatText.
	Format Format

	// Color is "auto", "always" or "never". Only text output is styled.
	Color string
}

// WriteReport writes a status report to w.
func WriteReport(w io.Writer, report StatusReport, opts OutputOptions) (err error) {
	bw := bufio.NewWriterSize(w, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	switch opts.Format {
	case FormatText, "":
		colorEnabled := pretty.IsColorEnabled(opts.Color, w)
		writeText(bw, report, pretty.NewStyles(colorEnabled), pretty.TerminalWidth(w))
		return nil
	case FormatJSON:
		encoder := json.NewEncoder(bw)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(report); err != nil {
			return fmt.Errorf("encode status report: %w", err)
		}
		return nil
	case FormatMarkdown:
		writeMarkdown(bw, report)
		return nil
	default:
		return fmt.Errorf("unknown format %q", opts.Format)
	}
}

func writeText(w io.Writer, report StatusReport, styles *pretty.Styles, termWidth int) {
	var failures, warnings strings.Builder
	for _, text := range report.Failures {
		failures.WriteString(styles.FormatFailure(text))
	}
	for _, text := range report.Warnings {
		warnings.WriteString(styles.FormatWarning(text))
	}

	fmt.Fprint(w, styles.FormatSection("Failures", failures.String()))
	fmt.Fprint(w, styles.FormatSection("Warnings", warnings.String()))

	for _, body := range report.Markdowns {
		fmt.Fprintln(w, strings.TrimRight(body, "\n"))
		fmt.Fprintln(w)
	}

	if len(report.Messages) > 0 {
		rows := make([]pretty.TableRow, 0, len(report.Messages))
		for _, msg := range report.Messages {
			rows = append(rows, pretty.TableRow{
				File:     msg.File,
				Line:     strconv.Itoa(msg.Line),
				Severity: messageSeverity(msg.Text),
				Message:  msg.Text,
			})
		}
		table := pretty.NewTableFormatter(styles, termWidth).FormatTable(rows)
		fmt.Fprint(w, styles.FormatSection("Inline comments", table))
	}

	fmt.Fprint(w, styles.FormatStatusOneLine(pretty.Status{
		Failures:  len(report.Failures),
		Warnings:  len(report.Warnings),
		Markdowns: len(report.Markdowns),
		Messages:  len(report.Messages),
	}))
}

// messageSeverity extracts the "<severity>:" prefix of an inline comment.
func messageSeverity(text string) string {
	sev, _, ok := strings.Cut(text, ":")
	if !ok || strings.ContainsAny(sev, " \t") {
		return ""
	}
	return sev
}

// writeMarkdown renders the report the way a review bot comments on a
// pull request: failure and warning tables, then the markdown bodies, then
// the inline comments as a list.
func writeMarkdown(w io.Writer, report StatusReport) {
	writeNoticeTable(w, report.Failures, "Fail", "Fails", ":no_entry_sign:")
	writeNoticeTable(w, report.Warnings, "Warning", "Warnings", ":warning:")

	for _, body := range report.Markdowns {
		fmt.Fprintln(w, strings.TrimRight(body, "\n"))
		fmt.Fprintln(w)
	}

	if len(report.Messages) > 0 {
		fmt.Fprintln(w, "#### Inline comments")
		fmt.Fprintln(w)
		for _, msg := range report.Messages {
			fmt.Fprintf(w, "- `%s:%d` %s\n", msg.File, msg.Line, msg.Text)
		}
		fmt.Fprintln(w)
	}
}

func writeNoticeTable(w io.Writer, entries []string, one, many, icon string) {
	if len(entries) == 0 {
		return
	}

	title := many
	if len(entries) == 1 {
		title = one
	}

	fmt.Fprintf(w, "|      | %d %s |\n", len(entries), title)
	fmt.Fprintln(w, "|------|------|")
	for _, entry := range entries {
		fmt.Fprintf(w, "| %s | %s |\n", icon, entry)
	}
	fmt.Fprintln(w)
}
