package reporter

import (
	"context"
	"strings"

	"github.com/yaklabco/gopyright/internal/logging"
	"github.com/yaklabco/gopyright/pkg/diagnostic"
	"github.com/yaklabco/gopyright/pkg/review"
)

// TableTemplate is the heading and header row of the aggregated report.
const TableTemplate = "## DangerPyright found issues\n\n" +
	"| File | Line | Column | Severity | Reason |\n" +
	"|------|------|--------|----------|--------|\n"

// TableRenderer emits all diagnostics as a single markdown body.
type TableRenderer struct {
	host     review.Host
	provider review.Provider
}

// NewTableRenderer creates a table renderer writing to host.
func NewTableRenderer(host review.Host, provider review.Provider) *TableRenderer {
	return &TableRenderer{host: host, provider: provider}
}

// Render implements Renderer.
func (r *TableRenderer) Render(ctx context.Context, set diagnostic.Set) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	logging.FromContext(ctx).Debug("rendering table",
		logging.FieldDiagnosticsTotal, set.Len(),
		logging.FieldSCMProvider, r.provider.Name())

	r.host.Markdown(FormatTable(set, r.provider))
	return nil
}

// FormatTable renders set as the markdown report body.
func FormatTable(set diagnostic.Set, provider review.Provider) string {
	var builder strings.Builder
	builder.WriteString(TableTemplate)

	for _, diag := range set {
		line := diag.LineText()
		builder.WriteString("| ")
		builder.WriteString(ResolveLink(provider, diag.File, line))
		builder.WriteString(" | ")
		builder.WriteString(line)
		builder.WriteString(" | ")
		builder.WriteString(diag.ColumnText())
		builder.WriteString(" | ")
		builder.WriteString(diag.Severity)
		builder.WriteString(" | ")
		builder.WriteString(Sanitize(diag.Message))
		builder.WriteString(" |\n")
	}

	return builder.String()
}
