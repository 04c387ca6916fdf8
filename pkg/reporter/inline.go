package reporter

import (
	"context"
	"strings"

	"github.com/yaklabco/gopyright/internal/logging"
	"github.com/yaklabco/gopyright/pkg/diagnostic"
	"github.com/yaklabco/gopyright/pkg/review"
)

// InlineRenderer emits one annotation per diagnostic.
type InlineRenderer struct {
	host review.Host
}

// NewInlineRenderer creates an inline renderer writing to host.
func NewInlineRenderer(host review.Host) *InlineRenderer {
	return &InlineRenderer{host: host}
}

// Render implements Renderer.
func (r *InlineRenderer) Render(ctx context.Context, set diagnostic.Set) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	logging.FromContext(ctx).Debug("rendering inline comments",
		logging.FieldDiagnosticsTotal, set.Len())

	for _, diag := range set {
		r.host.Message(InlineText(diag), diag.File, diag.LineNumber())
	}
	return nil
}

// InlineText is the annotation body for diag: "<severity>: <message>",
// trimmed and sanitized.
func InlineText(diag diagnostic.Diagnostic) string {
	return Sanitize(strings.TrimSpace(diag.Severity + ": " + diag.Message))
}
