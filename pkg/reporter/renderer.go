package reporter

import (
	"context"

	"github.com/yaklabco/gopyright/pkg/diagnostic"
)

// Renderer presents a diagnostic set to a review host.
// Renderers never filter or reorder diagnostics.
type Renderer interface {
	// Render writes every diagnostic in set to the host.
	Render(ctx context.Context, set diagnostic.Set) error
}
