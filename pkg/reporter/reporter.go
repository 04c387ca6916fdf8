// Package reporter renders diagnostics into a code-review host, either as
// one aggregated markdown table or as inline annotations.
package reporter

import (
	"errors"
	"fmt"
)

// ErrNoHost is returned by New when Options.Host is nil.
var ErrNoHost = errors.New("reporter: review host is required")

// New creates a Renderer for the specified options.
func New(opts Options) (Renderer, error) {
	if opts.Host == nil {
		return nil, ErrNoHost
	}

	mode := opts.Mode
	if mode == "" {
		mode = ModeTable
	}
	if !mode.IsValid() {
		return nil, fmt.Errorf("unsupported mode: %s", mode)
	}

	switch mode {
	case ModeInline:
		return NewInlineRenderer(opts.Host), nil
	case ModeTable:
		return NewTableRenderer(opts.Host, opts.provider()), nil
	default:
		return nil, fmt.Errorf("unsupported mode: %s", mode)
	}
}
