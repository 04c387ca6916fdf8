package reporter

import "github.com/yaklabco/gopyright/pkg/review"

// Options configures renderer behavior.
type Options struct {
	// Mode selects the renderer. Defaults to ModeTable.
	Mode Mode

	// Host receives the rendered output. Required.
	Host review.Host

	// Provider overrides the SCM provider. When nil it is resolved from
	// Host once, at construction.
	Provider *review.Provider
}

func (o Options) provider() review.Provider {
	if o.Provider != nil {
		return *o.Provider
	}
	return review.ResolveProvider(o.Host)
}
