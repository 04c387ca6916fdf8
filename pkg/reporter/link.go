package reporter

import "github.com/yaklabco/gopyright/pkg/review"

// ResolveLink returns the file cell for a table row: a permalink with a
// "#L<line>" anchor on hosted providers, the bare path otherwise.
// An empty line yields an empty anchor number.
func ResolveLink(provider review.Provider, file, line string) string {
	linker, ok := provider.Linker()
	if !ok {
		return file
	}
	return linker.HTMLLink(file+"#L"+line, false)
}
