package reporter

import "strings"

// quoteReplacer maps both quote styles to a backtick.
var quoteReplacer = strings.NewReplacer(`"`, "`", `'`, "`")

// Sanitize replaces every double and single quote with a backtick so the
// text cannot break out of a markdown cell or the host's comment payload.
func Sanitize(text string) string {
	return quoteReplacer.Replace(text)
}
