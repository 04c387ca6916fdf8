// Package review models the code-review host that receives reports: its
// feedback sinks, its SCM provider and its permalink builder.
package review

// Provider names understood by the review host.
const (
	ProviderGitHub         = "github"
	ProviderGitLab         = "gitlab"
	ProviderBitbucketCloud = "bitbucket_cloud"
)

// Linker builds HTML permalinks to files in the reviewed revision.
type Linker interface {
	// HTMLLink returns an anchor for pathWithAnchor, e.g. "src/x.py#L42".
	// With fullPath false the link text is the base name only.
	HTMLLink(pathWithAnchor string, fullPath bool) string
}

// LinkChecker is implemented by hosts that know whether they can build
// permalinks. Hosts without it are assumed to link on GitHub.
type LinkChecker interface {
	CanLink() bool
}

// Host is the review session a report is written into.
//
// Sinks are append-only and do not deduplicate.
type Host interface {
	Linker

	// SCMProvider names the source-control host, e.g. "github".
	SCMProvider() string

	// Warn records a non-blocking warning.
	Warn(text string)

	// Fail records a blocking failure.
	Fail(text string)

	// Markdown records a free-form markdown body.
	Markdown(text string)

	// Message records an annotation attached to a file and line.
	Message(text, file string, line int)
}
