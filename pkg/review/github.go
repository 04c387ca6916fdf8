package review

import (
	"path"
	"path/filepath"
	"strings"
)

// GitHubLinker builds blob permalinks the way Danger's GitHub plugin does.
type GitHubLinker struct {
	// RepoURL is the repository web URL, e.g. https://github.com/org/repo.
	RepoURL string

	// Commit is the revision the links point at.
	Commit string

	// Root is the local worktree root. Absolute paths under it are made
	// repository-relative. Optional.
	Root string
}

// HTMLLink returns `<a href='<repo>/blob/<commit>/<path>'><text></a>`.
func (g GitHubLinker) HTMLLink(pathWithAnchor string, fullPath bool) string {
	target, anchor := splitAnchor(pathWithAnchor)
	target = g.relative(target)

	urlPath := target + anchor
	if !strings.HasPrefix(urlPath, "/") {
		urlPath = "/" + urlPath
	}

	text := target + anchor
	if !fullPath {
		text = path.Base(target) + anchor
	}

	href := strings.TrimSuffix(g.RepoURL, "/") + "/blob/" + g.Commit + urlPath
	return "<a href='" + href + "'>" + text + "</a>"
}

func (g GitHubLinker) relative(target string) string {
	target = strings.TrimPrefix(target, "./")
	if g.Root == "" || !filepath.IsAbs(target) {
		return target
	}
	rel, err := filepath.Rel(g.Root, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return target
	}
	return filepath.ToSlash(rel)
}

// splitAnchor separates "file#L42" into "file" and "#L42".
func splitAnchor(s string) (string, string) {
	idx := strings.LastIndex(s, "#")
	if idx < 0 {
		return s, ""
	}
	return s[:idx], s[idx:]
}
