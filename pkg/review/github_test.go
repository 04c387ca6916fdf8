package review_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gopyright/pkg/review"
)

func TestGitHubLinker_HTMLLink(t *testing.T) {
	t.Parallel()

	linker := review.GitHubLinker{
		RepoURL: "https://github.com/org/repo",
		Commit:  "abc123",
		Root:    "/work/repo",
	}

	tests := []struct {
		name     string
		path     string
		fullPath bool
		want     string
	}{
		{
			name: "short text",
			path: "src/x.py#L42",
			want: "<a href='https://github.com/org/repo/blob/abc123/src/x.py#L42'>x.py#L42</a>",
		},
		{
			name:     "full path text",
			path:     "src/x.py#L42",
			fullPath: true,
			want:     "<a href='https://github.com/org/repo/blob/abc123/src/x.py#L42'>src/x.py#L42</a>",
		},
		{
			name: "absolute path under root",
			path: "/work/repo/pkg/mod.py#L3",
			want: "<a href='https://github.com/org/repo/blob/abc123/pkg/mod.py#L3'>mod.py#L3</a>",
		},
		{
			name: "absolute path outside root",
			path: "/usr/lib/site.py#L1",
			want: "<a href='https://github.com/org/repo/blob/abc123/usr/lib/site.py#L1'>site.py#L1</a>",
		},
		{
			name: "dot slash prefix",
			path: "./x.py#L7",
			want: "<a href='https://github.com/org/repo/blob/abc123/x.py#L7'>x.py#L7</a>",
		},
		{
			name: "empty line anchor",
			path: "x.py#L",
			want: "<a href='https://github.com/org/repo/blob/abc123/x.py#L'>x.py#L</a>",
		},
		{
			name: "no anchor",
			path: "x.py",
			want: "<a href='https://github.com/org/repo/blob/abc123/x.py'>x.py</a>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, linker.HTMLLink(tt.path, tt.fullPath))
		})
	}
}
