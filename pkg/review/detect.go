package review

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

const defaultGitHubServer = "https://github.com"

// Detect resolves the session environment for dir.
//
// CI variables take precedence: GitHub Actions, GitLab CI, then Bitbucket
// Pipelines. Otherwise the git repository containing dir is inspected and
// its origin remote decides the provider. A directory outside any
// repository yields an empty Environment.
func Detect(dir string, getenv func(string) string) (Environment, error) {
	if env, ok := detectCI(getenv); ok {
		return env, nil
	}
	return detectGit(dir)
}

func detectCI(getenv func(string) string) (Environment, bool) {
	switch {
	case getenv("GITHUB_ACTIONS") == "true":
		server := getenv("GITHUB_SERVER_URL")
		if server == "" {
			server = defaultGitHubServer
		}
		env := Environment{
			Provider: ProviderGitHub,
			Commit:   getenv("GITHUB_SHA"),
			Root:     getenv("GITHUB_WORKSPACE"),
		}
		if repo := getenv("GITHUB_REPOSITORY"); repo != "" {
			env.RepoURL = strings.TrimSuffix(server, "/") + "/" + repo
		}
		return env, true
	case getenv("GITLAB_CI") != "":
		return Environment{
			Provider: ProviderGitLab,
			RepoURL:  getenv("CI_PROJECT_URL"),
			Commit:   getenv("CI_COMMIT_SHA"),
			Root:     getenv("CI_PROJECT_DIR"),
		}, true
	case getenv("BITBUCKET_BUILD_NUMBER") != "":
		return Environment{
			Provider: ProviderBitbucketCloud,
			Commit:   getenv("BITBUCKET_COMMIT"),
			Root:     getenv("BITBUCKET_CLONE_DIR"),
		}, true
	default:
		return Environment{}, false
	}
}

func detectGit(dir string) (Environment, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return Environment{}, nil
	}
	if err != nil {
		return Environment{}, fmt.Errorf("open repository %s: %w", dir, err)
	}

	var env Environment

	if worktree, err := repo.Worktree(); err == nil {
		env.Root = worktree.Filesystem.Root()
	}

	head, err := repo.Head()
	switch {
	case err == nil:
		env.Commit = head.Hash().String()
	case errors.Is(err, plumbing.ErrReferenceNotFound):
		// No commits yet.
	default:
		return Environment{}, fmt.Errorf("resolve HEAD: %w", err)
	}

	remote, err := repo.Remote(git.DefaultRemoteName)
	if errors.Is(err, git.ErrRemoteNotFound) {
		return env, nil
	}
	if err != nil {
		return Environment{}, fmt.Errorf("read remote %s: %w", git.DefaultRemoteName, err)
	}

	if urls := remote.Config().URLs; len(urls) > 0 {
		env.Provider, env.RepoURL = classifyRemote(urls[0])
	}

	return env, nil
}

// classifyRemote maps a remote URL onto a provider name and web URL.
// Unknown hosts return empty strings.
func classifyRemote(remote string) (string, string) {
	host, repoPath := splitRemote(remote)
	repoPath = strings.TrimSuffix(strings.Trim(repoPath, "/"), ".git")
	if host == "" || repoPath == "" {
		return "", ""
	}

	webURL := "https://" + host + "/" + repoPath

	switch host {
	case "github.com":
		return ProviderGitHub, webURL
	case "gitlab.com":
		return ProviderGitLab, webURL
	case "bitbucket.org":
		return ProviderBitbucketCloud, webURL
	default:
		return "", ""
	}
}

// splitRemote extracts host and path from URL or scp-like remotes.
func splitRemote(remote string) (string, string) {
	if strings.Contains(remote, "://") {
		parsed, err := url.Parse(remote)
		if err != nil {
			return "", ""
		}
		return parsed.Hostname(), parsed.Path
	}

	// git@github.com:org/repo.git
	hostPart, repoPath, ok := strings.Cut(remote, ":")
	if !ok {
		return "", ""
	}
	if _, after, found := strings.Cut(hostPart, "@"); found {
		hostPart = after
	}
	return hostPart, repoPath
}
