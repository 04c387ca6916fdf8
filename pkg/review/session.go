package review

import (
	"strings"
	"sync"
)

// Environment describes where a review session runs.
type Environment struct {
	// Provider is the SCM provider name. Empty when unknown.
	Provider string `json:"provider"`

	// RepoURL is the repository web URL used for permalinks.
	RepoURL string `json:"repo_url,omitempty"`

	// Commit is the revision under review.
	Commit string `json:"commit,omitempty"`

	// Root is the local worktree root.
	Root string `json:"root,omitempty"`
}

// Message is an annotation attached to a file and line.
type Message struct {
	Text string `json:"message"`
	File string `json:"file"`
	Line int    `json:"line"`
}

// StatusReport is a snapshot of everything a session recorded.
type StatusReport struct {
	Failures  []string  `json:"failures"`
	Warnings  []string  `json:"warnings"`
	Markdowns []string  `json:"markdowns"`
	Messages  []Message `json:"messages"`
}

// HasFailures reports whether any failure was recorded.
func (r StatusReport) HasFailures() bool {
	return len(r.Failures) > 0
}

// Empty reports whether nothing was recorded.
func (r StatusReport) Empty() bool {
	return len(r.Failures)+len(r.Warnings)+len(r.Markdowns)+len(r.Messages) == 0
}

// Session is an in-process Host that queues everything it receives.
// It is safe for concurrent use.
type Session struct {
	env    Environment
	linker Linker

	mu        sync.Mutex
	failures  []string
	warnings  []string
	markdowns []string
	messages  []Message
}

// NewSession creates a session for env. A GitHub environment with a
// repository URL gets a GitHubLinker.
func NewSession(env Environment) *Session {
	s := &Session{env: env}
	if env.Provider == ProviderGitHub && env.RepoURL != "" {
		s.linker = GitHubLinker{RepoURL: env.RepoURL, Commit: env.Commit, Root: env.Root}
	}
	return s
}

// Environment returns the environment the session was created with.
func (s *Session) Environment() Environment {
	return s.env
}

// SCMProvider implements Host.
func (s *Session) SCMProvider() string {
	return s.env.Provider
}

// CanLink implements LinkChecker.
func (s *Session) CanLink() bool {
	return s.linker != nil
}

// HTMLLink implements Host. Without a linker the plain path is returned,
// with any "#L" anchor removed.
func (s *Session) HTMLLink(pathWithAnchor string, fullPath bool) string {
	if s.linker == nil {
		if i := strings.LastIndex(pathWithAnchor, "#L"); i >= 0 {
			return pathWithAnchor[:i]
		}
		return pathWithAnchor
	}
	return s.linker.HTMLLink(pathWithAnchor, fullPath)
}

// Warn implements Host.
func (s *Session) Warn(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.warnings = append(s.warnings, text)
}

// Fail implements Host.
func (s *Session) Fail(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = append(s.failures, text)
}

// Markdown implements Host.
func (s *Session) Markdown(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.markdowns = append(s.markdowns, text)
}

// Message implements Host.
func (s *Session) Message(text, file string, line int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, Message{Text: text, File: file, Line: line})
}

// StatusReport returns a copy of the recorded entries. Queues are never nil.
func (s *Session) StatusReport() StatusReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return StatusReport{
		Failures:  append([]string{}, s.failures...),
		Warnings:  append([]string{}, s.warnings...),
		Markdowns: append([]string{}, s.markdowns...),
		Messages:  append([]Message{}, s.messages...),
	}
}

var (
	_ Host        = (*Session)(nil)
	_ LinkChecker = (*Session)(nil)
)
