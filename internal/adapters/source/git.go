package source

import (
	"context"
	"io"
	"net/url"
	"strings"

	"go.trai.ch/sail/internal/adapters/shell"
	"go.trai.ch/sail/internal/core/domain"
	"go.trai.ch/sail/internal/core/ports"
	"go.trai.ch/zerr"
)

// cloner performs shallow git checkouts into a workspace.
type cloner struct {
	runner ports.CommandRunner
	logger ports.Logger
}

// clone checks out remoteURL into ws.SourceDir. A blank ref and path fall back
// to a plain single-branch clone of the default branch.
func (c cloner) clone(
	ctx context.Context, remoteURL, ref, path string, ws domain.Workspace,
) (domain.FetchResult, error) {
	if !strings.HasSuffix(remoteURL, ".git") {
		return domain.FetchResult{}, zerr.With(zerr.Wrap(domain.ErrInvalidCloneURL, "remote URL must end with .git"), "url", remoteURL)
	}

	ref = strings.TrimSpace(ref)
	path = strings.TrimLeft(strings.TrimSpace(path), `/\`)
	if path != "" && !domain.IsLocalPath(path) {
		return domain.FetchResult{}, zerr.With(zerr.Wrap(domain.ErrInvalidAddress, "path must stay within the repository"), "path", path)
	}

	if ref == "" && path == "" {
		c.logger.Info("cloning from git", "url", remoteURL)
		err := c.git(ctx, ws, "clone", "--depth=1", "--single-branch", remoteURL, ws.SourceDir)
		return domain.FetchResult{}, err
	}

	c.logger.Info("cloning from git", "url", remoteURL, "ref", ref, "path", path)
	fetch := []string{"fetch", "--depth=1", "origin"}
	if ref != "" {
		fetch = append(fetch, ref)
	}
	steps := [][]string{
		{"init", "--initial-branch=main"},
		{"remote", "add", "origin", remoteURL},
		fetch,
		{"-c", "advice.detachedHead=false", "checkout", "FETCH_HEAD"},
	}
	for _, args := range steps {
		if err := c.git(ctx, ws, args...); err != nil {
			return domain.FetchResult{}, err
		}
	}

	return domain.FetchResult{TargetPath: path}, nil
}

func (c cloner) git(ctx context.Context, ws domain.Workspace, args ...string) error {
	out := shell.NewLineWriter(func(line string) { c.logger.Debug(line, "stream", "stdout") })
	errOut := shell.NewLineWriter(func(line string) { c.logger.Debug(line, "stream", "stderr") })
	defer func() {
		_ = out.Flush()
		_ = errOut.Flush()
	}()

	var stdout, stderr io.Writer = out, errOut
	if v, ok := ports.VertexFromContext(ctx); ok {
		stdout = io.MultiWriter(out, v.Stdout())
		stderr = io.MultiWriter(errOut, v.Stderr())
	}

	cmd := domain.Command{
		Name:   "git",
		Args:   args,
		Dir:    ws.SourceDir,
		Env:    map[string]string{"GIT_TERMINAL_PROMPT": "0"},
		Stdin:  strings.NewReader(""),
		Stdout: stdout,
		Stderr: stderr,
	}
	code, err := c.runner.Run(ctx, cmd)
	if err != nil {
		return err
	}
	if code != 0 {
		err := zerr.With(zerr.Wrap(domain.ErrCommandFailed, "git command failed"), "command", cmd.String())
		return zerr.With(err, "exit_code", code)
	}
	return nil
}

// GitProvider clones addresses that point at a git remote. The query keys
// branch (or hash) and path select the ref and the subdirectory.
type GitProvider struct {
	cloner
}

// NewGitProvider creates a GitProvider.
func NewGitProvider(runner ports.CommandRunner, logger ports.Logger) *GitProvider {
	return &GitProvider{cloner{runner: runner, logger: logger}}
}

// Name implements ports.SourceProvider.
func (p *GitProvider) Name() string { return "git" }

// Matches implements ports.SourceProvider.
func (p *GitProvider) Matches(address string) bool {
	return gitPattern.MatchString(address)
}

// Fetch implements ports.SourceProvider.
func (p *GitProvider) Fetch(ctx context.Context, address string, ws domain.Workspace) (domain.FetchResult, error) {
	u, err := url.Parse(address)
	if err != nil {
		return domain.FetchResult{}, zerr.With(zerr.Wrap(domain.ErrInvalidAddress, err.Error()), "address", address)
	}

	q := u.Query()
	ref := q.Get("branch")
	if ref == "" {
		ref = q.Get("hash")
	}
	remote := (&url.URL{Scheme: u.Scheme, User: u.User, Host: u.Host, Path: u.Path}).String()

	return p.clone(ctx, remote, ref, q.Get("path"), ws)
}

// GitHubProvider clones repositories addressed by their browser URL,
// including tree and blob links into a ref.
type GitHubProvider struct {
	cloner
}

// NewGitHubProvider creates a GitHubProvider.
func NewGitHubProvider(runner ports.CommandRunner, logger ports.Logger) *GitHubProvider {
	return &GitHubProvider{cloner{runner: runner, logger: logger}}
}

// Name implements ports.SourceProvider.
func (p *GitHubProvider) Name() string { return "github" }

// Matches implements ports.SourceProvider.
func (p *GitHubProvider) Matches(address string) bool {
	_, ok := parseGitHubAddress(address)
	return ok
}

// Fetch implements ports.SourceProvider.
func (p *GitHubProvider) Fetch(ctx context.Context, address string, ws domain.Workspace) (domain.FetchResult, error) {
	addr, ok := parseGitHubAddress(address)
	if !ok {
		return domain.FetchResult{}, zerr.With(zerr.Wrap(domain.ErrInvalidAddress, "not a GitHub address"), "address", address)
	}
	return p.clone(ctx, addr.CloneURL(), addr.Ref, addr.Path, ws)
}
