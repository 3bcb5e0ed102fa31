package git

import (
	"context"
	"strings"
)

// Prober answers read-only questions about the repository in the working directory.
// Answers are never cached; every call runs exactly one git process.
type Prober interface {
	IsGitInstalled(ctx context.Context) bool
	IsRepository(ctx context.Context) bool
	CurrentBranch(ctx context.Context) string
	HasUpstream(ctx context.Context, branch string) bool
	HasCommits(ctx context.Context) bool
	IsConnectedToRemote(ctx context.Context) bool
	HasUncommittedChanges(ctx context.Context) bool
	BranchExists(ctx context.Context, branch string) bool
	RemoteBranchExists(ctx context.Context, branch string) bool
}

// Probes implements Prober on top of a Runner.
type Probes struct {
	runner Runner
	remote string
}

// NewProbes creates Probes that check connectivity against remote.
func NewProbes(runner Runner, remote string) *Probes {
	if remote == "" {
		remote = DefaultRemote
	}
	return &Probes{runner: runner, remote: remote}
}

func (p *Probes) ok(ctx context.Context, args ...string) (Result, bool) {
	res, err := p.runner.Run(ctx, Invocation{Args: args, Capture: true})
	return res, err == nil && res.Success()
}

// IsGitInstalled reports whether `git --version` succeeds.
func (p *Probes) IsGitInstalled(ctx context.Context) bool {
	_, ok := p.ok(ctx, "--version")
	return ok
}

// IsRepository reports whether the working directory is inside a work tree.
func (p *Probes) IsRepository(ctx context.Context) bool {
	res, ok := p.ok(ctx, "rev-parse", "--is-inside-work-tree")
	return ok && res.Output() == "true"
}

// CurrentBranch returns the checked-out branch name, or "" when it cannot be determined.
func (p *Probes) CurrentBranch(ctx context.Context) string {
	res, ok := p.ok(ctx, "rev-parse", "--abbrev-ref", "HEAD")
	if !ok {
		return ""
	}
	return res.Output()
}

// HasUpstream reports whether branch tracks a remote branch.
func (p *Probes) HasUpstream(ctx context.Context, branch string) bool {
	if branch == "" {
		return false
	}
	res, ok := p.ok(ctx, "for-each-ref", "--format=%(upstream:short)", "refs/heads/"+branch)
	return ok && res.Output() != ""
}

// HasCommits reports whether HEAD resolves to a commit.
func (p *Probes) HasCommits(ctx context.Context) bool {
	_, ok := p.ok(ctx, "rev-parse", "--verify", "--quiet", "HEAD")
	return ok
}

// IsConnectedToRemote reports whether the configured remote exists.
func (p *Probes) IsConnectedToRemote(ctx context.Context) bool {
	_, ok := p.ok(ctx, "remote", "get-url", p.remote)
	return ok
}

// HasUncommittedChanges reports whether the work tree or index differ from HEAD,
// counting untracked files.
func (p *Probes) HasUncommittedChanges(ctx context.Context) bool {
	res, ok := p.ok(ctx, "status", "--porcelain")
	return ok && strings.TrimSpace(res.Stdout) != ""
}

// BranchExists reports whether a local branch exists.
func (p *Probes) BranchExists(ctx context.Context, branch string) bool {
	if branch == "" {
		return false
	}
	_, ok := p.ok(ctx, "show-ref", "--verify", "--quiet", "refs/heads/"+branch)
	return ok
}

// RemoteBranchExists reports whether the remote advertises branch.
func (p *Probes) RemoteBranchExists(ctx context.Context, branch string) bool {
	if branch == "" {
		return false
	}
	res, ok := p.ok(ctx, "ls-remote", "--heads", p.remote, branch)
	return ok && res.Output() != ""
}
