package testhelpers

import (
	"context"
	"sync"
)

// FakeProber answers state probes from its fields and counts calls.
type FakeProber struct {
	GitInstalled   bool
	Repository     bool
	Branch         string
	Upstream       bool
	Commits        bool
	Connected      bool
	Dirty          bool
	Branches       map[string]bool
	RemoteBranches map[string]bool

	mu    sync.Mutex
	calls int
}

// NewFakeProber returns a prober describing a clean repository on main with
// commits, connected to a remote, with main pushed upstream.
func NewFakeProber() *FakeProber {
	return &FakeProber{
		GitInstalled:   true,
		Repository:     true,
		Branch:         "main",
		Upstream:       true,
		Commits:        true,
		Connected:      true,
		Branches:       map[string]bool{"main": true},
		RemoteBranches: map[string]bool{"main": true},
	}
}

func (p *FakeProber) count() {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()
}

// Calls returns the number of probes answered.
func (p *FakeProber) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func (p *FakeProber) IsGitInstalled(context.Context) bool {
	p.count()
	return p.GitInstalled
}

func (p *FakeProber) IsRepository(context.Context) bool {
	p.count()
	return p.Repository
}

func (p *FakeProber) CurrentBranch(context.Context) string {
	p.count()
	return p.Branch
}

func (p *FakeProber) HasUpstream(context.Context, string) bool {
	p.count()
	return p.Upstream
}

func (p *FakeProber) HasCommits(context.Context) bool {
	p.count()
	return p.Commits
}

func (p *FakeProber) IsConnectedToRemote(context.Context) bool {
	p.count()
	return p.Connected
}

func (p *FakeProber) HasUncommittedChanges(context.Context) bool {
	p.count()
	return p.Dirty
}

func (p *FakeProber) BranchExists(_ context.Context, branch string) bool {
	p.count()
	return p.Branches[branch]
}

func (p *FakeProber) RemoteBranchExists(_ context.Context, branch string) bool {
	p.count()
	return p.RemoteBranches[branch]
}
