package testhelpers

import (
	"context"
	"strings"
	"sync"

	vigiterrors "vigit.dev/vigit/internal/errors"
	"vigit.dev/vigit/internal/git"
)

// Stub is a scripted response for invocations whose arguments start with Prefix.
type Stub struct {
	Prefix []string

	result git.Result
	err    error
	once   bool
	used   bool
}

// Returns sets the stdout of a successful invocation.
func (s *Stub) Returns(stdout string) *Stub {
	s.result = git.Result{Stdout: stdout}
	s.err = nil
	return s
}

// Fails makes the invocation exit with code and stderr.
func (s *Stub) Fails(exitCode int, stderr string) *Stub {
	s.result = git.Result{ExitCode: exitCode, Stderr: stderr}
	return s
}

// Errors makes the invocation fail with err regardless of exit code.
func (s *Stub) Errors(err error) *Stub {
	s.err = err
	return s
}

// Once limits the stub to a single matching invocation.
func (s *Stub) Once() *Stub {
	s.once = true
	return s
}

func (s *Stub) matches(args []string) bool {
	if s.once && s.used {
		return false
	}
	if len(args) < len(s.Prefix) {
		return false
	}
	for i, p := range s.Prefix {
		if args[i] != p {
			return false
		}
	}
	return true
}

// FakeRunner records every invocation and answers from scripted stubs.
// Invocations that match no stub succeed with empty output.
type FakeRunner struct {
	mu    sync.Mutex
	calls []git.Invocation
	stubs []*Stub
}

// NewFakeRunner creates an empty FakeRunner.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{}
}

// On registers a stub for invocations starting with args.
// The first unexhausted matching stub, in registration order, wins.
func (f *FakeRunner) On(args ...string) *Stub {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := &Stub{Prefix: args}
	f.stubs = append(f.stubs, s)
	return s
}

// Run implements git.Runner.
func (f *FakeRunner) Run(_ context.Context, inv git.Invocation) (git.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, inv)

	for _, s := range f.stubs {
		if !s.matches(inv.Args) {
			continue
		}
		s.used = true
		res := s.result
		if s.err != nil {
			return res, s.err
		}
		if res.ExitCode != 0 {
			return res, vigiterrors.NewGitCommandError("git", inv.Args, res.ExitCode, res.Stdout, res.Stderr, nil)
		}
		return res, nil
	}
	return git.Result{}, nil
}

// Calls returns the recorded invocations.
func (f *FakeRunner) Calls() []git.Invocation {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]git.Invocation(nil), f.calls...)
}

// Commands returns each recorded invocation's arguments joined by spaces.
func (f *FakeRunner) Commands() []string {
	calls := f.Calls()
	cmds := make([]string, len(calls))
	for i, c := range calls {
		cmds[i] = strings.Join(c.Args, " ")
	}
	return cmds
}

// Count returns how many invocations started with args.
func (f *FakeRunner) Count(args ...string) int {
	probe := &Stub{Prefix: args}
	n := 0
	for _, c := range f.Calls() {
		if probe.matches(c.Args) {
			n++
		}
	}
	return n
}

// Reset forgets recorded invocations. Stubs are kept.
func (f *FakeRunner) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = nil
}
