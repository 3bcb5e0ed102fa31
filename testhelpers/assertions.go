// Package testhelpers provides testing utilities for vigit, including
// scripted fakes for the git runner, state probes and prompts, real
// temporary repositories, and a mock GitHub API server.
package testhelpers

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// Must is a generic helper function that panics if err is not nil,
// otherwise returns the value.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// ExpectBranches asserts that the repository has exactly the expected local branches.
func ExpectBranches(t *testing.T, repo *GitRepo, expected []string) {
	t.Helper()

	branches, err := repo.GetLocalBranches()
	require.NoError(t, err, "Failed to list branches")

	sort.Strings(branches)
	sorted := append([]string(nil), expected...)
	sort.Strings(sorted)

	require.Equal(t, sorted, branches, "Branches do not match")
}

// ExpectCommands asserts that the runner saw exactly the expected commands, in order.
func ExpectCommands(t *testing.T, runner *FakeRunner, expected ...string) {
	t.Helper()
	require.Equal(t, expected, runner.Commands(), "git commands do not match")
}

// ExpectNoCommands asserts that the runner was never invoked.
func ExpectNoCommands(t *testing.T, runner *FakeRunner) {
	t.Helper()
	require.Empty(t, runner.Commands(), "expected no git commands")
}
