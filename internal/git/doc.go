// Package git provides low-level Git operations.
//
// It wraps git command execution and provides a Go-friendly interface for:
//   - State probes (is this a repository, current branch, upstream, remote)
//   - Branch management (create, delete, checkout, track)
//   - Commit operations (stage, commit, cherry-pick, stash, reset)
//   - Remote operations (push, pull, clone, remote add/remove)
//
// This package should be the only place where git commands are executed.
package git
