// Package errors provides sentinel errors and custom error types for the vigit application.
// Use errors.Is() and errors.As() to check for specific error types, and KindOf()
// to map any error onto the small set of categories the menus react to.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrGitNotInstalled indicates that the git executable could not be found on PATH
	ErrGitNotInstalled = errors.New("git is not installed")

	// ErrNotRepository indicates that the working directory is not inside a git repository
	ErrNotRepository = errors.New("not a git repository")

	// ErrAlreadyRepository indicates that the working directory is already a git repository
	ErrAlreadyRepository = errors.New("already a git repository")

	// ErrNoCommits indicates that HEAD does not resolve to a commit yet
	ErrNoCommits = errors.New("no commits yet")

	// ErrNoUpstream indicates that a branch has no upstream configured
	ErrNoUpstream = errors.New("branch has no upstream")

	// ErrNotConnected indicates that the repository has no remote configured
	ErrNotConnected = errors.New("not connected to a remote")

	// ErrAlreadyConnected indicates that the repository already has the remote configured
	ErrAlreadyConnected = errors.New("already connected to a remote")

	// ErrOnMainBranch indicates an operation that cannot run on the main branch
	ErrOnMainBranch = errors.New("operation not allowed on the main branch")

	// ErrNotOnMainBranch indicates an operation that must run on the main branch
	ErrNotOnMainBranch = errors.New("operation requires the main branch")

	// ErrBranchNotFound indicates that a branch does not exist
	ErrBranchNotFound = errors.New("branch not found")

	// ErrCanceled indicates that the user canceled the operation
	ErrCanceled = errors.New("canceled")

	// ErrInvalidInput indicates malformed user input
	ErrInvalidInput = errors.New("invalid input")
)

// Kind is the coarse category of an error. Handlers decide how to report an
// error (and whether a fallback menu applies) from its Kind, never from the
// wording of git's output.
type Kind int

const (
	// KindNone is the Kind of a nil error
	KindNone Kind = iota
	// KindPrecondition means a state probe failed before anything was mutated
	KindPrecondition
	// KindCommandFailed means an external git command exited non-zero
	KindCommandFailed
	// KindRemote means a GitHub API or network call failed
	KindRemote
	// KindInvalidInput means the user typed something unusable
	KindInvalidInput
	// KindCanceled means the user backed out
	KindCanceled
	// KindUnknown is everything else
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindPrecondition:
		return "precondition"
	case KindCommandFailed:
		return "command-failed"
	case KindRemote:
		return "remote"
	case KindInvalidInput:
		return "invalid-input"
	case KindCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// RemoteError is implemented by errors coming from the remote repository client.
type RemoteError interface {
	error
	RemoteError() bool
}

// KindOf classifies err.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	var pre *PreconditionError
	var gitErr *GitCommandError
	var remote RemoteError
	switch {
	case errors.Is(err, ErrCanceled):
		return KindCanceled
	case errors.Is(err, ErrInvalidInput):
		return KindInvalidInput
	case errors.As(err, &pre):
		return KindPrecondition
	case errors.Is(err, ErrNotRepository), errors.Is(err, ErrAlreadyRepository),
		errors.Is(err, ErrNoCommits), errors.Is(err, ErrNoUpstream),
		errors.Is(err, ErrNotConnected), errors.Is(err, ErrAlreadyConnected),
		errors.Is(err, ErrOnMainBranch), errors.Is(err, ErrNotOnMainBranch),
		errors.Is(err, ErrBranchNotFound), errors.Is(err, ErrGitNotInstalled):
		return KindPrecondition
	case errors.As(err, &gitErr):
		return KindCommandFailed
	case errors.As(err, &remote):
		return KindRemote
	default:
		return KindUnknown
	}
}

// PreconditionError is returned when a handler's precondition probe fails.
// Remedy names the menu path that resolves the precondition.
type PreconditionError struct {
	Err     error
	Message string
	Remedy  string
}

func (e *PreconditionError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

func (e *PreconditionError) Unwrap() error {
	return e.Err
}

// NewPreconditionError creates a new PreconditionError
func NewPreconditionError(err error, message, remedy string) *PreconditionError {
	return &PreconditionError{
		Err:     err,
		Message: message,
		Remedy:  remedy,
	}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command  string
	Args     []string
	ExitCode int
	Stdout   string
	Stderr   string
	Err      error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.ExitCode != 0 {
		msg += fmt.Sprintf(" (exit %d)", e.ExitCode)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// Reason returns the most useful single line to show a user: trimmed stderr,
// falling back to stdout and then the underlying error.
func (e *GitCommandError) Reason() string {
	if s := strings.TrimSpace(e.Stderr); s != "" {
		return s
	}
	if s := strings.TrimSpace(e.Stdout); s != "" {
		return s
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.ExitCode)
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, exitCode int, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command:  command,
		Args:     args,
		ExitCode: exitCode,
		Stdout:   stdout,
		Stderr:   stderr,
		Err:      err,
	}
}

// Reason extracts a user-facing reason from any error.
func Reason(err error) string {
	var gitErr *GitCommandError
	if errors.As(err, &gitErr) {
		return gitErr.Reason()
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

