package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	vigiterrors "vigit.dev/vigit/internal/errors"
)

// Invocation describes one run of the git executable.
type Invocation struct {
	// Args are passed to git verbatim, without a shell.
	Args []string
	// Capture buffers stdout and stderr instead of handing the terminal to git.
	Capture bool
	// Dir overrides the runner's working directory when set.
	Dir string
	// Stdin is fed to the child when set. Inherited streams ignore it.
	Stdin string
}

// Result is the outcome of an Invocation.
// Stdout and Stderr are only populated for captured invocations.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Success reports whether git exited with status zero.
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// Output returns stdout with surrounding whitespace removed.
func (r Result) Output() string {
	return strings.TrimSpace(r.Stdout)
}

// Lines splits the trimmed stdout into lines, returning an empty slice for no output.
func (r Result) Lines() []string {
	out := r.Output()
	if out == "" {
		return []string{}
	}
	return strings.Split(out, "\n")
}

// Runner executes git invocations. Implementations block until the child exits.
type Runner interface {
	Run(ctx context.Context, inv Invocation) (Result, error)
}

// ExecRunner runs the real git executable.
//
// No timeout is applied: editors, pagers and credential prompts may legitimately
// block for as long as the user needs. Only ctx can stop a child.
type ExecRunner struct {
	// Binary is the executable to run, "git" when empty.
	Binary string
	// WorkingDir is used when an Invocation has no Dir.
	WorkingDir string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Logger receives one debug record per invocation. May be nil.
	Logger *slog.Logger
}

// NewExecRunner creates an ExecRunner bound to the process's terminal streams.
func NewExecRunner(workingDir string, logger *slog.Logger) *ExecRunner {
	return &ExecRunner{
		Binary:     "git",
		WorkingDir: workingDir,
		Stdin:      os.Stdin,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Logger:     logger,
	}
}

// Run executes inv and waits for it to finish.
func (r *ExecRunner) Run(ctx context.Context, inv Invocation) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	binary := r.Binary
	if binary == "" {
		binary = "git"
	}

	cmd := exec.CommandContext(ctx, binary, inv.Args...)
	cmd.Dir = r.WorkingDir
	if inv.Dir != "" {
		cmd.Dir = inv.Dir
	}

	var stdout, stderr bytes.Buffer
	if inv.Capture {
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
		if inv.Stdin != "" {
			cmd.Stdin = strings.NewReader(inv.Stdin)
		}
	} else {
		cmd.Stdin = r.Stdin
		cmd.Stdout = r.Stdout
		cmd.Stderr = r.Stderr
	}

	start := time.Now()
	err := cmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if cmd.ProcessState != nil {
		res.ExitCode = cmd.ProcessState.ExitCode()
	}
	r.log(inv, res, time.Since(start), err)

	if err == nil {
		return res, nil
	}
	if errors.Is(err, exec.ErrNotFound) {
		res.ExitCode = -1
		return res, vigiterrors.ErrGitNotInstalled
	}
	if res.ExitCode == 0 {
		res.ExitCode = -1
	}
	// An interrupted child is not a git failure; callers must not offer fallbacks for it.
	if ctxErr := ctx.Err(); ctxErr != nil {
		return res, fmt.Errorf("git %s interrupted: %w", strings.Join(inv.Args, " "), ctxErr)
	}
	return res, vigiterrors.NewGitCommandError(binary, inv.Args, res.ExitCode, res.Stdout, res.Stderr, err)
}

func (r *ExecRunner) log(inv Invocation, res Result, elapsed time.Duration, err error) {
	if r.Logger == nil {
		return
	}
	attrs := []any{
		"args", strings.Join(inv.Args, " "),
		"capture", inv.Capture,
		"exit", res.ExitCode,
		"elapsed", elapsed.Round(time.Millisecond).String(),
	}
	if err != nil && res.Stderr != "" {
		attrs = append(attrs, "stderr", strings.TrimSpace(res.Stderr))
	}
	r.Logger.Debug("git", attrs...)
}

// Output runs git with captured output and returns trimmed stdout.
func Output(ctx context.Context, r Runner, args ...string) (string, error) {
	res, err := r.Run(ctx, Invocation{Args: args, Capture: true})
	if err != nil {
		return "", err
	}
	return res.Output(), nil
}

// Lines runs git with captured output and returns stdout split into lines.
func Lines(ctx context.Context, r Runner, args ...string) ([]string, error) {
	res, err := r.Run(ctx, Invocation{Args: args, Capture: true})
	if err != nil {
		return nil, err
	}
	return res.Lines(), nil
}

// Interactive runs git attached to the terminal.
func Interactive(ctx context.Context, r Runner, args ...string) error {
	_, err := r.Run(ctx, Invocation{Args: args})
	return err
}

// Captured runs git with captured output, returning the full result alongside any error.
func Captured(ctx context.Context, r Runner, args ...string) (Result, error) {
	return r.Run(ctx, Invocation{Args: args, Capture: true})
}
