// Package common provides shared helper functions for CLI commands.
package common

import (
	"errors"

	"github.com/spf13/cobra"

	"vigit.dev/vigit/internal/actions"
	"vigit.dev/vigit/internal/runtime"
	"vigit.dev/vigit/internal/tui"
)

// ErrNotInteractive is returned when a prompting command runs without a terminal.
var ErrNotInteractive = errors.New("vigit needs an interactive terminal; stdin or stdout is not a TTY")

// IsTTY reports whether prompts can be shown. Tests replace it.
var IsTTY = tui.IsTTY

// Run is a helper that provides a runtime context to a command's execution function.
// Errors are printed the same way the menus print them; the returned error only
// sets the exit status.
func Run(cmd *cobra.Command, fn actions.Handler) error {
	c, err := runtime.GetContext(cmd.Context())
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if err := fn(ctx, c); err != nil {
		actions.Report(ctx, c, err)
		return &ReportedError{Err: err}
	}
	return nil
}

// Interactive is Run for commands that prompt.
func Interactive(cmd *cobra.Command, fn actions.Handler) error {
	if !IsTTY() {
		return ErrNotInteractive
	}
	return Run(cmd, fn)
}

// ReportedError marks an error that was already printed to the user.
type ReportedError struct {
	Err error
}

func (e *ReportedError) Error() string { return e.Err.Error() }

func (e *ReportedError) Unwrap() error { return e.Err }
