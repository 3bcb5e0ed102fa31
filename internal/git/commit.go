package git

import (
	"context"
	"fmt"
	"strconv"
)

// AddAll stages every change in the work tree, including deletions.
func (c *Client) AddAll(ctx context.Context) error {
	if err := c.interactive(ctx, "add", "--all"); err != nil {
		return fmt.Errorf("failed to stage changes: %w", err)
	}
	return nil
}

// AddPaths stages the given paths.
func (c *Client) AddPaths(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		return nil
	}
	args := append([]string{"add", "--"}, paths...)
	if err := c.interactive(ctx, args...); err != nil {
		return fmt.Errorf("failed to stage files: %w", err)
	}
	return nil
}

// Commit records the staged changes with message.
func (c *Client) Commit(ctx context.Context, message string) error {
	if err := c.interactive(ctx, "commit", "-m", message); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// CommitAll stages everything and commits it with message.
func (c *Client) CommitAll(ctx context.Context, message string) error {
	if err := c.AddAll(ctx); err != nil {
		return err
	}
	return c.Commit(ctx, message)
}

// CherryPickMode selects how a picked commit is recorded.
type CherryPickMode int

const (
	// CherryPickCommit applies and commits with the original message
	CherryPickCommit CherryPickMode = iota
	// CherryPickNoCommit applies the changes to the index only
	CherryPickNoCommit
	// CherryPickEdit opens the editor for the commit message
	CherryPickEdit
)

// CherryPick applies commit onto the current branch.
// Output is captured so a conflict can be reported and offered an abort.
func (c *Client) CherryPick(ctx context.Context, commit string, mode CherryPickMode) (Result, error) {
	args := []string{"cherry-pick"}
	switch mode {
	case CherryPickNoCommit:
		args = append(args, "--no-commit")
	case CherryPickEdit:
		args = append(args, "--edit")
	}
	args = append(args, commit)
	if mode == CherryPickEdit {
		return Result{}, c.interactive(ctx, args...)
	}
	return c.captured(ctx, args...)
}

// CherryPickAbort cancels an in-progress cherry-pick.
func (c *Client) CherryPickAbort(ctx context.Context) error {
	if _, err := c.captured(ctx, "cherry-pick", "--abort"); err != nil {
		return fmt.Errorf("failed to abort cherry-pick: %w", err)
	}
	return nil
}

// ResetMode is the strength of a reset.
type ResetMode string

const (
	ResetSoft  ResetMode = "--soft"
	ResetMixed ResetMode = "--mixed"
	ResetHard  ResetMode = "--hard"
)

// ResetBack moves the current branch back n commits.
func (c *Client) ResetBack(ctx context.Context, mode ResetMode, n int) error {
	return c.ResetTo(ctx, mode, "HEAD~"+strconv.Itoa(n))
}

// ResetTo moves the current branch to revision.
func (c *Client) ResetTo(ctx context.Context, mode ResetMode, revision string) error {
	if err := c.interactive(ctx, "reset", string(mode), revision); err != nil {
		return fmt.Errorf("failed to reset to %s: %w", revision, err)
	}
	return nil
}

// CleanMode selects which untracked entries are removed.
type CleanMode int

const (
	// CleanFiles removes untracked files
	CleanFiles CleanMode = iota
	// CleanFilesAndDirs removes untracked files and directories
	CleanFilesAndDirs
	// CleanInteractive lets git ask about each entry
	CleanInteractive
)

// Clean removes untracked entries from the work tree.
func (c *Client) Clean(ctx context.Context, mode CleanMode) error {
	var flag string
	switch mode {
	case CleanFilesAndDirs:
		flag = "-fd"
	case CleanInteractive:
		flag = "-i"
	default:
		flag = "-f"
	}
	if err := c.interactive(ctx, "clean", flag); err != nil {
		return fmt.Errorf("failed to clean work tree: %w", err)
	}
	return nil
}

// RebaseInteractive rewrites the last n commits in the user's editor.
func (c *Client) RebaseInteractive(ctx context.Context, n int) error {
	if err := c.interactive(ctx, "rebase", "-i", "HEAD~"+strconv.Itoa(n)); err != nil {
		return fmt.Errorf("interactive rebase failed: %w", err)
	}
	return nil
}
