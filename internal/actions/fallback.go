package actions

import (
	"context"
	"fmt"

	vigiterrors "vigit.dev/vigit/internal/errors"
	"vigit.dev/vigit/internal/git"
	"vigit.dev/vigit/internal/runtime"
)

// Choices offered after a rejected push.
const (
	pushRebase = iota
	pushForce
	pushCancel
)

// pushWithFallback pushes branch and, when git rejects the push, offers to
// rebase on the remote branch and push once more, to force push, or to stop.
func pushWithFallback(ctx context.Context, c *runtime.Context, branch string, mode git.PushMode) error {
	_, err := c.Git.Push(ctx, branch, mode)
	if err == nil {
		c.Splog.Success("Pushed %s to %s.", branch, c.Remote())
		return nil
	}
	if vigiterrors.KindOf(err) != vigiterrors.KindCommandFailed {
		return err
	}

	c.Splog.Warn("Could not push directly: %s", vigiterrors.Reason(err))
	choice, err := choose(c, "The remote and local branches have diverged. What do you want to do?",
		"Pull with rebase, then push (recommended)",
		"Force push (overwrites remote changes)",
		"Cancel",
	)
	if err != nil {
		return err
	}

	switch choice {
	case pushRebase:
		if _, err := c.Git.Pull(ctx, branch, git.PullRebase); err != nil {
			c.Splog.Warn("There were conflicts during the pull. Please resolve them manually.")
			return fmt.Errorf("rebase onto %s/%s failed: %w", c.Remote(), branch, err)
		}
		if _, err := c.Git.Push(ctx, branch, mode); err != nil {
			return fmt.Errorf("push after rebase failed: %w", err)
		}
		c.Splog.Success("Changes integrated and pushed to %s/%s.", c.Remote(), branch)
	case pushForce:
		ok, err := confirm(c, fmt.Sprintf("Force push %s? Commits on %s/%s that you do not have will be lost", branch, c.Remote(), branch))
		if err != nil {
			return err
		}
		if !ok {
			c.Splog.Info("Force push canceled.")
			return nil
		}
		if _, err := c.Git.Push(ctx, branch, git.PushForce); err != nil {
			return fmt.Errorf("force push failed: %w", err)
		}
		c.Splog.Success("Force push of %s completed.", branch)
	default:
		c.Splog.Info("Push canceled.")
	}
	return nil
}

// Choices offered after a failed pull.
const (
	pullRebase = iota
	pullReset
	pullCancel
)

// pullWithFallback pulls branch from the remote and, when that fails, offers
// to rebase instead, to reset onto the remote branch, or to stop.
func pullWithFallback(ctx context.Context, c *runtime.Context, branch string) error {
	_, err := c.Git.Pull(ctx, branch, git.PullMerge)
	if err == nil {
		c.Splog.Success("Pulled changes from %s/%s.", c.Remote(), branch)
		return nil
	}
	if vigiterrors.KindOf(err) != vigiterrors.KindCommandFailed {
		return err
	}

	c.Splog.Warn("Could not pull: %s", vigiterrors.Reason(err))
	choice, err := choose(c, "How do you want to bring in the remote changes?",
		"Pull with rebase (replays your commits on top)",
		"Reset to the remote branch (stashes local changes first)",
		"Cancel",
	)
	if err != nil {
		return err
	}

	switch choice {
	case pullRebase:
		if _, err := c.Git.Pull(ctx, branch, git.PullRebase); err != nil {
			return fmt.Errorf("pull with rebase failed: %w", err)
		}
		c.Splog.Success("Pulled changes from %s/%s with rebase.", c.Remote(), branch)
	case pullReset:
		target := c.Remote() + "/" + branch
		ok, err := confirm(c, fmt.Sprintf("Reset %s to %s? Local commits not on the remote will be lost", branch, target))
		if err != nil {
			return err
		}
		if !ok {
			c.Splog.Info("Reset canceled.")
			return nil
		}
		if err := c.Git.StashPush(ctx, "vigit: before reset to "+target, true); err != nil {
			return err
		}
		if err := c.Git.ResetTo(ctx, git.ResetHard, target); err != nil {
			return err
		}
		c.Splog.Success("%s now matches %s. Your local changes were stashed.", branch, target)
	default:
		c.Splog.Info("Pull canceled.")
	}
	return nil
}
