package actions

import (
	"context"
	"fmt"

	vigiterrors "vigit.dev/vigit/internal/errors"
	"vigit.dev/vigit/internal/runtime"
	"vigit.dev/vigit/internal/utils"
)

// SeeLocalBranchesAction prints the local branches.
func SeeLocalBranchesAction(ctx context.Context, c *runtime.Context) error {
	if err := require(ctx, c, inRepository, hasCommits); err != nil {
		return err
	}
	return c.Git.ListBranches(ctx)
}

// AddLocalBranchAction creates a branch from HEAD and switches to it.
func AddLocalBranchAction(ctx context.Context, c *runtime.Context) error {
	if err := require(ctx, c, inRepository, hasCommits); err != nil {
		return err
	}
	name, err := askRequired(c, "Name of the new branch:", "branch name")
	if err != nil {
		return err
	}
	if !utils.IsValidBranchName(name) {
		msg := fmt.Sprintf("%s is not a valid branch name.", name)
		if suggestion := utils.SanitizeBranchName(name); suggestion != "" {
			msg += fmt.Sprintf(" Try: %s", suggestion)
		}
		return &inputError{msg: msg}
	}
	if c.Probes.BranchExists(ctx, name) {
		return &inputError{msg: fmt.Sprintf("Branch %s already exists.", name)}
	}
	if err := c.Git.CreateBranch(ctx, name); err != nil {
		return err
	}
	c.Splog.Success("Created branch %s and switched to it.", name)
	return nil
}

// CommitToBranchAction commits everything on the current, non-main branch.
func CommitToBranchAction(ctx context.Context, c *runtime.Context) error {
	if err := require(ctx, c, inRepository, hasCommits, offMain); err != nil {
		return err
	}
	return commitAll(ctx, c, "")
}

// GoToBranchAction switches to another local branch the user picks.
func GoToBranchAction(ctx context.Context, c *runtime.Context) error {
	if err := require(ctx, c, inRepository, hasCommits); err != nil {
		return err
	}
	current := c.Probes.CurrentBranch(ctx)
	branches, err := c.Git.LocalBranches(ctx)
	if err != nil {
		return err
	}
	others := make([]string, 0, len(branches))
	for _, b := range branches {
		if b != current {
			others = append(others, b)
		}
	}
	if len(others) == 0 {
		c.Splog.Info("There are no other branches to go to.")
		c.Splog.Tip("Create one with %s.", menuPath(WorkInBranchesID, BranchLocalID, AddLocalBranchID))
		return nil
	}

	choice, err := choose(c, "Which branch do you want to go to?", others...)
	if err != nil {
		return err
	}
	if choice < 0 {
		return vigiterrors.ErrCanceled
	}
	return switchTo(ctx, c, others[choice])
}

// GoToMainAction switches to the main branch.
func GoToMainAction(ctx context.Context, c *runtime.Context) error {
	if err := require(ctx, c, inRepository, hasCommits); err != nil {
		return err
	}
	if c.Probes.CurrentBranch(ctx) == c.MainBranch() {
		c.Splog.Info("You are already in %s.", c.MainBranch())
		return nil
	}
	return switchTo(ctx, c, c.MainBranch())
}

// Choices offered when switching branches with uncommitted changes.
const (
	dirtyCommit = iota
	dirtyStash
	dirtyDiscard
	dirtyCancel
)

func switchCanceled(branch string) error {
	return fmt.Errorf("did not go to %s: %w", branch, vigiterrors.ErrCanceled)
}

// switchTo checks out branch. Uncommitted changes are detected up front and
// the user decides whether to commit, stash or discard them first.
func switchTo(ctx context.Context, c *runtime.Context, branch string) error {
	if !c.Probes.HasUncommittedChanges(ctx) {
		if err := c.Git.Checkout(ctx, branch); err != nil {
			return err
		}
		c.Splog.Success("Switched to branch %s.", branch)
		return nil
	}

	c.Splog.Warn("You have uncommitted changes.")
	choice, err := choose(c, fmt.Sprintf("What do you want to do with them before going to %s?", branch),
		"Commit them, then switch",
		"Stash them, then switch",
		"Discard them and switch",
		"Cancel",
	)
	if err != nil {
		return err
	}

	switch choice {
	case dirtyCommit:
		if err := commitAll(ctx, c, ""); err != nil {
			return err
		}
		if err := c.Git.Checkout(ctx, branch); err != nil {
			return err
		}
	case dirtyStash:
		if err := c.Git.StashPush(ctx, "vigit: leaving for "+branch, true); err != nil {
			return err
		}
		if err := c.Git.Checkout(ctx, branch); err != nil {
			return err
		}
		c.Splog.Tip("Your changes are in the stash. Restore them with %s.", menuPath(WorkInBranchesID, BranchAdvancedID, StashID, StashPopID))
	case dirtyDiscard:
		ok, err := confirm(c, "Discard all uncommitted changes to tracked files")
		if err != nil {
			return err
		}
		if !ok {
			return switchCanceled(branch)
		}
		if err := c.Git.CheckoutForce(ctx, branch); err != nil {
			return err
		}
	default:
		return switchCanceled(branch)
	}
	c.Splog.Success("Switched to branch %s.", branch)
	return nil
}
