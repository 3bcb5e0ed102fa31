package actions

import (
	"context"
	"fmt"

	vigiterrors "vigit.dev/vigit/internal/errors"
	"vigit.dev/vigit/internal/git"
	"vigit.dev/vigit/internal/runtime"
)

var resetModes = []struct {
	mode  git.ResetMode
	label string
}{
	{git.ResetSoft, "Soft (keep the changes staged)"},
	{git.ResetMixed, "Mixed (keep the changes unstaged)"},
	{git.ResetHard, "Hard (discard the changes)"},
}

// ResetAction moves the current branch back a number of commits.
func ResetAction(ctx context.Context, c *runtime.Context) error {
	if err := require(ctx, c, inRepository, hasCommits); err != nil {
		return err
	}
	labels := make([]string, len(resetModes))
	for i, m := range resetModes {
		labels[i] = m.label
	}
	choice, err := choose(c, "Which kind of reset?", labels...)
	if err != nil {
		return err
	}
	if choice < 0 {
		return vigiterrors.ErrCanceled
	}
	mode := resetModes[choice].mode

	n, err := askNumber(c, "How many commits back?", "1", 1)
	if err != nil {
		return err
	}
	ok, err := confirm(c, fmt.Sprintf("Reset %s %d commit(s) back with %s", c.Probes.CurrentBranch(ctx), n, mode))
	if err != nil {
		return err
	}
	if !ok {
		c.Splog.Info("Reset canceled.")
		return nil
	}
	if err := c.Git.ResetBack(ctx, mode, n); err != nil {
		return err
	}
	c.Splog.Success("Reset %d commit(s) back.", n)
	return nil
}

var cleanModes = []struct {
	mode  git.CleanMode
	label string
}{
	{git.CleanFiles, "Remove untracked files"},
	{git.CleanFilesAndDirs, "Remove untracked files and directories"},
	{git.CleanInteractive, "Choose interactively"},
}

// CleanAction removes untracked files from the work tree.
func CleanAction(ctx context.Context, c *runtime.Context) error {
	if err := require(ctx, c, inRepository); err != nil {
		return err
	}
	labels := make([]string, len(cleanModes))
	for i, m := range cleanModes {
		labels[i] = m.label
	}
	choice, err := choose(c, "What do you want to clean?", labels...)
	if err != nil {
		return err
	}
	if choice < 0 {
		return vigiterrors.ErrCanceled
	}
	mode := cleanModes[choice].mode

	if mode != git.CleanInteractive {
		ok, err := confirm(c, "Permanently delete the untracked files")
		if err != nil {
			return err
		}
		if !ok {
			c.Splog.Info("Clean canceled.")
			return nil
		}
	}
	if err := c.Git.Clean(ctx, mode); err != nil {
		return err
	}
	c.Splog.Success("Work tree cleaned.")
	return nil
}

// ForcePushAction overwrites the remote branch with the current branch.
func ForcePushAction(ctx context.Context, c *runtime.Context) error {
	if err := require(ctx, c, inRepository, hasCommits, connected); err != nil {
		return err
	}
	branch := c.Probes.CurrentBranch(ctx)
	choice, err := choose(c, "Which kind of force push?",
		"With lease (refuses if someone else pushed)",
		"Plain force (always overwrites)",
	)
	if err != nil {
		return err
	}
	if choice < 0 {
		return vigiterrors.ErrCanceled
	}
	mode := git.PushForceWithLease
	if choice == 1 {
		mode = git.PushForce
	}

	ok, err := confirm(c, fmt.Sprintf("Force push %s to %s? Remote commits you do not have will be lost", branch, c.Remote()))
	if err != nil {
		return err
	}
	if !ok {
		c.Splog.Info("Force push canceled.")
		return nil
	}
	if _, err := c.Git.Push(ctx, branch, mode); err != nil {
		return err
	}
	c.Splog.Success("Force pushed %s to %s.", branch, c.Remote())
	return nil
}

// CherryPickAction applies a single commit onto the current branch.
func CherryPickAction(ctx context.Context, c *runtime.Context) error {
	if err := require(ctx, c, inRepository, hasCommits); err != nil {
		return err
	}
	commit, err := askRequired(c, "Hash of the commit to cherry-pick:", "commit hash")
	if err != nil {
		return err
	}
	choice, err := choose(c, "How should the commit be applied?",
		"Apply and commit",
		"Apply without committing",
		"Apply and edit the message",
	)
	if err != nil {
		return err
	}
	if choice < 0 {
		return vigiterrors.ErrCanceled
	}
	mode := []git.CherryPickMode{git.CherryPickCommit, git.CherryPickNoCommit, git.CherryPickEdit}[choice]

	_, err = c.Git.CherryPick(ctx, commit, mode)
	if err == nil {
		c.Splog.Success("Cherry-picked %s.", commit)
		return nil
	}
	if vigiterrors.KindOf(err) != vigiterrors.KindCommandFailed {
		return err
	}

	c.Splog.Warn("Cherry-pick of %s stopped: %s", commit, vigiterrors.Reason(err))
	next, err := choose(c, "What do you want to do?",
		"Resolve the conflicts manually",
		"Abort the cherry-pick",
	)
	if err != nil {
		return err
	}
	if next != 1 {
		c.Splog.Tip("Fix the conflicts, stage them, then run: git cherry-pick --continue")
		return nil
	}
	if err := c.Git.CherryPickAbort(ctx); err != nil {
		return err
	}
	c.Splog.Info("Cherry-pick aborted.")
	return nil
}

// InteractiveRebaseAction opens git's interactive rebase over the last commits.
func InteractiveRebaseAction(ctx context.Context, c *runtime.Context) error {
	if err := require(ctx, c, inRepository, hasCommits); err != nil {
		return err
	}
	n, err := askNumber(c, "How many commits back?", "2", 1)
	if err != nil {
		return err
	}
	ok, err := confirm(c, fmt.Sprintf("Rewrite the last %d commit(s)? Already pushed commits will need a force push", n))
	if err != nil {
		return err
	}
	if !ok {
		c.Splog.Info("Interactive rebase canceled.")
		return nil
	}
	return c.Git.RebaseInteractive(ctx, n)
}
