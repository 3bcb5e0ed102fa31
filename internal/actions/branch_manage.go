package actions

import (
	"context"
	"errors"
	"fmt"

	vigiterrors "vigit.dev/vigit/internal/errors"
	"vigit.dev/vigit/internal/git"
	"vigit.dev/vigit/internal/runtime"
)

var errBranchCheckedOut = errors.New("branch is checked out")

// Choices offered after a conflicting merge.
const (
	mergeOurs = iota
	mergeTheirs
	mergeAbort
)

// MergeWithMainAction merges the current branch into main.
func MergeWithMainAction(ctx context.Context, c *runtime.Context) error {
	if err := require(ctx, c, inRepository, hasCommits, offMain); err != nil {
		return err
	}
	source := c.Probes.CurrentBranch(ctx)
	target := c.MainBranch()

	c.Splog.Info("Merging %s into %s...", source, target)
	if err := switchTo(ctx, c, target); err != nil {
		return err
	}

	_, err := c.Git.Merge(ctx, source, git.MergeDefault)
	if err == nil {
		c.Splog.Success("Branch %s successfully merged into %s.", source, target)
		return offerReturn(ctx, c, source)
	}
	if vigiterrors.KindOf(err) != vigiterrors.KindCommandFailed {
		return err
	}

	c.Splog.Warn("Could not merge %s into %s: %s", source, target, vigiterrors.Reason(err))
	choice, err := choose(c, "How do you want to resolve the conflicts?",
		fmt.Sprintf("Force merge keeping %s's changes (-X ours)", target),
		fmt.Sprintf("Force merge keeping %s's changes (-X theirs)", source),
		fmt.Sprintf("Abort the merge and go back to %s", source),
	)
	if err != nil {
		return err
	}

	strategy := git.MergeOurs
	switch choice {
	case mergeOurs:
	case mergeTheirs:
		strategy = git.MergeTheirs
	default:
		return abandonMerge(ctx, c, source)
	}

	if err := c.Git.MergeAbort(ctx); err != nil {
		c.Splog.Debug("nothing to abort before retrying: %v", err)
	}
	if _, err := c.Git.Merge(ctx, source, strategy); err != nil {
		c.Splog.Warn("Forced merge failed: %s", vigiterrors.Reason(err))
		return abandonMerge(ctx, c, source)
	}
	c.Splog.Success("Forced merge completed. Conflicts were resolved with -X %s.", strategy)
	return offerReturn(ctx, c, source)
}

// abandonMerge aborts an in-progress merge and returns to branch.
func abandonMerge(ctx context.Context, c *runtime.Context, branch string) error {
	if err := c.Git.MergeAbort(ctx); err != nil {
		c.Splog.Debug("merge abort: %v", err)
	}
	if err := c.Git.Checkout(ctx, branch); err != nil {
		return err
	}
	c.Splog.Info("Merge aborted. You are back in %s.", branch)
	return nil
}

func offerReturn(ctx context.Context, c *runtime.Context, branch string) error {
	back, err := confirm(c, fmt.Sprintf("Go back to branch %s?", branch))
	if err != nil || !back {
		return err
	}
	if err := c.Git.Checkout(ctx, branch); err != nil {
		return err
	}
	c.Splog.Info("Returned to branch %s.", branch)
	return nil
}

// DeleteLocalBranchAction deletes a local branch, offering a force delete
// when git refuses because the branch is not fully merged.
func DeleteLocalBranchAction(ctx context.Context, c *runtime.Context) error {
	if err := require(ctx, c, inRepository, hasCommits); err != nil {
		return err
	}
	branch, err := askRequired(c, "Name of the branch to delete:", "branch name")
	if err != nil {
		return err
	}
	switch {
	case branch == c.MainBranch():
		return &inputError{msg: fmt.Sprintf("You cannot delete %s.", branch)}
	case branch == c.Probes.CurrentBranch(ctx):
		return vigiterrors.NewPreconditionError(errBranchCheckedOut,
			fmt.Sprintf("You are in %s. Go to another branch before deleting it.", branch),
			menuPath(WorkInBranchesID, BranchLocalID, GoToBranchID))
	case !c.Probes.BranchExists(ctx, branch):
		return &inputError{msg: fmt.Sprintf("Branch %s does not exist.", branch)}
	}

	_, err = c.Git.DeleteBranch(ctx, branch)
	if err == nil {
		c.Splog.Success("Deleted local branch %s.", branch)
		return nil
	}
	if vigiterrors.KindOf(err) != vigiterrors.KindCommandFailed {
		return err
	}
	c.Splog.Warn("Could not delete %s: %s", branch, vigiterrors.Reason(err))

	force, err := confirm(c, fmt.Sprintf("Force delete %s? Its unmerged commits will be lost", branch))
	if err != nil {
		return err
	}
	if !force {
		c.Splog.Info("Branch %s was kept.", branch)
		return nil
	}
	if err := c.Git.ForceDeleteBranch(ctx, branch); err != nil {
		return err
	}
	c.Splog.Success("Force deleted local branch %s.", branch)
	return nil
}

// DeleteRemoteBranchAction deletes a branch on the remote.
func DeleteRemoteBranchAction(ctx context.Context, c *runtime.Context) error {
	if err := require(ctx, c, inRepository, hasCommits, connected); err != nil {
		return err
	}
	branch, err := askRequired(c, "Name of the remote branch to delete:", "branch name")
	if err != nil {
		return err
	}
	if branch == c.MainBranch() {
		return &inputError{msg: fmt.Sprintf("You cannot delete %s on the remote.", branch)}
	}
	if !c.Probes.RemoteBranchExists(ctx, branch) {
		return &inputError{msg: fmt.Sprintf("Branch %s does not exist on %s.", branch, c.Remote())}
	}

	ok, err := confirm(c, fmt.Sprintf("Delete %s/%s? This cannot be undone", c.Remote(), branch))
	if err != nil {
		return err
	}
	if !ok {
		c.Splog.Info("Remote branch %s was kept.", branch)
		return nil
	}
	if err := c.Git.DeleteRemoteBranch(ctx, branch); err != nil {
		return err
	}
	c.Splog.Success("Deleted remote branch %s/%s.", c.Remote(), branch)
	return nil
}
