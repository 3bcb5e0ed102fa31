package actions

import (
	"context"
	"fmt"

	vigiterrors "vigit.dev/vigit/internal/errors"
	"vigit.dev/vigit/internal/git"
	"vigit.dev/vigit/internal/runtime"
)

// SeeRemoteBranchesAction prints the remote-tracking branches.
func SeeRemoteBranchesAction(ctx context.Context, c *runtime.Context) error {
	if err := require(ctx, c, inRepository, hasCommits, connected); err != nil {
		return err
	}
	return c.Git.ListRemoteBranches(ctx)
}

// JoinBranchToRemoteAction publishes the current branch and sets its upstream.
func JoinBranchToRemoteAction(ctx context.Context, c *runtime.Context) error {
	if err := require(ctx, c, inRepository, hasCommits, connected, offMain); err != nil {
		return err
	}
	branch := c.Probes.CurrentBranch(ctx)
	if c.Probes.HasUpstream(ctx, branch) {
		c.Splog.Info("The branch %s is already linked to a remote branch.", branch)
		return nil
	}
	return pushWithFallback(ctx, c, branch, git.PushSetUpstream)
}

// PushBranchAction pushes the current branch to its upstream.
func PushBranchAction(ctx context.Context, c *runtime.Context) error {
	if err := require(ctx, c, inRepository, hasCommits, connected, offMain, hasUpstream); err != nil {
		return err
	}
	return pushWithFallback(ctx, c, c.Probes.CurrentBranch(ctx), git.PushPlain)
}

// CommitAndPushBranchAction commits everything on the current branch and pushes it,
// setting the upstream on the first push.
func CommitAndPushBranchAction(ctx context.Context, c *runtime.Context) error {
	return CommitAndPushBranch(ctx, c, "")
}

// CommitAndPushBranch commits every change on the current branch with message and pushes it.
func CommitAndPushBranch(ctx context.Context, c *runtime.Context, message string) error {
	if err := require(ctx, c, inRepository, hasCommits, connected, offMain); err != nil {
		return err
	}
	branch := c.Probes.CurrentBranch(ctx)
	if err := commitPending(ctx, c, message); err != nil {
		return err
	}
	mode := git.PushPlain
	if !c.Probes.HasUpstream(ctx, branch) {
		mode = git.PushSetUpstream
	}
	return pushWithFallback(ctx, c, branch, mode)
}

// TrackRemoteBranchAction creates a local branch tracking a remote branch.
func TrackRemoteBranchAction(ctx context.Context, c *runtime.Context) error {
	if err := require(ctx, c, inRepository, hasCommits, connected); err != nil {
		return err
	}
	if err := c.Git.Fetch(ctx); err != nil {
		return err
	}
	remote, err := c.Git.RemoteBranches(ctx)
	if err != nil {
		return err
	}
	candidates := make([]string, 0, len(remote))
	for _, b := range remote {
		if !c.Probes.BranchExists(ctx, b) {
			candidates = append(candidates, b)
		}
	}
	if len(candidates) == 0 {
		c.Splog.Info("Every remote branch already exists locally.")
		c.Splog.Tip("Switch to one with %s.", menuPath(WorkInBranchesID, BranchLocalID, GoToBranchID))
		return nil
	}

	choice, err := choose(c, "Which remote branch do you want to bring to local?", candidates...)
	if err != nil {
		return err
	}
	if choice < 0 {
		return vigiterrors.ErrCanceled
	}
	branch := candidates[choice]
	if err := c.Git.CheckoutTrack(ctx, branch); err != nil {
		return err
	}
	c.Splog.Success("Created local branch %s tracking %s/%s.", branch, c.Remote(), branch)
	return nil
}

// YankRemoteBranchAction pulls the current branch's counterpart from the remote.
func YankRemoteBranchAction(ctx context.Context, c *runtime.Context) error {
	if err := require(ctx, c, inRepository, hasCommits, connected, offMain); err != nil {
		return err
	}
	branch := c.Probes.CurrentBranch(ctx)
	if !c.Probes.RemoteBranchExists(ctx, branch) {
		return vigiterrors.NewPreconditionError(vigiterrors.ErrBranchNotFound,
			fmt.Sprintf("The branch %s does not exist on %s.", branch, c.Remote()),
			menuPath(WorkInBranchesID, BranchLocalToRemoteID, JoinBranchToRemoteID))
	}
	return pullWithFallback(ctx, c, branch)
}
