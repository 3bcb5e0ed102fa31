package actions

import (
	"context"
	"fmt"

	vigiterrors "vigit.dev/vigit/internal/errors"
	"vigit.dev/vigit/internal/runtime"
)

// check is a precondition probe. It returns a *PreconditionError when the
// repository is not in the state a handler needs.
type check func(ctx context.Context, c *runtime.Context) error

// require runs checks in order and stops at the first failure.
// Checks only use probes, so nothing is mutated when one fails.
func require(ctx context.Context, c *runtime.Context, checks ...check) error {
	for _, chk := range checks {
		if err := chk(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

func inRepository(ctx context.Context, c *runtime.Context) error {
	if c.Probes.IsRepository(ctx) {
		return nil
	}
	return vigiterrors.NewPreconditionError(vigiterrors.ErrNotRepository,
		"The present working directory is not a git repository, please create one to proceed.",
		menuPath(WorkInMainID, MainLocalID, AddLocalRepoID))
}

func notInRepository(ctx context.Context, c *runtime.Context) error {
	if !c.Probes.IsRepository(ctx) {
		return nil
	}
	return vigiterrors.NewPreconditionError(vigiterrors.ErrAlreadyRepository,
		"The present working directory is already a git repository. No need to create one.", "")
}

func hasCommits(ctx context.Context, c *runtime.Context) error {
	if c.Probes.HasCommits(ctx) {
		return nil
	}
	return vigiterrors.NewPreconditionError(vigiterrors.ErrNoCommits,
		"To work with branches, you need to commit first. Please commit to proceed.",
		menuPath(WorkInMainID, MainLocalID, CommitLocalID))
}

func connected(ctx context.Context, c *runtime.Context) error {
	if c.Probes.IsConnectedToRemote(ctx) {
		return nil
	}
	return vigiterrors.NewPreconditionError(vigiterrors.ErrNotConnected,
		"The local repository is not connected to a remote repository. Please connect it to proceed.",
		menuPath(WorkInMainID, MainRemoteID, JoinLocalToRemoteID))
}

func notConnected(ctx context.Context, c *runtime.Context) error {
	if !c.Probes.IsConnectedToRemote(ctx) {
		return nil
	}
	return vigiterrors.NewPreconditionError(vigiterrors.ErrAlreadyConnected,
		"The local repository is already connected to a remote repository.", "")
}

func onMain(ctx context.Context, c *runtime.Context) error {
	if c.Probes.CurrentBranch(ctx) == c.MainBranch() {
		return nil
	}
	return notOnMainError(c)
}

func notOnMainError(c *runtime.Context) error {
	return vigiterrors.NewPreconditionError(vigiterrors.ErrNotOnMainBranch,
		fmt.Sprintf("You are not in %s. Go to %s to proceed.", c.MainBranch(), c.MainBranch()),
		menuPath(QuickActionsID, QuickGoToMainID))
}

func offMain(ctx context.Context, c *runtime.Context) error {
	if c.Probes.CurrentBranch(ctx) != c.MainBranch() {
		return nil
	}
	return vigiterrors.NewPreconditionError(vigiterrors.ErrOnMainBranch,
		fmt.Sprintf("You are in %s. Go to a branch to proceed.", c.MainBranch()),
		menuPath(WorkInBranchesID, BranchLocalID, GoToBranchID))
}

func hasUpstream(ctx context.Context, c *runtime.Context) error {
	branch := c.Probes.CurrentBranch(ctx)
	if c.Probes.HasUpstream(ctx, branch) {
		return nil
	}
	return vigiterrors.NewPreconditionError(vigiterrors.ErrNoUpstream,
		fmt.Sprintf("The branch %s is not linked to a remote branch.", branch),
		menuPath(WorkInBranchesID, BranchLocalToRemoteID, JoinBranchToRemoteID))
}

// mainGate blocks Work in Main inside a repository whose checked-out branch is not main.
// Outside a repository, or before the first commit, it passes.
func mainGate(ctx context.Context, c *runtime.Context) error {
	if !c.Probes.IsRepository(ctx) {
		return nil
	}
	branch := c.Probes.CurrentBranch(ctx)
	if branch == "" || branch == c.MainBranch() {
		return nil
	}
	return notOnMainError(c)
}
