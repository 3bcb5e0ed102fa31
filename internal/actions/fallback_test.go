package actions_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"vigit.dev/vigit/internal/actions"
	vigiterrors "vigit.dev/vigit/internal/errors"
	"vigit.dev/vigit/testhelpers"
)

const rejected = "! [rejected]        feature -> feature (fetch first)\nerror: failed to push some refs"

func onFeature(h *testhelpers.Harness) {
	h.Prober.Branch = "feature"
	h.Prober.Branches["feature"] = true
}

func TestPushFallback(t *testing.T) {
	t.Run("clean push needs no fallback", func(t *testing.T) {
		h := testhelpers.NewHarness(t)
		onFeature(h)

		require.NoError(t, actions.PushBranchAction(context.Background(), h.Ctx))
		testhelpers.ExpectCommands(t, h.Runner, "push origin feature")
		require.Contains(t, h.Output(), "Pushed feature to origin.")
		require.Empty(t, h.Prompter.Messages())
	})

	t.Run("rebase pulls with rebase then pushes exactly once more", func(t *testing.T) {
		h := testhelpers.NewHarness(t, testhelpers.Choose("Pull with rebase, then push (recommended)"))
		onFeature(h)
		h.Runner.On("push", "origin", "feature").Fails(1, rejected).Once()

		require.NoError(t, actions.PushBranchAction(context.Background(), h.Ctx))
		testhelpers.ExpectCommands(t, h.Runner,
			"push origin feature",
			"pull --rebase origin feature",
			"push origin feature",
		)
		require.Contains(t, h.Output(), "Could not push directly")
		require.Contains(t, h.Output(), "Changes integrated and pushed to origin/feature.")
	})

	t.Run("a failed rebase does not push again", func(t *testing.T) {
		h := testhelpers.NewHarness(t, testhelpers.Choose("Pull with rebase, then push (recommended)"))
		onFeature(h)
		h.Runner.On("push").Fails(1, rejected)
		h.Runner.On("pull", "--rebase").Fails(1, "CONFLICT (content): Merge conflict in a.txt")

		err := actions.PushBranchAction(context.Background(), h.Ctx)
		require.Equal(t, vigiterrors.KindCommandFailed, vigiterrors.KindOf(err))
		testhelpers.ExpectCommands(t, h.Runner, "push origin feature", "pull --rebase origin feature")
	})

	t.Run("force push requires confirmation", func(t *testing.T) {
		h := testhelpers.NewHarness(t,
			testhelpers.Choose("Force push (overwrites remote changes)"),
			testhelpers.Yes(),
		)
		onFeature(h)
		h.Runner.On("push", "origin").Fails(1, rejected)

		require.NoError(t, actions.PushBranchAction(context.Background(), h.Ctx))
		testhelpers.ExpectCommands(t, h.Runner, "push origin feature", "push --force origin feature")
		require.Contains(t, h.Output(), "Force push of feature completed.")
	})

	t.Run("declining the force push changes nothing", func(t *testing.T) {
		h := testhelpers.NewHarness(t,
			testhelpers.Choose("Force push (overwrites remote changes)"),
			testhelpers.No(),
		)
		onFeature(h)
		h.Runner.On("push", "origin").Fails(1, rejected)

		require.NoError(t, actions.PushBranchAction(context.Background(), h.Ctx))
		testhelpers.ExpectCommands(t, h.Runner, "push origin feature")
		require.Contains(t, h.Output(), "Force push canceled.")
	})

	t.Run("cancel is a no-op", func(t *testing.T) {
		h := testhelpers.NewHarness(t, testhelpers.Choose("Cancel"))
		onFeature(h)
		h.Runner.On("push").Fails(1, rejected)

		require.NoError(t, actions.PushBranchAction(context.Background(), h.Ctx))
		testhelpers.ExpectCommands(t, h.Runner, "push origin feature")
		require.Contains(t, h.Output(), "Push canceled.")
	})

	t.Run("first push of a branch sets the upstream", func(t *testing.T) {
		h := testhelpers.NewHarness(t)
		onFeature(h)
		h.Prober.Upstream = false

		require.NoError(t, actions.JoinBranchToRemoteAction(context.Background(), h.Ctx))
		testhelpers.ExpectCommands(t, h.Runner, "push -u origin feature")
	})
}

func TestCommitAndPush(t *testing.T) {
	t.Run("commits on main and pushes with upstream", func(t *testing.T) {
		h := testhelpers.NewHarness(t, testhelpers.Type("ship it"))
		h.Prober.Dirty = true

		require.NoError(t, actions.CommitAndPushAction(context.Background(), h.Ctx))
		testhelpers.ExpectCommands(t, h.Runner,
			"add --all",
			"commit -m ship it",
			"push -u origin main",
		)
	})

	t.Run("a clean tree pushes existing commits without asking", func(t *testing.T) {
		h := testhelpers.NewHarness(t)
		h.Runner.On("commit").Fails(1, "nothing to commit, working tree clean")

		require.NoError(t, actions.CommitAndPushAction(context.Background(), h.Ctx))
		testhelpers.ExpectCommands(t, h.Runner, "push -u origin main")
		require.Empty(t, h.Prompter.Messages())
		require.Contains(t, h.Output(), "Nothing new to commit")
	})

	t.Run("a clean tree still reaches the push fallback", func(t *testing.T) {
		h := testhelpers.NewHarness(t, testhelpers.Choose("Cancel"))
		h.Runner.On("push").Fails(1, rejected)

		require.NoError(t, actions.CommitAndPushAction(context.Background(), h.Ctx))
		testhelpers.ExpectCommands(t, h.Runner, "push -u origin main")
		require.Len(t, h.Prompter.Screens(), 1)
	})

	t.Run("a clean tree without commits has nothing to push", func(t *testing.T) {
		h := testhelpers.NewHarness(t)
		h.Prober.Commits = false

		err := actions.CommitAndPushAction(context.Background(), h.Ctx)
		require.ErrorIs(t, err, vigiterrors.ErrNoCommits)
		testhelpers.ExpectNoCommands(t, h.Runner)
	})

	t.Run("a given message skips the prompt", func(t *testing.T) {
		h := testhelpers.NewHarness(t)
		onFeature(h)
		h.Prober.Dirty = true

		require.NoError(t, actions.CommitAndPushBranch(context.Background(), h.Ctx, "wip"))
		testhelpers.ExpectCommands(t, h.Runner, "add --all", "commit -m wip", "push origin feature")
		require.Empty(t, h.Prompter.Messages())
	})

	t.Run("a clean branch pushes without committing", func(t *testing.T) {
		h := testhelpers.NewHarness(t)
		onFeature(h)
		h.Prober.Upstream = false

		require.NoError(t, actions.CommitAndPushBranchAction(context.Background(), h.Ctx))
		testhelpers.ExpectCommands(t, h.Runner, "push -u origin feature")
		require.Empty(t, h.Prompter.Messages())
	})

	t.Run("an empty message cancels before staging", func(t *testing.T) {
		h := testhelpers.NewHarness(t, testhelpers.Type(""))
		h.Prober.Dirty = true

		err := actions.CommitAndPushAction(context.Background(), h.Ctx)
		require.Equal(t, vigiterrors.KindCanceled, vigiterrors.KindOf(err))
		testhelpers.ExpectNoCommands(t, h.Runner)
	})
}

func TestFallbacksStopWhenInterrupted(t *testing.T) {
	t.Run("push", func(t *testing.T) {
		h := testhelpers.NewHarness(t)
		h.Runner.On("push").Errors(context.Canceled)

		err := actions.CommitAndPushAction(context.Background(), h.Ctx)
		require.ErrorIs(t, err, context.Canceled)
		require.Empty(t, h.Prompter.Messages())
	})

	t.Run("pull", func(t *testing.T) {
		h := testhelpers.NewHarness(t)
		h.Runner.On("pull").Errors(context.Canceled)

		err := actions.YankFromRemoteAction(context.Background(), h.Ctx)
		require.ErrorIs(t, err, context.Canceled)
		require.Empty(t, h.Prompter.Messages())
	})
}

func TestPullFallback(t *testing.T) {
	const diverged = "fatal: Not possible to fast-forward, aborting."

	t.Run("plain pull allows unrelated histories", func(t *testing.T) {
		h := testhelpers.NewHarness(t)

		require.NoError(t, actions.YankFromRemoteAction(context.Background(), h.Ctx))
		testhelpers.ExpectCommands(t, h.Runner, "pull --allow-unrelated-histories origin main")
	})

	t.Run("rebase retries with --rebase", func(t *testing.T) {
		h := testhelpers.NewHarness(t, testhelpers.Choose("Pull with rebase (replays your commits on top)"))
		h.Runner.On("pull", "--allow-unrelated-histories").Fails(1, diverged)

		require.NoError(t, actions.YankFromRemoteAction(context.Background(), h.Ctx))
		testhelpers.ExpectCommands(t, h.Runner,
			"pull --allow-unrelated-histories origin main",
			"pull --rebase origin main",
		)
	})

	t.Run("reset to remote stashes first", func(t *testing.T) {
		h := testhelpers.NewHarness(t,
			testhelpers.Choose("Reset to the remote branch (stashes local changes first)"),
			testhelpers.Yes(),
		)
		h.Runner.On("pull").Fails(1, diverged)

		require.NoError(t, actions.YankFromRemoteAction(context.Background(), h.Ctx))
		testhelpers.ExpectCommands(t, h.Runner,
			"pull --allow-unrelated-histories origin main",
			"stash push -u -m vigit: before reset to origin/main",
			"reset --hard origin/main",
		)
	})

	t.Run("reset to remote is skipped without confirmation", func(t *testing.T) {
		h := testhelpers.NewHarness(t,
			testhelpers.Choose("Reset to the remote branch (stashes local changes first)"),
			testhelpers.No(),
		)
		h.Runner.On("pull").Fails(1, diverged)

		require.NoError(t, actions.YankFromRemoteAction(context.Background(), h.Ctx))
		testhelpers.ExpectCommands(t, h.Runner, "pull --allow-unrelated-histories origin main")
	})
}
