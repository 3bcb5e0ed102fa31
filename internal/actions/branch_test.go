package actions_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"vigit.dev/vigit/internal/actions"
	vigiterrors "vigit.dev/vigit/internal/errors"
	"vigit.dev/vigit/testhelpers"
)

func TestDeleteLocalBranch(t *testing.T) {
	const notMerged = "error: the branch 'feature' is not fully merged."

	t.Run("merged branch is deleted with -d", func(t *testing.T) {
		h := testhelpers.NewHarness(t, testhelpers.Type("feature"))
		h.Prober.Branches["feature"] = true

		require.NoError(t, actions.DeleteLocalBranchAction(context.Background(), h.Ctx))
		testhelpers.ExpectCommands(t, h.Runner, "branch -d feature")
		require.Contains(t, h.Output(), "Deleted local branch feature.")
	})

	t.Run("unmerged branch is force deleted only on yes", func(t *testing.T) {
		h := testhelpers.NewHarness(t, testhelpers.Type("feature"), testhelpers.Yes())
		h.Prober.Branches["feature"] = true
		h.Runner.On("branch", "-d").Fails(1, notMerged)

		require.NoError(t, actions.DeleteLocalBranchAction(context.Background(), h.Ctx))
		testhelpers.ExpectCommands(t, h.Runner, "branch -d feature", "branch -D feature")
		require.Contains(t, h.Output(), "is not fully merged")
	})

	t.Run("declining keeps the branch", func(t *testing.T) {
		h := testhelpers.NewHarness(t, testhelpers.Type("feature"), testhelpers.No())
		h.Prober.Branches["feature"] = true
		h.Runner.On("branch", "-d").Fails(1, notMerged)

		require.NoError(t, actions.DeleteLocalBranchAction(context.Background(), h.Ctx))
		testhelpers.ExpectCommands(t, h.Runner, "branch -d feature")
		require.Contains(t, h.Output(), "Branch feature was kept.")
	})

	refusals := []struct {
		name   string
		branch string
		kind   vigiterrors.Kind
	}{
		{name: "main", branch: "main", kind: vigiterrors.KindInvalidInput},
		{name: "the current branch", branch: "feature", kind: vigiterrors.KindPrecondition},
		{name: "a missing branch", branch: "ghost", kind: vigiterrors.KindInvalidInput},
	}
	for _, tt := range refusals {
		t.Run("refuses "+tt.name, func(t *testing.T) {
			h := testhelpers.NewHarness(t, testhelpers.Type(tt.branch))
			onFeature(h)

			err := actions.DeleteLocalBranchAction(context.Background(), h.Ctx)
			require.Error(t, err)
			require.Equal(t, tt.kind, vigiterrors.KindOf(err))
			testhelpers.ExpectNoCommands(t, h.Runner)
		})
	}
}

func TestDeleteRemoteBranch(t *testing.T) {
	t.Run("deletes after confirmation", func(t *testing.T) {
		h := testhelpers.NewHarness(t, testhelpers.Type("feature"), testhelpers.Yes())
		h.Prober.RemoteBranches["feature"] = true

		require.NoError(t, actions.DeleteRemoteBranchAction(context.Background(), h.Ctx))
		testhelpers.ExpectCommands(t, h.Runner, "push origin --delete feature")
	})

	t.Run("defaults to keeping the branch", func(t *testing.T) {
		h := testhelpers.NewHarness(t, testhelpers.Type("feature"), testhelpers.No())
		h.Prober.RemoteBranches["feature"] = true

		require.NoError(t, actions.DeleteRemoteBranchAction(context.Background(), h.Ctx))
		testhelpers.ExpectNoCommands(t, h.Runner)
	})

	t.Run("refuses a branch the remote does not have", func(t *testing.T) {
		h := testhelpers.NewHarness(t, testhelpers.Type("ghost"))

		err := actions.DeleteRemoteBranchAction(context.Background(), h.Ctx)
		require.Equal(t, vigiterrors.KindInvalidInput, vigiterrors.KindOf(err))
		testhelpers.ExpectNoCommands(t, h.Runner)
	})
}

func TestMergeWithMain(t *testing.T) {
	const conflict = "CONFLICT (content): Merge conflict in a.txt\nAutomatic merge failed; fix conflicts and then commit the result."

	t.Run("clean merge offers to go back", func(t *testing.T) {
		h := testhelpers.NewHarness(t, testhelpers.Yes())
		onFeature(h)

		require.NoError(t, actions.MergeWithMainAction(context.Background(), h.Ctx))
		testhelpers.ExpectCommands(t, h.Runner, "checkout main", "merge feature", "checkout feature")
		require.Contains(t, h.Output(), "Branch feature successfully merged into main.")
	})

	t.Run("conflict resolved with theirs", func(t *testing.T) {
		h := testhelpers.NewHarness(t,
			testhelpers.Choose("Force merge keeping feature's changes (-X theirs)"),
			testhelpers.No(),
		)
		onFeature(h)
		h.Runner.On("merge", "feature").Fails(1, conflict)

		require.NoError(t, actions.MergeWithMainAction(context.Background(), h.Ctx))
		testhelpers.ExpectCommands(t, h.Runner,
			"checkout main",
			"merge feature",
			"merge --abort",
			"merge -X theirs feature",
		)
		require.Contains(t, h.Output(), "Forced merge completed.")
	})

	t.Run("conflict resolved with ours", func(t *testing.T) {
		h := testhelpers.NewHarness(t,
			testhelpers.Choose("Force merge keeping main's changes (-X ours)"),
			testhelpers.No(),
		)
		onFeature(h)
		h.Runner.On("merge", "feature").Fails(1, conflict)

		require.NoError(t, actions.MergeWithMainAction(context.Background(), h.Ctx))
		require.Equal(t, "merge -X ours feature", h.Runner.Commands()[3])
	})

	t.Run("abort returns to the branch", func(t *testing.T) {
		h := testhelpers.NewHarness(t, testhelpers.Choose("Abort the merge and go back to feature"))
		onFeature(h)
		h.Runner.On("merge", "feature").Fails(1, conflict)

		require.NoError(t, actions.MergeWithMainAction(context.Background(), h.Ctx))
		testhelpers.ExpectCommands(t, h.Runner,
			"checkout main",
			"merge feature",
			"merge --abort",
			"checkout feature",
		)
		require.Contains(t, h.Output(), "Merge aborted. You are back in feature.")
	})
}

func TestGoToBranch(t *testing.T) {
	const listBranches = "for-each-ref --format=%(refname:short) refs/heads/"

	newHarness := func(t *testing.T, dirty bool, answers ...testhelpers.Answer) *testhelpers.Harness {
		h := testhelpers.NewHarness(t, answers...)
		h.Prober.Dirty = dirty
		h.Runner.On("for-each-ref").Returns("main\nfeature\n")
		return h
	}

	t.Run("clean tree switches directly", func(t *testing.T) {
		h := newHarness(t, false, testhelpers.Choose("feature"))

		require.NoError(t, actions.GoToBranchAction(context.Background(), h.Ctx))
		testhelpers.ExpectCommands(t, h.Runner, listBranches, "checkout feature")
		require.Equal(t, [][]string{{"feature"}}, h.Prompter.Screens(), "the current branch is not offered")
	})

	t.Run("dirty tree can be stashed first", func(t *testing.T) {
		h := newHarness(t, true, testhelpers.Choose("feature"), testhelpers.Choose("Stash them, then switch"))

		require.NoError(t, actions.GoToBranchAction(context.Background(), h.Ctx))
		testhelpers.ExpectCommands(t, h.Runner,
			listBranches,
			"stash push -u -m vigit: leaving for feature",
			"checkout feature",
		)
	})

	t.Run("dirty tree can be committed first", func(t *testing.T) {
		h := newHarness(t, true,
			testhelpers.Choose("feature"),
			testhelpers.Choose("Commit them, then switch"),
			testhelpers.Type("save work"),
		)

		require.NoError(t, actions.GoToBranchAction(context.Background(), h.Ctx))
		testhelpers.ExpectCommands(t, h.Runner, listBranches, "add --all", "commit -m save work", "checkout feature")
	})

	t.Run("discarding needs confirmation", func(t *testing.T) {
		h := newHarness(t, true,
			testhelpers.Choose("feature"),
			testhelpers.Choose("Discard them and switch"),
			testhelpers.Yes(),
		)

		require.NoError(t, actions.GoToBranchAction(context.Background(), h.Ctx))
		testhelpers.ExpectCommands(t, h.Runner, listBranches, "checkout -f feature")
	})

	t.Run("declined discard stays put", func(t *testing.T) {
		h := newHarness(t, true,
			testhelpers.Choose("feature"),
			testhelpers.Choose("Discard them and switch"),
			testhelpers.No(),
		)

		err := actions.GoToBranchAction(context.Background(), h.Ctx)
		require.Equal(t, vigiterrors.KindCanceled, vigiterrors.KindOf(err))
		testhelpers.ExpectCommands(t, h.Runner, listBranches)
	})

	t.Run("go to main when already there", func(t *testing.T) {
		h := testhelpers.NewHarness(t)

		require.NoError(t, actions.GoToMainAction(context.Background(), h.Ctx))
		testhelpers.ExpectNoCommands(t, h.Runner)
		require.Contains(t, h.Output(), "You are already in main.")
	})
}

func TestTrackRemoteBranch(t *testing.T) {
	h := testhelpers.NewHarness(t, testhelpers.Choose("topic"))
	h.Runner.On("for-each-ref").Returns("origin/HEAD\norigin/main\norigin/topic\n")

	require.NoError(t, actions.TrackRemoteBranchAction(context.Background(), h.Ctx))
	testhelpers.ExpectCommands(t, h.Runner,
		"fetch origin",
		"for-each-ref --format=%(refname:short) refs/remotes/origin/",
		"checkout --track origin/topic",
	)
	require.Equal(t, [][]string{{"topic"}}, h.Prompter.Screens(), "branches that exist locally are not offered")
}

func TestAddLocalBranch(t *testing.T) {
	t.Run("creates and switches", func(t *testing.T) {
		h := testhelpers.NewHarness(t, testhelpers.Type("feature"))

		require.NoError(t, actions.AddLocalBranchAction(context.Background(), h.Ctx))
		testhelpers.ExpectCommands(t, h.Runner, "checkout -b feature")
	})

	t.Run("refuses an invalid name and suggests one", func(t *testing.T) {
		h := testhelpers.NewHarness(t, testhelpers.Type("my feature"))

		err := actions.AddLocalBranchAction(context.Background(), h.Ctx)
		require.Equal(t, vigiterrors.KindInvalidInput, vigiterrors.KindOf(err))
		require.EqualError(t, err, "my feature is not a valid branch name. Try: my-feature")
		testhelpers.ExpectNoCommands(t, h.Runner)
	})

	t.Run("refuses an existing name", func(t *testing.T) {
		h := testhelpers.NewHarness(t, testhelpers.Type("main"))

		err := actions.AddLocalBranchAction(context.Background(), h.Ctx)
		require.Equal(t, vigiterrors.KindInvalidInput, vigiterrors.KindOf(err))
		testhelpers.ExpectNoCommands(t, h.Runner)
	})
}
