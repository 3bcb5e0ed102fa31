package actions_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"vigit.dev/vigit/internal/actions"
	vigiterrors "vigit.dev/vigit/internal/errors"
	"vigit.dev/vigit/testhelpers"
)

func TestReset(t *testing.T) {
	t.Run("resets the requested number of commits", func(t *testing.T) {
		h := testhelpers.NewHarness(t,
			testhelpers.Choose("Hard (discard the changes)"),
			testhelpers.Type("2"),
			testhelpers.Yes(),
		)

		require.NoError(t, actions.ResetAction(context.Background(), h.Ctx))
		testhelpers.ExpectCommands(t, h.Runner, "reset --hard HEAD~2")
	})

	for _, raw := range []string{"abc", "0", "-3", ""} {
		t.Run("rejects "+raw, func(t *testing.T) {
			h := testhelpers.NewHarness(t,
				testhelpers.Choose("Soft (keep the changes staged)"),
				testhelpers.Type(raw),
			)

			err := actions.ResetAction(context.Background(), h.Ctx)
			require.Equal(t, vigiterrors.KindInvalidInput, vigiterrors.KindOf(err))
			actions.Report(context.Background(), h.Ctx, err)
			require.Contains(t, h.Output(), "Invalid number")
			testhelpers.ExpectNoCommands(t, h.Runner)
		})
	}

	t.Run("needs confirmation", func(t *testing.T) {
		h := testhelpers.NewHarness(t,
			testhelpers.Choose("Mixed (keep the changes unstaged)"),
			testhelpers.Type("1"),
			testhelpers.No(),
		)

		require.NoError(t, actions.ResetAction(context.Background(), h.Ctx))
		testhelpers.ExpectNoCommands(t, h.Runner)
	})
}

func TestClean(t *testing.T) {
	t.Run("removes files and directories after confirmation", func(t *testing.T) {
		h := testhelpers.NewHarness(t, testhelpers.Choose("Remove untracked files and directories"), testhelpers.Yes())

		require.NoError(t, actions.CleanAction(context.Background(), h.Ctx))
		testhelpers.ExpectCommands(t, h.Runner, "clean -fd")
	})

	t.Run("interactive mode lets git ask", func(t *testing.T) {
		h := testhelpers.NewHarness(t, testhelpers.Choose("Choose interactively"))

		require.NoError(t, actions.CleanAction(context.Background(), h.Ctx))
		testhelpers.ExpectCommands(t, h.Runner, "clean -i")
	})
}

func TestForcePush(t *testing.T) {
	h := testhelpers.NewHarness(t, testhelpers.Choose("With lease (refuses if someone else pushed)"), testhelpers.Yes())
	onFeature(h)

	require.NoError(t, actions.ForcePushAction(context.Background(), h.Ctx))
	testhelpers.ExpectCommands(t, h.Runner, "push --force-with-lease origin feature")
}

func TestCherryPick(t *testing.T) {
	t.Run("applies without committing", func(t *testing.T) {
		h := testhelpers.NewHarness(t, testhelpers.Type("abc123"), testhelpers.Choose("Apply without committing"))

		require.NoError(t, actions.CherryPickAction(context.Background(), h.Ctx))
		testhelpers.ExpectCommands(t, h.Runner, "cherry-pick --no-commit abc123")
	})

	t.Run("conflict can be aborted", func(t *testing.T) {
		h := testhelpers.NewHarness(t,
			testhelpers.Type("abc123"),
			testhelpers.Choose("Apply and commit"),
			testhelpers.Choose("Abort the cherry-pick"),
		)
		h.Runner.On("cherry-pick", "abc123").Fails(1, "error: could not apply abc123")

		require.NoError(t, actions.CherryPickAction(context.Background(), h.Ctx))
		testhelpers.ExpectCommands(t, h.Runner, "cherry-pick abc123", "cherry-pick --abort")
	})

	t.Run("conflict can be left for manual resolution", func(t *testing.T) {
		h := testhelpers.NewHarness(t,
			testhelpers.Type("abc123"),
			testhelpers.Choose("Apply and commit"),
			testhelpers.Choose("Resolve the conflicts manually"),
		)
		h.Runner.On("cherry-pick").Fails(1, "error: could not apply abc123")

		require.NoError(t, actions.CherryPickAction(context.Background(), h.Ctx))
		testhelpers.ExpectCommands(t, h.Runner, "cherry-pick abc123")
		require.Contains(t, h.Output(), "git cherry-pick --continue")
	})
}

func TestInteractiveRebase(t *testing.T) {
	h := testhelpers.NewHarness(t, testhelpers.Type("3"), testhelpers.Yes())

	require.NoError(t, actions.InteractiveRebaseAction(context.Background(), h.Ctx))
	testhelpers.ExpectCommands(t, h.Runner, "rebase -i HEAD~3")
}

func TestStash(t *testing.T) {
	const entries = "stash@{0}: On main: second\nstash@{1}: On main: first\n"

	t.Run("save includes untracked files", func(t *testing.T) {
		h := testhelpers.NewHarness(t, testhelpers.Type("wip"))
		h.Prober.Dirty = true

		require.NoError(t, actions.StashSaveAction(context.Background(), h.Ctx))
		testhelpers.ExpectCommands(t, h.Runner, "stash push -u -m wip")
	})

	t.Run("pop the chosen entry", func(t *testing.T) {
		h := testhelpers.NewHarness(t, testhelpers.Type("1"))
		h.Runner.On("stash", "list").Returns(entries)

		require.NoError(t, actions.StashPopAction(context.Background(), h.Ctx))
		testhelpers.ExpectCommands(t, h.Runner, "stash list", "stash pop stash@{1}")
	})

	t.Run("an out of range index is invalid", func(t *testing.T) {
		h := testhelpers.NewHarness(t, testhelpers.Type("5"))
		h.Runner.On("stash", "list").Returns(entries)

		err := actions.StashApplyAction(context.Background(), h.Ctx)
		require.Equal(t, vigiterrors.KindInvalidInput, vigiterrors.KindOf(err))
		testhelpers.ExpectCommands(t, h.Runner, "stash list")
	})

	t.Run("drop needs confirmation", func(t *testing.T) {
		h := testhelpers.NewHarness(t, testhelpers.Type("0"), testhelpers.No())
		h.Runner.On("stash", "list").Returns(entries)

		require.NoError(t, actions.StashDropAction(context.Background(), h.Ctx))
		testhelpers.ExpectCommands(t, h.Runner, "stash list")
	})

	t.Run("empty stash asks nothing", func(t *testing.T) {
		h := testhelpers.NewHarness(t)

		require.NoError(t, actions.StashApplyAction(context.Background(), h.Ctx))
		require.Contains(t, h.Output(), "The stash is empty.")
		require.Empty(t, h.Prompter.Messages())
	})
}
