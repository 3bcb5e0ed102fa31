package actions_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"vigit.dev/vigit/internal/actions"
	"vigit.dev/vigit/internal/menu"
	"vigit.dev/vigit/internal/tui"
	"vigit.dev/vigit/testhelpers"
)

func firstOptions(screens [][]string) []string {
	first := make([]string, len(screens))
	for i, s := range screens {
		first[i] = s[0]
	}
	return first
}

func TestMenusRedrawOrder(t *testing.T) {
	h := testhelpers.NewHarness(t,
		testhelpers.Choose("Work in Branches"),
		testhelpers.Choose("Local"),
		testhelpers.Choose("See Local Branches"),
		testhelpers.Choose("Back"),
		testhelpers.Choose("Back"),
		testhelpers.Choose("Quit"),
	)

	require.NoError(t, actions.NewMenus(h.Ctx).Run(context.Background()))
	require.Equal(t, []string{
		"[m] Work in Main",
		"[l] Local",
		"[s] See Local Branches",
		"[s] See Local Branches",
		"[l] Local",
		"[m] Work in Main",
	}, firstOptions(h.Prompter.Screens()))
	require.Zero(t, h.Prompter.Remaining())
	require.Equal(t, 5, strings.Count(h.Output(), tui.Banner), "the screen is cleared on entry and return, not after a leaf")
}

func TestMenusQuitUnwindsEveryLevel(t *testing.T) {
	h := testhelpers.NewHarness(t,
		testhelpers.Choose("Work in Branches"),
		testhelpers.Choose("Local"),
		testhelpers.Choose("Quit"),
	)

	require.NoError(t, actions.NewMenus(h.Ctx).Run(context.Background()))
	require.Len(t, h.Prompter.Screens(), 3)
}

func TestMenusCancelAtMainEnds(t *testing.T) {
	h := testhelpers.NewHarness(t)

	require.NoError(t, actions.NewMenus(h.Ctx).Run(context.Background()))
	require.Len(t, h.Prompter.Screens(), 1)
}

func TestMenusGateReportsAndRedraws(t *testing.T) {
	h := testhelpers.NewHarness(t,
		testhelpers.Choose("Work in Branches"),
		testhelpers.Choose("Quit"),
	)
	h.Prober.Commits = false

	require.NoError(t, actions.NewMenus(h.Ctx).Run(context.Background()))
	require.Equal(t, []string{"[m] Work in Main", "[m] Work in Main"}, firstOptions(h.Prompter.Screens()))
	require.Contains(t, h.Output(), "To work with branches, you need to commit first.")
	testhelpers.ExpectNoCommands(t, h.Runner)
}

func TestMenusHeaderShowsCurrentBranch(t *testing.T) {
	h := testhelpers.NewHarness(t, testhelpers.Choose("Quit"))
	h.Prober.Branch = "feature"

	require.NoError(t, actions.NewMenus(h.Ctx).Run(context.Background()))
	require.Contains(t, h.Prompter.Messages()[0], "feature")
}

func TestMenuKeysAreUniquePerScreen(t *testing.T) {
	h := testhelpers.NewHarness(t)
	m := actions.NewMenus(h.Ctx)

	screens := map[string]func() *menu.Node{
		"main":         m.Main,
		"work in main": m.WorkInMain,
		"main local":   m.MainLocal,
		"main remote":  m.MainRemote,
		"branches":     m.WorkInBranches,
		"local":        m.BranchLocal,
		"ltr":          m.BranchLocalToRemote,
		"rtl":          m.BranchRemoteToLocal,
		"manage":       m.BranchManage,
		"advanced":     m.BranchAdvanced,
		"stash":        m.Stash,
		"add":          m.Add,
		"show":         m.Show,
		"config":       m.Configuration,
		"quick":        m.QuickActions,
	}
	for name, build := range screens {
		t.Run(name, func(t *testing.T) {
			seen := map[string]bool{}
			for _, option := range m.Dispatcher().Options(build()) {
				key := option[:strings.Index(option, "]")+1]
				require.False(t, seen[key], "duplicate key %s in %s", key, option)
				seen[key] = true
			}
		})
	}
}
