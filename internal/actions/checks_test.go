package actions_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"vigit.dev/vigit/internal/actions"
	vigiterrors "vigit.dev/vigit/internal/errors"
	"vigit.dev/vigit/testhelpers"
)

func TestPreconditionsBlockWithoutRunningGit(t *testing.T) {
	tests := []struct {
		name    string
		handler actions.Handler
		state   func(p *testhelpers.FakeProber)
		message string
		remedy  string
	}{
		{
			name:    "commit outside a repository",
			handler: actions.CommitLocalAction,
			state:   func(p *testhelpers.FakeProber) { p.Repository = false },
			message: "The present working directory is not a git repository, please create one to proceed.",
			remedy:  "Work in Main > Local > Add a Local Repo",
		},
		{
			name:    "init inside a repository",
			handler: actions.AddLocalRepoAction,
			state:   func(p *testhelpers.FakeProber) {},
			message: "The present working directory is already a git repository. No need to create one.",
		},
		{
			name:    "join when already connected",
			handler: actions.JoinLocalToRemoteAction,
			state:   func(p *testhelpers.FakeProber) {},
			message: "The local repository is already connected to a remote repository.",
		},
		{
			name:    "pull without a remote",
			handler: actions.YankFromRemoteAction,
			state:   func(p *testhelpers.FakeProber) { p.Connected = false },
			message: "The local repository is not connected to a remote repository. Please connect it to proceed.",
			remedy:  "Work in Main > Remote > Join Local to Remote",
		},
		{
			name:    "branch before the first commit",
			handler: actions.AddLocalBranchAction,
			state:   func(p *testhelpers.FakeProber) { p.Commits = false },
			message: "To work with branches, you need to commit first. Please commit to proceed.",
			remedy:  "Work in Main > Local > Commit to Local Repo",
		},
		{
			name:    "commit to branch while on main",
			handler: actions.CommitToBranchAction,
			state:   func(p *testhelpers.FakeProber) {},
			message: "You are in main. Go to a branch to proceed.",
			remedy:  "Work in Branches > Local > Go to Branch",
		},
		{
			name:    "commit and push main from a branch",
			handler: actions.CommitAndPushAction,
			state:   func(p *testhelpers.FakeProber) { p.Branch = "feature" },
			message: "You are not in main. Go to main to proceed.",
			remedy:  "Quick Actions > Go to Main",
		},
		{
			name:    "push a branch without upstream",
			handler: actions.PushBranchAction,
			state: func(p *testhelpers.FakeProber) {
				p.Branch = "feature"
				p.Upstream = false
			},
			message: "The branch feature is not linked to a remote branch.",
			remedy:  "Work in Branches > Local to Remote > Join Local Branch to Remote",
		},
		{
			name:    "yank a branch missing on the remote",
			handler: actions.YankRemoteBranchAction,
			state:   func(p *testhelpers.FakeProber) { p.Branch = "feature" },
			message: "The branch feature does not exist on origin.",
		},
		{
			name:    "history before the first commit",
			handler: actions.HistoryAction,
			state:   func(p *testhelpers.FakeProber) { p.Commits = false },
			message: "To work with branches, you need to commit first.",
		},
		{
			name:    "delete remote repo without a remote",
			handler: actions.DeleteRemoteRepoAction,
			state:   func(p *testhelpers.FakeProber) { p.Connected = false },
			message: "not connected to a remote repository",
		},
		{
			name:    "stage files outside a repository",
			handler: actions.AddSelectedAction,
			state:   func(p *testhelpers.FakeProber) { p.Repository = false },
			message: "not a git repository",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := testhelpers.NewHarness(t)
			tt.state(h.Prober)

			err := tt.handler(context.Background(), h.Ctx)
			require.Error(t, err)
			require.Equal(t, vigiterrors.KindPrecondition, vigiterrors.KindOf(err))

			actions.Report(context.Background(), h.Ctx, err)
			require.Contains(t, h.Output(), tt.message)
			if tt.remedy != "" {
				require.Contains(t, h.Output(), "To fix it go to: "+tt.remedy)
			}

			testhelpers.ExpectNoCommands(t, h.Runner)
			require.Empty(t, h.Prompter.Messages(), "no prompt may be shown before preconditions pass")
		})
	}
}

func TestReportByKind(t *testing.T) {
	t.Run("command failures show git's stderr", func(t *testing.T) {
		h := testhelpers.NewHarness(t)
		err := vigiterrors.NewGitCommandError("git", []string{"push"}, 1, "", "fatal: no route to host\n", nil)

		actions.Report(context.Background(), h.Ctx, err)
		require.Contains(t, h.Output(), "fatal: no route to host")
	})

	t.Run("cancellation names what was missing", func(t *testing.T) {
		h := testhelpers.NewHarness(t, testhelpers.Type("   "))

		err := actions.AddBareRepoAction(context.Background(), h.Ctx)
		require.Equal(t, vigiterrors.KindCanceled, vigiterrors.KindOf(err))

		actions.Report(context.Background(), h.Ctx, err)
		require.Contains(t, h.Output(), "Operation canceled: repository path not provided.")
		testhelpers.ExpectNoCommands(t, h.Runner)
	})
}
