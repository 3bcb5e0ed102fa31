package actions_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"vigit.dev/vigit/internal/actions"
	vigiterrors "vigit.dev/vigit/internal/errors"
	"vigit.dev/vigit/testhelpers"
)

func TestAddSelected(t *testing.T) {
	t.Run("stages only the picked files", func(t *testing.T) {
		h := testhelpers.NewHarness(t, testhelpers.Pick("a.txt"))
		h.Runner.On("ls-files", "--others").Returns("a.txt\nb.txt\n")
		h.Runner.On("ls-files", "--modified").Returns("b.txt\nc.go\n")

		require.NoError(t, actions.AddSelectedAction(context.Background(), h.Ctx))
		testhelpers.ExpectCommands(t, h.Runner,
			"ls-files --others --exclude-standard",
			"ls-files --modified",
			"add -- a.txt",
		)
		require.Contains(t, h.Output(), "Staged 1 file(s).")
	})

	t.Run("nothing picked stages nothing", func(t *testing.T) {
		h := testhelpers.NewHarness(t, testhelpers.Pick())
		h.Runner.On("ls-files", "--others").Returns("a.txt\n")

		require.NoError(t, actions.AddSelectedAction(context.Background(), h.Ctx))
		require.Equal(t, 0, h.Runner.Count("add"))
		require.Contains(t, h.Output(), "No files selected.")
	})

	t.Run("a clean tree asks nothing", func(t *testing.T) {
		h := testhelpers.NewHarness(t)

		require.NoError(t, actions.AddSelectedAction(context.Background(), h.Ctx))
		require.Empty(t, h.Prompter.Messages())
	})
}

func TestAddAll(t *testing.T) {
	h := testhelpers.NewHarness(t)

	require.NoError(t, actions.AddAllAction(context.Background(), h.Ctx))
	testhelpers.ExpectCommands(t, h.Runner, "add --all")
}

func TestConfiguration(t *testing.T) {
	t.Run("sets the global user name", func(t *testing.T) {
		h := testhelpers.NewHarness(t, testhelpers.Type("Ada"))

		require.NoError(t, actions.UserNameAction(context.Background(), h.Ctx))
		testhelpers.ExpectCommands(t, h.Runner, "config --global user.name Ada")
	})

	t.Run("stores the token", func(t *testing.T) {
		opened := actions.StubOpenBrowser(t)
		h := testhelpers.NewHarness(t, testhelpers.No(), testhelpers.Type("ghp_secret"))

		require.NoError(t, actions.GitHubTokenAction(context.Background(), h.Ctx))
		token, err := h.Tokens.Get(context.Background())
		require.NoError(t, err)
		require.Equal(t, "ghp_secret", token)
		require.NotContains(t, h.Output(), "ghp_secret")
		require.Empty(t, *opened)
	})

	t.Run("opens the token settings page on request", func(t *testing.T) {
		opened := actions.StubOpenBrowser(t)
		h := testhelpers.NewHarness(t, testhelpers.Yes(), testhelpers.Type("ghp_secret"))

		require.NoError(t, actions.GitHubTokenAction(context.Background(), h.Ctx))
		require.Equal(t, []string{"https://github.com/settings/tokens"}, *opened)
	})

	t.Run("an empty token cancels", func(t *testing.T) {
		actions.StubOpenBrowser(t)
		h := testhelpers.NewHarness(t, testhelpers.No(), testhelpers.Type(""))

		err := actions.GitHubTokenAction(context.Background(), h.Ctx)
		require.ErrorIs(t, err, vigiterrors.ErrCanceled)
		token, err := h.Tokens.Get(context.Background())
		require.NoError(t, err)
		require.Empty(t, token)
	})

	t.Run("shows credentials without the token", func(t *testing.T) {
		h := testhelpers.NewHarness(t)
		h.Runner.On("config", "--global", "--get", "user.name").Returns("Ada\n")
		h.Runner.On("config", "--global", "--get", "user.email").Fails(1, "")
		require.NoError(t, h.Tokens.Set(context.Background(), "ghp_secret"))

		require.NoError(t, actions.SeeCredentialsAction(context.Background(), h.Ctx))
		require.Contains(t, h.Output(), "User Name: Ada")
		require.Contains(t, h.Output(), "GitHub Token: configured")
		require.NotContains(t, h.Output(), "ghp_secret")
	})
}
