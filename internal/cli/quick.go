package cli

import (
	"context"

	"github.com/spf13/cobra"

	"vigit.dev/vigit/internal/actions"
	"vigit.dev/vigit/internal/cli/common"
	"vigit.dev/vigit/internal/runtime"
)

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "add",
		Aliases: []string{"a"},
		Short:   "Quick action: create a local repository in the current directory",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, actions.AddLocalRepoAction)
		},
	}
}

func newAddBranchCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "add-branch",
		Aliases: []string{"ab"},
		Short:   "Quick action: create a local branch and switch to it",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Interactive(cmd, actions.AddLocalBranchAction)
		},
	}
}

// messageCommand builds a quick action that commits with -m, or asks for a
// message when the flag is absent.
func messageCommand(use, alias, short string, fn func(ctx context.Context, c *runtime.Context, message string) error) *cobra.Command {
	var message string
	cmd := &cobra.Command{
		Use:     use,
		Aliases: []string{alias},
		Short:   short,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			handler := func(ctx context.Context, c *runtime.Context) error {
				return fn(ctx, c, message)
			}
			if message != "" {
				return common.Run(cmd, handler)
			}
			return common.Interactive(cmd, handler)
		},
	}
	cmd.Flags().StringVarP(&message, "message", "m", "", "Commit message")
	return cmd
}

func newCommitCmd() *cobra.Command {
	return messageCommand("commit", "c", "Quick action: stage everything and commit", actions.CommitLocal)
}

func newPushCmd() *cobra.Command {
	return messageCommand("push", "p", "Quick action: commit and push main", actions.CommitAndPush)
}

func newBranchCmd() *cobra.Command {
	return messageCommand("branch", "b", "Quick action: commit and push the current branch", actions.CommitAndPushBranch)
}

func newMergeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "merge",
		Aliases: []string{"m"},
		Short:   "Quick action: merge the current branch into main",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Interactive(cmd, actions.MergeWithMainAction)
		},
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "new-config",
		Aliases: []string{"n"},
		Short:   "Quick action: open the configuration menu",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Interactive(cmd, func(ctx context.Context, c *runtime.Context) error {
				m := actions.NewMenus(c)
				_, err := m.Dispatcher().Run(ctx, m.Configuration())
				return err
			})
		},
	}
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Aliases: []string{"s"},
		Short:   "Quick action: show the commit log",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, actions.SeeLogAction)
		},
	}
}
