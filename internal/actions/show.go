package actions

import (
	"context"
	"fmt"
	"strings"

	"vigit.dev/vigit/internal/git"
	"vigit.dev/vigit/internal/runtime"
	"vigit.dev/vigit/internal/tui"
)

const recentCommitCount = 5

// GeneralViewAction prints a summary of the repository.
func GeneralViewAction(ctx context.Context, c *runtime.Context) error {
	if err := require(ctx, c, inRepository); err != nil {
		return err
	}

	var b strings.Builder
	if root, err := git.RepoRoot(c.WorkDir); err == nil {
		fmt.Fprintf(&b, "%s %s\n", tui.Title("Repository:"), root)
	}
	fmt.Fprintf(&b, "%s %s\n", tui.Title("Branch:"), orNone(c.Probes.CurrentBranch(ctx)))

	remote := "not connected"
	if c.Probes.IsConnectedToRemote(ctx) {
		url, err := c.Git.RemoteURL(ctx)
		if err != nil {
			return err
		}
		remote = fmt.Sprintf("%s (%s)", c.Remote(), url)
	}
	fmt.Fprintf(&b, "%s %s\n", tui.Title("Remote:"), remote)

	status, err := c.Git.ShortStatus(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(&b, "\n%s\n%s\n", tui.Title("Status:"), status)

	if c.Probes.HasCommits(ctx) {
		commits, err := c.Git.RecentCommits(ctx, recentCommitCount)
		if err != nil {
			return err
		}
		fmt.Fprintf(&b, "\n%s\n%s\n", tui.Title("Recent commits:"), strings.Join(commits, "\n"))
	}

	c.Splog.Page(b.String())
	return nil
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

// StatusAction prints git status.
func StatusAction(ctx context.Context, c *runtime.Context) error {
	if err := require(ctx, c, inRepository); err != nil {
		return err
	}
	return c.Git.Status(ctx)
}

// HistoryAction opens a scrollable graph of every branch's history.
func HistoryAction(ctx context.Context, c *runtime.Context) error {
	if err := require(ctx, c, inRepository, hasCommits); err != nil {
		return err
	}
	graph, err := c.Git.LogGraph(ctx)
	if err != nil {
		return err
	}
	return tui.RunHistoryViewer(c.Stdin, c.Stdout, "History", graph)
}

// SeeLogAction shows git log through git's pager.
func SeeLogAction(ctx context.Context, c *runtime.Context) error {
	if err := require(ctx, c, inRepository, hasCommits); err != nil {
		return err
	}
	return c.Git.Log(ctx)
}
