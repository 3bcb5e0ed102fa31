package git

import (
	"context"
	"fmt"
)

// Status prints the work tree status to the terminal.
func (c *Client) Status(ctx context.Context) error {
	return c.interactive(ctx, "status")
}

// Log prints the commit history to the terminal, using git's pager.
func (c *Client) Log(ctx context.Context) error {
	return c.interactive(ctx, "log")
}

// LogGraph returns a one-line-per-commit graph of all branches.
func (c *Client) LogGraph(ctx context.Context) (string, error) {
	out, err := c.output(ctx, "log", "--graph", "--oneline", "--decorate", "--all")
	if err != nil {
		return "", fmt.Errorf("failed to read history: %w", err)
	}
	return out, nil
}

// ShortStatus returns `git status --short --branch`.
func (c *Client) ShortStatus(ctx context.Context) (string, error) {
	out, err := c.output(ctx, "status", "--short", "--branch")
	if err != nil {
		return "", fmt.Errorf("failed to read status: %w", err)
	}
	return out, nil
}

// RecentCommits returns the last n commits, one line each.
func (c *Client) RecentCommits(ctx context.Context, n int) ([]string, error) {
	return c.lines(ctx, "log", "--oneline", fmt.Sprintf("-%d", n))
}

// UntrackedFiles lists untracked files that are not ignored.
func (c *Client) UntrackedFiles(ctx context.Context) ([]string, error) {
	files, err := c.lines(ctx, "ls-files", "--others", "--exclude-standard")
	if err != nil {
		return nil, fmt.Errorf("failed to list untracked files: %w", err)
	}
	return files, nil
}

// ModifiedFiles lists tracked files with unstaged modifications.
func (c *Client) ModifiedFiles(ctx context.Context) ([]string, error) {
	files, err := c.lines(ctx, "ls-files", "--modified")
	if err != nil {
		return nil, fmt.Errorf("failed to list modified files: %w", err)
	}
	return files, nil
}

// ChangedFiles returns untracked files followed by modified ones, without duplicates.
func (c *Client) ChangedFiles(ctx context.Context) ([]string, error) {
	untracked, err := c.UntrackedFiles(ctx)
	if err != nil {
		return nil, err
	}
	modified, err := c.ModifiedFiles(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(untracked)+len(modified))
	files := make([]string, 0, len(untracked)+len(modified))
	for _, f := range append(untracked, modified...) {
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		files = append(files, f)
	}
	return files, nil
}
