package git

import (
	"context"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
)

// Init creates a new repository in the working directory. A non-empty
// initialBranch names the first branch instead of git's default.
func (c *Client) Init(ctx context.Context, initialBranch string) error {
	args := []string{"init"}
	if initialBranch != "" {
		args = append(args, "--initial-branch="+initialBranch)
	}
	if err := c.interactive(ctx, args...); err != nil {
		return fmt.Errorf("failed to initialize repository: %w", err)
	}
	return nil
}

// InitBare creates a bare repository at path.
func (c *Client) InitBare(ctx context.Context, path string) error {
	if err := c.interactive(ctx, "init", "--bare", path); err != nil {
		return fmt.Errorf("failed to initialize bare repository %s: %w", path, err)
	}
	return nil
}

// Clone copies url into the working directory, into dir when it is non-empty.
func (c *Client) Clone(ctx context.Context, url, dir string) error {
	args := []string{"clone", url}
	if dir != "" {
		args = append(args, dir)
	}
	if err := c.interactive(ctx, args...); err != nil {
		return fmt.Errorf("failed to clone %s: %w", url, err)
	}
	return nil
}

// RepoRoot returns the top-level directory of the repository containing dir.
func RepoRoot(dir string) (string, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return "", fmt.Errorf("not a git repository: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("failed to get worktree: %w", err)
	}

	return worktree.Filesystem.Root(), nil
}
