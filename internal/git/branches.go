package git

import (
	"context"
	"fmt"
	"strings"
)

// CreateBranch creates branch from HEAD and checks it out.
func (c *Client) CreateBranch(ctx context.Context, branch string) error {
	if err := c.interactive(ctx, "checkout", "-b", branch); err != nil {
		return fmt.Errorf("failed to create branch %s: %w", branch, err)
	}
	return nil
}

// Checkout switches to branch.
func (c *Client) Checkout(ctx context.Context, branch string) error {
	if err := c.interactive(ctx, "checkout", branch); err != nil {
		return fmt.Errorf("failed to checkout %s: %w", branch, err)
	}
	return nil
}

// CheckoutForce switches to branch, discarding local modifications.
func (c *Client) CheckoutForce(ctx context.Context, branch string) error {
	if err := c.interactive(ctx, "checkout", "-f", branch); err != nil {
		return fmt.Errorf("failed to checkout %s: %w", branch, err)
	}
	return nil
}

// CheckoutTrack creates a local branch tracking <remote>/<branch> and switches to it.
func (c *Client) CheckoutTrack(ctx context.Context, branch string) error {
	ref := c.remote + "/" + branch
	if err := c.interactive(ctx, "checkout", "--track", ref); err != nil {
		return fmt.Errorf("failed to track %s: %w", ref, err)
	}
	return nil
}

// ListBranches prints local branches to the terminal.
func (c *Client) ListBranches(ctx context.Context) error {
	return c.interactive(ctx, "branch")
}

// ListRemoteBranches prints remote-tracking branches to the terminal.
func (c *Client) ListRemoteBranches(ctx context.Context) error {
	return c.interactive(ctx, "branch", "-r")
}

// LocalBranches returns the names of all local branches.
func (c *Client) LocalBranches(ctx context.Context) ([]string, error) {
	names, err := c.lines(ctx, "for-each-ref", "--format=%(refname:short)", "refs/heads/")
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	return names, nil
}

// RemoteBranches returns remote branch names without the remote prefix.
func (c *Client) RemoteBranches(ctx context.Context) ([]string, error) {
	refs, err := c.lines(ctx, "for-each-ref", "--format=%(refname:short)", "refs/remotes/"+c.remote+"/")
	if err != nil {
		return nil, fmt.Errorf("failed to list remote branches: %w", err)
	}
	prefix := c.remote + "/"
	branches := make([]string, 0, len(refs))
	for _, ref := range refs {
		name := strings.TrimPrefix(ref, prefix)
		if name == "HEAD" || name == c.remote {
			continue
		}
		branches = append(branches, name)
	}
	return branches, nil
}

// DeleteBranch deletes a fully merged local branch with `branch -d`.
// Output is captured so the reason can be shown before offering a force delete.
func (c *Client) DeleteBranch(ctx context.Context, branch string) (Result, error) {
	return c.captured(ctx, "branch", "-d", branch)
}

// ForceDeleteBranch deletes a local branch with `branch -D`.
func (c *Client) ForceDeleteBranch(ctx context.Context, branch string) error {
	if _, err := c.captured(ctx, "branch", "-D", branch); err != nil {
		return fmt.Errorf("failed to force delete branch %s: %w", branch, err)
	}
	return nil
}
