package git

import (
	"context"
	"fmt"
	"strconv"
)

func stashRef(index int) string {
	return "stash@{" + strconv.Itoa(index) + "}"
}

// StashPush saves local modifications, including untracked files when untracked is set.
func (c *Client) StashPush(ctx context.Context, message string, untracked bool) error {
	args := []string{"stash", "push"}
	if untracked {
		args = append(args, "-u")
	}
	if message != "" {
		args = append(args, "-m", message)
	}
	if err := c.interactive(ctx, args...); err != nil {
		return fmt.Errorf("failed to stash changes: %w", err)
	}
	return nil
}

// StashEntries returns one line per stash entry.
func (c *Client) StashEntries(ctx context.Context) ([]string, error) {
	return c.lines(ctx, "stash", "list")
}

// StashApply applies the entry at index and keeps it.
func (c *Client) StashApply(ctx context.Context, index int) error {
	if err := c.interactive(ctx, "stash", "apply", stashRef(index)); err != nil {
		return fmt.Errorf("failed to apply %s: %w", stashRef(index), err)
	}
	return nil
}

// StashPop applies the entry at index and drops it.
func (c *Client) StashPop(ctx context.Context, index int) error {
	if err := c.interactive(ctx, "stash", "pop", stashRef(index)); err != nil {
		return fmt.Errorf("failed to pop %s: %w", stashRef(index), err)
	}
	return nil
}

// StashDrop deletes the entry at index.
func (c *Client) StashDrop(ctx context.Context, index int) error {
	if err := c.interactive(ctx, "stash", "drop", stashRef(index)); err != nil {
		return fmt.Errorf("failed to drop %s: %w", stashRef(index), err)
	}
	return nil
}

// StashClear deletes every entry.
func (c *Client) StashClear(ctx context.Context) error {
	if err := c.interactive(ctx, "stash", "clear"); err != nil {
		return fmt.Errorf("failed to clear stash: %w", err)
	}
	return nil
}
