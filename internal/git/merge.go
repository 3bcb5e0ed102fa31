package git

import (
	"context"
	"fmt"
)

// MergeStrategy resolves conflicting hunks during a merge.
type MergeStrategy string

const (
	// MergeDefault lets git stop on conflicts
	MergeDefault MergeStrategy = ""
	// MergeOurs keeps the current branch's side of conflicting hunks
	MergeOurs MergeStrategy = "ours"
	// MergeTheirs keeps the merged branch's side of conflicting hunks
	MergeTheirs MergeStrategy = "theirs"
)

// Merge merges branch into the current branch.
// Output is captured so a conflict can be reported and a strategy offered.
func (c *Client) Merge(ctx context.Context, branch string, strategy MergeStrategy) (Result, error) {
	args := []string{"merge"}
	if strategy != MergeDefault {
		args = append(args, "-X", string(strategy))
	}
	args = append(args, branch)
	return c.captured(ctx, args...)
}

// MergeAbort restores the pre-merge state.
func (c *Client) MergeAbort(ctx context.Context) error {
	if _, err := c.captured(ctx, "merge", "--abort"); err != nil {
		return fmt.Errorf("failed to abort merge: %w", err)
	}
	return nil
}
