package actions

import (
	"context"
	"fmt"
	"strings"

	"vigit.dev/vigit/internal/runtime"
)

// StashSaveAction stashes local modifications, untracked files included.
func StashSaveAction(ctx context.Context, c *runtime.Context) error {
	if err := require(ctx, c, inRepository, hasCommits); err != nil {
		return err
	}
	if !c.Probes.HasUncommittedChanges(ctx) {
		c.Splog.Info("There are no local changes to stash.")
		return nil
	}
	message, err := askOptional(c, "Stash message (optional):", "")
	if err != nil {
		return err
	}
	if err := c.Git.StashPush(ctx, message, true); err != nil {
		return err
	}
	c.Splog.Success("Changes stashed.")
	return nil
}

// StashListAction prints the stash entries.
func StashListAction(ctx context.Context, c *runtime.Context) error {
	if err := require(ctx, c, inRepository, hasCommits); err != nil {
		return err
	}
	entries, err := c.Git.StashEntries(ctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		c.Splog.Info("The stash is empty.")
		return nil
	}
	c.Splog.Page(strings.Join(entries, "\n") + "\n")
	return nil
}

// pickStash shows the entries and asks for an index. It returns -1 when the stash is empty.
func pickStash(ctx context.Context, c *runtime.Context) (int, error) {
	entries, err := c.Git.StashEntries(ctx)
	if err != nil {
		return 0, err
	}
	if len(entries) == 0 {
		c.Splog.Info("The stash is empty.")
		return -1, nil
	}
	c.Splog.Page(strings.Join(entries, "\n") + "\n")
	index, err := askNumber(c, "Stash index:", "0", 0)
	if err != nil {
		return 0, err
	}
	if index >= len(entries) {
		return 0, errInvalidNumber
	}
	return index, nil
}

// StashApplyAction applies a stash entry and keeps it.
func StashApplyAction(ctx context.Context, c *runtime.Context) error {
	if err := require(ctx, c, inRepository, hasCommits); err != nil {
		return err
	}
	index, err := pickStash(ctx, c)
	if err != nil || index < 0 {
		return err
	}
	if err := c.Git.StashApply(ctx, index); err != nil {
		return err
	}
	c.Splog.Success("Applied stash@{%d}.", index)
	return nil
}

// StashPopAction applies a stash entry and removes it.
func StashPopAction(ctx context.Context, c *runtime.Context) error {
	if err := require(ctx, c, inRepository, hasCommits); err != nil {
		return err
	}
	index, err := pickStash(ctx, c)
	if err != nil || index < 0 {
		return err
	}
	if err := c.Git.StashPop(ctx, index); err != nil {
		return err
	}
	c.Splog.Success("Popped stash@{%d}.", index)
	return nil
}

// StashDropAction deletes one stash entry.
func StashDropAction(ctx context.Context, c *runtime.Context) error {
	if err := require(ctx, c, inRepository, hasCommits); err != nil {
		return err
	}
	index, err := pickStash(ctx, c)
	if err != nil || index < 0 {
		return err
	}
	ok, err := confirm(c, fmt.Sprintf("Drop stash@{%d}? Its changes will be lost", index))
	if err != nil {
		return err
	}
	if !ok {
		c.Splog.Info("Stash entry kept.")
		return nil
	}
	if err := c.Git.StashDrop(ctx, index); err != nil {
		return err
	}
	c.Splog.Success("Dropped stash@{%d}.", index)
	return nil
}

// StashClearAction deletes every stash entry.
func StashClearAction(ctx context.Context, c *runtime.Context) error {
	if err := require(ctx, c, inRepository, hasCommits); err != nil {
		return err
	}
	ok, err := confirm(c, "Delete every stash entry? Their changes will be lost")
	if err != nil {
		return err
	}
	if !ok {
		c.Splog.Info("Stash kept.")
		return nil
	}
	if err := c.Git.StashClear(ctx); err != nil {
		return err
	}
	c.Splog.Success("Stash cleared.")
	return nil
}
