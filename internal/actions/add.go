package actions

import (
	"context"

	"vigit.dev/vigit/internal/runtime"
)

// AddAllAction stages every change.
func AddAllAction(ctx context.Context, c *runtime.Context) error {
	if err := require(ctx, c, inRepository); err != nil {
		return err
	}
	if err := c.Git.AddAll(ctx); err != nil {
		return err
	}
	c.Splog.Success("All changes staged.")
	return nil
}

// AddSelectedAction stages the untracked and modified files the user picks.
func AddSelectedAction(ctx context.Context, c *runtime.Context) error {
	if err := require(ctx, c, inRepository); err != nil {
		return err
	}
	files, err := c.Git.ChangedFiles(ctx)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		c.Splog.Info("There are no untracked or modified files to add.")
		return nil
	}

	picked, err := c.Prompter.MultiSelect("Select the files to stage:", files)
	if err != nil {
		return err
	}
	if len(picked) == 0 {
		c.Splog.Info("No files selected.")
		return nil
	}
	paths := make([]string, 0, len(picked))
	for _, i := range picked {
		paths = append(paths, files[i])
	}
	if err := c.Git.AddPaths(ctx, paths); err != nil {
		return err
	}
	c.Splog.Success("Staged %d file(s).", len(paths))
	return nil
}
