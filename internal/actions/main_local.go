package actions

import (
	"context"
	"fmt"
	"path/filepath"

	"vigit.dev/vigit/internal/git"
	"vigit.dev/vigit/internal/runtime"
)

// AddLocalRepoAction creates a repository in the working directory.
func AddLocalRepoAction(ctx context.Context, c *runtime.Context) error {
	if err := require(ctx, c, notInRepository); err != nil {
		return err
	}
	if err := c.Git.Init(ctx, c.MainBranch()); err != nil {
		return err
	}
	c.Splog.Success("Local repository successfully created in the current directory.")
	return nil
}

// AddBareRepoAction creates a bare repository at a path the user enters.
func AddBareRepoAction(ctx context.Context, c *runtime.Context) error {
	path, err := askRequired(c, "Path of the bare repository (e.g. ../project.git):", "repository path")
	if err != nil {
		return err
	}
	if err := c.Git.InitBare(ctx, path); err != nil {
		return err
	}
	c.Splog.Success("Bare repository created at %s.", path)
	return nil
}

// CommitLocalAction stages every change and commits it.
func CommitLocalAction(ctx context.Context, c *runtime.Context) error {
	return CommitLocal(ctx, c, "")
}

// CommitLocal commits every change with message, asking for one when it is empty.
func CommitLocal(ctx context.Context, c *runtime.Context, message string) error {
	if err := require(ctx, c, inRepository); err != nil {
		return err
	}
	return commitAll(ctx, c, message)
}

// commitAll asks for a message unless one is given, then stages and commits everything.
func commitAll(ctx context.Context, c *runtime.Context, message string) error {
	if message == "" {
		var err error
		message, err = askRequired(c, "Commit message:", "commit message")
		if err != nil {
			return err
		}
	} else {
		c.Splog.Info("Using commit message: %s", message)
	}
	if err := c.Git.CommitAll(ctx, message); err != nil {
		return err
	}
	c.Splog.Success("Changes committed successfully!")
	return nil
}

// commitPending commits every change like commitAll, but leaves a clean work
// tree alone so earlier commits can still be pushed.
func commitPending(ctx context.Context, c *runtime.Context, message string) error {
	if c.Probes.HasUncommittedChanges(ctx) {
		return commitAll(ctx, c, message)
	}
	if err := hasCommits(ctx, c); err != nil {
		return err
	}
	c.Splog.Info("Nothing new to commit. Pushing the existing commits.")
	return nil
}

// DeleteLocalRepoAction removes the .git directory of the enclosing repository.
// The work tree itself is left alone.
func DeleteLocalRepoAction(ctx context.Context, c *runtime.Context) error {
	if err := require(ctx, c, inRepository); err != nil {
		return err
	}
	root, err := git.RepoRoot(c.WorkDir)
	if err != nil {
		return err
	}
	gitDir := filepath.Join(root, ".git")

	ok, err := confirm(c, fmt.Sprintf("Delete the local repository at %s? All history will be lost; your files stay", root))
	if err != nil {
		return err
	}
	if !ok {
		c.Splog.Info("Local repository deletion canceled.")
		return nil
	}
	if err := c.Fs.RemoveAll(gitDir); err != nil {
		return fmt.Errorf("failed to delete %s: %w", gitDir, err)
	}
	c.Splog.Success("Local repository deleted successfully.")
	return nil
}
