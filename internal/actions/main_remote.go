package actions

import (
	"context"
	"fmt"

	"vigit.dev/vigit/internal/git"
	"vigit.dev/vigit/internal/github"
	"vigit.dev/vigit/internal/runtime"
)

// AddRemoteRepoAction creates a repository on GitHub and offers to link it as the remote.
func AddRemoteRepoAction(ctx context.Context, c *runtime.Context) error {
	if err := require(ctx, c, inRepository); err != nil {
		return err
	}
	client, err := c.GitHubClient(ctx)
	if err != nil {
		return err
	}

	name, err := askRequired(c, "Name of the new repository:", "repository name")
	if err != nil {
		return err
	}
	description, err := askOptional(c, "Description (optional):", "")
	if err != nil {
		return err
	}
	private, err := c.Prompter.Confirm("Make the repository private?", false)
	if err != nil {
		return err
	}

	repo, err := client.CreateRepository(ctx, github.CreateRepoOptions{
		Name:        name,
		Description: description,
		Private:     private,
	})
	if err != nil {
		return err
	}
	c.Splog.Success("Remote repository created: %s", repo.HTMLURL)

	if c.Probes.IsConnectedToRemote(ctx) {
		c.Splog.Info("This repository already has a %s remote, so the new repository was not linked.", c.Remote())
		return nil
	}
	link, err := c.Prompter.Confirm("Link the local repository with the new remote repository?", true)
	if err != nil {
		return err
	}
	if !link {
		c.Splog.Info("Remote repository created but not linked to the local repository.")
		c.Splog.Tip("You can link it later with %s.", menuPath(WorkInMainID, MainRemoteID, JoinLocalToRemoteID))
		return nil
	}
	if err := c.Git.AddRemote(ctx, repo.HTMLURL); err != nil {
		return err
	}
	c.Splog.Success("Local repository successfully connected with GitHub.")
	return nil
}

// JoinLocalToRemoteAction registers a remote URL the user enters.
func JoinLocalToRemoteAction(ctx context.Context, c *runtime.Context) error {
	if err := require(ctx, c, inRepository, notConnected); err != nil {
		return err
	}
	url, err := askRequired(c, "URL of the remote repository:", "remote URL")
	if err != nil {
		return err
	}
	if err := c.Git.AddRemote(ctx, url); err != nil {
		return err
	}
	c.Splog.Success("Connected local repository with remote: %s", url)
	return nil
}

// CommitAndPushAction commits everything on main and pushes it.
func CommitAndPushAction(ctx context.Context, c *runtime.Context) error {
	return CommitAndPush(ctx, c, "")
}

// CommitAndPush commits every change on main with message and pushes it.
func CommitAndPush(ctx context.Context, c *runtime.Context, message string) error {
	if err := require(ctx, c, inRepository, connected, onMain); err != nil {
		return err
	}
	if err := commitPending(ctx, c, message); err != nil {
		return err
	}
	return pushWithFallback(ctx, c, c.MainBranch(), git.PushSetUpstream)
}

// ForkRemoteAction clones a remote repository.
func ForkRemoteAction(ctx context.Context, c *runtime.Context) error {
	url, err := askRequired(c, "URL of the repository to clone:", "repository URL")
	if err != nil {
		return err
	}
	dir, err := askOptional(c, "Directory name (leave empty for the default):", "")
	if err != nil {
		return err
	}
	if err := c.Git.Clone(ctx, url, dir); err != nil {
		return err
	}
	if dir == "" {
		dir = "the current directory"
	}
	c.Splog.Success("Cloned %s into %s.", url, dir)
	return nil
}

// YankFromRemoteAction pulls main from the remote.
func YankFromRemoteAction(ctx context.Context, c *runtime.Context) error {
	if err := require(ctx, c, inRepository, connected); err != nil {
		return err
	}
	return pullWithFallback(ctx, c, c.MainBranch())
}

// SeeRemoteReposAction lists the configured remotes.
func SeeRemoteReposAction(ctx context.Context, c *runtime.Context) error {
	if err := require(ctx, c, inRepository, connected); err != nil {
		return err
	}
	return c.Git.ListRemotes(ctx)
}

// DeleteRemoteRepoAction disconnects the remote and optionally deletes the
// GitHub repository behind it.
func DeleteRemoteRepoAction(ctx context.Context, c *runtime.Context) error {
	if err := require(ctx, c, inRepository, connected); err != nil {
		return err
	}
	url, err := c.Git.RemoteURL(ctx)
	if err != nil {
		return err
	}

	ok, err := confirm(c, fmt.Sprintf("Remove the %s remote (%s) from this repository", c.Remote(), url))
	if err != nil {
		return err
	}
	if !ok {
		c.Splog.Info("Remote repository deletion canceled.")
		return nil
	}
	if err := c.Git.RemoveRemote(ctx); err != nil {
		return err
	}
	c.Splog.Success("Removed the %s remote.", c.Remote())

	_, repo, isGitHub := git.ParseRepoSlug(url)
	if !isGitHub {
		return nil
	}
	ok, err = confirm(c, fmt.Sprintf("Also delete the repository %s on GitHub? This cannot be undone", repo))
	if err != nil || !ok {
		return err
	}
	client, err := c.GitHubClient(ctx)
	if err != nil {
		return err
	}
	owner, err := client.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if err := client.DeleteRepository(ctx, owner, repo); err != nil {
		return err
	}
	c.Splog.Success("Deleted %s/%s on GitHub.", owner, repo)
	return nil
}
