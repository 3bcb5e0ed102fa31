package actions

import (
	"context"

	"vigit.dev/vigit/internal/runtime"
	"vigit.dev/vigit/internal/utils"
)

const tokenSettingsURL = "https://github.com/settings/tokens"

// openBrowser is replaced in tests.
var openBrowser = utils.OpenBrowser

// SeeCredentialsAction prints the global git identity and whether a GitHub token is stored.
func SeeCredentialsAction(ctx context.Context, c *runtime.Context) error {
	name, err := c.Git.GetConfig(ctx, "user.name")
	if err != nil {
		return err
	}
	email, err := c.Git.GetConfig(ctx, "user.email")
	if err != nil {
		return err
	}
	c.Splog.Info("User Name: %s", orNone(name))
	c.Splog.Info("User Email: %s", orNone(email))

	token, err := c.Tokens.Get(ctx)
	if err != nil {
		c.Splog.Debug("token lookup failed: %v", err)
	}
	if token == "" {
		c.Splog.Info("GitHub Token: not configured")
	} else {
		c.Splog.Info("GitHub Token: configured")
	}
	return nil
}

// UserNameAction sets the global git user.name.
func UserNameAction(ctx context.Context, c *runtime.Context) error {
	name, err := askRequired(c, "Enter your user name:", "user name")
	if err != nil {
		return err
	}
	if err := c.Git.SetConfig(ctx, "user.name", name); err != nil {
		return err
	}
	c.Splog.Success("User name set to: %s", name)
	return nil
}

// UserEmailAction sets the global git user.email.
func UserEmailAction(ctx context.Context, c *runtime.Context) error {
	email, err := askRequired(c, "Enter your email:", "email")
	if err != nil {
		return err
	}
	if err := c.Git.SetConfig(ctx, "user.email", email); err != nil {
		return err
	}
	c.Splog.Success("User email set to: %s", email)
	return nil
}

// GitHubTokenAction explains how to create a personal access token and stores one.
func GitHubTokenAction(ctx context.Context, c *runtime.Context) error {
	c.Splog.Info("To use the GitHub API you need a Personal Access Token (classic).")
	c.Splog.Info("1. Go to: %s", tokenSettingsURL)
	c.Splog.Info("2. Click on 'Generate new token (classic)'")
	c.Splog.Info("3. Give it a descriptive name, for example 'vigit'")
	c.Splog.Info("4. Check the full 'repo' scope, and 'delete_repo' to delete repositories")
	c.Splog.Tip("A token without the 'repo' scope cannot create repositories. Create a new one if that happens.")

	visit, err := confirm(c, "Open "+tokenSettingsURL+" in your browser?")
	if err != nil {
		return err
	}
	if visit {
		if err := openBrowser(ctx, tokenSettingsURL); err != nil {
			c.Splog.Warn("Could not open the browser: %v", err)
		}
	}

	token, err := c.Prompter.Password("Enter your GitHub token:")
	if err != nil {
		return err
	}
	if token == "" {
		return emptyInputError("token")
	}
	if err := c.Tokens.Set(ctx, token); err != nil {
		return err
	}
	c.Splog.Success("GitHub token successfully saved.")
	return nil
}
