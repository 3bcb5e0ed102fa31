// Package github provides a client for the repository endpoints of the GitHub API.
package github

import (
	"context"
)

// Repository is the subset of a GitHub repository the menus display.
// This is a simplified struct to avoid coupling to go-github library
type Repository struct {
	Name     string
	FullName string
	Owner    string
	HTMLURL  string
	CloneURL string
	Private  bool
}

// CreateRepoOptions contains options for creating a repository
type CreateRepoOptions struct {
	Name        string
	Description string
	Private     bool
}

// Client is an interface for GitHub API interactions
type Client interface {
	// CreateRepository creates a repository owned by the authenticated user
	CreateRepository(ctx context.Context, opts CreateRepoOptions) (*Repository, error)

	// DeleteRepository deletes owner/repo
	DeleteRepository(ctx context.Context, owner, repo string) error

	// CurrentUser returns the login of the authenticated user
	CurrentUser(ctx context.Context) (string, error)
}

// Factory builds a Client for a token. It exists so the token can be read
// lazily, only when a remote operation is selected.
type Factory func(ctx context.Context, token string) (Client, error)
