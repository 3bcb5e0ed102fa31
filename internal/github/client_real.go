package github

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"
)

// DefaultBaseURL is the public GitHub REST API.
const DefaultBaseURL = "https://api.github.com/"

// RESTClient implements Client using the GitHub REST API
type RESTClient struct {
	client *github.Client
}

// NewRESTClient creates a client authenticating with token against baseURL.
// An empty baseURL selects api.github.com.
func NewRESTClient(ctx context.Context, token, baseURL string) (*RESTClient, error) {
	if token == "" {
		return nil, ErrTokenMissing
	}

	// TokenType "token" makes the transport send "Authorization: token <t>"
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token, TokenType: "token"},
	)
	tc := oauth2.NewClient(ctx, ts)
	client := github.NewClient(tc)

	if baseURL != "" && baseURL != DefaultBaseURL {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse GitHub API URL %s: %w", baseURL, err)
		}
		client.BaseURL = u
		client.UploadURL = u
	}

	return &RESTClient{client: client}, nil
}

// NewFactory returns a Factory producing REST clients for baseURL.
func NewFactory(baseURL string) Factory {
	return func(ctx context.Context, token string) (Client, error) {
		c, err := NewRESTClient(ctx, token, baseURL)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
}

// CreateRepository creates a repository owned by the authenticated user
func (c *RESTClient) CreateRepository(ctx context.Context, opts CreateRepoOptions) (*Repository, error) {
	req := &github.Repository{
		Name:    github.String(opts.Name),
		Private: github.Bool(opts.Private),
	}
	if opts.Description != "" {
		req.Description = github.String(opts.Description)
	}

	// An empty org creates the repository for the authenticated user (POST /user/repos)
	repo, _, err := c.client.Repositories.Create(ctx, "", req)
	if err != nil {
		return nil, wrapError(err)
	}

	return &Repository{
		Name:     repo.GetName(),
		FullName: repo.GetFullName(),
		Owner:    repo.GetOwner().GetLogin(),
		HTMLURL:  repo.GetHTMLURL(),
		CloneURL: repo.GetCloneURL(),
		Private:  repo.GetPrivate(),
	}, nil
}

// DeleteRepository deletes owner/repo
func (c *RESTClient) DeleteRepository(ctx context.Context, owner, repo string) error {
	if _, err := c.client.Repositories.Delete(ctx, owner, repo); err != nil {
		return wrapError(err)
	}
	return nil
}

// CurrentUser returns the login of the authenticated user
func (c *RESTClient) CurrentUser(ctx context.Context) (string, error) {
	user, _, err := c.client.Users.Get(ctx, "")
	if err != nil {
		return "", wrapError(err)
	}
	return user.GetLogin(), nil
}
