package git

import (
	"context"
	"fmt"
	"strings"
)

// AddRemote registers url under the configured remote name.
func (c *Client) AddRemote(ctx context.Context, url string) error {
	if err := c.interactive(ctx, "remote", "add", c.remote, url); err != nil {
		return fmt.Errorf("failed to add remote %s: %w", c.remote, err)
	}
	return nil
}

// RemoveRemote deletes the configured remote from the local repository.
func (c *Client) RemoveRemote(ctx context.Context) error {
	if err := c.interactive(ctx, "remote", "remove", c.remote); err != nil {
		return fmt.Errorf("failed to remove remote %s: %w", c.remote, err)
	}
	return nil
}

// ListRemotes prints remotes and their URLs to the terminal.
func (c *Client) ListRemotes(ctx context.Context) error {
	return c.interactive(ctx, "remote", "-v")
}

// RemoteURL returns the fetch URL of the configured remote.
func (c *Client) RemoteURL(ctx context.Context) (string, error) {
	url, err := c.output(ctx, "remote", "get-url", c.remote)
	if err != nil {
		return "", fmt.Errorf("failed to read url of %s: %w", c.remote, err)
	}
	return url, nil
}

// ParseRepoSlug extracts owner and repository name from a GitHub remote URL.
// Both https://github.com/o/r(.git) and git@github.com:o/r(.git) forms are accepted.
func ParseRepoSlug(url string) (owner, repo string, ok bool) {
	url = strings.TrimSpace(url)
	url = strings.TrimSuffix(url, "/")
	url = strings.TrimSuffix(url, ".git")

	var path string
	switch {
	case strings.HasPrefix(url, "git@"):
		i := strings.Index(url, ":")
		if i < 0 {
			return "", "", false
		}
		path = url[i+1:]
	case strings.Contains(url, "://"):
		rest := url[strings.Index(url, "://")+3:]
		i := strings.Index(rest, "/")
		if i < 0 {
			return "", "", false
		}
		path = rest[i+1:]
	default:
		return "", "", false
	}

	parts := strings.Split(path, "/")
	if len(parts) < 2 || parts[len(parts)-2] == "" || parts[len(parts)-1] == "" {
		return "", "", false
	}
	return parts[len(parts)-2], parts[len(parts)-1], true
}

// Fetch downloads objects and refs from the remote.
func (c *Client) Fetch(ctx context.Context) error {
	if err := c.interactive(ctx, "fetch", c.remote); err != nil {
		return fmt.Errorf("failed to fetch from %s: %w", c.remote, err)
	}
	return nil
}
