package git

import (
	"context"
)

const (
	// DefaultRemote is the remote name used when none is configured
	DefaultRemote = "origin"
	// DefaultMainBranch is the trunk branch name used when none is configured
	DefaultMainBranch = "main"
)

// Client exposes one typed method per git operation the menus perform.
type Client struct {
	runner Runner
	remote string
}

// NewClient creates a Client that runs commands through runner.
func NewClient(runner Runner, remote string) *Client {
	if remote == "" {
		remote = DefaultRemote
	}
	return &Client{runner: runner, remote: remote}
}

// Remote returns the configured remote name.
func (c *Client) Remote() string {
	return c.remote
}

func (c *Client) interactive(ctx context.Context, args ...string) error {
	return Interactive(ctx, c.runner, args...)
}

func (c *Client) captured(ctx context.Context, args ...string) (Result, error) {
	return Captured(ctx, c.runner, args...)
}

func (c *Client) output(ctx context.Context, args ...string) (string, error) {
	return Output(ctx, c.runner, args...)
}

func (c *Client) lines(ctx context.Context, args ...string) ([]string, error) {
	return Lines(ctx, c.runner, args...)
}
